package renderer

// Placement is a shape origin relative to the sweep position on x and
// absolute on y.
type Placement struct {
	DX float64
	Y  float64
}

// Scene lists where the shape is drawn each frame.
type Scene []Placement

// DefaultScene draws three faces: two side by side along the top row and
// one below the first.
var DefaultScene = Scene{
	{DX: 0, Y: 10},
	{DX: 200, Y: 10},
	{DX: 0, Y: 210},
}

func (s Scene) draw(surface DrawSurface, x float64) {
	for _, p := range s {
		surface.DrawShapeAt(x+p.DX, p.Y)
	}
}

package canvas

import (
	"fmt"

	"github.com/gogpu/gg"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/colornames"
)

// Circle is a filled circle in shape-local coordinates.
type Circle struct {
	X, Y, R float64
	Color   gg.RGBA
}

// Shape is a sprite made of filled circles inside a Size×Size box whose
// top-left corner is the draw position.
type Shape struct {
	Name    string
	Size    int
	Circles []Circle
}

// Face is a blue disc with three white spots.
var Face = Shape{
	Name: "face",
	Size: 256,
	Circles: []Circle{
		{X: 128, Y: 128, R: 90, Color: gg.FromColor(colornames.Blue)},
		{X: 86, Y: 86, R: 20, Color: gg.FromColor(colornames.White)},
		{X: 160, Y: 76, R: 20, Color: gg.FromColor(colornames.White)},
		{X: 140, Y: 150, R: 35, Color: gg.FromColor(colornames.White)},
	},
}

// key identifies the rasterized sprite. Shapes that share a name but differ
// in size or circles get separate entries.
func (s Shape) key() string {
	return fmt.Sprintf("%s/%d/%v", s.Name, s.Size, s.Circles)
}

const spriteCacheSize = 16

var spriteCache, _ = lru.New[string, *gg.ImageBuf](spriteCacheSize)

// sprite returns the rasterized shape, drawing it on first use.
func sprite(s Shape) (*gg.ImageBuf, error) {
	key := s.key()
	if img, ok := spriteCache.Get(key); ok {
		return img, nil
	}
	if s.Size <= 0 {
		return nil, fmt.Errorf("shape %q: invalid size %d", s.Name, s.Size)
	}

	dc := gg.NewContext(s.Size, s.Size)
	defer dc.Close()
	for _, c := range s.Circles {
		dc.SetColor(c.Color.Color())
		dc.DrawCircle(c.X, c.Y, c.R)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("shape %q: fill: %w", s.Name, err)
		}
	}
	img := gg.ImageBufFromImage(dc.Image())
	spriteCache.Add(key, img)
	return img, nil
}

package renderer

// Sweep is the horizontal position the scene is drawn at. It moves right by
// step each frame and wraps back to 0 once it passes width, so x stays in
// [0, width].
type Sweep struct {
	x     float64
	step  float64
	width float64
}

// NewSweep clamps negative step and width to 0.
func NewSweep(step, width float64) *Sweep {
	return &Sweep{step: max(step, 0), width: max(width, 0)}
}

func (s *Sweep) Advance() {
	s.x += s.step
	if s.x > s.width {
		s.x = 0
	}
}

func (s *Sweep) X() float64 { return s.x }

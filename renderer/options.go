package renderer

import (
	"github.com/gogpu/gg"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultStep   = 10
)

type Option func(*Renderer)

// WithSize sets the drawable size. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 && height > 0 {
			r.width, r.height = width, height
		}
	}
}

// WithStep sets how far the sweep moves per frame. Non-positive values are
// ignored.
func WithStep(step float64) Option {
	return func(r *Renderer) {
		if step > 0 {
			r.step = step
		}
	}
}

func WithBackground(c gg.RGBA) Option {
	return func(r *Renderer) { r.background = c }
}

func WithScene(s Scene) Option {
	return func(r *Renderer) { r.scene = s }
}

// WithFrameRate caps the loop at fps frames per second. 0 leaves pacing to
// the buffer swap.
func WithFrameRate(fps int) Option {
	return func(r *Renderer) {
		if fps >= 0 {
			r.fps = fps
		}
	}
}

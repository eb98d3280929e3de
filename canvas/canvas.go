// Package canvas is the drawing surface the frame loop renders into. Shapes
// are composited on the CPU with gogpu/gg and each Flush hands the finished
// frame to a Presenter that copies it into the framebuffer bound to the
// current context.
package canvas

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/richinsley/eglsweep/internal/logx"
)

var (
	ErrClosed            = errors.New("canvas: closed")
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")
	ErrNilPresenter      = errors.New("canvas: nil presenter")
)

// Presenter copies a finished RGBA frame, top row first, into the target
// framebuffer.
type Presenter interface {
	Present(pixels []byte, width, height int) error
	Close() error
}

// Sink receives a copy of every flushed frame.
type Sink interface {
	WriteFrame(pixels []byte) error
}

// Canvas is not safe for concurrent use.
type Canvas struct {
	dc        *gg.Context
	pixmap    *gg.Pixmap
	presenter Presenter
	sink      Sink
	shape     Shape
	width     int
	height    int

	// err holds the first draw failure until the next Flush reports it.
	err    error
	closed bool
}

type Option func(*Canvas)

// WithShape replaces the shape drawn by DrawShapeAt.
func WithShape(s Shape) Option {
	return func(c *Canvas) { c.shape = s }
}

// WithSink forwards every flushed frame to s.
func WithSink(s Sink) Option {
	return func(c *Canvas) { c.sink = s }
}

func New(width, height int, p Presenter, opts ...Option) (*Canvas, error) {
	if p == nil {
		return nil, ErrNilPresenter
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	pm := gg.NewPixmap(width, height)
	c := &Canvas{
		dc:        gg.NewContext(width, height, gg.WithPixmap(pm)),
		pixmap:    pm,
		presenter: p,
		shape:     Face,
		width:     width,
		height:    height,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Pixels returns the frame buffer in RGBA order. The slice is reused by
// the next frame.
func (c *Canvas) Pixels() []byte {
	return c.pixmap.Data()
}

// Clear fills the whole surface with col.
func (c *Canvas) Clear(col gg.RGBA) {
	if c.closed {
		return
	}
	c.dc.ClearWithColor(col)
}

// DrawShapeAt draws the canvas shape with its top-left corner at (x, y).
func (c *Canvas) DrawShapeAt(x, y float64) {
	if c.closed || c.err != nil {
		return
	}
	img, err := sprite(c.shape)
	if err != nil {
		c.err = err
		return
	}
	c.dc.DrawImage(img, x, y)
}

// Flush presents the frame and reports any draw failure since the last
// Flush.
func (c *Canvas) Flush() error {
	if c.closed {
		return ErrClosed
	}
	if err := c.err; err != nil {
		c.err = nil
		return fmt.Errorf("draw: %w", err)
	}
	if err := c.dc.FlushGPU(); err != nil {
		return fmt.Errorf("flush gpu: %w", err)
	}
	if err := c.presenter.Present(c.pixmap.Data(), c.width, c.height); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	if c.sink != nil {
		if err := c.sink.WriteFrame(c.pixmap.Data()); err != nil {
			return fmt.Errorf("sink: %w", err)
		}
	}
	return nil
}

// Close releases the presenter. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.dc.Close(); err != nil {
		logx.Logger().Warn("canvas: close context", slog.String("error", err.Error()))
	}
	return c.presenter.Close()
}

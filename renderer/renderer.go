// Package renderer drives the frame loop: acquire a current context, bind a
// drawing surface to it, then poll, clear, draw, flush and present until the
// input side asks to stop.
package renderer

import (
	"log/slog"
	"time"

	"github.com/go-errors/errors"
	"github.com/gogpu/gg"

	"github.com/richinsley/eglsweep/graphics"
	"github.com/richinsley/eglsweep/inputs"
	"github.com/richinsley/eglsweep/internal/logx"
)

// ContextManager is the part of eglcontext.Manager the loop needs.
type ContextManager interface {
	Acquire(win graphics.NativeWindow) error
	Release()
	SwapBuffers() error
}

// DrawSurface is a drawable bound to the current context's framebuffer.
type DrawSurface interface {
	Clear(c gg.RGBA)
	DrawShapeAt(x, y float64)
	Flush() error
	Close() error
}

// SurfaceBinder wraps the framebuffer of the current context. It is only
// called after Acquire succeeded.
type SurfaceBinder interface {
	Bind(width, height int) (DrawSurface, error)
}

type SurfaceBinderFunc func(width, height int) (DrawSurface, error)

func (f SurfaceBinderFunc) Bind(width, height int) (DrawSurface, error) { return f(width, height) }

type Renderer struct {
	ctx    ContextManager
	binder SurfaceBinder
	poller inputs.Poller

	width      int
	height     int
	step       float64
	fps        int
	background gg.RGBA
	scene      Scene

	sweep  *Sweep
	frames uint64
}

func New(ctx ContextManager, binder SurfaceBinder, poller inputs.Poller, opts ...Option) *Renderer {
	r := &Renderer{
		ctx:        ctx,
		binder:     binder,
		poller:     poller,
		width:      DefaultWidth,
		height:     DefaultHeight,
		step:       DefaultStep,
		background: gg.Black,
		scene:      DefaultScene,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.sweep = NewSweep(r.step, float64(r.width))
	return r
}

// Frames reports how many frames were presented.
func (r *Renderer) Frames() uint64 { return r.frames }

// X reports the current sweep position.
func (r *Renderer) X() float64 { return r.sweep.X() }

// Run blocks until exit is requested or a frame fails. The surface is
// closed and the context released before it returns, in that order.
func (r *Renderer) Run(win graphics.NativeWindow) error {
	log := logx.Logger()

	if err := r.ctx.Acquire(win); err != nil {
		return err
	}

	surface, err := r.binder.Bind(r.width, r.height)
	if err != nil {
		r.ctx.Release()
		return errors.WrapPrefix(err, "bind surface", 0)
	}

	log.Info("render loop starting",
		slog.Int("width", r.width),
		slog.Int("height", r.height),
		slog.Float64("step", r.step),
		slog.Int("fps", r.fps))

	loopErr := r.loop(surface)

	if err := surface.Close(); err != nil {
		log.Warn("close surface failed", slog.String("error", err.Error()))
	}
	r.ctx.Release()

	log.Info("render loop stopped", slog.Uint64("frames", r.frames))
	return loopErr
}

func (r *Renderer) loop(surface DrawSurface) error {
	var tick <-chan time.Time
	if r.fps > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.fps))
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if inputs.WasExitPressed(r.poller.PollFrameInput()) {
			return nil
		}

		r.sweep.Advance()
		surface.Clear(r.background)
		r.scene.draw(surface, r.sweep.X())

		if err := surface.Flush(); err != nil {
			return errors.WrapPrefix(err, "flush frame", 0)
		}
		if err := r.ctx.SwapBuffers(); err != nil {
			return errors.WrapPrefix(err, "present frame", 0)
		}
		r.frames++

		if tick != nil {
			<-tick
		}
	}
}

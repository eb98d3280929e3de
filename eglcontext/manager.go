// Package eglcontext owns the display connection, framebuffer config,
// window surface and rendering context of a single window, and guarantees
// that whatever part of that chain was created is torn down again.
package eglcontext

import (
	"fmt"
	"log/slog"

	"github.com/richinsley/eglsweep/graphics"
	"github.com/richinsley/eglsweep/internal/logx"
)

// Manager drives a graphics.Backend through the acquire chain
// display → API → config → surface → context → current, and back.
// It is not safe for concurrent use; it belongs to the render thread.
type Manager struct {
	backend graphics.Backend

	nativeDisplay  uintptr
	api            graphics.API
	surfaceAttribs graphics.SurfaceAttribs
	contextAttribs graphics.ContextAttribs

	state   State
	display graphics.Display
	config  graphics.Config
	surface graphics.Surface
	context graphics.RenderContext
}

func New(backend graphics.Backend, opts ...Option) *Manager {
	m := &Manager{
		backend:        backend,
		nativeDisplay:  graphics.DefaultDisplay,
		api:            graphics.APIOpenGL,
		surfaceAttribs: graphics.DefaultSurfaceAttribs,
		contextAttribs: graphics.DefaultContextAttribs,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) State() State                    { return m.state }
func (m *Manager) Display() graphics.Display       { return m.display }
func (m *Manager) Surface() graphics.Surface       { return m.surface }
func (m *Manager) Context() graphics.RenderContext { return m.context }

// Acquire builds the full chain for win and makes the context current.
// On failure everything created so far is destroyed in reverse order and
// the manager is back in StateEmpty.
func (m *Manager) Acquire(win graphics.NativeWindow) error {
	if m.state != StateEmpty {
		return ErrAlreadyAcquired
	}

	var undo []func()
	fail := func(kind error) error {
		err := &ContextError{Kind: kind, Step: m.state, Code: m.backend.GetError()}
		logx.Logger().Error("acquire failed",
			slog.String("step", m.state.String()),
			slog.String("error", kind.Error()),
			slog.Int("code", int(err.Code)))
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		m.reset()
		return err
	}

	m.display = m.backend.GetDisplay(m.nativeDisplay)
	if m.display == graphics.NoDisplay {
		return fail(ErrNoDisplay)
	}
	undo = append(undo, func() { m.backend.Terminate(m.display) })
	m.state = StateDisplayOpen

	major, minor, _ := m.backend.Initialize(m.display)
	logx.Logger().Info("display initialized", slog.Int("major", major), slog.Int("minor", minor))

	if !m.backend.BindAPI(m.api) {
		return fail(ErrAPIUnavailable)
	}
	m.state = StateAPISelected

	configs := m.backend.ChooseConfig(m.display, m.surfaceAttribs.List())
	if len(configs) == 0 {
		return fail(ErrNoMatchingConfig)
	}
	m.config = configs[0]
	m.state = StateConfigChosen

	m.surface = m.backend.CreateWindowSurface(m.display, m.config, win)
	if m.surface == graphics.NoSurface {
		return fail(ErrSurfaceCreationFailed)
	}
	undo = append(undo, func() { m.backend.DestroySurface(m.display, m.surface) })
	m.state = StateSurfaceCreated

	m.context = m.backend.CreateContext(m.display, m.config, graphics.NoContext, m.contextAttribs.List())
	if m.context == graphics.NoContext {
		return fail(ErrContextCreationFailed)
	}
	undo = append(undo, func() { m.backend.DestroyContext(m.display, m.context) })
	m.state = StateContextCreated

	if !m.backend.MakeCurrent(m.display, m.surface, m.surface, m.context) {
		return fail(ErrMakeCurrentFailed)
	}
	m.state = StateCurrent

	logx.Logger().Info("context current",
		slog.String("api", m.api.String()),
		slog.Int("major", int(m.contextAttribs.Major)),
		slog.Int("minor", int(m.contextAttribs.Minor)))
	return nil
}

// Release unbinds and destroys everything Acquire created. It is a no-op
// when no display is open and never stops early.
func (m *Manager) Release() {
	if m.display == graphics.NoDisplay {
		return
	}
	log := logx.Logger()

	if !m.backend.MakeCurrent(m.display, graphics.NoSurface, graphics.NoSurface, graphics.NoContext) {
		log.Warn("release: unbind failed", slog.Int("code", int(m.backend.GetError())))
	}
	if m.context != graphics.NoContext {
		if !m.backend.DestroyContext(m.display, m.context) {
			log.Warn("release: destroy context failed", slog.Int("code", int(m.backend.GetError())))
		}
		m.context = graphics.NoContext
	}
	if m.surface != graphics.NoSurface {
		if !m.backend.DestroySurface(m.display, m.surface) {
			log.Warn("release: destroy surface failed", slog.Int("code", int(m.backend.GetError())))
		}
		m.surface = graphics.NoSurface
	}
	if !m.backend.Terminate(m.display) {
		log.Warn("release: terminate failed", slog.Int("code", int(m.backend.GetError())))
	}
	m.reset()
	log.Info("context released")
}

// SwapBuffers presents the window surface.
func (m *Manager) SwapBuffers() error {
	if m.state != StateCurrent {
		return ErrNotCurrent
	}
	if !m.backend.SwapBuffers(m.display, m.surface) {
		return fmt.Errorf("%w: error 0x%04x", ErrPresentFailed, m.backend.GetError())
	}
	return nil
}

func (m *Manager) reset() {
	m.display = graphics.NoDisplay
	m.config = 0
	m.surface = graphics.NoSurface
	m.context = graphics.NoContext
	m.state = StateEmpty
}

package eglcontext

import "github.com/richinsley/eglsweep/graphics"

type Option func(*Manager)

// WithSurfaceAttribs overrides the framebuffer configuration attributes.
func WithSurfaceAttribs(a graphics.SurfaceAttribs) Option {
	return func(m *Manager) { m.surfaceAttribs = a }
}

// WithContextAttribs overrides the requested context version and profile.
func WithContextAttribs(a graphics.ContextAttribs) Option {
	return func(m *Manager) { m.contextAttribs = a }
}

// WithNativeDisplay opens the given native display connection instead of
// the platform default.
func WithNativeDisplay(native uintptr) Option {
	return func(m *Manager) { m.nativeDisplay = native }
}

// WithAPI selects the client API bound before config selection.
func WithAPI(api graphics.API) Option {
	return func(m *Manager) { m.api = api }
}

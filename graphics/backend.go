package graphics

// Display, Config, Surface and RenderContext are opaque platform handles.
// The zero value of each is the platform's "no object" sentinel.
type (
	Display       uintptr
	Config        uintptr
	Surface       uintptr
	RenderContext uintptr
)

// NativeWindow is the platform window token a window surface is bound to.
type NativeWindow uintptr

const (
	NoDisplay Display       = 0
	NoSurface Surface       = 0
	NoContext RenderContext = 0
)

// DefaultDisplay asks the backend for the platform's default display.
const DefaultDisplay uintptr = 0

// API identifies the client rendering API bound before config selection.
type API int

const (
	// APIOpenGL is desktop-class OpenGL.
	APIOpenGL API = iota
	// APIOpenGLES is the embedded profile.
	APIOpenGLES
)

func (a API) String() string {
	switch a {
	case APIOpenGL:
		return "opengl"
	case APIOpenGLES:
		return "opengles"
	}
	return "unknown"
}

// Backend is the EGL-style surface the context manager drives. Every call
// reports failure the way EGL does (a zero handle or false) and the most
// recent failure code is available from GetError.
type Backend interface {
	GetDisplay(native uintptr) Display
	Initialize(d Display) (major, minor int, ok bool)
	BindAPI(api API) bool
	// ChooseConfig returns the configurations matching attribs, best first.
	ChooseConfig(d Display, attribs []int32) []Config
	CreateWindowSurface(d Display, c Config, win NativeWindow) Surface
	CreateContext(d Display, c Config, share RenderContext, attribs []int32) RenderContext
	MakeCurrent(d Display, draw, read Surface, ctx RenderContext) bool
	DestroyContext(d Display, ctx RenderContext) bool
	DestroySurface(d Display, s Surface) bool
	Terminate(d Display) bool
	SwapBuffers(d Display, s Surface) bool
	GetError() int32
}

package graphics

// Attribute keys and values, numbered as in EGL so a cgo backend can pass the
// lists through unchanged.
const (
	AttribNone           int32 = 0x3038
	AttribRedSize        int32 = 0x3024
	AttribGreenSize      int32 = 0x3023
	AttribBlueSize       int32 = 0x3022
	AttribAlphaSize      int32 = 0x3021
	AttribDepthSize      int32 = 0x3025
	AttribStencilSize    int32 = 0x3026
	AttribRenderableType int32 = 0x3040

	AttribContextMajorVersion int32 = 0x3098
	AttribContextMinorVersion int32 = 0x30FB
	AttribContextProfileMask  int32 = 0x30FD
)

const (
	RenderableOpenGL    int32 = 0x0008
	RenderableOpenGLES2 int32 = 0x0004
	RenderableOpenGLES3 int32 = 0x0040

	ProfileCore          int32 = 0x00000001
	ProfileCompatibility int32 = 0x00000002
)

// SurfaceAttribs describes the framebuffer configuration to select.
type SurfaceAttribs struct {
	Red, Green, Blue, Alpha int32
	Depth                   int32
	Stencil                 int32
	Renderable              int32
}

// DefaultSurfaceAttribs is RGBA8888 with a 24-bit depth and 8-bit stencil
// buffer, renderable by desktop OpenGL.
var DefaultSurfaceAttribs = SurfaceAttribs{
	Red:        8,
	Green:      8,
	Blue:       8,
	Alpha:      8,
	Depth:      24,
	Stencil:    8,
	Renderable: RenderableOpenGL,
}

// List returns the attributes as a key/value list terminated by AttribNone.
func (a SurfaceAttribs) List() []int32 {
	return []int32{
		AttribRenderableType, a.Renderable,
		AttribRedSize, a.Red,
		AttribGreenSize, a.Green,
		AttribBlueSize, a.Blue,
		AttribAlphaSize, a.Alpha,
		AttribDepthSize, a.Depth,
		AttribStencilSize, a.Stencil,
		AttribNone,
	}
}

// ContextAttribs describes the rendering context to request.
type ContextAttribs struct {
	Profile int32
	Major   int32
	Minor   int32
}

// DefaultContextAttribs requests an OpenGL 4.3 core profile context.
var DefaultContextAttribs = ContextAttribs{
	Profile: ProfileCore,
	Major:   4,
	Minor:   3,
}

func (a ContextAttribs) List() []int32 {
	return []int32{
		AttribContextProfileMask, a.Profile,
		AttribContextMajorVersion, a.Major,
		AttribContextMinorVersion, a.Minor,
		AttribNone,
	}
}

package glfwcontext

import (
	"fmt"
	"log/slog"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/eglsweep/inputs"
	"github.com/richinsley/eglsweep/internal/logx"
)

// Options configure the window created by New.
type Options struct {
	Width, Height int
	Title         string
	Visible       bool
	// ExitKey ends the frame loop when pressed. Closing the window always does.
	ExitKey inputs.Key
}

// Context is a GLFW window without a client API. The EGL backend creates
// its window surface on the native handle, and the frame loop polls input
// through it.
type Context struct {
	window  *glfw.Window
	exitKey inputs.Key
	pressed map[inputs.Key]bool
	frame   uint64
}

// New creates the window. InitGraphics must have been called on this thread.
func New(opts Options) (*Context, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if !opts.Visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	c := &Context{
		window:  win,
		exitKey: opts.ExitKey,
		pressed: make(map[inputs.Key]bool),
	}
	win.SetKeyCallback(c.glfwKeyCallback)
	return c, nil
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	k, ok := glfwToKey[key]
	if !ok {
		logx.Logger().Debug("unmapped key", slog.Int("key", int(key)))
		return
	}
	c.pressed[k] = true
}

// PollFrameInput pumps the event queue and returns the keys pressed since
// the previous call.
func (c *Context) PollFrameInput() inputs.State {
	clear(c.pressed)
	glfw.PollEvents()

	s := inputs.State{
		Pressed: make(map[inputs.Key]bool, len(c.pressed)),
		Frame:   c.frame,
	}
	for k := range c.pressed {
		s.Pressed[k] = true
	}
	s.Exit = c.window.ShouldClose() || (c.exitKey != inputs.KeyUnknown && s.Pressed[c.exitKey])
	c.frame++
	return s
}

// GetFramebufferSize returns the drawable size in pixels, which can differ
// from the requested window size on scaled displays.
func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// Shutdown destroys the window. The EGL surface on it must already be gone.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

var glfwToKey = map[glfw.Key]inputs.Key{
	glfw.KeyEscape: inputs.KeyEscape,
	glfw.KeyEnter:  inputs.KeyEnter,
	glfw.KeySpace:  inputs.KeySpace,
	glfw.KeyQ:      inputs.KeyQ,
	glfw.KeyKPAdd:  inputs.KeyPlus,
	glfw.KeyEqual:  inputs.KeyPlus,
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	logx.Logger().Info("GLFW initialized")
	return nil
}

// TerminateGraphics shuts GLFW down. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	logx.Logger().Info("GLFW terminated")
}

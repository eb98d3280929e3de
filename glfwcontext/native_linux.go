//go:build linux && !wayland

package glfwcontext

import (
	"unsafe"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/eglsweep/graphics"
)

// NativeWindow returns the X11 window id EGL binds its surface to.
func (c *Context) NativeWindow() graphics.NativeWindow {
	return graphics.NativeWindow(c.window.GetX11Window())
}

// NativeDisplay returns the X11 connection GLFW opened, so EGL talks to the
// same server the window lives on.
func NativeDisplay() uintptr {
	return uintptr(unsafe.Pointer(glfw.GetX11Display()))
}

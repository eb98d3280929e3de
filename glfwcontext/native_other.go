//go:build !linux || wayland

package glfwcontext

import "github.com/richinsley/eglsweep/graphics"

// NativeWindow has no EGL-compatible handle outside Linux/X11.
func (c *Context) NativeWindow() graphics.NativeWindow {
	return 0
}

// NativeDisplay falls back to the EGL default display.
func NativeDisplay() uintptr {
	return graphics.DefaultDisplay
}

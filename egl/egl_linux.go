//go:build linux && cgo

package egl

/*
#cgo LDFLAGS: -lEGL
#include <EGL/egl.h>
#include <EGL/eglext.h>

#include <stdint.h>

static EGLDisplay get_display(uintptr_t native) {
    return eglGetDisplay((EGLNativeDisplayType)native);
}
*/
import "C"

import (
	"github.com/richinsley/eglsweep/graphics"
)

const maxConfigs = 16

// handles maps the opaque ids handed out to callers onto EGL pointers, so
// no C pointer is ever round-tripped through a uintptr.
type handles[T comparable] struct {
	next uintptr
	m    map[uintptr]T
}

func (h *handles[T]) put(v T) uintptr {
	if h.m == nil {
		h.m = make(map[uintptr]T)
	}
	h.next++
	h.m[h.next] = v
	return h.next
}

func (h *handles[T]) get(id uintptr) (T, bool) {
	v, ok := h.m[id]
	return v, ok
}

func (h *handles[T]) drop(id uintptr) {
	delete(h.m, id)
}

// Backend implements graphics.Backend on top of libEGL.
type Backend struct {
	displays handles[C.EGLDisplay]
	configs  handles[C.EGLConfig]
	surfaces handles[C.EGLSurface]
	contexts handles[C.EGLContext]
}

func New() (graphics.Backend, error) {
	return &Backend{}, nil
}

func (b *Backend) display(d graphics.Display) C.EGLDisplay {
	v, ok := b.displays.get(uintptr(d))
	if !ok {
		return nil
	}
	return v
}

func (b *Backend) surface(s graphics.Surface) C.EGLSurface {
	v, ok := b.surfaces.get(uintptr(s))
	if !ok {
		return nil
	}
	return v
}

func (b *Backend) context(c graphics.RenderContext) C.EGLContext {
	v, ok := b.contexts.get(uintptr(c))
	if !ok {
		return nil
	}
	return v
}

func (b *Backend) GetDisplay(native uintptr) graphics.Display {
	// 0 is EGL_DEFAULT_DISPLAY.
	d := C.get_display(C.uintptr_t(native))
	if d == nil {
		return graphics.NoDisplay
	}
	return graphics.Display(b.displays.put(d))
}

func (b *Backend) Initialize(d graphics.Display) (int, int, bool) {
	var major, minor C.EGLint
	ok := C.eglInitialize(b.display(d), &major, &minor) == C.EGL_TRUE
	return int(major), int(minor), ok
}

func (b *Backend) BindAPI(api graphics.API) bool {
	var e C.EGLenum = C.EGL_OPENGL_API
	if api == graphics.APIOpenGLES {
		e = C.EGL_OPENGL_ES_API
	}
	return C.eglBindAPI(e) == C.EGL_TRUE
}

func (b *Backend) ChooseConfig(d graphics.Display, attribs []int32) []graphics.Config {
	list := toEGLint(attribs)
	var configs [maxConfigs]C.EGLConfig
	var n C.EGLint
	if C.eglChooseConfig(b.display(d), &list[0], &configs[0], maxConfigs, &n) == C.EGL_FALSE || n == 0 {
		return nil
	}
	out := make([]graphics.Config, 0, int(n))
	for i := 0; i < int(n); i++ {
		out = append(out, graphics.Config(b.configs.put(configs[i])))
	}
	return out
}

func (b *Backend) CreateWindowSurface(d graphics.Display, c graphics.Config, win graphics.NativeWindow) graphics.Surface {
	cfg, ok := b.configs.get(uintptr(c))
	if !ok {
		return graphics.NoSurface
	}
	s := C.eglCreateWindowSurface(b.display(d), cfg, C.EGLNativeWindowType(win), nil)
	if s == nil {
		return graphics.NoSurface
	}
	return graphics.Surface(b.surfaces.put(s))
}

func (b *Backend) CreateContext(d graphics.Display, c graphics.Config, share graphics.RenderContext, attribs []int32) graphics.RenderContext {
	cfg, ok := b.configs.get(uintptr(c))
	if !ok {
		return graphics.NoContext
	}
	list := toEGLint(attribs)
	ctx := C.eglCreateContext(b.display(d), cfg, b.context(share), &list[0])
	if ctx == nil {
		return graphics.NoContext
	}
	return graphics.RenderContext(b.contexts.put(ctx))
}

func (b *Backend) MakeCurrent(d graphics.Display, draw, read graphics.Surface, ctx graphics.RenderContext) bool {
	return C.eglMakeCurrent(b.display(d), b.surface(draw), b.surface(read), b.context(ctx)) == C.EGL_TRUE
}

func (b *Backend) DestroyContext(d graphics.Display, ctx graphics.RenderContext) bool {
	ok := C.eglDestroyContext(b.display(d), b.context(ctx)) == C.EGL_TRUE
	b.contexts.drop(uintptr(ctx))
	return ok
}

func (b *Backend) DestroySurface(d graphics.Display, s graphics.Surface) bool {
	ok := C.eglDestroySurface(b.display(d), b.surface(s)) == C.EGL_TRUE
	b.surfaces.drop(uintptr(s))
	return ok
}

func (b *Backend) Terminate(d graphics.Display) bool {
	ok := C.eglTerminate(b.display(d)) == C.EGL_TRUE
	b.displays.drop(uintptr(d))
	// Configs belong to the display and die with it.
	b.configs = handles[C.EGLConfig]{}
	return ok
}

func (b *Backend) SwapBuffers(d graphics.Display, s graphics.Surface) bool {
	return C.eglSwapBuffers(b.display(d), b.surface(s)) == C.EGL_TRUE
}

func (b *Backend) GetError() int32 {
	return int32(C.eglGetError())
}

func toEGLint(attribs []int32) []C.EGLint {
	list := make([]C.EGLint, 0, len(attribs)+1)
	for _, a := range attribs {
		list = append(list, C.EGLint(a))
	}
	if len(list) == 0 || list[len(list)-1] != C.EGL_NONE {
		list = append(list, C.EGL_NONE)
	}
	return list
}

// Package graphicstest provides an in-memory graphics.Backend that counts
// object creation and destruction and can be told to fail at any step.
package graphicstest

import (
	"fmt"

	"github.com/richinsley/eglsweep/graphics"
)

// Step names a Backend call that can be made to fail.
type Step int

const (
	StepNone Step = iota
	StepGetDisplay
	StepBindAPI
	StepChooseConfig
	StepCreateSurface
	StepCreateContext
	StepMakeCurrent
	StepSwapBuffers
	StepUnbind
	StepDestroyContext
	StepDestroySurface
	StepTerminate
)

// Error codes reported by GetError after an injected failure.
const (
	CodeSuccess    int32 = 0x3000
	CodeBadDisplay int32 = 0x3008
	CodeBadMatch   int32 = 0x3009
	CodeBadAlloc   int32 = 0x3003
	CodeBadSurface int32 = 0x300D
)

// Backend is a fake graphics.Backend. The zero value is not usable; call New.
type Backend struct {
	// FailAt makes the named step report failure.
	FailAt Step
	// Configs is the number of configurations ChooseConfig offers.
	Configs int

	// Calls records every backend call in order.
	Calls []string

	Created   map[string]int
	Destroyed map[string]int

	// CurrentSet reports whether a surface and context are bound.
	CurrentSet bool
	// LastSurfaceAttribs and LastContextAttribs hold the attribute lists
	// most recently passed in.
	LastSurfaceAttribs []int32
	LastContextAttribs []int32
	// LastNativeDisplay is the native display passed to GetDisplay.
	LastNativeDisplay uintptr

	next    uintptr
	lastErr int32
	live    map[uintptr]string
}

func New() *Backend {
	return &Backend{
		Configs:   1,
		Created:   map[string]int{},
		Destroyed: map[string]int{},
		live:      map[uintptr]string{},
		next:      0x100,
		lastErr:   CodeSuccess,
	}
}

// Live returns the number of objects created and not yet destroyed.
func (b *Backend) Live() int {
	return len(b.live)
}

// LiveKinds returns the kinds of the objects still alive.
func (b *Backend) LiveKinds() []string {
	var kinds []string
	for _, k := range b.live {
		kinds = append(kinds, k)
	}
	return kinds
}

func (b *Backend) alloc(kind string) uintptr {
	b.next++
	b.live[b.next] = kind
	b.Created[kind]++
	return b.next
}

func (b *Backend) free(kind string, h uintptr) bool {
	if got, ok := b.live[h]; !ok || got != kind {
		return false
	}
	delete(b.live, h)
	b.Destroyed[kind]++
	return true
}

func (b *Backend) record(format string, args ...any) {
	b.Calls = append(b.Calls, fmt.Sprintf(format, args...))
}

func (b *Backend) fail(code int32) {
	b.lastErr = code
}

func (b *Backend) GetDisplay(native uintptr) graphics.Display {
	b.record("GetDisplay")
	b.LastNativeDisplay = native
	if b.FailAt == StepGetDisplay {
		b.fail(CodeBadDisplay)
		return graphics.NoDisplay
	}
	return graphics.Display(b.alloc("display"))
}

func (b *Backend) Initialize(d graphics.Display) (int, int, bool) {
	b.record("Initialize")
	return 1, 5, true
}

func (b *Backend) BindAPI(api graphics.API) bool {
	b.record("BindAPI(%s)", api)
	if b.FailAt == StepBindAPI {
		b.fail(CodeBadMatch)
		return false
	}
	return true
}

func (b *Backend) ChooseConfig(d graphics.Display, attribs []int32) []graphics.Config {
	b.record("ChooseConfig")
	b.LastSurfaceAttribs = append([]int32(nil), attribs...)
	if b.FailAt == StepChooseConfig {
		return nil
	}
	configs := make([]graphics.Config, b.Configs)
	for i := range configs {
		configs[i] = graphics.Config(i + 1)
	}
	return configs
}

func (b *Backend) CreateWindowSurface(d graphics.Display, c graphics.Config, win graphics.NativeWindow) graphics.Surface {
	b.record("CreateWindowSurface")
	if b.FailAt == StepCreateSurface {
		b.fail(CodeBadAlloc)
		return graphics.NoSurface
	}
	return graphics.Surface(b.alloc("surface"))
}

func (b *Backend) CreateContext(d graphics.Display, c graphics.Config, share graphics.RenderContext, attribs []int32) graphics.RenderContext {
	b.record("CreateContext")
	b.LastContextAttribs = append([]int32(nil), attribs...)
	if b.FailAt == StepCreateContext {
		b.fail(CodeBadMatch)
		return graphics.NoContext
	}
	return graphics.RenderContext(b.alloc("context"))
}

func (b *Backend) MakeCurrent(d graphics.Display, draw, read graphics.Surface, ctx graphics.RenderContext) bool {
	if ctx == graphics.NoContext {
		b.record("MakeCurrent(none)")
		if b.FailAt == StepUnbind {
			b.fail(CodeBadDisplay)
			return false
		}
		b.CurrentSet = false
		return true
	}
	b.record("MakeCurrent")
	if b.FailAt == StepMakeCurrent {
		b.fail(CodeBadMatch)
		return false
	}
	b.CurrentSet = true
	return true
}

func (b *Backend) DestroyContext(d graphics.Display, ctx graphics.RenderContext) bool {
	b.record("DestroyContext")
	if b.FailAt == StepDestroyContext {
		b.fail(CodeBadMatch)
		return false
	}
	return b.free("context", uintptr(ctx))
}

func (b *Backend) DestroySurface(d graphics.Display, s graphics.Surface) bool {
	b.record("DestroySurface")
	if b.FailAt == StepDestroySurface {
		b.fail(CodeBadSurface)
		return false
	}
	return b.free("surface", uintptr(s))
}

func (b *Backend) Terminate(d graphics.Display) bool {
	b.record("Terminate")
	if b.FailAt == StepTerminate {
		b.fail(CodeBadDisplay)
		return false
	}
	return b.free("display", uintptr(d))
}

func (b *Backend) SwapBuffers(d graphics.Display, s graphics.Surface) bool {
	b.record("SwapBuffers")
	if b.FailAt == StepSwapBuffers {
		b.fail(CodeBadSurface)
		return false
	}
	return true
}

// GetError returns and clears the last failure code, like eglGetError.
func (b *Backend) GetError() int32 {
	code := b.lastErr
	b.lastErr = CodeSuccess
	return code
}

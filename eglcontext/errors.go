package eglcontext

import (
	"errors"
	"fmt"
)

var (
	ErrNoDisplay             = errors.New("eglcontext: could not connect to display")
	ErrAPIUnavailable        = errors.New("eglcontext: could not set rendering API")
	ErrNoMatchingConfig      = errors.New("eglcontext: no matching framebuffer config")
	ErrSurfaceCreationFailed = errors.New("eglcontext: window surface creation failed")
	ErrContextCreationFailed = errors.New("eglcontext: context creation failed")
	ErrMakeCurrentFailed     = errors.New("eglcontext: could not make context current")

	ErrAlreadyAcquired = errors.New("eglcontext: context already acquired")
	ErrNotCurrent      = errors.New("eglcontext: context is not current")
	ErrPresentFailed   = errors.New("eglcontext: swap buffers failed")
)

// ContextError reports which acquire step failed and the backend error code
// observed at that point.
type ContextError struct {
	Kind error
	// Step is the state the manager had reached when the step failed.
	Step State
	Code int32
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("%v (after %s, error 0x%04x)", e.Kind, e.Step, e.Code)
}

func (e *ContextError) Unwrap() error {
	return e.Kind
}

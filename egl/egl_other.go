//go:build !linux || !cgo

package egl

import (
	"fmt"

	"github.com/richinsley/eglsweep/graphics"
)

func New() (graphics.Backend, error) {
	return nil, fmt.Errorf("egl rendering is not supported on this platform")
}

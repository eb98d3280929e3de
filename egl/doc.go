// Package egl implements graphics.Backend with libEGL. It is only available
// on Linux builds with cgo enabled; elsewhere New reports an error.
package egl

// Package glpresent copies canvas frames into the framebuffer bound to the
// current OpenGL context with a textured full-screen quad.
package glpresent

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/eglsweep/graphics"
	"github.com/richinsley/eglsweep/internal/logx"
	"github.com/richinsley/eglsweep/shader"
	"github.com/richinsley/eglsweep/translator"
)

var glInitOnce sync.Once
var glInitErr error

// Presenter owns the texture, quad and program used to blit a frame.
// All methods must run on the thread the context is current on.
type Presenter struct {
	framebuffer uint32
	texture     uint32
	vao         uint32
	vbo         uint32
	program     uint32
	textureLoc  int32
	resLoc      int32
	width       int32
	height      int32
}

// BoundFramebuffer returns the id of the framebuffer currently bound for
// drawing; 0 is the window's default framebuffer.
func BoundFramebuffer() uint32 {
	var buffer int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &buffer)
	return uint32(buffer)
}

// New loads the GL entry points on first use and builds the blit resources
// for the framebuffer bound right now.
func New(width, height int, api graphics.API) (*Presenter, error) {
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}

	p := &Presenter{
		framebuffer: BoundFramebuffer(),
		width:       int32(width),
		height:      int32(height),
	}
	logx.Logger().Info("binding canvas",
		slog.Int("framebuffer", int(p.framebuffer)),
		slog.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
		slog.Int("width", width),
		slog.Int("height", height))

	fragment, names, err := translator.Fragment(shader.GetBlitFragmentShader(), api)
	if err != nil {
		return nil, err
	}
	p.program, err = newProgram(shader.GenerateVertexShader(api == graphics.APIOpenGLES), fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create blit program: %w", err)
	}
	p.textureLoc = uniformLocation(p.program, names, shader.UniformTexture)
	p.resLoc = uniformLocation(p.program, names, shader.UniformResolution)

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(shader.QuadVertices)*4, gl.Ptr(shader.QuadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &p.texture)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, p.width, p.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := glError("create presenter"); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// Present uploads pixels and draws them over the whole framebuffer.
func (p *Presenter) Present(pixels []byte, width, height int) error {
	if int32(width) != p.width || int32(height) != p.height {
		return fmt.Errorf("frame is %dx%d, presenter is %dx%d", width, height, p.width, p.height)
	}
	if len(pixels) < width*height*4 {
		return fmt.Errorf("short frame: %d bytes", len(pixels))
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, p.framebuffer)
	gl.Viewport(0, 0, p.width, p.height)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, p.width, p.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	gl.UseProgram(p.program)
	gl.Uniform1i(p.textureLoc, 0)
	gl.Uniform2f(p.resLoc, float32(p.width), float32(p.height))
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return glError("present")
}

// Close deletes the GL objects. The context must still be current.
func (p *Presenter) Close() error {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
	if p.texture != 0 {
		gl.DeleteTextures(1, &p.texture)
		p.texture = 0
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
		p.vbo = 0
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	return nil
}

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: gl error 0x%04x", op, code)
	}
	return nil
}

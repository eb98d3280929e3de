package shader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVertexShader(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateVertexShader(false), "#version 410 core"))
	assert.True(t, strings.HasPrefix(GenerateVertexShader(true), "#version 300 es"))
}

func TestBlitFragmentShaderDeclaresUniforms(t *testing.T) {
	src := GetBlitFragmentShader()
	assert.Contains(t, src, "uniform sampler2D "+UniformTexture)
	assert.Contains(t, src, "uniform vec2 "+UniformResolution)
}

func TestQuadVerticesCoverClipSpace(t *testing.T) {
	assert.Len(t, QuadVertices, 12)
	for _, v := range QuadVertices {
		assert.InDelta(t, 1.0, v*v, 1e-6)
	}
}

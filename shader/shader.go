package shader

// ────────────────────────────────── Vertex ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_vert;
void main() {
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

const vertexShaderSourceGLES = `#version 300 es
layout (location = 0) in vec2 in_vert;
void main() {
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

// ───────────────────────────────── Fragment ─────────────────────────────────

// The blit fragment shader is written once as WebGL2 and translated for the
// bound API. It samples by gl_FragCoord so no varying has to survive the
// translator's name mangling. Canvas rows are stored top first, hence the
// flip.
const blitFragmentShaderSourceWebGL2 = `#version 300 es
precision highp float;
uniform sampler2D u_texture;
uniform vec2 u_resolution;
out vec4 fragColor;
void main() {
    vec2 uv = gl_FragCoord.xy / u_resolution;
    fragColor = texture(u_texture, vec2(uv.x, 1.0 - uv.y));
}
`

// Uniform names declared by the blit fragment shader.
const (
	UniformTexture    = "u_texture"
	UniformResolution = "u_resolution"
)

func GenerateVertexShader(isGLES bool) string {
	if isGLES {
		return vertexShaderSourceGLES
	}
	return vertexShaderSourceGL
}

// GetBlitFragmentShader returns the untranslated WebGL2 blit source.
func GetBlitFragmentShader() string {
	return blitFragmentShaderSourceWebGL2
}

// QuadVertices are two triangles covering clip space.
var QuadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

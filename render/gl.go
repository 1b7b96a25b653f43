package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const solidVertex = `#version 410 core
layout (location = 0) in vec2 aPos;
uniform mat4 projection;
void main() {
	gl_Position = projection * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const solidFragment = `#version 410 core
out vec4 FragColor;
uniform vec4 color;
void main() {
	FragColor = color;
}
` + "\x00"

// Glyph vertices carry the position in xy and the atlas coordinate in zw
const glyphVertex = `#version 410 core
layout (location = 0) in vec4 vertex;
out vec2 TexCoords;
uniform mat4 projection;
void main() {
	gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
	TexCoords = vertex.zw;
}
` + "\x00"

const glyphFragment = `#version 410 core
in vec2 TexCoords;
out vec4 FragColor;
uniform sampler2D text;
uniform vec4 color;
void main() {
	FragColor = vec4(color.rgb, color.a * texture(text, TexCoords).r);
}
` + "\x00"

// pipeline is a shader program with a six-vertex streaming buffer
type pipeline struct {
	program  uint32
	vao      uint32
	vbo      uint32
	stride   int // floats per vertex
	color    int32
	proj     int32
	vertices []float32
}

func newPipeline(vertexSrc, fragmentSrc string, stride int) (*pipeline, error) {
	prog, err := linkProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	p := &pipeline{
		program:  prog,
		stride:   stride,
		color:    gl.GetUniformLocation(prog, gl.Str("color\x00")),
		proj:     gl.GetUniformLocation(prog, gl.Str("projection\x00")),
		vertices: make([]float32, 0, 6*stride),
	}
	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*stride*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, int32(stride), gl.FLOAT, false, int32(stride*4), 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return p, nil
}

// draw uploads the pending quad and draws it as two triangles
func (p *pipeline) draw(clr [4]float32, proj *[16]float32) {
	gl.UseProgram(p.program)
	gl.UniformMatrix4fv(p.proj, 1, false, &proj[0])
	gl.Uniform4fv(p.color, 1, &clr[0])
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(p.vertices)*4, gl.Ptr(p.vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(p.vertices)/p.stride))
	gl.BindVertexArray(0)
	p.vertices = p.vertices[:0]
}

func (p *pipeline) destroy() {
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteProgram(p.program)
}

// quad appends two triangles covering (x0,y0)-(x1,y1). extra holds the
// per-corner attributes beyond position, in the same corner order.
func quad(dst []float32, x0, y0, x1, y1 float32, extra [4][2]float32, withExtra bool) []float32 {
	corners := [4][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		dst = append(dst, corners[i][0], corners[i][1])
		if withExtra {
			dst = append(dst, extra[i][0], extra[i][1])
		}
	}
	return dst
}

// uploadAtlas creates a single channel texture from the atlas
func uploadAtlas(a *glyphAtlas) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(a.size), int32(a.size), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.alpha))
	for _, p := range [][2]uint32{
		{gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE},
		{gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE},
		{gl.TEXTURE_MIN_FILTER, gl.LINEAR},
		{gl.TEXTURE_MAG_FILTER, gl.LINEAR},
	} {
		gl.TexParameteri(gl.TEXTURE_2D, p[0], int32(p[1]))
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// orthoMatrix creates an orthographic projection matrix
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		msg := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(prog, n, nil, gl.Str(msg))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(msg, "\x00"))
	}
	return prog, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		msg := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(msg, "\x00"))
	}
	return shader, nil
}

// Package opengl provides an OpenGL 4.1 core-profile render backend for
// guibridge.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/sagacity/guibridge"
)

// Renderer implements guibridge.Renderer on an OpenGL 4.1 context. It owns a
// shader program, one vertex/index buffer pair and the uploaded font atlas
// texture. The GL context must be current on the calling thread for every
// method.
type Renderer struct {
	shader    uint32
	vao, vbo  uint32
	ebo       uint32
	fontTex   uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	alphaLoc  int32

	width  int
	height int
	scale  float32

	clearColor [4]float32
	present    func()

	destroyed bool
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// The fragment shader has two texture modes. The font atlas is a single
// channel texture whose R channel is coverage, tinted by the vertex color.
// Every other texture is sampled as full RGBA modulated by the vertex color.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;
uniform bool alphaTexture;

void main() {
    if (useTexture) {
        vec4 texColor = texture(tex, TexCoord);
        if (alphaTexture) {
            FragColor = vec4(Color.rgb, Color.a * texColor.r);
        } else {
            FragColor = texColor * Color;
        }
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer builds the GL pipeline and uploads the font atlas. width and
// height are the framebuffer size in physical pixels; scale maps logical GUI
// coordinates onto them. present is invoked at the end of every successful
// Render call, typically the window's buffer swap.
//
// A non-nil error is a *guibridge.ContextCreationError.
func NewRenderer(atlas *guibridge.FontAtlas, width, height int, scale float32, clearColor [4]float32, present func()) (*Renderer, error) {
	if scale <= 0 {
		scale = 1
	}
	if present == nil {
		present = func() {}
	}
	r := &Renderer{
		width:      width,
		height:     height,
		scale:      scale,
		clearColor: clearColor,
		present:    present,
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, &guibridge.ContextCreationError{Cause: err}
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.alphaLoc = gl.GetUniformLocation(r.shader, gl.Str("alphaTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(guibridge.Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(guibridge.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(guibridge.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.fontTex = uploadAtlas(atlas)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		r.Destroy()
		return nil, &guibridge.ContextCreationError{
			Cause: fmt.Errorf("gl setup error 0x%04x", glErr),
		}
	}

	return r, nil
}

// FontTexture returns the GL texture ID of the uploaded font atlas.
func (r *Renderer) FontTexture() uint32 {
	return r.fontTex
}

// Resize updates the framebuffer size and scale factor. Calling it with the
// current values is a no-op.
func (r *Renderer) Resize(width, height int, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	r.width = width
	r.height = height
	r.scale = scale
}

// Render clears the framebuffer, draws the list and presents. Clip rectangles
// in the list are logical pixels and are mapped to physical scissor boxes
// here. A non-nil error is a *guibridge.RenderError; the renderer is not
// usable afterwards and the caller is expected to destroy it.
func (r *Renderer) Render(dl *guibridge.DrawList) error {
	// Save GL state so embedding hosts keep their own pipeline intact.
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var lastScissorBox [4]int32

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)

	// The projection spans logical pixels so the vertex data needs no
	// per-frame rescaling.
	proj := orthoMatrix(0, float32(r.width)/r.scale, float32(r.height)/r.scale, 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	if len(dl.VtxBuffer) > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(guibridge.Vertex{})),
			gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
			gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

		if glErr := gl.GetError(); glErr != gl.NO_ERROR {
			return &guibridge.RenderError{
				Stage: "upload",
				Cause: fmt.Errorf("gl error 0x%04x", glErr),
			}
		}

		for _, cmd := range dl.CmdBuffer {
			if cmd.ElemCount == 0 {
				continue
			}

			clipX, clipY, clipW, clipH, ok := scissorBox(cmd.ClipRect, r.scale, r.width, r.height)
			if !ok {
				continue
			}
			gl.Scissor(clipX, clipY, clipW, clipH)

			if cmd.TextureID != 0 {
				gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
				gl.Uniform1i(r.useTexLoc, 1)
				if cmd.TextureID == r.fontTex {
					gl.Uniform1i(r.alphaLoc, 1)
				} else {
					gl.Uniform1i(r.alphaLoc, 0)
				}
			} else {
				gl.Uniform1i(r.useTexLoc, 0)
				gl.Uniform1i(r.alphaLoc, 0)
			}

			gl.DrawElementsBaseVertexWithOffset(
				gl.TRIANGLES,
				int32(cmd.ElemCount),
				gl.UNSIGNED_SHORT,
				uintptr(cmd.IndexOffset)*2,
				int32(cmd.VertexOffset),
			)
		}

		if glErr := gl.GetError(); glErr != gl.NO_ERROR {
			return &guibridge.RenderError{
				Stage: "draw",
				Cause: fmt.Errorf("gl error 0x%04x", glErr),
			}
		}
	}

	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))

	if blendEnabled {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if cullEnabled {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	if scissorEnabled {
		gl.Enable(gl.SCISSOR_TEST)
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])

	gl.BindVertexArray(0)

	r.present()
	return nil
}

// Destroy releases all GL resources. It is idempotent.
func (r *Renderer) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true

	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// scissorBox converts a logical clip rectangle into a physical scissor box
// with a flipped Y axis. The rectangle is clamped to the framebuffer in
// float space first, so arbitrarily large clip values cannot overflow the
// int32 conversion. ok is false for a fully clipped-away box.
func scissorBox(clip [4]float32, scale float32, width, height int) (x, y, w, h int32, ok bool) {
	x1 := clip[0] * scale
	y1 := clip[1] * scale
	x2 := clip[2] * scale
	y2 := clip[3] * scale

	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 > float32(width) {
		x2 = float32(width)
	}
	if y2 > float32(height) {
		y2 = float32(height)
	}
	if x2 <= x1 || y2 <= y1 {
		return 0, 0, 0, 0, false
	}

	return int32(x1), int32(float32(height) - y2), int32(x2 - x1), int32(y2 - y1), true
}

// uploadAtlas uploads the rasterized atlas as a single channel texture.
func uploadAtlas(atlas *guibridge.FontAtlas) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(atlas.AtlasW), int32(atlas.AtlasH),
		0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pixels))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(log))
	}

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(log))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

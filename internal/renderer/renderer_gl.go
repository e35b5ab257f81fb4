package renderer

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/braticpetar/gloom/pkg/gfx"
)

// defaultClearColor is the deep blue background the demo clears to.
var defaultClearColor = mgl32.Vec4{0.03, 0.05, 0.27, 1}

// Config describes the shader pair and clear color of the pipeline. A
// zero-value ClearColor falls back to defaultClearColor.
type Config struct {
	VertexSource   string
	FragmentSource string
	ClearColor     mgl32.Vec4
}

type renderer struct {
	conf        Config
	mesh        gfx.Mesh
	initialized bool

	program    uint32
	vao        uint32
	vbo        uint32
	ibo        uint32
	indexCount int32
}

func newRenderer(_ *gfx.Window, conf Config, mesh gfx.Mesh) *renderer {
	if conf.ClearColor == (mgl32.Vec4{}) {
		conf.ClearColor = defaultClearColor
	}
	return &renderer{
		conf: conf,
		mesh: mesh,
	}
}

func (r *renderer) Render(w *gfx.Window) {
	r.ensureInit()
	clearErrors()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	width, height := w.DrawableSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	clear := r.conf.ClearColor
	gl.ClearColor(clear.X(), clear.Y(), clear.Z(), clear.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	// draw errors are reported but never abort the loop
	if err := checkError("draw"); err != nil {
		log.Println(err)
	}
}

func (r *renderer) Close() {
	if !r.initialized {
		return
	}
	if r.ibo != 0 {
		gl.DeleteBuffers(1, &r.ibo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	r.initialized = false
}

func (r *renderer) ensureInit() {
	if r.initialized {
		return
	}
	if err := gl.Init(); err != nil {
		panic(fmt.Sprintf("gl.Init error: %v", err))
	}
	logVersionInfo()

	r.program = buildProgram(r.conf.VertexSource, r.conf.FragmentSource)
	r.uploadMesh()

	r.initialized = true
}

func logVersionInfo() {
	log.Println("Vendor:", gl.GoStr(gl.GetString(gl.VENDOR)))
	log.Println("Renderer:", gl.GoStr(gl.GetString(gl.RENDERER)))
	log.Println("Version:", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Println("Shading Language:", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
}

// uploadMesh stores the interleaved vertex stream and the index buffer on
// the GPU and records the attribute layout in one vertex array object.
func (r *renderer) uploadMesh() {
	data := r.mesh.Interleave()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(r.mesh.Indices)*4, gl.Ptr(r.mesh.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, gfx.VertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, gfx.VertexStride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	gl.DisableVertexAttribArray(0)
	gl.DisableVertexAttribArray(1)

	r.indexCount = int32(len(r.mesh.Indices))
}

func buildProgram(vertexSource, fragmentSource string) uint32 {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		panic(err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		panic(err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		panic(fmt.Errorf("link error: %s", infoLog))
	}
	gl.ValidateProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile error: %s", infoLog)
	}
	return shader, nil
}

package viewer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/gizmo/pkg/math"
)

const lineVertexShader = `
	#version 410 core

	layout (location = 0) in vec3 aPos;
	layout (location = 1) in vec3 aColor;

	uniform mat4 uMVP;

	out vec3 vertexColor;

	void main() {
		gl_Position = uMVP * vec4(aPos, 1.0);
		vertexColor = aColor;
	}
`

const lineFragmentShader = `
	#version 410 core

	in vec3 vertexColor;
	out vec4 FragColor;

	void main() {
		FragColor = vec4(vertexColor, 1.0);
	}
`

// LineRenderer draws line-list vertex batches with a single shader.
type LineRenderer struct {
	program uint32
	vao     uint32
	vbo     uint32
	uMVP    int32

	// capacity is the VBO size in vertices; grown on demand.
	capacity int

	log *zap.Logger
}

// NewLineRenderer initializes OpenGL and builds the line pipeline.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func NewLineRenderer(log *zap.Logger) (*LineRenderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &LineRenderer{log: log}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	log.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background

	program, err := CompileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create line shader: %w", err)
	}
	r.program = program
	r.uMVP = MustGetUniform(program, "uMVP")

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(unsafe.Sizeof(LineVertex{}))

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return r, nil
}

// Close cleans up renderer resources.
func (r *LineRenderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *LineRenderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *LineRenderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw uploads the vertex batch and draws it as GL_LINES under mvp.
func (r *LineRenderer) Draw(vertices []LineVertex, mvp math.Mat4) {
	if len(vertices) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uMVP, 1, false, mvp.Ptr())

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	vertexSize := int(unsafe.Sizeof(LineVertex{}))
	if len(vertices) > r.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
		r.capacity = len(vertices)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]))
	}

	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

package gfx

// GL enums used by this package.
const (
	False   = 0
	True    = 1
	NoError = 0

	VertexShader   = 0x8B31
	FragmentShader = 0x8B30
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	InfoLogLength  = 0x8B84

	ArrayBuffer    = 0x8892
	StaticDraw     = 0x88E4
	Float          = 0x1406
	Triangles      = 0x0004
	ColorBufferBit = 0x00004000
)

// ShaderAPI is the subset of driver entry points needed to build and bind a
// program. All methods act on the context current on the calling thread.
type ShaderAPI interface {
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	// GetShaderInfoLog returns at most bufSize-1 bytes of the log.
	GetShaderInfoLog(shader uint32, bufSize int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32, bufSize int32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
}

// DrawAPI covers vertex upload and the per-frame draw.
type DrawAPI interface {
	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	DeleteBuffer(buffer uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first, count int32)
	// GetError returns and clears the oldest pending error flag.
	GetError() uint32
}

// GL is implemented by the drivers in internal/renderer.
type GL interface {
	ShaderAPI
	DrawAPI
}

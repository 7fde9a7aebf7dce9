package renderer

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/kjkrol/gotri/pkg/gfx"
	"github.com/kjkrol/gotri/pkg/glproc"
)

const glVersion = 0x1F02

// procDriver calls straight through the addresses in a glproc.Table.
type procDriver struct {
	createShader      func(xtype uint32) uint32
	shaderSource      func(shader uint32, count int32, str **byte, length *int32)
	compileShader     func(shader uint32)
	getShaderiv       func(shader, pname uint32, params *int32)
	getShaderInfoLog  func(shader uint32, bufSize int32, length *int32, infoLog *byte)
	deleteShader      func(shader uint32)
	createProgram     func() uint32
	attachShader      func(program, shader uint32)
	linkProgram       func(program uint32)
	getProgramiv      func(program, pname uint32, params *int32)
	getProgramInfoLog func(program uint32, bufSize int32, length *int32, infoLog *byte)
	useProgram        func(program uint32)
	deleteProgram     func(program uint32)

	genVertexArrays         func(n int32, arrays *uint32)
	bindVertexArray         func(array uint32)
	deleteVertexArrays      func(n int32, arrays *uint32)
	genBuffers              func(n int32, buffers *uint32)
	bindBuffer              func(target, buffer uint32)
	bufferData              func(target uint32, size int, data unsafe.Pointer, usage uint32)
	deleteBuffers           func(n int32, buffers *uint32)
	vertexAttribPointer     func(index uint32, size int32, xtype uint32, normalized bool, stride int32, pointer uintptr)
	enableVertexAttribArray func(index uint32)

	clearColor func(r, g, b, a float32)
	clear      func(mask uint32)
	drawArrays func(mode uint32, first, count int32)
	getError   func() uint32
	getString  func(name uint32) string
}

type binding struct {
	name string
	fn   any
}

func (d *procDriver) bindings() []binding {
	return []binding{
		{"glCreateShader", &d.createShader},
		{"glShaderSource", &d.shaderSource},
		{"glCompileShader", &d.compileShader},
		{"glGetShaderiv", &d.getShaderiv},
		{"glGetShaderInfoLog", &d.getShaderInfoLog},
		{"glDeleteShader", &d.deleteShader},
		{"glCreateProgram", &d.createProgram},
		{"glAttachShader", &d.attachShader},
		{"glLinkProgram", &d.linkProgram},
		{"glGetProgramiv", &d.getProgramiv},
		{"glGetProgramInfoLog", &d.getProgramInfoLog},
		{"glUseProgram", &d.useProgram},
		{"glDeleteProgram", &d.deleteProgram},
		{"glGenVertexArrays", &d.genVertexArrays},
		{"glBindVertexArray", &d.bindVertexArray},
		{"glDeleteVertexArrays", &d.deleteVertexArrays},
		{"glGenBuffers", &d.genBuffers},
		{"glBindBuffer", &d.bindBuffer},
		{"glBufferData", &d.bufferData},
		{"glDeleteBuffers", &d.deleteBuffers},
		{"glVertexAttribPointer", &d.vertexAttribPointer},
		{"glEnableVertexAttribArray", &d.enableVertexAttribArray},
		{"glClear", &d.clear},
		{"glClearColor", &d.clearColor},
		{"glDrawArrays", &d.drawArrays},
		{"glGetError", &d.getError},
		{"glGetString", &d.getString},
	}
}

// NewProcDriver binds every entry point of table to a Go function. Nothing
// is bound unless the table holds all of them.
func NewProcDriver(table *glproc.Table) (*ProcDriver, error) {
	d := &procDriver{}
	bindings := d.bindings()

	var missing []string
	for _, b := range bindings {
		if _, ok := table.Addr(b.name); !ok {
			missing = append(missing, b.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("renderer: bind driver: %w", &glproc.UnresolvedError{Names: missing})
	}

	for _, b := range bindings {
		purego.RegisterFunc(b.fn, table.MustAddr(b.name))
	}
	return &ProcDriver{d: d}, nil
}

// ProcDriver implements gfx.GL on top of manually resolved entry points.
type ProcDriver struct {
	d *procDriver
}

var _ gfx.GL = (*ProcDriver)(nil)

func (p *ProcDriver) CreateShader(xtype uint32) uint32 { return p.d.createShader(xtype) }

func (p *ProcDriver) ShaderSource(shader uint32, source string) {
	src := append([]byte(source), 0)
	var pinner runtime.Pinner
	pinner.Pin(&src[0])
	defer pinner.Unpin()

	strs := [1]*byte{&src[0]}
	length := int32(len(source))
	p.d.shaderSource(shader, 1, &strs[0], &length)
}

func (p *ProcDriver) CompileShader(shader uint32) { p.d.compileShader(shader) }

func (p *ProcDriver) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	p.d.getShaderiv(shader, pname, &v)
	return v
}

func (p *ProcDriver) GetShaderInfoLog(shader uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]byte, bufSize)
	var n int32
	p.d.getShaderInfoLog(shader, bufSize, &n, &buf[0])
	return string(buf[:gfx.ClampLogLength(n, bufSize)])
}

func (p *ProcDriver) DeleteShader(shader uint32)           { p.d.deleteShader(shader) }
func (p *ProcDriver) CreateProgram() uint32                { return p.d.createProgram() }
func (p *ProcDriver) AttachShader(program, shader uint32)  { p.d.attachShader(program, shader) }
func (p *ProcDriver) LinkProgram(program uint32)           { p.d.linkProgram(program) }
func (p *ProcDriver) UseProgram(program uint32)            { p.d.useProgram(program) }
func (p *ProcDriver) DeleteProgram(program uint32)         { p.d.deleteProgram(program) }
func (p *ProcDriver) BindVertexArray(array uint32)         { p.d.bindVertexArray(array) }
func (p *ProcDriver) BindBuffer(target, buffer uint32)     { p.d.bindBuffer(target, buffer) }
func (p *ProcDriver) EnableVertexAttribArray(index uint32) { p.d.enableVertexAttribArray(index) }
func (p *ProcDriver) Clear(mask uint32)                    { p.d.clear(mask) }

func (p *ProcDriver) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	p.d.getProgramiv(program, pname, &v)
	return v
}

func (p *ProcDriver) GetProgramInfoLog(program uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]byte, bufSize)
	var n int32
	p.d.getProgramInfoLog(program, bufSize, &n, &buf[0])
	return string(buf[:gfx.ClampLogLength(n, bufSize)])
}

func (p *ProcDriver) GenVertexArray() uint32 {
	var array uint32
	p.d.genVertexArrays(1, &array)
	return array
}

func (p *ProcDriver) DeleteVertexArray(array uint32) {
	p.d.deleteVertexArrays(1, &array)
}

func (p *ProcDriver) GenBuffer() uint32 {
	var buffer uint32
	p.d.genBuffers(1, &buffer)
	return buffer
}

func (p *ProcDriver) DeleteBuffer(buffer uint32) {
	p.d.deleteBuffers(1, &buffer)
}

func (p *ProcDriver) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		p.d.bufferData(target, 0, nil, usage)
		return
	}
	p.d.bufferData(target, len(data)*4, unsafe.Pointer(&data[0]), usage)
}

func (p *ProcDriver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	p.d.vertexAttribPointer(index, size, xtype, normalized, stride, offset)
}

func (p *ProcDriver) ClearColor(r, g, b, a float32) { p.d.clearColor(r, g, b, a) }

func (p *ProcDriver) DrawArrays(mode uint32, first, count int32) {
	p.d.drawArrays(mode, first, count)
}

func (p *ProcDriver) GetError() uint32 { return p.d.getError() }

// Version returns GL_VERSION of the current context.
func (p *ProcDriver) Version() string { return p.d.getString(glVersion) }

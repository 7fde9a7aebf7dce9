package gfx_test

import (
	"fmt"
	"strings"

	"github.com/kjkrol/gotri/pkg/gfx"
)

// fakeShader compiles when its source contains "void main()" and carries
// no "#error" directive.
type fakeShader struct {
	xtype    uint32
	source   string
	compiled bool
	log      string
	deleted  int
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	log      string
	deleted  int
}

type attribPointer struct {
	index  uint32
	size   int32
	stride int32
	offset uintptr
}

// fakeGL records calls against an in-memory object model.
type fakeGL struct {
	nextID   uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	// linkLog forces link failure with this log when non-empty.
	linkLog string
	// emptyLogs makes the driver report failures without any log text.
	emptyLogs bool
	// noObjects makes Create* return 0.
	noObjects bool
	// errorCode is reported once by GetError, then cleared.
	errorCode uint32

	calls        []string
	deletedShads []uint32
	used         []uint32

	vao, vbo    uint32
	boundVAO    uint32
	boundBuffer uint32
	uploaded    []float32
	attribs     []attribPointer
	enabled     []uint32
	draws       int
	drawnWith   uint32
	clears      int
	current     uint32
	deletedVAOs []uint32
	deletedVBOs []uint32
}

var _ gfx.GL = (*fakeGL)(nil)

func newFakeGL() *fakeGL {
	return &fakeGL{
		nextID:   1,
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
	}
}

func (f *fakeGL) id() uint32 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeGL) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) CreateShader(xtype uint32) uint32 {
	f.record("CreateShader")
	if f.noObjects {
		return 0
	}
	id := f.id()
	f.shaders[id] = &fakeShader{xtype: xtype}
	return id
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {
	f.record("ShaderSource")
	f.shaders[shader].source = source
}

func (f *fakeGL) CompileShader(shader uint32) {
	f.record("CompileShader")
	s := f.shaders[shader]
	s.compiled = strings.Contains(s.source, "void main()") && !strings.Contains(s.source, "#error")
	if !s.compiled && !f.emptyLogs {
		s.log = "0:3(12): error: syntax error, unexpected NEW_IDENTIFIER, expecting ',' or ';'\n"
	}
}

func (f *fakeGL) GetShaderiv(shader uint32, pname uint32) int32 {
	s := f.shaders[shader]
	switch pname {
	case gfx.CompileStatus:
		if s.compiled {
			return gfx.True
		}
		return gfx.False
	case gfx.InfoLogLength:
		if s.log == "" {
			return 0
		}
		return int32(len(s.log) + 1)
	}
	return 0
}

func (f *fakeGL) GetShaderInfoLog(shader uint32, bufSize int32) string {
	return truncate(f.shaders[shader].log, bufSize)
}

func (f *fakeGL) DeleteShader(shader uint32) {
	f.record("DeleteShader")
	f.deletedShads = append(f.deletedShads, shader)
	f.shaders[shader].deleted++
}

func (f *fakeGL) CreateProgram() uint32 {
	f.record("CreateProgram")
	if f.noObjects {
		return 0
	}
	id := f.id()
	f.programs[id] = &fakeProgram{}
	return id
}

func (f *fakeGL) AttachShader(program, shader uint32) {
	f.record("AttachShader")
	p := f.programs[program]
	p.attached = append(p.attached, shader)
}

func (f *fakeGL) LinkProgram(program uint32) {
	f.record("LinkProgram")
	p := f.programs[program]
	if f.linkLog != "" {
		p.log = f.linkLog
		return
	}
	var haveVertex, haveFragment bool
	for _, id := range p.attached {
		s := f.shaders[id]
		if !s.compiled {
			if !f.emptyLogs {
				p.log = "error: linking with uncompiled/unspecialized shader"
			}
			return
		}
		haveVertex = haveVertex || s.xtype == gfx.VertexShader
		haveFragment = haveFragment || s.xtype == gfx.FragmentShader
	}
	p.linked = haveVertex && haveFragment
	if !p.linked && !f.emptyLogs {
		p.log = "error: program lacks a stage"
	}
}

func (f *fakeGL) GetProgramiv(program uint32, pname uint32) int32 {
	p := f.programs[program]
	switch pname {
	case gfx.LinkStatus:
		if p.linked {
			return gfx.True
		}
		return gfx.False
	case gfx.InfoLogLength:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	}
	return 0
}

func (f *fakeGL) GetProgramInfoLog(program uint32, bufSize int32) string {
	return truncate(f.programs[program].log, bufSize)
}

func (f *fakeGL) UseProgram(program uint32) {
	f.record("UseProgram")
	f.used = append(f.used, program)
	f.current = program
}

func (f *fakeGL) DeleteProgram(program uint32) {
	f.record("DeleteProgram")
	f.programs[program].deleted++
}

func (f *fakeGL) GenVertexArray() uint32 {
	f.vao = f.id()
	return f.vao
}

func (f *fakeGL) BindVertexArray(array uint32) {
	f.record("BindVertexArray %d", array)
	f.boundVAO = array
}

func (f *fakeGL) DeleteVertexArray(array uint32) {
	f.deletedVAOs = append(f.deletedVAOs, array)
}

func (f *fakeGL) GenBuffer() uint32 {
	f.vbo = f.id()
	return f.vbo
}

func (f *fakeGL) BindBuffer(target, buffer uint32) {
	f.boundBuffer = buffer
}

func (f *fakeGL) BufferData(target uint32, data []float32, usage uint32) {
	f.uploaded = append([]float32(nil), data...)
}

func (f *fakeGL) DeleteBuffer(buffer uint32) {
	f.deletedVBOs = append(f.deletedVBOs, buffer)
}

func (f *fakeGL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	f.attribs = append(f.attribs, attribPointer{index: index, size: size, stride: stride, offset: offset})
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) {
	f.enabled = append(f.enabled, index)
}

func (f *fakeGL) ClearColor(r, g, b, a float32) {
	f.record("ClearColor")
}

func (f *fakeGL) Clear(mask uint32) {
	f.record("Clear")
	f.clears++
}

func (f *fakeGL) DrawArrays(mode uint32, first, count int32) {
	f.record("DrawArrays %d", count)
	f.draws++
	f.drawnWith = f.current
}

func (f *fakeGL) GetError() uint32 {
	f.record("GetError")
	code := f.errorCode
	f.errorCode = gfx.NoError
	return code
}

func (f *fakeGL) countCalls(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func truncate(log string, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	if int32(len(log)) > bufSize-1 {
		return log[:bufSize-1]
	}
	return log
}

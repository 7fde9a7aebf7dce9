//go:build cgo

// Package loader adapts go-gl's generated GL 3.3 core bindings to gfx.GL.
package loader

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/gotri/pkg/gfx"
)

// Driver implements gfx.GL with go-gl's generated loader.
type Driver struct{}

var _ gfx.GL = Driver{}

// NewDriver loads every GL 3.3 core entry point through getProcAddr,
// typically glfw.GetProcAddress.
func NewDriver(getProcAddr func(name string) unsafe.Pointer) (Driver, error) {
	if err := gl.InitWithProcAddrFunc(getProcAddr); err != nil {
		return Driver{}, fmt.Errorf("loader: gl init: %w", err)
	}
	return Driver{}, nil
}

func (Driver) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (Driver) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Driver) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (Driver) GetShaderInfoLog(shader uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]uint8, bufSize)
	var n int32
	gl.GetShaderInfoLog(shader, bufSize, &n, &buf[0])
	return string(buf[:gfx.ClampLogLength(n, bufSize)])
}

func (Driver) DeleteShader(shader uint32)          { gl.DeleteShader(shader) }
func (Driver) CreateProgram() uint32               { return gl.CreateProgram() }
func (Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (Driver) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (Driver) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (Driver) GetProgramInfoLog(program uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]uint8, bufSize)
	var n int32
	gl.GetProgramInfoLog(program, bufSize, &n, &buf[0])
	return string(buf[:gfx.ClampLogLength(n, bufSize)])
}

func (Driver) UseProgram(program uint32)    { gl.UseProgram(program) }
func (Driver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Driver) GenVertexArray() uint32 {
	var array uint32
	gl.GenVertexArrays(1, &array)
	return array
}

func (Driver) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (Driver) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (Driver) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (Driver) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (Driver) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (Driver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(int(offset)))
}

func (Driver) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Driver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (Driver) Clear(mask uint32)             { gl.Clear(mask) }

func (Driver) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (Driver) GetError() uint32 { return gl.GetError() }

func (Driver) Version() string { return gl.GoStr(gl.GetString(gl.VERSION)) }

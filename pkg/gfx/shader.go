package gfx

import "strings"

// DefaultMaxLogLength bounds the diagnostic log fetched from the driver.
// Longer logs are truncated.
const DefaultMaxLogLength = 512

// ShaderUnit is one compiled stage. It only lives until Link releases it.
type ShaderUnit struct {
	Stage  Stage
	Source string
	Handle uint32
	OK     bool
	// Log is empty when OK is true.
	Log string

	released bool
}

// Released reports whether Link already deleted the stage object.
func (u *ShaderUnit) Released() bool {
	return u != nil && u.released
}

// Builder compiles stages and links them into a Pipeline.
type Builder struct {
	gl           ShaderAPI
	MaxLogLength int32
}

func NewBuilder(gl ShaderAPI) *Builder {
	return &Builder{gl: gl, MaxLogLength: DefaultMaxLogLength}
}

// CompileStage creates a shader object of the given stage, submits source
// and compiles it. The unit is returned whether or not compilation
// succeeded; on failure Log holds the driver's diagnostics.
func (b *Builder) CompileStage(source string, stage Stage) *ShaderUnit {
	unit := &ShaderUnit{Stage: stage, Source: source}

	unit.Handle = b.gl.CreateShader(stage.GLEnum())
	if unit.Handle == 0 {
		unit.Log = "glCreateShader returned no object"
		Logger().Warn("shader compile failed", "stage", stage, "log", unit.Log)
		return unit
	}
	b.gl.ShaderSource(unit.Handle, source)
	b.gl.CompileShader(unit.Handle)

	if b.gl.GetShaderiv(unit.Handle, CompileStatus) != False {
		unit.OK = true
		Logger().Debug("shader compiled", "stage", stage, "handle", unit.Handle)
		return unit
	}

	length := b.gl.GetShaderiv(unit.Handle, InfoLogLength)
	unit.Log = cleanLog(b.gl.GetShaderInfoLog(unit.Handle, b.logBufSize(length)))
	if unit.Log == "" {
		unit.Log = "compile failed without diagnostics"
	}
	Logger().Warn("shader compile failed", "stage", stage, "log", unit.Log)
	return unit
}

// release deletes the stage object once.
func (b *Builder) release(unit *ShaderUnit) {
	if unit == nil || unit.released || unit.Handle == 0 {
		return
	}
	b.gl.DeleteShader(unit.Handle)
	unit.released = true
}

func (b *Builder) logBufSize(reported int32) int32 {
	limit := b.MaxLogLength
	if limit <= 0 {
		limit = DefaultMaxLogLength
	}
	if reported <= 0 || reported > limit {
		return limit
	}
	return reported
}

// ClampLogLength bounds the length a driver reported for a bufSize info log
// buffer, so drivers can slice the buffer safely.
func ClampLogLength(n, bufSize int32) int32 {
	if n < 0 {
		return 0
	}
	if n > bufSize {
		return bufSize
	}
	return n
}

func cleanLog(log string) string {
	if i := strings.IndexByte(log, 0); i >= 0 {
		log = log[:i]
	}
	return strings.TrimSpace(log)
}

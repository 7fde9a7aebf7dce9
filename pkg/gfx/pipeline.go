package gfx

import "strings"

// Pipeline is a linked program. Only a pipeline with OK set may be used
// for drawing; the caller tears it down when done.
type Pipeline struct {
	Handle uint32
	OK     bool
	Log    string

	gl       ShaderAPI
	released bool
}

// Link creates a program from two compiled stages. Both stage objects are
// deleted before Link returns, on the failure path too. OK is true only
// when both stages compiled and the driver reports a successful link.
func (b *Builder) Link(vertex, fragment *ShaderUnit) *Pipeline {
	p := &Pipeline{gl: b.gl}

	p.Handle = b.gl.CreateProgram()
	linked := false
	var driverLog string
	if p.Handle == 0 {
		driverLog = "glCreateProgram returned no object"
	} else {
		for _, unit := range []*ShaderUnit{vertex, fragment} {
			if unit != nil && unit.Handle != 0 && !unit.released {
				b.gl.AttachShader(p.Handle, unit.Handle)
			}
		}
		b.gl.LinkProgram(p.Handle)
		linked = b.gl.GetProgramiv(p.Handle, LinkStatus) != False
		if !linked {
			length := b.gl.GetProgramiv(p.Handle, InfoLogLength)
			driverLog = cleanLog(b.gl.GetProgramInfoLog(p.Handle, b.logBufSize(length)))
		}
	}

	b.release(vertex)
	b.release(fragment)

	var notes []string
	for _, unit := range []*ShaderUnit{vertex, fragment} {
		if unit == nil {
			notes = append(notes, "missing stage")
		} else if !unit.OK {
			notes = append(notes, unit.Stage.String()+" stage did not compile")
		}
	}
	if !linked && driverLog == "" {
		driverLog = "link failed without diagnostics"
	}
	if driverLog != "" {
		notes = append(notes, driverLog)
	}

	p.OK = linked && len(notes) == 0
	if !p.OK {
		p.Log = strings.Join(notes, "\n")
		Logger().Warn("program link failed", "program", p.Handle, "log", p.Log)
	} else {
		Logger().Debug("program linked", "program", p.Handle)
	}
	return p
}

// Build compiles both stages and links them. Unlike CompileStage and Link
// it fails loudly: any compile or link failure yields a *BuildError for the
// first failing step, and the half-built program is released.
func (b *Builder) Build(vertexSource, fragmentSource string) (*Pipeline, error) {
	vertex := b.CompileStage(vertexSource, StageVertex)
	fragment := b.CompileStage(fragmentSource, StageFragment)
	p := b.Link(vertex, fragment)
	if p.OK {
		return p, nil
	}

	var err *BuildError
	switch {
	case !vertex.OK:
		err = &BuildError{Step: StageVertex.String(), Log: vertex.Log}
	case !fragment.OK:
		err = &BuildError{Step: StageFragment.String(), Log: fragment.Log}
	default:
		err = &BuildError{Step: "link", Log: p.Log}
	}
	p.Teardown()
	return nil, err
}

// Use binds the program as current for subsequent draw calls.
func (p *Pipeline) Use() error {
	if p == nil || !p.OK {
		return ErrUnusablePipeline
	}
	if p.released {
		return ErrPipelineReleased
	}
	p.gl.UseProgram(p.Handle)
	return nil
}

// Teardown deletes the program. Calling it again is a no-op.
func (p *Pipeline) Teardown() {
	if p == nil || p.released {
		return
	}
	p.released = true
	if p.Handle != 0 {
		p.gl.DeleteProgram(p.Handle)
	}
	Logger().Debug("program released", "program", p.Handle)
}

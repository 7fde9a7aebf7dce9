package gfx

import (
	"errors"
	"fmt"
)

var (
	// ErrShaderBuild is matched by every *BuildError.
	ErrShaderBuild = errors.New("gfx: shader build failed")

	ErrUnusablePipeline = errors.New("gfx: pipeline did not build successfully")
	ErrPipelineReleased = errors.New("gfx: pipeline already torn down")
)

// BuildError carries the diagnostic log of the first step that failed.
// Step is "vertex", "fragment" or "link".
type BuildError struct {
	Step string
	Log  string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("gfx: %s shader build failed: %s", e.Step, e.Log)
}

func (e *BuildError) Is(target error) bool {
	return target == ErrShaderBuild
}

package gfx

import "fmt"

// Stage is a compilable shader stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// GLEnum returns the shader type passed to glCreateShader.
func (s Stage) GLEnum() uint32 {
	if s == StageFragment {
		return FragmentShader
	}
	return VertexShader
}

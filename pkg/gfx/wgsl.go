package gfx

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
)

// WGSLTarget is the GLSL dialect produced from WGSL. It matches the 3.3 core
// context both front-ends request.
var WGSLTarget = glsl.Version330

// TranslateWGSL converts one entry point of a WGSL module into GLSL source
// for the given stage. Failures are reported as *BuildError.
func TranslateWGSL(source string, stage Stage, entryPoint string) (string, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return "", &BuildError{Step: stage.String(), Log: fmt.Sprintf("wgsl: %v", err)}
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return "", &BuildError{Step: stage.String(), Log: fmt.Sprintf("wgsl: %v", err)}
	}
	// Validation findings are advisory; the GL compiler has the last word.
	if problems, err := naga.Validate(module); err == nil {
		for _, p := range problems {
			Logger().Warn("wgsl validation", "stage", stage, "entry", entryPoint, "problem", p.Error())
		}
	}

	opts := glsl.DefaultOptions()
	opts.LangVersion = WGSLTarget
	opts.EntryPoint = entryPoint
	code, _, err := glsl.Compile(module, opts)
	if err != nil {
		return "", &BuildError{Step: stage.String(), Log: err.Error()}
	}
	return code, nil
}

package gfx

// ShaderLanguage selects how RendererConfig sources are interpreted.
type ShaderLanguage uint8

const (
	// LanguageGLSL sources are passed to the driver as they are.
	LanguageGLSL ShaderLanguage = iota
	// LanguageWGSL sources are translated with TranslateWGSL first.
	// VertexSource and FragmentSource may hold the same module.
	LanguageWGSL
)

// RendererConfig describes the shaders and clear color of the renderer.
// The vertex stage must consume position at location 0 and color at
// location 1.
type RendererConfig struct {
	VertexSource   string
	FragmentSource string
	Language       ShaderLanguage

	// Entry points, WGSL only.
	VertexEntryPoint   string
	FragmentEntryPoint string

	// MaxLogLength bounds compiler and linker logs. Zero means DefaultMaxLogLength.
	MaxLogLength int32
	ClearColor   [4]float32
}

// DefaultRendererConfig returns the built-in GLSL triangle pipeline.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		VertexSource:   VertexShaderSource,
		FragmentSource: FragmentShaderSource,
		Language:       LanguageGLSL,
		MaxLogLength:   DefaultMaxLogLength,
		ClearColor:     [4]float32{0.2, 0.3, 0.3, 1.0},
	}
}

// WGSLRendererConfig returns the WGSL flavour of the triangle pipeline.
func WGSLRendererConfig() RendererConfig {
	conf := DefaultRendererConfig()
	conf.VertexSource = TriangleWGSL
	conf.FragmentSource = TriangleWGSL
	conf.Language = LanguageWGSL
	conf.VertexEntryPoint = "vs_main"
	conf.FragmentEntryPoint = "fs_main"
	return conf
}

func (c RendererConfig) glslSources() (string, string, error) {
	if c.Language != LanguageWGSL {
		return c.VertexSource, c.FragmentSource, nil
	}
	vertex, err := TranslateWGSL(c.VertexSource, StageVertex, c.VertexEntryPoint)
	if err != nil {
		return "", "", err
	}
	fragment, err := TranslateWGSL(c.FragmentSource, StageFragment, c.FragmentEntryPoint)
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

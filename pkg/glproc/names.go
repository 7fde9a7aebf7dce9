package glproc

// ShaderEntryPoints are needed to compile, link, bind and release a program.
var ShaderEntryPoints = []string{
	"glCreateShader",
	"glShaderSource",
	"glCompileShader",
	"glGetShaderiv",
	"glGetShaderInfoLog",
	"glDeleteShader",
	"glCreateProgram",
	"glAttachShader",
	"glLinkProgram",
	"glGetProgramiv",
	"glGetProgramInfoLog",
	"glUseProgram",
	"glDeleteProgram",
}

// DrawEntryPoints cover vertex array and buffer setup for the render step.
var DrawEntryPoints = []string{
	"glGenVertexArrays",
	"glBindVertexArray",
	"glDeleteVertexArrays",
	"glGenBuffers",
	"glBindBuffer",
	"glBufferData",
	"glDeleteBuffers",
	"glVertexAttribPointer",
	"glEnableVertexAttribArray",
}

// CoreEntryPoints are GL 1.1 functions. libGL exports them statically, so
// glXGetProcAddress is not guaranteed to hand them out.
var CoreEntryPoints = []string{
	"glClear",
	"glClearColor",
	"glDrawArrays",
	"glGetError",
	"glGetString",
}

// Required returns every entry point the shader build and draw workflow calls.
func Required() []string {
	names := make([]string, 0, len(ShaderEntryPoints)+len(DrawEntryPoints)+len(CoreEntryPoints))
	names = append(names, ShaderEntryPoints...)
	names = append(names, DrawEntryPoints...)
	names = append(names, CoreEntryPoints...)
	return dedup(names)
}

func dedup(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

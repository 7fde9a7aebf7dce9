package renderer

import (
	"fmt"

	"github.com/ebitengine/purego"
	"github.com/kjkrol/gotri/pkg/glproc"
)

// LibGLName is the GL library opened for the dlsym fallback.
const LibGLName = "libGL.so.1"

// Library is a dlopen'ed shared object used as a symbol source.
type Library struct {
	name   string
	handle uintptr
}

// OpenLibrary dlopens name with immediate binding.
func OpenLibrary(name string) (*Library, error) {
	handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("renderer: failed to load %s: %w", name, err)
	}
	return &Library{name: name, handle: handle}, nil
}

// Lookup resolves name with dlsym, 0 when the library does not export it.
func (l *Library) Lookup(name string) uintptr {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return 0
	}
	return addr
}

// LookupFunc adapts Lookup to glproc.
func (l *Library) LookupFunc() glproc.LookupFunc {
	return l.Lookup
}

func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("renderer: failed to close %s: %w", l.name, err)
	}
	return nil
}

// Package glproc binds GL driver entry points by name at startup.
//
// The windowing layer supplies a LookupFunc (glXGetProcAddressARB, dlsym,
// glfwGetProcAddress, ...). Resolve asks it for every required name and
// either returns a complete Table or fails as a whole: a table with a hole in
// it would let a later call jump through a null address.
package glproc

import "log/slog"

// LookupFunc maps an entry-point name to its address, or 0 when unknown.
type LookupFunc func(name string) uintptr

// Chain returns a LookupFunc that asks each lookup in turn and answers with
// the first non-zero address. Nil entries are skipped.
func Chain(lookups ...LookupFunc) LookupFunc {
	return func(name string) uintptr {
		for _, lookup := range lookups {
			if lookup == nil {
				continue
			}
			if addr := lookup(name); addr != 0 {
				return addr
			}
		}
		return 0
	}
}

// Resolver resolves entry points and reports failures to Logger.
type Resolver struct {
	Lookup LookupFunc
	Logger *slog.Logger
}

// Resolve is shorthand for Resolver{Lookup: lookup}.Resolve(names...).
func Resolve(lookup LookupFunc, names ...string) (*Table, error) {
	return Resolver{Lookup: lookup}.Resolve(names...)
}

// Resolve looks up every distinct name exactly once. When any lookup returns
// 0 no table is returned and the error is an *UnresolvedError naming all the
// missing symbols.
func (r Resolver) Resolve(names ...string) (*Table, error) {
	if r.Lookup == nil {
		return nil, ErrNilLookup
	}
	logger := r.logger()

	addrs := make(map[string]Addr, len(names))
	var missing []string
	for _, name := range names {
		if _, done := addrs[name]; done {
			continue
		}
		addr := r.Lookup(name)
		addrs[name] = addr
		if addr == 0 {
			logger.Debug("entry point not found", "name", name)
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		err := &UnresolvedError{Names: missing}
		logger.Error("symbol resolution failed", "missing", len(missing), "requested", len(addrs), "err", err)
		return nil, err
	}

	logger.Debug("entry points resolved", "count", len(addrs))
	return &Table{addrs: addrs}, nil
}

func (r Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}

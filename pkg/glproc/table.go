package glproc

import (
	"fmt"
	"sort"
)

// Addr is the runtime address of a driver entry point. Zero means unresolved.
type Addr = uintptr

// Table maps entry-point names to resolved addresses. It is filled once by
// Resolve and never changes afterwards; every stored address is non-zero.
type Table struct {
	addrs map[string]Addr
}

// Addr returns the address stored for name.
func (t *Table) Addr(name string) (Addr, bool) {
	if t == nil {
		return 0, false
	}
	addr, ok := t.addrs[name]
	return addr, ok
}

// MustAddr is like Addr but panics when name was never resolved.
func (t *Table) MustAddr(name string) Addr {
	addr, ok := t.Addr(name)
	if !ok {
		panic(fmt.Sprintf("glproc: %s not in table", name))
	}
	return addr
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.addrs)
}

// Names returns the resolved names in lexical order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.addrs))
	for name := range t.addrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether all names are present.
func (t *Table) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := t.Addr(name); !ok {
			return false
		}
	}
	return true
}

package glproc_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/kjkrol/gotri/pkg/glproc"
)

// fakeDriver hands out sequential addresses and records every lookup.
type fakeDriver struct {
	missing map[string]bool
	calls   []string
	next    uintptr
}

func newFakeDriver(missing ...string) *fakeDriver {
	d := &fakeDriver{missing: make(map[string]bool), next: 0x1000}
	for _, name := range missing {
		d.missing[name] = true
	}
	return d
}

func (d *fakeDriver) lookup(name string) uintptr {
	d.calls = append(d.calls, name)
	if d.missing[name] {
		return 0
	}
	d.next += 0x10
	return d.next
}

func TestResolve_AllFound(t *testing.T) {
	d := newFakeDriver()
	names := glproc.Required()

	table, err := glproc.Resolve(d.lookup, names...)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if table.Len() != len(names) {
		t.Fatalf("table.Len() = %d, want %d", table.Len(), len(names))
	}
	for _, name := range names {
		addr, ok := table.Addr(name)
		if !ok || addr == 0 {
			t.Errorf("table.Addr(%q) = %#x, %v", name, addr, ok)
		}
	}
	if len(d.calls) != len(names) {
		t.Errorf("lookup called %d times, want %d", len(d.calls), len(names))
	}
}

func TestResolve_AnySingleMissingFails(t *testing.T) {
	for _, missing := range glproc.Required() {
		t.Run(missing, func(t *testing.T) {
			d := newFakeDriver(missing)
			table, err := glproc.Resolve(d.lookup, glproc.Required()...)
			if table != nil {
				t.Fatalf("Resolve() returned a table with %q unresolved", missing)
			}
			if !errors.Is(err, glproc.ErrUnresolved) {
				t.Fatalf("Resolve() error = %v, want ErrUnresolved", err)
			}
			var unresolved *glproc.UnresolvedError
			if !errors.As(err, &unresolved) {
				t.Fatalf("Resolve() error type = %T, want *UnresolvedError", err)
			}
			if len(unresolved.Names) != 1 || unresolved.Names[0] != missing {
				t.Errorf("UnresolvedError.Names = %v, want [%s]", unresolved.Names, missing)
			}
		})
	}
}

func TestResolve_LinkProgramMissing(t *testing.T) {
	d := newFakeDriver("glLinkProgram")

	_, err := glproc.Resolve(d.lookup, glproc.Required()...)
	if err == nil {
		t.Fatal("Resolve() succeeded with glLinkProgram missing")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "glproc: unresolved driver symbol") {
		t.Errorf("error %q does not say it is a symbol resolution failure", msg)
	}
	if !strings.Contains(msg, "glLinkProgram") {
		t.Errorf("error %q does not name glLinkProgram", msg)
	}
	// Every name is still looked up so the report is complete.
	if len(d.calls) != len(glproc.Required()) {
		t.Errorf("lookup called %d times, want %d", len(d.calls), len(glproc.Required()))
	}
}

func TestResolve_ReportsAllMissingInOrder(t *testing.T) {
	d := newFakeDriver("glDrawArrays", "glCreateShader", "glBufferData")

	_, err := glproc.Resolve(d.lookup, glproc.Required()...)
	var unresolved *glproc.UnresolvedError
	if !errors.As(err, &unresolved) {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := []string{"glCreateShader", "glBufferData", "glDrawArrays"}
	if strings.Join(unresolved.Names, ",") != strings.Join(want, ",") {
		t.Errorf("Names = %v, want %v", unresolved.Names, want)
	}
	if !strings.Contains(err.Error(), "symbols:") {
		t.Errorf("error %q should use the plural form", err.Error())
	}
}

func TestResolve_DuplicateNamesLookedUpOnce(t *testing.T) {
	d := newFakeDriver()
	table, err := glproc.Resolve(d.lookup, "glClear", "glClear", "glDrawArrays")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(d.calls) != 2 {
		t.Errorf("lookup calls = %v, want 2 distinct", d.calls)
	}
	if table.Len() != 2 {
		t.Errorf("table.Len() = %d, want 2", table.Len())
	}
}

func TestResolve_NilLookup(t *testing.T) {
	if _, err := glproc.Resolve(nil, "glClear"); !errors.Is(err, glproc.ErrNilLookup) {
		t.Errorf("Resolve(nil) error = %v, want ErrNilLookup", err)
	}
}

func TestResolve_Empty(t *testing.T) {
	table, err := glproc.Resolve(newFakeDriver().lookup)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("table.Len() = %d, want 0", table.Len())
	}
}

func TestResolver_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := glproc.Resolver{Lookup: newFakeDriver("glUseProgram").lookup, Logger: logger}
	if _, err := r.Resolve(glproc.ShaderEntryPoints...); err == nil {
		t.Fatal("Resolve() succeeded")
	}
	out := buf.String()
	if !strings.Contains(out, "symbol resolution failed") || !strings.Contains(out, "glUseProgram") {
		t.Errorf("log output missing failure details: %s", out)
	}
}

func TestChain(t *testing.T) {
	primary := func(name string) uintptr {
		if name == "glCreateShader" {
			return 0x10
		}
		return 0
	}
	fallback := func(name string) uintptr {
		if name == "glClear" {
			return 0x20
		}
		return 0
	}
	lookup := glproc.Chain(nil, primary, fallback)

	tests := []struct {
		name string
		want uintptr
	}{
		{"glCreateShader", 0x10},
		{"glClear", 0x20},
		{"glNope", 0},
	}
	for _, tt := range tests {
		if got := lookup(tt.name); got != tt.want {
			t.Errorf("Chain(%q) = %#x, want %#x", tt.name, got, tt.want)
		}
	}
}

func TestTable_MustAddrPanicsOnUnknown(t *testing.T) {
	table, err := glproc.Resolve(newFakeDriver().lookup, "glClear")
	if err != nil {
		t.Fatal(err)
	}
	if table.MustAddr("glClear") == 0 {
		t.Error("MustAddr(glClear) = 0")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustAddr on unknown name did not panic")
		}
	}()
	table.MustAddr("glFlush")
}

func TestTable_NamesSortedAndHas(t *testing.T) {
	table, err := glproc.Resolve(newFakeDriver().lookup, "glDrawArrays", "glClear")
	if err != nil {
		t.Fatal(err)
	}
	names := table.Names()
	if len(names) != 2 || names[0] != "glClear" || names[1] != "glDrawArrays" {
		t.Errorf("Names() = %v", names)
	}
	if !table.Has("glClear", "glDrawArrays") {
		t.Error("Has() = false for resolved names")
	}
	if table.Has("glClear", "glFlush") {
		t.Error("Has() = true with an unknown name")
	}
}

func TestRequired_NoDuplicates(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range glproc.Required() {
		if seen[name] {
			t.Errorf("duplicate entry point %q", name)
		}
		seen[name] = true
	}
	for _, name := range []string{"glLinkProgram", "glGetProgramInfoLog", "glVertexAttribPointer", "glDeleteVertexArrays"} {
		if !seen[name] {
			t.Errorf("Required() lacks %q", name)
		}
	}
}

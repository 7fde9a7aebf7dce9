package glproc

import (
	"errors"
	"strings"
)

var (
	// ErrUnresolved is matched by every *UnresolvedError.
	ErrUnresolved = errors.New("glproc: unresolved driver symbol")

	ErrNilLookup = errors.New("glproc: nil lookup function")
)

// UnresolvedError lists every entry point the lookup could not find, in the
// order they were requested.
type UnresolvedError struct {
	Names []string
}

func (e *UnresolvedError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrUnresolved.Error())
	if len(e.Names) != 1 {
		sb.WriteString("s")
	}
	sb.WriteString(": ")
	sb.WriteString(strings.Join(e.Names, ", "))
	return sb.String()
}

func (e *UnresolvedError) Is(target error) bool {
	return target == ErrUnresolved
}

package platform

import "errors"

type WindowConfig struct {
	PositionX   int
	PositionY   int
	Width       int
	Height      int
	BorderWidth int
	Title       string
}

func DefaultWindowConfig(title string) WindowConfig {
	return WindowConfig{Width: 800, Height: 600, Title: title}
}

// GLWindow is a window with a GL context current on the creating thread.
// Every method must be called from that thread.
type GLWindow interface {
	Show()
	Close()
	NextEvent() Event
	SwapBuffers()
	// ProcAddress resolves a driver entry point, 0 when unknown.
	ProcAddress(name string) uintptr
}

var (
	ErrNoDisplay     = errors.New("platform: unable to open display")
	ErrNoVisual      = errors.New("platform: no appropriate visual found")
	ErrNoSurface     = errors.New("platform: unable to create window")
	ErrNoContext     = errors.New("platform: unable to create GL context")
	ErrContextBind   = errors.New("platform: unable to make GL context current")
	ErrWindowingInit = errors.New("platform: windowing library failed to initialize")
)

package platform

type Event interface{}

// Expose asks for a redraw of the window contents.
type Expose struct{}

// Frame is emitted by polling front-ends once per loop iteration.
type Frame struct{}

type KeyPress struct {
	Code  uint64
	Label string
}

// CloseRequest is sent when the window manager asks the window to close.
type CloseRequest struct{}

type UnexpectedEvent struct{}

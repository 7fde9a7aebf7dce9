//go:build linux && cgo

// Package glx is the raw front-end: Xlib window, GLX context and
// glXGetProcAddressARB, without any loader library.
package glx

/*
#cgo LDFLAGS: -lX11 -lGL
#include <stdlib.h>
#include <X11/Xlib.h>
#include <X11/Xutil.h>
#include <GL/glx.h>

static int eventType(XEvent *ev) {
    return ev->type;
}

static Atom clientMessageAtom(XEvent *ev) {
    return (Atom)ev->xclient.data.l[0];
}

static Window defaultRootWindow(Display *d) {
    return DefaultRootWindow(d);
}

static void *procAddress(const char *name) {
    return (void *)glXGetProcAddressARB((const GLubyte *)name);
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/kjkrol/gotri/internal/platform"
)

const (
	KeyPressMask        = 1 << 0  // Listen for key press events.
	ExposureMask        = 1 << 15 // Listen for expose events (redraw window contents).
	StructureNotifyMask = 1 << 17 // Listen for the window being destroyed.

	cwEventMask = 1 << 11
	cwColormap  = 1 << 13

	glxEventMask = KeyPressMask | ExposureMask | StructureNotifyMask
)

// Window is an Xlib window with a GLX context current on its thread.
type Window struct {
	display  *C.Display
	window   C.Window
	colormap C.Colormap
	visual   *C.XVisualInfo
	context  C.GLXContext
	wmDelete C.Atom
	title    *C.char
}

// NewWindow opens the display, creates a double-buffered RGBA window and
// makes a new GLX context current on the calling OS thread, which stays
// locked.
func NewWindow(conf platform.WindowConfig) (*Window, error) {
	runtime.LockOSThread()

	display := C.XOpenDisplay(nil)
	if display == nil {
		runtime.UnlockOSThread()
		return nil, platform.ErrNoDisplay
	}
	w := &Window{display: display}
	root := C.defaultRootWindow(display)

	attribs := []C.int{C.GLX_RGBA, C.GLX_DEPTH_SIZE, 24, C.GLX_DOUBLEBUFFER, C.None}
	w.visual = C.glXChooseVisual(display, 0, &attribs[0])
	if w.visual == nil {
		w.Close()
		return nil, platform.ErrNoVisual
	}

	w.colormap = C.XCreateColormap(display, root, w.visual.visual, C.AllocNone)
	var swa C.XSetWindowAttributes
	swa.colormap = w.colormap
	swa.event_mask = C.long(glxEventMask)

	w.window = C.XCreateWindow(
		display,
		root,
		C.int(conf.PositionX),
		C.int(conf.PositionY),
		C.uint(conf.Width),
		C.uint(conf.Height),
		C.uint(conf.BorderWidth),
		w.visual.depth,
		C.InputOutput,
		w.visual.visual,
		C.ulong(cwColormap|cwEventMask),
		&swa,
	)
	if w.window == 0 {
		w.Close()
		return nil, platform.ErrNoSurface
	}

	w.title = C.CString(conf.Title)
	C.XStoreName(display, w.window, w.title)

	atomName := C.CString("WM_DELETE_WINDOW")
	defer C.free(unsafe.Pointer(atomName))
	w.wmDelete = C.XInternAtom(display, atomName, C.False)
	C.XSetWMProtocols(display, w.window, &w.wmDelete, 1)

	w.context = C.glXCreateContext(display, w.visual, nil, C.True)
	if w.context == nil {
		w.Close()
		return nil, platform.ErrNoContext
	}
	if C.glXMakeCurrent(display, C.GLXDrawable(w.window), w.context) == C.False {
		w.Close()
		return nil, platform.ErrContextBind
	}
	return w, nil
}

func (w *Window) Show() {
	C.XMapWindow(w.display, w.window)
	C.XFlush(w.display)
}

// ProcAddress resolves name with glXGetProcAddressARB.
func (w *Window) ProcAddress(name string) uintptr {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return uintptr(C.procAddress(cname))
}

func (w *Window) SwapBuffers() {
	C.glXSwapBuffers(w.display, C.GLXDrawable(w.window))
}

// NextEvent blocks until the next X event arrives.
func (w *Window) NextEvent() platform.Event {
	var ev C.XEvent
	C.XNextEvent(w.display, &ev)
	return w.convert(&ev)
}

func (w *Window) convert(ev *C.XEvent) platform.Event {
	switch C.eventType(ev) {
	case C.Expose:
		return platform.Expose{}
	case C.KeyPress:
		keyEvent := (*C.XKeyEvent)(unsafe.Pointer(ev))
		code, label := decodeKeyEvent(keyEvent)
		return platform.KeyPress{Code: code, Label: label}
	case C.ClientMessage:
		if C.clientMessageAtom(ev) == w.wmDelete {
			return platform.CloseRequest{}
		}
	case C.DestroyNotify:
		return platform.CloseRequest{}
	}
	return platform.UnexpectedEvent{}
}

func decodeKeyEvent(keyEvent *C.XKeyEvent) (uint64, string) {
	keysym := C.XLookupKeysym(keyEvent, 0)
	char := C.XKeysymToString(keysym)
	if char == nil {
		return uint64(keysym), ""
	}
	return uint64(keysym), C.GoString(char)
}

// Close releases the context, window and display in reverse order of
// creation. It tolerates a partially constructed window.
func (w *Window) Close() {
	if w.display == nil {
		return
	}
	if w.context != nil {
		C.glXMakeCurrent(w.display, 0, nil)
		C.glXDestroyContext(w.display, w.context)
		w.context = nil
	}
	if w.window != 0 {
		C.XDestroyWindow(w.display, w.window)
		w.window = 0
	}
	if w.colormap != 0 {
		C.XFreeColormap(w.display, w.colormap)
		w.colormap = 0
	}
	if w.visual != nil {
		C.XFree(unsafe.Pointer(w.visual))
		w.visual = nil
	}
	if w.title != nil {
		C.free(unsafe.Pointer(w.title))
		w.title = nil
	}
	C.XCloseDisplay(w.display)
	w.display = nil
	runtime.UnlockOSThread()
}

func (w *Window) String() string {
	return fmt.Sprintf("glx window %#x", uint64(w.window))
}

var _ platform.GLWindow = (*Window)(nil)

//go:build cgo

// Package glfwin is the convenience front-end built on GLFW.
package glfwin

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjkrol/gotri/internal/platform"
)

// Window owns a GLFW window whose 3.3 core context is current on the
// creating thread.
type Window struct {
	window *glfw.Window
}

func NewWindow(conf platform.WindowConfig) (*Window, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("%w: %v", platform.ErrWindowingInit, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("%w: %v", platform.ErrNoSurface, err)
	}
	if conf.PositionX != 0 || conf.PositionY != 0 {
		window.SetPos(conf.PositionX, conf.PositionY)
	}
	window.MakeContextCurrent()
	return &Window{window: window}, nil
}

func (w *Window) Show() {
	w.window.Show()
}

func (w *Window) ProcAddress(name string) uintptr {
	return uintptr(glfw.GetProcAddress(name))
}

// ProcAddr has the signature go-gl's loader expects.
func (w *Window) ProcAddr(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// NextEvent polls without blocking. Escape closes the window.
func (w *Window) NextEvent() platform.Event {
	if w.window.ShouldClose() {
		return platform.CloseRequest{}
	}
	glfw.PollEvents()
	if w.window.GetKey(glfw.KeyEscape) == glfw.Press {
		w.window.SetShouldClose(true)
		return platform.KeyPress{Code: uint64(glfw.KeyEscape), Label: "Escape"}
	}
	if w.window.ShouldClose() {
		return platform.CloseRequest{}
	}
	return platform.Frame{}
}

func (w *Window) Close() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
	runtime.UnlockOSThread()
}

var _ platform.GLWindow = (*Window)(nil)

package gfx

import "github.com/kjkrol/gotri/internal/platform"

// Surface is what RunLoop needs from a window.
type Surface interface {
	NextEvent() platform.Event
	SwapBuffers()
}

// RunLoop renders on every Expose or Frame event and returns once a key is
// pressed or the window is asked to close. It must run on the thread that
// owns the context.
func RunLoop(surface Surface, r *Renderer) error {
	frames := 0
	for {
		switch ev := surface.NextEvent().(type) {
		case platform.Expose, platform.Frame:
			if err := r.Render(); err != nil {
				return err
			}
			surface.SwapBuffers()
			frames++
		case platform.KeyPress:
			Logger().Debug("key pressed, leaving loop", "key", ev.Label, "frames", frames)
			return nil
		case platform.CloseRequest:
			Logger().Debug("close requested, leaving loop", "frames", frames)
			return nil
		}
	}
}

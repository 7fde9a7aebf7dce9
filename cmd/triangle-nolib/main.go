// Command triangle-nolib draws the same triangle with nothing but Xlib,
// GLX and entry points resolved by name at startup. Any key quits.
package main

import (
	"log/slog"
	"os"

	"github.com/kjkrol/gotri/internal/platform"
	"github.com/kjkrol/gotri/internal/platform/glx"
	"github.com/kjkrol/gotri/internal/renderer"
	"github.com/kjkrol/gotri/pkg/gfx"
	"github.com/kjkrol/gotri/pkg/glproc"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	gfx.SetLogger(logger)

	if err := run(logger); err != nil {
		logger.Error("startup failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	window, err := glx.NewWindow(platform.DefaultWindowConfig("No Lib"))
	if err != nil {
		return err
	}
	defer window.Close()

	return draw(window, logger)
}

// draw binds the driver through window's proc lookup, with dlsym on libGL
// as fallback, and renders until the window is closed.
func draw(window platform.GLWindow, logger *slog.Logger) error {
	libGL, err := renderer.OpenLibrary(renderer.LibGLName)
	if err != nil {
		return err
	}
	defer libGL.Close()

	resolver := glproc.Resolver{
		Lookup: glproc.Chain(window.ProcAddress, libGL.LookupFunc()),
		Logger: logger,
	}
	var driver *renderer.ProcDriver
	bind := func(table *glproc.Table) (gfx.GL, error) {
		d, err := renderer.NewProcDriver(table)
		if err != nil {
			return nil, err
		}
		driver = d
		return d, nil
	}
	r, err := gfx.NewResolvedRenderer(resolver, bind, gfx.DefaultRendererConfig())
	if err != nil {
		return err
	}
	defer r.Close()
	logger.Info("context ready", "gl", driver.Version())

	window.Show()
	return gfx.RunLoop(window, r)
}

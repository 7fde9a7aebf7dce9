// Command triangle draws one colored triangle through GLFW and go-gl's
// loader. Escape or closing the window quits.
package main

import (
	"log/slog"
	"os"

	"github.com/kjkrol/gotri/internal/platform"
	"github.com/kjkrol/gotri/internal/platform/glfwin"
	"github.com/kjkrol/gotri/internal/renderer/loader"
	"github.com/kjkrol/gotri/pkg/gfx"
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
	window, err := glfwin.NewWindow(platform.DefaultWindowConfig("W/ GLFW"))
	if err != nil {
		return err
	}
	defer window.Close()

	driver, err := loader.NewDriver(window.ProcAddr)
	if err != nil {
		return err
	}
	logger.Info("context ready", "gl", driver.Version())

	r, err := gfx.NewRenderer(driver, gfx.DefaultRendererConfig())
	if err != nil {
		return err
	}
	defer r.Close()

	return present(window, r)
}

// present shows the window and draws until it is closed.
func present(window platform.GLWindow, r *gfx.Renderer) error {
	window.Show()
	return gfx.RunLoop(window, r)
}

package gfx

import (
	"fmt"

	"github.com/kjkrol/gotri/pkg/glproc"
)

// Binder turns a complete entry-point table into a driver.
type Binder func(table *glproc.Table) (GL, error)

// NewResolvedRenderer resolves every entry point the renderer calls with
// resolver, binds them and builds the renderer. When any symbol is missing
// it returns before bind runs, so the driver sees no calls at all.
func NewResolvedRenderer(resolver glproc.Resolver, bind Binder, conf RendererConfig) (*Renderer, error) {
	table, err := resolver.Resolve(glproc.Required()...)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	gl, err := bind(table)
	if err != nil {
		return nil, err
	}
	Logger().Debug("driver bound", "entry_points", table.Len())
	return NewRenderer(gl, conf)
}

// Package render rasterizes solved chain geometry onto 2D cell surfaces.
// The chain core only produces endpoints and a thickness/color attribute;
// everything pixel-shaped lives here
package render

import (
	"github.com/lixenwraith/tether/core"
)

// Surface is the minimal raster capability a chain stroke needs.
// One implementation exists per concrete draw target; consumers depend on
// the capability, never the target
type Surface interface {
	// Size returns the drawable area in cells
	Size() (width, height int)

	// Plot colors a single cell; out-of-bounds coordinates are ignored
	Plot(x, y int, color core.RGB)
}

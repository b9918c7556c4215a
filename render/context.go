package render

import (
	"math"

	"github.com/lixenwraith/tether/vmath"
)

// Context converts world coordinates to surface-local cells.
// Covers the camera/scene transform the chain core deliberately does not own
type Context struct {
	OffsetX, OffsetY float64
}

// ToLocal maps a world point to the nearest surface cell
func (c Context) ToLocal(p vmath.Vec2) (x, y int) {
	return int(math.Round(p.X - c.OffsetX)), int(math.Round(p.Y - c.OffsetY))
}

package render

import (
	"github.com/lixenwraith/tether/chain"
	"github.com/lixenwraith/tether/core"
)

// tailFade is the brightness floor at the terminal segment; segments dim
// from full chain color at the base toward this fraction at the tip
const tailFade = 0.55

// DrawChain strokes every segment of a solved chain onto the surface,
// fading tail-ward so the end effector reads as the free end.
// Consumes geometry only; run after the solver for the current step
func DrawChain(s Surface, ctx Context, c *chain.Chain) {
	thickness := c.Thickness
	if thickness < 1 {
		thickness = 1
	}
	n := len(c.Segments)
	tip := c.Color.Scale(tailFade)
	for i := range c.Segments {
		seg := &c.Segments[i]
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		color := core.LerpRGB(c.Color, tip, t)
		StrokeLine(s, ctx, seg.Start, seg.End, thickness, color)
	}
}

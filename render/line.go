package render

import (
	"github.com/lixenwraith/tether/core"
	"github.com/lixenwraith/tether/vmath"
)

// StrokeLine draws the segment a→b with the given thickness in cells.
// Thickness beyond 1 is built from parallel strokes offset perpendicular to
// the line direction, 1..thickness/2 cells on each side of the center stroke
func StrokeLine(s Surface, ctx Context, a, b vmath.Vec2, thickness int, color core.RGB) {
	x0, y0 := ctx.ToLocal(a)
	x1, y1 := ctx.ToLocal(b)
	trace(s, x0, y0, x1, y1, color)

	if thickness < 2 {
		return
	}

	perp := vmath.V2Perpendicular(vmath.V2Normalize(vmath.V2Sub(b, a)))
	if perp == (vmath.Vec2{}) {
		// Degenerate segment, no direction to offset along
		return
	}
	for off := 1; off <= thickness/2; off++ {
		shift := vmath.V2Scale(perp, float64(off))
		for _, side := range [2]float64{1, -1} {
			sa := vmath.V2Add(a, vmath.V2Scale(shift, side))
			sb := vmath.V2Add(b, vmath.V2Scale(shift, side))
			px0, py0 := ctx.ToLocal(sa)
			px1, py1 := ctx.ToLocal(sb)
			trace(s, px0, py0, px1, py1, color)
		}
	}
}

// trace rasterizes one cell-wide stroke via Bresenham
func trace(s Surface, x0, y0, x1, y1 int, color core.RGB) {
	dx := x1 - x0
	dy := y1 - y0
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	totalSteps := max(absDx, absDy)
	if totalSteps == 0 {
		s.Plot(x0, y0, color)
		return
	}

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	err := absDx - absDy
	x, y := x0, y0
	for step := 0; step <= totalSteps; step++ {
		s.Plot(x, y, color)
		e2 := err * 2
		if e2 > -absDy {
			err -= absDy
			x += stepX
		}
		if e2 < absDx {
			err += absDx
			y += stepY
		}
	}
}

// Package solver implements the FABRIK (Forward And Backward Reaching
// Inverse Kinematics) pass over a chain: alternating tail-pinned and
// base-pinned reprojections that preserve every segment's fixed length.
// Pure geometry, deterministic, bounded; no side effects beyond the
// chain's own segments
package solver

import (
	"github.com/lixenwraith/tether/chain"
	"github.com/lixenwraith/tether/parameter"
	"github.com/lixenwraith/tether/vmath"
)

// Solve advances the chain toward its target using the default iteration
// budget. The existing pose is the warm start, which is why convergence is
// fast frame-to-frame for small target motions. Absent base or target anchor
// makes this call a no-op for the step
func Solve(c *chain.Chain) {
	SolveN(c, parameter.SolverIterations)
}

// SolveN is Solve with an explicit iteration budget, exposed as a tuning
// point. The default budget keeps external behavior unchanged; there is no
// early-exit convergence check either way, constant cost is the point
func SolveN(c *chain.Chain, iterations int) {
	segs := c.Segments
	if len(segs) == 0 {
		return
	}

	// Anchors sampled once, never re-read mid-solve
	base, ok := c.BasePosition()
	if !ok {
		return
	}
	target, ok := c.TargetPosition()
	if !ok {
		return
	}

	if vmath.V2Dist(base, target) > c.TotalLength() {
		extend(segs, base, target)
		return
	}

	for it := 0; it < iterations; it++ {
		reachForward(segs, target)
		reachBackward(segs, base)
	}
}

// extend lays the chain fully out along the base→target ray.
// Degraded mode for unreachable targets: the end effector lands at exactly
// TotalLength from the base, pointing at the target rather than failing
func extend(segs []chain.Segment, base, target vmath.Vec2) {
	dir := vmath.V2Normalize(vmath.V2Sub(target, base))
	cursor := base
	for i := range segs {
		s := &segs[i]
		s.Start = cursor
		cursor = vmath.V2Add(cursor, vmath.V2Scale(dir, s.Length))
		s.End = cursor
		s.RefreshAngle()
	}
}

// reachForward pins the terminal end to the target and walks tail to head,
// re-anchoring each start at fixed length behind its (pinned) end
func reachForward(segs []chain.Segment, target vmath.Vec2) {
	for i := len(segs) - 1; i >= 0; i-- {
		s := &segs[i]
		if i == len(segs)-1 {
			s.End = target
		} else {
			s.End = segs[i+1].Start
		}
		// Rescale along the current end→start direction; coincident
		// endpoints have no direction, skip and let a later iteration
		// recover once neighboring points move
		d := vmath.V2Sub(s.Start, s.End)
		if mag := vmath.V2Mag(d); mag != 0 {
			s.Start = vmath.V2Add(s.End, vmath.V2Scale(d, s.Length/mag))
		}
	}
}

// reachBackward pins the first start to the base and walks head to tail,
// re-anchoring each end at fixed length ahead of its (pinned) start.
// Last pass to run, so continuity holds when a solve completes
func reachBackward(segs []chain.Segment, base vmath.Vec2) {
	for i := 0; i < len(segs); i++ {
		s := &segs[i]
		if i == 0 {
			s.Start = base
		} else {
			s.Start = segs[i-1].End
		}
		d := vmath.V2Sub(s.End, s.Start)
		if mag := vmath.V2Mag(d); mag != 0 {
			s.End = vmath.V2Add(s.Start, vmath.V2Scale(d, s.Length/mag))
		}
		s.RefreshAngle()
	}
}

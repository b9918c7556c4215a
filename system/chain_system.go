// Package system orchestrates the per-frame chain pipeline:
// solve, attachment sync, then draw. The order is load-bearing, attachments
// and strokes must see the geometry produced this step
package system

import (
	"github.com/lixenwraith/tether/chain"
	"github.com/lixenwraith/tether/registry"
	"github.com/lixenwraith/tether/render"
	"github.com/lixenwraith/tether/solver"
)

// ChainSystem advances every registered chain once per tick.
// Surface is optional; without one the system still solves and syncs.
// Single-goroutine use, same as the registry it drives
type ChainSystem struct {
	Registry *registry.Registry
	Surface  render.Surface
	Camera   render.Context

	// Iterations overrides the solver pass budget when positive.
	// Zero keeps the default, which leaves solve behavior unchanged
	Iterations int
}

// NewChainSystem creates a system over the given registry
func NewChainSystem(reg *registry.Registry) *ChainSystem {
	return &ChainSystem{Registry: reg}
}

// Update runs one frame step for every chain in insertion order.
// A chain with an absent base or target anchor is skipped for this tick
// and picks up again once a valid reference appears
func (s *ChainSystem) Update() {
	s.Registry.ForEach(func(c *chain.Chain) {
		if _, ok := c.BasePosition(); !ok {
			return
		}
		if _, ok := c.TargetPosition(); !ok {
			return
		}
		if s.Iterations > 0 {
			solver.SolveN(c, s.Iterations)
		} else {
			solver.Solve(c)
		}
		c.SyncAttachments()
		if c.DrawEnabled && s.Surface != nil {
			render.DrawChain(s.Surface, s.Camera, c)
		}
	})
}

package chain

import (
	"github.com/lixenwraith/tether/vmath"
)

// Segment is one rigid link of a chain
// Length is fixed at construction and never changes; Start/End are rewritten
// every solve step. Angle is derived from the endpoints and carries no
// authority of its own, it exists for consumers that want an orientation
type Segment struct {
	Length float64
	Start  vmath.Vec2
	End    vmath.Vec2
	Angle  float64
}

// RefreshAngle re-derives Angle from the current endpoints
// Called by the solver after endpoint updates so Angle never drifts
func (s *Segment) RefreshAngle() {
	s.Angle = vmath.V2Angle(s.Start, s.End)
}

package chain

import (
	"fmt"

	"github.com/lixenwraith/tether/core"
	"github.com/lixenwraith/tether/parameter"
	"github.com/lixenwraith/tether/vmath"
)

// defaultColor is the stroke color for a freshly created chain
var defaultColor = core.RGB{R: 220, G: 220, B: 220}

// Chain is an ordered arena of rigid segments pinned to a base anchor and
// pulled toward a target anchor. Segment count and lengths are fixed for the
// chain's lifetime; only endpoint geometry moves. Continuity between adjacent
// segments is re-established by every completed solve pass rather than held
// through shared references
type Chain struct {
	Segments []Segment

	// Anchors are referenced, never owned; sampled once per solve step.
	// Either may be absent (nil), which degrades that step to a no-op
	Base   core.PositionSource
	Target core.PositionSource

	// Cosmetics, opaque to the solver, consumed by the rasterizer
	Thickness   int
	Color       core.RGB
	DrawEnabled bool

	totalLength float64

	// Joint slots are sized at construction to SegmentCount+1:
	// the index range is known and bounded, no sparse growth needed
	joints []core.Positionable
	mids   []midAttachment
}

// New creates a chain of count segments, each of the given fixed length,
// pinned to base and tracking target. The initial pose is a straight line
// extending up from the base's current position; the first solve step bends
// the chain toward the target
func New(count int, length float64, base, target core.PositionSource) (*Chain, error) {
	if count < 1 {
		return nil, fmt.Errorf("chain: segment count must be at least 1, got %d", count)
	}
	if length <= 0 {
		return nil, fmt.Errorf("chain: segment length must be positive, got %g", length)
	}

	c := &Chain{
		Segments:    make([]Segment, count),
		Base:        base,
		Target:      target,
		Thickness:   parameter.DefaultThickness,
		Color:       defaultColor,
		DrawEnabled: true,
		totalLength: float64(count) * length,
		joints:      make([]core.Positionable, count+1),
	}

	origin, _ := samplePosition(base)
	dir := vmath.V2FromAngle(parameter.RestAngle, 1)
	cursor := origin
	for i := range c.Segments {
		s := &c.Segments[i]
		s.Length = length
		s.Start = cursor
		cursor = vmath.V2Add(cursor, vmath.V2Scale(dir, length))
		s.End = cursor
		s.RefreshAngle()
	}

	return c, nil
}

// SegmentCount returns the number of rigid links
func (c *Chain) SegmentCount() int {
	return len(c.Segments)
}

// JointCount returns the number of joint indices, SegmentCount+1
// Joint 0 is the base, joint SegmentCount is the end effector
func (c *Chain) JointCount() int {
	return len(c.Segments) + 1
}

// TotalLength returns the fixed reach of the fully extended chain
func (c *Chain) TotalLength() float64 {
	return c.totalLength
}

// EndEffector returns the free endpoint of the terminal segment
func (c *Chain) EndEffector() vmath.Vec2 {
	return c.Segments[len(c.Segments)-1].End
}

// BasePosition samples the base anchor, false when the anchor is absent
func (c *Chain) BasePosition() (vmath.Vec2, bool) {
	return samplePosition(c.Base)
}

// TargetPosition samples the target anchor, false when the anchor is absent
func (c *Chain) TargetPosition() (vmath.Vec2, bool) {
	return samplePosition(c.Target)
}

// samplePosition reads a position source, zero value when absent
func samplePosition(src core.PositionSource) (vmath.Vec2, bool) {
	if src == nil {
		return vmath.Vec2{}, false
	}
	x, y := src.Position()
	return vmath.Vec2{X: x, Y: y}, true
}

package chain

import (
	"github.com/lixenwraith/tether/core"
	"github.com/lixenwraith/tether/vmath"
)

// midAttachment binds an object to a point on a segment at a normalized
// position along it. Multiple entries may reference the same segment
type midAttachment struct {
	segment  int
	position float64
	obj      core.Positionable
}

// AttachJoint binds obj to joint index: 0 is the base, SegmentCount the end
// effector, interior indices the boundary between segment index-1 and index.
// Re-attaching to an occupied index replaces the previous binding.
// An out-of-range index is ignored
func (c *Chain) AttachJoint(index int, obj core.Positionable) {
	if index < 0 || index >= len(c.joints) {
		return
	}
	c.joints[index] = obj
}

// DetachJoint clears the binding at the joint index, if any
func (c *Chain) DetachJoint(index int) {
	if index < 0 || index >= len(c.joints) {
		return
	}
	c.joints[index] = nil
}

// JointAttachment returns the object bound at the joint index, nil when the
// slot is empty or the index is out of range
func (c *Chain) JointAttachment(index int) core.Positionable {
	if index < 0 || index >= len(c.joints) {
		return nil
	}
	return c.joints[index]
}

// AttachMid binds obj to a point on segment at a normalized position along it.
// Position outside [0,1] is clamped, not rejected. An out-of-range segment
// index is ignored
func (c *Chain) AttachMid(segment int, position float64, obj core.Positionable) {
	if segment < 0 || segment >= len(c.Segments) {
		return
	}
	c.mids = append(c.mids, midAttachment{
		segment:  segment,
		position: vmath.Clamp01(position),
		obj:      obj,
	})
}

// MidAttachmentCount returns the number of registered mid-segment bindings
func (c *Chain) MidAttachmentCount() int {
	return len(c.mids)
}

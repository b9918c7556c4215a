package chain

import (
	"github.com/lixenwraith/tether/vmath"
)

// SyncAttachments writes solved geometry out to every bound object.
// Runs strictly after the solver for the current step; reads geometry only,
// never mutates it. A nil bound object or absent anchor skips that entry
// for this step without failing the rest
func (c *Chain) SyncAttachments() {
	last := len(c.Segments) - 1
	for i, obj := range c.joints {
		if obj == nil {
			continue
		}
		switch i {
		case 0:
			// Joint 0 mirrors the base anchor, not segment geometry
			p, ok := samplePosition(c.Base)
			if !ok {
				continue
			}
			obj.SetPosition(p.X, p.Y)
		case len(c.joints) - 1:
			e := c.Segments[last].End
			obj.SetPosition(e.X, e.Y)
		default:
			p := c.Segments[i-1].End
			obj.SetPosition(p.X, p.Y)
		}
	}

	for _, m := range c.mids {
		if m.obj == nil {
			continue
		}
		s := &c.Segments[m.segment]
		p := vmath.V2Lerp(s.Start, s.End, m.position)
		m.obj.SetPosition(p.X, p.Y)
	}
}

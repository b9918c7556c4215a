package core

// PositionSource supplies a current world coordinate, sampled once per step
// Implemented by cursors, entities, or any externally driven point
type PositionSource interface {
	Position() (x, y float64)
}

// Positionable receives a world coordinate written by the attachment binder
// The binder only writes; it never reads a Positionable back
type Positionable interface {
	SetPosition(x, y float64)
}

// StaticAnchor is a plain coordinate implementing both anchor interfaces
// Useful as a scripted base/target or as a bound attachment point
type StaticAnchor struct {
	X, Y float64
}

// Position implements PositionSource
func (a *StaticAnchor) Position() (float64, float64) {
	return a.X, a.Y
}

// SetPosition implements Positionable
func (a *StaticAnchor) SetPosition(x, y float64) {
	a.X, a.Y = x, y
}

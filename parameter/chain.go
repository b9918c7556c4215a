package parameter

import "math"

// Solver tuning
// Iteration budget is fixed rather than convergence-checked: constant cost,
// deterministic output, and warm starts keep frame-to-frame error tiny
const (
	// SolverIterations is the forward/backward pass budget per solve call
	SolverIterations = 10

	// LengthEpsilon is the relative tolerance for the segment length invariant
	LengthEpsilon = 1e-3
)

// Chain construction defaults
const (
	// RestAngle is the initial pose direction from the base anchor
	// Points away from gravity (up, i.e. negative Y in screen coordinates)
	RestAngle = -math.Pi / 2

	// DefaultThickness is the stroke width in cells for a freshly created chain
	DefaultThickness = 1
)

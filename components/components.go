// Package components defines ECS components for the simulation.
package components

// Position represents a particle's canvas position.
// Its layout matches r2.Vec so the two convert directly.
type Position struct {
	X, Y float64
}

// Tint is a particle's fixed RGB colour.
type Tint struct {
	R, G, B uint8
}

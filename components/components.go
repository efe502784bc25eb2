// Package components defines the ECS components of the particle
// population.
package components

// Position is a particle's continuous position on the grid, with each
// axis kept inside [0, bound) by the advection wrap.
type Position struct {
	X, Y float64
}

// Tint is a particle's display color, fixed for its lifetime.
type Tint struct {
	R, G, B uint8
}

// Package systems implements the flow-field simulation core: simplex
// noise with analytic derivatives, the curl transform, the frozen
// vector-field grid, and particle advection. It has no rendering or
// config dependencies so every piece is testable in isolation.
package systems

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

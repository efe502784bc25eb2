package systems

// Curl returns the divergence-free 2D flow vector at (x, y) for a
// given time slice. The third noise dimension carries time, so the
// same evaluator yields a different field per slice without separate
// noise instances.
//
// Rotating a scalar potential's gradient a quarter turn turns ridges
// into closed swirls: the flow has no sources or sinks, so particles
// circulate instead of clumping.
func Curl(x, y, t float64) Vec2 {
	_, d := SimplexD(Vec3{X: x, Y: y, Z: t})
	return Vec2{X: d.Y, Y: -d.X}
}

package systems

import "math"

// DefaultSpeed is the distance a particle covers per step for a unit
// flow vector.
const DefaultSpeed = 0.1

// Advect moves a particle one step through the field and returns its
// new position. Steps are independent per particle, so callers may
// apply it to a population in any order.
func (f *VectorField) Advect(x, y, speed float64) (float64, float64) {
	cx := int(math.Floor(x))
	cy := int(math.Floor(y))

	// The sampled row sits one above the particle's cell, clamped at
	// the top edge so the index never underflows. The offset shifts
	// every sampled vector down a row; the drawn motion depends on it.
	row := cy - 1
	if row < 0 {
		row = 0
	}
	v := f.vectors[row*f.rows+cx]

	x += v.X * speed
	y += v.Y * speed

	// Reset-to-bound wrap: an overshooting particle snaps to the exact
	// opposite edge, it does not keep the overshoot remainder.
	w := float64(f.rows)
	h := float64(f.cols)
	if x > w {
		x = 0
	}
	if x < 0 {
		x = w
	}
	if y > h {
		y = 0
	}
	if y < 0 {
		y = h
	}

	return x, y
}

package systems

import "math"

// Skewing and unskewing factors for the 3D simplex lattice.
const (
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

// SimplexD evaluates 3D simplex noise at p and returns the noise value
// together with its analytic derivative, so callers get a gradient
// without resorting to finite differences.
//
// Based on Stefan Gustavson's public-domain simplex noise, extended
// with derivative accumulation alongside the noise sum.
func SimplexD(p Vec3) (float64, Vec3) {
	skew := f3*p.X + f3*p.Y + f3*p.Z

	// Skewed-space lattice cell containing p.
	i := int(math.Floor(p.X + skew))
	j := int(math.Floor(p.Y + skew))
	k := int(math.Floor(p.Z + skew))

	unskew := g3*float64(i) + g3*float64(j) + g3*float64(k)

	var offs [4]Vec3

	// Offset of p from the unskewed cell origin.
	offs[0] = Vec3{
		X: p.X - (float64(i) - unskew),
		Y: p.Y - (float64(j) - unskew),
		Z: p.Z - (float64(k) - unskew),
	}

	// Pick one of the six tetrahedra tiling the skewed unit cube by
	// rank-ordering the origin offset components.
	var i1, j1, k1, i2, j2, k2 int
	if offs[0].X >= offs[0].Y {
		switch {
		case offs[0].Y >= offs[0].Z: // X Y Z order
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case offs[0].X >= offs[0].Z: // X Z Y order
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default: // Z X Y order
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case offs[0].Y < offs[0].Z: // Z Y X order
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case offs[0].X < offs[0].Z: // Y Z X order
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default: // Y X Z order
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	offs[1] = Vec3{
		X: offs[0].X - float64(i1) + g3,
		Y: offs[0].Y - float64(j1) + g3,
		Z: offs[0].Z - float64(k1) + g3,
	}
	offs[2] = Vec3{
		X: offs[0].X - float64(i2) + 2.0*g3,
		Y: offs[0].Y - float64(j2) + 2.0*g3,
		Z: offs[0].Z - float64(k2) + 2.0*g3,
	}
	offs[3] = Vec3{
		X: offs[0].X - 1.0 + 3.0*g3,
		Y: offs[0].Y - 1.0 + 3.0*g3,
		Z: offs[0].Z - 1.0 + 3.0*g3,
	}

	// Keep lattice indices inside the base permutation table.
	i &= 0xFF
	j &= 0xFF
	k &= 0xFF

	ii := [4]int{i, i + i1, i + i2, i + 1}
	jj := [4]int{j, j + j1, j + j2, j + 1}
	kk := [4]int{k, k + k1, k + k2, k + 1}

	var n float64
	var deriv Vec3

	for c, off := range offs {
		t := 0.5 - off.Dot(off)
		if t < 0 {
			// Corner support radius does not reach p.
			continue
		}

		t2 := t * t
		t4 := t2 * t2

		grad := gradTable[gradIndex(ii[c], jj[c], kk[c])]
		gd := grad.Dot(off)

		n += t4 * gd

		// Falloff term uses t², not the exact-gradient t³; the rendered
		// motion depends on this exact curve.
		deriv.X += -8.0*t2*off.X*gd + t4*grad.X
		deriv.Y += -8.0*t2*off.Y*gd + t4*grad.Y
		deriv.Z += -8.0*t2*off.Z*gd + t4*grad.Z
	}

	return n * 72.0, Vec3{X: deriv.X * 72.0, Y: deriv.Y * 72.0, Z: deriv.Z * 72.0}
}

// gradIndex hashes lattice coordinates into the gradient table through
// chained permutation lookups. Inputs may exceed 8 bits; the duplicated
// half of the table makes the masked and unmasked chains agree.
func gradIndex(i, j, k int) int {
	return int(permTable[(i&0xFF)+int(permTable[(j&0xFF)+int(permTable[k&0xFF])])]) % 12
}

// gradTable holds the 12 edge-direction gradients of a cube.
var gradTable = [12]Vec3{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// permTable is a fixed 256-entry permutation repeated twice so chained
// lookups never need a second modulo.
var permTable = [512]uint8{
	210, 251, 147, 139, 214, 27, 149, 231, 162, 19, 136, 158, 232, 78, 82, 140,
	37, 208, 50, 73, 79, 79, 240, 100, 144, 14, 172, 250, 59, 61, 226, 229, 69,
	197, 143, 251, 125, 115, 197, 14, 102, 150, 63, 90, 157, 224, 161, 42, 42,
	30, 183, 133, 168, 157, 150, 206, 221, 140, 70, 192, 153, 25, 7, 167, 9,
	246, 218, 174, 99, 134, 163, 46, 38, 189, 228, 223, 54, 147, 16, 144, 213,
	83, 59, 156, 31, 1, 80, 132, 0, 182, 205, 177, 79, 77, 230, 153, 109, 231,
	185, 24, 253, 191, 193, 13, 2, 86, 95, 118, 181, 161, 179, 129, 203, 23,
	170, 111, 174, 225, 188, 166, 123, 12, 163, 123, 206, 225, 80, 194, 191, 98,
	248, 239, 155, 8, 102, 239, 133, 94, 194, 134, 42, 118, 102, 56, 28, 219,
	202, 219, 150, 200, 3, 195, 36, 127, 57, 219, 179, 150, 75, 64, 148, 153,
	126, 240, 121, 210, 216, 5, 149, 205, 10, 160, 247, 191, 137, 139, 210, 181,
	189, 85, 237, 145, 75, 77, 97, 97, 181, 143, 93, 151, 166, 8, 176, 97, 182,
	14, 126, 38, 187, 145, 23, 239, 64, 55, 203, 45, 25, 8, 237, 122, 43, 16,
	17, 20, 216, 6, 31, 202, 232, 133, 163, 56, 210, 81, 169, 252, 245, 38, 160,
	198, 172, 165, 234, 78, 77, 96, 32, 58, 126, 196, 117, 140, 247, 94, 203,
	166, 232, 198, 143, 247, 126, 175, 42, 21, 185, 70, 210, 251, 147, 139, 214,
	27, 149, 231, 162, 19, 136, 158, 232, 78, 82, 140, 37, 208, 50, 73, 79, 79,
	240, 100, 144, 14, 172, 250, 59, 61, 226, 229, 69, 197, 143, 251, 125, 115,
	197, 14, 102, 150, 63, 90, 157, 224, 161, 42, 42, 30, 183, 133, 168, 157,
	150, 206, 221, 140, 70, 192, 153, 25, 7, 167, 9, 246, 218, 174, 99, 134,
	163, 46, 38, 189, 228, 223, 54, 147, 16, 144, 213, 83, 59, 156, 31, 1, 80,
	132, 0, 182, 205, 177, 79, 77, 230, 153, 109, 231, 185, 24, 253, 191, 193,
	13, 2, 86, 95, 118, 181, 161, 179, 129, 203, 23, 170, 111, 174, 225, 188,
	166, 123, 12, 163, 123, 206, 225, 80, 194, 191, 98, 248, 239, 155, 8, 102,
	239, 133, 94, 194, 134, 42, 118, 102, 56, 28, 219, 202, 219, 150, 200, 3,
	195, 36, 127, 57, 219, 179, 150, 75, 64, 148, 153, 126, 240, 121, 210, 216,
	5, 149, 205, 10, 160, 247, 191, 137, 139, 210, 181, 189, 85, 237, 145, 75,
	77, 97, 97, 181, 143, 93, 151, 166, 8, 176, 97, 182, 14, 126, 38, 187, 145,
	23, 239, 64, 55, 203, 45, 25, 8, 237, 122, 43, 16, 17, 20, 216, 6, 31, 202,
	232, 133, 163, 56, 210, 81, 169, 252, 245, 38, 160, 198, 172, 165, 234, 78,
	77, 96, 32, 58, 126, 196, 117, 140, 247, 94, 203, 166, 232, 198, 143, 247,
	126, 175, 42, 21, 185, 70,
}

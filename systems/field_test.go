package systems

import "testing"

func TestNewVectorField_MatchesCurlAtEveryCell(t *testing.T) {
	const rows, cols = 8, 5
	f := NewVectorField(rows, cols, 1.0)

	for y := 0; y < cols; y++ {
		for x := 0; x < rows; x++ {
			want := Curl(float64(x), float64(y), 1.0)
			if got := f.At(x, y); got != want {
				t.Errorf("At(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestVectorField_IndexBijection(t *testing.T) {
	const rows, cols = 8, 5

	seen := make(map[int]bool, rows*cols)
	for y := 0; y < cols; y++ {
		for x := 0; x < rows; x++ {
			idx := y*rows + x
			if idx < 0 || idx >= rows*cols {
				t.Fatalf("index for (%d,%d) = %d outside [0,%d)", x, y, idx, rows*cols)
			}
			if seen[idx] {
				t.Fatalf("index %d for (%d,%d) already used", idx, x, y)
			}
			seen[idx] = true
		}
	}
}

func TestVectorField_AtPanicsOutOfRange(t *testing.T) {
	f := NewVectorField(8, 5, 1.0)

	cases := []struct{ x, y int }{
		{-1, 0}, {8, 0}, {0, -1}, {0, 5},
	}

	for _, tc := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d,%d) did not panic", tc.x, tc.y)
				}
			}()
			f.At(tc.x, tc.y)
		}()
	}
}

func TestNewVectorField_Deterministic(t *testing.T) {
	a := NewVectorField(16, 16, 1.0)
	b := NewVectorField(16, 16, 1.0)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("builds disagree at (%d,%d): %v vs %v", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}

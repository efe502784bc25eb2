package systems

import "fmt"

// VectorField is a frozen snapshot of the curl field sampled once at
// every integer grid cell. The x axis spans [0, rows) and the y axis
// spans [0, cols); the flat storage is row-major with stride rows, so
// cell (x, y) lives at index y*rows + x. It is never rebuilt after
// construction and is safe for any number of concurrent readers.
type VectorField struct {
	rows, cols int
	vectors    []Vec2
}

// NewVectorField evaluates the curl field at every grid cell for the
// given time slice and returns the immutable result.
func NewVectorField(rows, cols int, t float64) *VectorField {
	vectors := make([]Vec2, rows*cols)
	for y := 0; y < cols; y++ {
		for x := 0; x < rows; x++ {
			vectors[y*rows+x] = Curl(float64(x), float64(y), t)
		}
	}
	return &VectorField{rows: rows, cols: cols, vectors: vectors}
}

// Rows returns the x extent of the grid.
func (f *VectorField) Rows() int { return f.rows }

// Cols returns the y extent of the grid.
func (f *VectorField) Cols() int { return f.cols }

// At returns the flow vector stored for cell (x, y). Out-of-range
// cells are a contract violation and panic rather than alias another
// cell's vector.
func (f *VectorField) At(x, y int) Vec2 {
	if x < 0 || x >= f.rows || y < 0 || y >= f.cols {
		panic(fmt.Sprintf("systems: field cell (%d,%d) outside %dx%d grid", x, y, f.rows, f.cols))
	}
	return f.vectors[y*f.rows+x]
}

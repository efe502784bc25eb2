// Package renderer provides the CPU pixel canvas and its raylib
// presentation.
package renderer

import "image/color"

// Canvas is the frame buffer the particles are rasterized into, one
// pixel per grid cell.
type Canvas struct {
	width, height int
	pixels        []color.RGBA
}

// NewCanvas creates a canvas of the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]color.RGBA, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.RGBA) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// SetPixel writes an opaque color at (x, y). Later writes win at the
// same pixel; there is no blending. Writes outside the canvas are
// dropped, since a particle sitting exactly on the wrap edge has no
// pixel to land on.
func (c *Canvas) SetPixel(x, y int, r, g, b uint8) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = color.RGBA{R: r, G: g, B: b, A: 255}
}

// At returns the stored pixel at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	return c.pixels[y*c.width+x]
}

// Pixels exposes the backing buffer in row-major order for texture
// upload.
func (c *Canvas) Pixels() []color.RGBA { return c.pixels }

package renderer

import (
	"image/color"
	"testing"
)

func TestCanvas_ClearFillsEveryPixel(t *testing.T) {
	c := NewCanvas(8, 6)
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	c.Clear(bg)

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) != bg {
				t.Fatalf("pixel (%d,%d) = %v after clear, want %v", x, y, c.At(x, y), bg)
			}
		}
	}
}

func TestCanvas_LaterWriteWinsAtSamePixel(t *testing.T) {
	c := NewCanvas(8, 6)
	c.Clear(color.RGBA{A: 255})

	// Two particles landing on the same pixel: only the later color
	// survives, with no blending.
	c.SetPixel(3, 2, 255, 0, 0)
	c.SetPixel(3, 2, 0, 0, 255)

	want := color.RGBA{B: 255, A: 255}
	if got := c.At(3, 2); got != want {
		t.Errorf("pixel (3,2) = %v, want %v", got, want)
	}
}

func TestCanvas_OutOfRangeWritesDropped(t *testing.T) {
	c := NewCanvas(4, 4)
	bg := color.RGBA{A: 255}
	c.Clear(bg)

	c.SetPixel(-1, 0, 255, 255, 255)
	c.SetPixel(4, 0, 255, 255, 255)
	c.SetPixel(0, -1, 255, 255, 255)
	c.SetPixel(0, 4, 255, 255, 255)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c.At(x, y) != bg {
				t.Fatalf("pixel (%d,%d) modified by out-of-range write", x, y)
			}
		}
	}
}

func TestCanvas_PixelsRowMajor(t *testing.T) {
	c := NewCanvas(3, 2)

	c.SetPixel(2, 1, 9, 9, 9)

	want := color.RGBA{R: 9, G: 9, B: 9, A: 255}
	if got := c.Pixels()[1*3+2]; got != want {
		t.Errorf("backing buffer index 5 = %v, want %v", got, want)
	}
}

package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Screen presents the canvas as a point-filtered texture scaled up to
// the window, keeping the chunky fixed-grid look.
type Screen struct {
	texture rl.Texture2D
	gridW   int
	gridH   int
	scale   int
}

// NewScreen allocates the streaming texture. The raylib window must be
// initialized before calling this.
func NewScreen(gridW, gridH, scale int) *Screen {
	img := rl.GenImageColor(gridW, gridH, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	rl.SetTextureFilter(texture, rl.FilterPoint)

	return &Screen{texture: texture, gridW: gridW, gridH: gridH, scale: scale}
}

// Present uploads the canvas pixels and draws them scaled to the
// window.
func (s *Screen) Present(c *Canvas) {
	rl.UpdateTexture(s.texture, c.Pixels())

	src := rl.Rectangle{X: 0, Y: 0, Width: float32(s.gridW), Height: float32(s.gridH)}
	dst := rl.Rectangle{X: 0, Y: 0, Width: float32(s.gridW * s.scale), Height: float32(s.gridH * s.scale)}
	rl.DrawTexturePro(s.texture, src, dst, rl.Vector2{}, 0, rl.White)
}

// DrawHUD overlays tick and frame-rate counters.
func (s *Screen) DrawHUD(tick int64, fps float64, paused bool) {
	rl.DrawText(fmt.Sprintf("Tick: %d", tick), 10, 10, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("FPS: %.1f", fps), 10, 35, 20, rl.RayWhite)
	if paused {
		rl.DrawText("PAUSED [space]", 10, 60, 20, rl.Yellow)
	}
}

// Unload frees the texture.
func (s *Screen) Unload() {
	rl.UnloadTexture(s.texture)
}

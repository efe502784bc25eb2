// Vector field preview tool - interactive visualization with sliders.
//
// Renders the frozen curl field as a direction-hue / magnitude-value
// image so field parameters can be eyeballed without running the full
// effect.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"image/color"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftgrid/systems"
)

const (
	windowWidth  = 900
	windowHeight = 560
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 64
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	timeSlice := float32(1.0)
	gain := float32(0.15)

	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)
	rl.SetTextureFilter(texture, rl.FilterPoint)

	field := systems.NewVectorField(gridSize, gridSize, float64(timeSlice))
	updateTexture(texture, field, gain)

	needsRebuild := false
	needsUpload := false

	for !rl.WindowShouldClose() {
		if needsRebuild {
			field = systems.NewVectorField(gridSize, gridSize, float64(timeSlice))
			needsRebuild = false
			needsUpload = true
		}
		if needsUpload {
			updateTexture(texture, field, gain)
			needsUpload = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Magnitude stats
		minMag, maxMag := magnitudeRange(field)
		statsY := int32(previewSize + 18)
		rl.DrawText(fmt.Sprintf("|v| min: %.3f  max: %.3f", minMag, maxMag), 15, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Curl Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Time slice (frozen noise dimension)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newTime := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.0", "10.0",
			timeSlice, 0.0, 10.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", timeSlice), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newTime != timeSlice {
			timeSlice = newTime
			needsRebuild = true
		}
		panelY += 35

		rl.DrawText("Brightness gain (magnitude scaling)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newGain := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.02", "0.50",
			gain, 0.02, 0.50,
		)
		rl.DrawText(fmt.Sprintf("%.2f", gain), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newGain != gain {
			gain = newGain
			needsUpload = true
		}
		panelY += 45

		rl.DrawText("Hue = flow direction", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		rl.DrawText("Brightness = flow magnitude", int32(panelX), int32(panelY), 14, rl.Gray)

		rl.EndDrawing()
	}
}

// updateTexture re-renders the field into the preview texture.
func updateTexture(texture rl.Texture2D, field *systems.VectorField, gain float32) {
	pixels := make([]color.RGBA, gridSize*gridSize)
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			v := field.At(x, y)

			angle := math.Atan2(v.Y, v.X)
			hue := float32((angle + math.Pi) / (2 * math.Pi) * 360)

			val := float32(math.Hypot(v.X, v.Y)) * gain
			if val > 1 {
				val = 1
			}

			c := rl.ColorFromHSV(hue, 0.8, val)
			pixels[y*gridSize+x] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		}
	}
	rl.UpdateTexture(texture, pixels)
}

// magnitudeRange returns the min and max vector magnitude in the field.
func magnitudeRange(field *systems.VectorField) (float64, float64) {
	minMag := math.Inf(1)
	maxMag := 0.0
	for y := 0; y < field.Cols(); y++ {
		for x := 0; x < field.Rows(); x++ {
			v := field.At(x, y)
			m := math.Hypot(v.X, v.Y)
			if m < minMag {
				minMag = m
			}
			if m > maxMag {
				maxMag = m
			}
		}
	}
	return minMag, maxMag
}

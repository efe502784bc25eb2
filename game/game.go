// Package game wires the simulation core, the ECS particle world, and
// the renderer into the frame loop.
package game

import (
	"image/color"
	"log/slog"
	"math"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/driftgrid/components"
	"github.com/pthm-cable/driftgrid/config"
	"github.com/pthm-cable/driftgrid/renderer"
	"github.com/pthm-cable/driftgrid/systems"
	"github.com/pthm-cable/driftgrid/telemetry"
)

// backgroundColor is the solid clear color between particles.
var backgroundColor = color.RGBA{A: 255}

// Options configures a new Game.
type Options struct {
	Seed      int64
	Headless  bool
	LogStats  bool
	OutputDir string
}

// Game holds the complete run state: the frozen vector field, the
// particle world, and the presentation surfaces.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	mapper *ecs.Map2[components.Position, components.Tint]
	filter *ecs.Filter2[components.Position, components.Tint]

	field  *systems.VectorField
	speed  float64
	canvas *renderer.Canvas
	screen *renderer.Screen // nil in headless mode

	perf   *telemetry.PerfCollector
	output *telemetry.OutputManager

	tick        int64
	reportEvery int64
	logStats    bool
	paused      bool
	showHUD     bool
}

// NewGame creates a game instance from the loaded configuration.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	world := ecs.NewWorld()

	g := &Game{
		world:       world,
		rng:         rand.New(rand.NewSource(opts.Seed)),
		mapper:      ecs.NewMap2[components.Position, components.Tint](world),
		filter:      ecs.NewFilter2[components.Position, components.Tint](world),
		speed:       cfg.Particles.Speed,
		canvas:      renderer.NewCanvas(cfg.Grid.Rows, cfg.Grid.Cols),
		reportEvery: int64(cfg.Telemetry.ReportEvery),
		logStats:    opts.LogStats,
		showHUD:     cfg.Screen.ShowHUD,
	}

	windowFrames := int(cfg.Telemetry.StatsWindow * float64(cfg.Screen.TargetFPS))
	g.perf = telemetry.NewPerfCollector(windowFrames)

	start := time.Now()
	g.field = systems.NewVectorField(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Field.Time)
	slog.Info("vector field built",
		"rows", cfg.Grid.Rows,
		"cols", cfg.Grid.Cols,
		"time_slice", cfg.Field.Time,
		"elapsed", time.Since(start),
	)

	if !opts.Headless {
		g.screen = renderer.NewScreen(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Screen.PixelScale)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	g.spawnParticles(cfg.Particles.Count)

	return g, nil
}

// Update handles input and advances the simulation one tick.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	g.step()
}

// UpdateHeadless advances the simulation without touching the window.
func (g *Game) UpdateHeadless() {
	g.step()
}

// step runs one rasterization + advection pass over the population.
// Each particle is drawn at its current cell first, then moved, so the
// frame shows the positions the field vectors were sampled at.
func (g *Game) step() {
	g.canvas.Clear(backgroundColor)

	query := g.filter.Query()
	for query.Next() {
		pos, tint := query.Get()

		g.canvas.SetPixel(int(math.Floor(pos.X)), int(math.Floor(pos.Y)), tint.R, tint.G, tint.B)

		pos.X, pos.Y = g.field.Advect(pos.X, pos.Y, g.speed)
	}

	g.tick++

	if g.tick%g.reportEvery == 0 {
		g.report()
	}
}

// report emits the periodic frame-rate status.
func (g *Game) report() {
	stats := g.perf.Stats()
	if g.logStats {
		stats.LogStats(g.tick)
	}
	if err := g.output.WriteFrameStats(stats, g.tick); err != nil {
		slog.Error("failed to write frame stats", "error", err)
	}
}

// Draw presents the current canvas and blocks until the display is
// ready for the next frame.
func (g *Game) Draw() {
	g.perf.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.screen.Present(g.canvas)

	if g.showHUD {
		g.screen.DrawHUD(g.tick, float64(rl.GetFPS()), g.paused)
	}

	rl.EndDrawing()
}

// handleInput processes keyboard toggles.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.showHUD = !g.showHUD
	}
}

// Tick returns the number of completed simulation steps.
func (g *Game) Tick() int64 { return g.tick }

// Canvas exposes the frame buffer for inspection.
func (g *Game) Canvas() *renderer.Canvas { return g.canvas }

// Field exposes the frozen vector field.
func (g *Game) Field() *systems.VectorField { return g.field }

// ParticleCount returns the current population size.
func (g *Game) ParticleCount() int {
	n := 0
	query := g.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Unload releases rendering resources and closes output files.
func (g *Game) Unload() {
	if g.screen != nil {
		g.screen.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

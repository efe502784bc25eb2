// Package telemetry collects frame timing and writes run output.
package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PerfCollector tracks frame timing over a rolling window. The display
// hand-off paces the loop, so frame duration is the measured refresh
// interval.
type PerfCollector struct {
	windowSize  int
	samples     []float64 // frame durations in milliseconds
	writeIndex  int
	sampleCount int
	lastFrame   time.Time
}

// NewPerfCollector creates a collector averaging over windowSize
// frames (e.g. 120 for 1 second at 120fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 120
	}
	return &PerfCollector{
		windowSize: windowSize,
		samples:    make([]float64, windowSize),
	}
}

// RecordFrame marks a frame boundary and stores the time elapsed since
// the previous one.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		ms := float64(now.Sub(p.lastFrame).Microseconds()) / 1000.0
		p.samples[p.writeIndex] = ms
		p.writeIndex = (p.writeIndex + 1) % p.windowSize
		if p.sampleCount < p.windowSize {
			p.sampleCount++
		}
	}
	p.lastFrame = now
}

// FrameStats holds aggregated frame timing statistics.
type FrameStats struct {
	AvgFrameMS    float64
	MinFrameMS    float64
	MaxFrameMS    float64
	StdDevFrameMS float64
	FPS           float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() FrameStats {
	if p.sampleCount == 0 {
		return FrameStats{}
	}

	window := p.samples[:p.sampleCount]

	s := FrameStats{
		AvgFrameMS: stat.Mean(window, nil),
		MinFrameMS: floats.Min(window),
		MaxFrameMS: floats.Max(window),
	}
	if p.sampleCount > 1 {
		s.StdDevFrameMS = stat.StdDev(window, nil)
	}
	if s.AvgFrameMS > 0 {
		s.FPS = 1000.0 / s.AvgFrameMS
	}
	return s
}

// LogStats logs frame statistics.
func (s FrameStats) LogStats(tick int64) {
	slog.Info("frames",
		"tick", tick,
		"fps", int(s.FPS),
		"avg_frame_ms", s.AvgFrameMS,
		"min_frame_ms", s.MinFrameMS,
		"max_frame_ms", s.MaxFrameMS,
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("fps", s.FPS),
		slog.Float64("avg_frame_ms", s.AvgFrameMS),
		slog.Float64("min_frame_ms", s.MinFrameMS),
		slog.Float64("max_frame_ms", s.MaxFrameMS),
		slog.Float64("stddev_frame_ms", s.StdDevFrameMS),
	)
}

// FrameStatsCSV is a flat struct for CSV export of frame stats.
type FrameStatsCSV struct {
	Tick          int64   `csv:"tick"`
	FPS           float64 `csv:"fps"`
	AvgFrameMS    float64 `csv:"avg_frame_ms"`
	MinFrameMS    float64 `csv:"min_frame_ms"`
	MaxFrameMS    float64 `csv:"max_frame_ms"`
	StdDevFrameMS float64 `csv:"stddev_frame_ms"`
}

// ToCSV converts FrameStats to a flat CSV-friendly struct.
func (s FrameStats) ToCSV(tick int64) FrameStatsCSV {
	return FrameStatsCSV{
		Tick:          tick,
		FPS:           s.FPS,
		AvgFrameMS:    s.AvgFrameMS,
		MinFrameMS:    s.MinFrameMS,
		MaxFrameMS:    s.MaxFrameMS,
		StdDevFrameMS: s.StdDevFrameMS,
	}
}

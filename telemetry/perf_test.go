package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate a few frame boundaries
	for i := 0; i < 5; i++ {
		pc.RecordFrame()
		time.Sleep(200 * time.Microsecond)
	}

	stats := pc.Stats()

	if stats.AvgFrameMS <= 0 {
		t.Error("expected positive average frame duration")
	}
	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}
	if stats.MinFrameMS > stats.MaxFrameMS {
		t.Errorf("min %v exceeds max %v", stats.MinFrameMS, stats.MaxFrameMS)
	}
}

func TestPerfCollector_NoSamples(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats != (FrameStats{}) {
		t.Errorf("expected zero stats with no samples, got %+v", stats)
	}

	// A single boundary still yields no interval.
	pc.RecordFrame()
	if stats := pc.Stats(); stats != (FrameStats{}) {
		t.Errorf("expected zero stats after one boundary, got %+v", stats)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(4) // Small window

	// Overfill the window
	for i := 0; i < 10; i++ {
		pc.RecordFrame()
		time.Sleep(100 * time.Microsecond)
	}

	stats := pc.Stats()

	if stats.AvgFrameMS <= 0 {
		t.Error("expected positive average after window filled")
	}
}

func TestFrameStats_ToCSV(t *testing.T) {
	s := FrameStats{
		AvgFrameMS:    8.3,
		MinFrameMS:    8.0,
		MaxFrameMS:    9.1,
		StdDevFrameMS: 0.2,
		FPS:           120.5,
	}

	rec := s.ToCSV(240)

	if rec.Tick != 240 {
		t.Errorf("tick = %d, want 240", rec.Tick)
	}
	if rec.FPS != s.FPS || rec.AvgFrameMS != s.AvgFrameMS {
		t.Errorf("record %+v does not match stats %+v", rec, s)
	}
}

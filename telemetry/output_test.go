package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/vectorfield/config"
)

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// A nil manager accepts every call.
	if err := om.WriteFrameStats(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Error(err)
	}
	if om.SnapshotPath() != "" || om.Dir() != "" || om.Close() != nil {
		t.Error("nil manager should be inert")
	}
}

func TestOutputManager_WritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WriteFrameStats(WindowStats{WindowEndFrame: i * 60, Particles: i}); err != nil {
			t.Fatalf("WriteFrameStats: %v", err)
		}
		perf := PerfStats{AvgStep: time.Duration(i) * time.Millisecond, PhasePct: map[string]float64{PhaseGrid: 40}}
		if err := om.WritePerf(perf, i*60); err != nil {
			t.Fatalf("WritePerf: %v", err)
		}
	}
	if err := om.WriteConfig(config.Defaults()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	frames := readLines(t, filepath.Join(dir, FramesFile))
	if len(frames) != 4 {
		t.Fatalf("frames.csv has %d lines, want header + 3", len(frames))
	}
	if !strings.HasPrefix(frames[0], "window_end,") {
		t.Errorf("frames header = %q", frames[0])
	}
	if !strings.HasPrefix(frames[3], "180,") {
		t.Errorf("last frames row = %q", frames[3])
	}

	perf := readLines(t, filepath.Join(dir, PerfFile))
	if len(perf) != 4 {
		t.Fatalf("perf.csv has %d lines, want header + 3", len(perf))
	}
	if !strings.Contains(perf[0], "grid_pct") || !strings.HasPrefix(perf[2], "120,2000,") {
		t.Errorf("perf.csv = %q", perf)
	}

	if _, err := config.Load(filepath.Join(dir, ConfigFile)); err != nil {
		t.Errorf("written config does not load: %v", err)
	}
	if got := om.SnapshotPath(); got != filepath.Join(dir, SnapshotFile) {
		t.Errorf("SnapshotPath = %q", got)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

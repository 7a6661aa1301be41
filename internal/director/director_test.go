package director

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ivlev/cloud2video/internal/source"
)

func TestAzimuthFor(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{0, 0},
		{1, 1},
		{359, 359},
		{360, 0},
		{361, 1},
		{725, 5},
	}
	for _, tt := range tests {
		if got := AzimuthFor(tt.index); got != tt.want {
			t.Errorf("AzimuthFor(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestAzimuthPeriodic(t *testing.T) {
	for i := 0; i < 3*FullTurn; i++ {
		a := AzimuthFor(i)
		if a < 0 || a >= 360 {
			t.Fatalf("AzimuthFor(%d) = %d out of range", i, a)
		}
		if b := AzimuthFor(i + 360); a != b {
			t.Fatalf("AzimuthFor(%d) = %d, AzimuthFor(%d) = %d", i, a, i+360, b)
		}
	}
}

func TestAzimuthNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative index")
		}
	}()
	AzimuthFor(-1)
}

func TestSweepCamera(t *testing.T) {
	s := NewSweep()
	got := s.Camera(390)
	want := CameraState{Elevation: 30, Azimuth: 30}
	if got != want {
		t.Errorf("Camera(390) = %+v, want %+v", got, want)
	}
}

func TestScenarioWriteRead(t *testing.T) {
	frames := []source.Frame{
		{Index: 0, Points: []source.Point{{X: 1, Y: 2, Z: 3}}},
		{Index: 1},
		{Index: 2, Points: []source.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}}},
	}
	scenario := NewSweep().BuildScenario(frames, Settings{FPS: 8, Size: 1600, Bounds: 5})

	if scenario.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", scenario.Version)
	}
	if len(scenario.Shots) != len(frames) {
		t.Fatalf("Expected %d shots, got %d", len(frames), len(scenario.Shots))
	}
	if got := scenario.Duration(); got != 3.0/8 {
		t.Errorf("Expected duration %f, got %f", 3.0/8, got)
	}
	if scenario.Shots[2].Time != 0.25 || scenario.Shots[2].Points != 2 {
		t.Errorf("Unexpected shot: %+v", scenario.Shots[2])
	}

	path := filepath.Join(t.TempDir(), "nested", "scenario.yaml")
	if err := WriteScenario(scenario, path); err != nil {
		t.Fatalf("WriteScenario failed: %v", err)
	}
	readScenario, err := ReadScenario(path)
	if err != nil {
		t.Fatalf("ReadScenario failed: %v", err)
	}
	if diff := cmp.Diff(scenario, readScenario); diff != "" {
		t.Errorf("scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioPathFor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"out.mp4", "out.scenario.yaml"},
		{"dir/run.gif", "dir/run.scenario.yaml"},
		{"noext", "noext.scenario.yaml"},
	}
	for _, tt := range tests {
		if got := ScenarioPathFor(tt.in); got != tt.want {
			t.Errorf("ScenarioPathFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

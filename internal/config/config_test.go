package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud2video.yaml")
	data := "fps: 24\nsize: 800\nqr: true\nscenario_output: out/run.yaml\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := Load(path, cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Default()
	want.FPS = 24
	want.Size = 800
	want.QRStamp = true
	want.ScenarioOutput = "out/run.yaml"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Default()); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("fps: [1, 2"), 0644)
	if err := Load(path, Default()); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.OutputVideo = "out.mp4"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := Default()
	bad.FPS = 0
	bad.Size = 8
	bad.PointSize = -1
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"output path", "fps", "size", "point size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in error %q", want, err)
		}
	}
}

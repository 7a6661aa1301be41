package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// AxisBounds is the half-width of every plot axis; axes span [-5, 5].
	AxisBounds = 5.0

	// Elevation is the constant camera elevation in degrees.
	Elevation = 30.0
)

type Config struct {
	InputPath      string  `yaml:"input"`
	OutputVideo    string  `yaml:"-"`
	FPS            int     `yaml:"fps"`
	Size           int     `yaml:"size"`
	PointSize      float64 `yaml:"point_size"`
	DepthShade     bool    `yaml:"depth_shade"`
	VideoEncoder   string  `yaml:"encoder"`
	Quality        int     `yaml:"quality"`
	ScenarioOutput string  `yaml:"scenario_output"`
	ProgressEvery  int     `yaml:"progress_every"`
	Debug          bool    `yaml:"debug"`
	QRStamp        bool    `yaml:"qr"`
	ShowStats      bool    `yaml:"stats"`
	BuildVersion   string  `yaml:"-"`
}

// Default returns the reference settings: 8 fps, a 1600px square canvas
// (8 inches at 200 dpi) and markers of area 20pt².
func Default() *Config {
	return &Config{
		InputPath:     "-",
		FPS:           8,
		Size:          1600,
		PointSize:     20,
		DepthShade:    true,
		ProgressEvery: 50,
	}
}

// Load overlays the YAML file at path onto cfg. Keys absent from the file
// keep their current values.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Validate reports settings the pipeline cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.OutputVideo == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.Size < 16 {
		errs = append(errs, fmt.Errorf("size must be at least 16px, got %d", c.Size))
	}
	if c.PointSize <= 0 {
		errs = append(errs, fmt.Errorf("point size must be positive, got %g", c.PointSize))
	}
	if c.ProgressEvery < 0 {
		errs = append(errs, fmt.Errorf("progress interval must not be negative, got %d", c.ProgressEvery))
	}
	return errors.Join(errs...)
}

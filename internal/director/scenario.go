package director

import "github.com/ivlev/cloud2video/internal/source"

// Scenario records the camera requests of a run.
type Scenario struct {
	Version  string   `yaml:"version"`
	Settings Settings `yaml:"settings"`
	Shots    []Shot   `yaml:"shots"`
}

// Settings are the render settings the scenario was produced with.
type Settings struct {
	FPS       int     `yaml:"fps"`
	Size      int     `yaml:"size"`
	Elevation float64 `yaml:"elevation"`
	Bounds    float64 `yaml:"bounds"` // half-width of every axis
}

// Shot is the camera placement and payload of a single frame.
type Shot struct {
	Index     int     `yaml:"index"`
	Time      float64 `yaml:"time"` // seconds from the start of the video
	Azimuth   float64 `yaml:"azimuth"`
	Elevation float64 `yaml:"elevation"`
	Points    int     `yaml:"points"`
}

// Duration returns the playback length in seconds.
func (s *Scenario) Duration() float64 {
	if s.Settings.FPS <= 0 {
		return 0
	}
	return float64(len(s.Shots)) / float64(s.Settings.FPS)
}

// BuildScenario lists the camera request the sweep makes for every frame.
func (s Sweep) BuildScenario(frames []source.Frame, settings Settings) *Scenario {
	shots := make([]Shot, len(frames))
	for i, f := range frames {
		cam := s.Camera(f.Index)
		shots[i] = Shot{
			Index:     f.Index,
			Azimuth:   cam.Azimuth,
			Elevation: cam.Elevation,
			Points:    len(f.Points),
		}
		if settings.FPS > 0 {
			shots[i].Time = float64(f.Index) / float64(settings.FPS)
		}
	}
	settings.Elevation = s.Elevation
	return &Scenario{
		Version:  "1.0",
		Settings: settings,
		Shots:    shots,
	}
}

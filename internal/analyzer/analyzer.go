// Package analyzer inspects parsed frames before rendering. It reports on
// the data but never alters it.
package analyzer

import (
	"math"

	"github.com/ivlev/cloud2video/internal/source"
)

// Summary describes a frame sequence.
type Summary struct {
	Frames      int
	Points      int
	EmptyFrames int
	NonFinite   int // points with a NaN or infinite coordinate
	OutOfBounds int // finite points outside the axis box
	MaxPoints   int // largest frame

	Min, Max source.Point // extent of the finite points
}

// Summarize scans frames against an axis box of [-bounds, bounds].
func Summarize(frames []source.Frame, bounds float64) Summary {
	s := Summary{
		Frames: len(frames),
		Min:    source.Point{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max:    source.Point{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, f := range frames {
		n := len(f.Points)
		s.Points += n
		if n == 0 {
			s.EmptyFrames++
		}
		if n > s.MaxPoints {
			s.MaxPoints = n
		}
		for _, p := range f.Points {
			if !p.IsFinite() {
				s.NonFinite++
				continue
			}
			if math.Abs(p.X) > bounds || math.Abs(p.Y) > bounds || math.Abs(p.Z) > bounds {
				s.OutOfBounds++
			}
			s.Min = source.Point{X: math.Min(s.Min.X, p.X), Y: math.Min(s.Min.Y, p.Y), Z: math.Min(s.Min.Z, p.Z)}
			s.Max = source.Point{X: math.Max(s.Max.X, p.X), Y: math.Max(s.Max.Y, p.Y), Z: math.Max(s.Max.Z, p.Z)}
		}
	}
	return s
}

// HasExtent reports whether at least one finite point was seen.
func (s Summary) HasExtent() bool {
	return s.Min.X <= s.Max.X
}

// Warnings returns human-readable notes about data the renderer will show
// poorly or not at all.
func (s Summary) Warnings() []string {
	var w []string
	if s.NonFinite > 0 {
		w = append(w, pluralf(s.NonFinite, "point has", "points have")+" non-finite coordinates")
	}
	if s.OutOfBounds > 0 {
		w = append(w, pluralf(s.OutOfBounds, "point lies", "points lie")+" outside the axis box")
	}
	if s.EmptyFrames > 0 {
		w = append(w, pluralf(s.EmptyFrames, "frame is", "frames are")+" empty")
	}
	return w
}

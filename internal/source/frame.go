package source

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a single 3D coordinate of a snapshot.
type Point struct {
	X, Y, Z float64
}

// Vec returns p as a gonum vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// IsFinite reports whether none of the coordinates is NaN or infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Frame is one point-cloud snapshot. Index is assigned in arrival order
// starting at zero. A frame may hold no points.
type Frame struct {
	Index  int
	Points []Point
}

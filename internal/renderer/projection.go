package renderer

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// viewDistance is the camera distance from the origin in normalized
	// box units, where the box spans [-1, 1] on every axis.
	viewDistance = 10.0

	// fitFactor leaves room around the projected box for tick labels.
	fitFactor = 4.8
)

var (
	xAxis = r3.Vec{X: 1}
	yAxis = r3.Vec{Y: 1}
	zAxis = r3.Vec{Z: 1}
)

// Projection maps data coordinates to canvas pixels for a camera orbiting
// the origin at a given elevation and azimuth.
type Projection struct {
	Elevation float64 // degrees
	Azimuth   float64 // degrees

	eye   r3.Vec // unit vector from the origin towards the camera
	right r3.Vec
	up    r3.Vec

	bounds float64
	scale  float64
	cx, cy float64
}

// NewProjection builds the projection for a square canvas of size pixels.
func NewProjection(elevation, azimuth float64, size int, bounds float64) Projection {
	el := elevation * math.Pi / 180
	az := azimuth * math.Pi / 180

	spin := r3.NewRotation(az, zAxis)
	eye := spin.Rotate(r3.NewRotation(-el, yAxis).Rotate(xAxis))
	right := spin.Rotate(yAxis)
	up := r3.Cross(eye, right)

	if bounds <= 0 {
		bounds = 1
	}
	return Projection{
		Elevation: elevation,
		Azimuth:   azimuth,
		eye:       r3.Unit(eye),
		right:     r3.Unit(right),
		up:        r3.Unit(up),
		bounds:    bounds,
		scale:     float64(size) / fitFactor,
		cx:        float64(size) / 2,
		cy:        float64(size) / 2,
	}
}

// Project returns the pixel position of a data-space point and its depth.
// Larger depth values are nearer the camera.
func (p Projection) Project(v r3.Vec) (x, y, depth float64) {
	return p.projectNormalized(r3.Scale(1/p.bounds, v))
}

// projectNormalized projects a point given in box units.
func (p Projection) projectNormalized(n r3.Vec) (x, y, depth float64) {
	depth = r3.Dot(n, p.eye)
	f := viewDistance / (viewDistance - depth)
	x = p.cx + p.scale*f*r3.Dot(n, p.right)
	y = p.cy - p.scale*f*r3.Dot(n, p.up)
	return x, y, depth
}

// Eye returns the unit vector pointing from the origin to the camera.
func (p Projection) Eye() r3.Vec {
	return p.eye
}

// depthRange is the depth interval spanned by the bounding box.
func depthRange() (near, far float64) {
	r := math.Sqrt(3)
	return r, -r
}

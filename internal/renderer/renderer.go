package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ivlev/cloud2video/internal/source"
)

// Renderer is the drawing device driven once per frame. Implementations keep
// the camera and point set as mutable state; Capture snapshots that state.
type Renderer interface {
	SetCamera(elevation, azimuth float64)
	SetPoints(points []source.Point)
	Capture() (image.Image, error)
}

// Options configures a ScatterRenderer.
type Options struct {
	Size      int     // width and height of the square canvas in pixels
	Bounds    float64 // every axis spans [-Bounds, Bounds]
	PointSize float64 // marker area in points², as matplotlib's s
	Inches    float64 // nominal figure size; Size/Inches gives the DPI

	Marker     colorful.Color
	Background color.Color
	DepthShade bool
}

// DefaultOptions mirrors an 8x8 inch figure at 200 dpi with [-5, 5] axes.
func DefaultOptions() Options {
	return Options{
		Size:       1600,
		Bounds:     5,
		PointSize:  20,
		Inches:     8,
		Marker:     colorful.Color{R: 0x1f / 255.0, G: 0x77 / 255.0, B: 0xb4 / 255.0},
		Background: color.White,
		DepthShade: true,
	}
}

// dpi returns the pixel density of the canvas.
func (o Options) dpi() float64 {
	if o.Inches <= 0 {
		return 200
	}
	return float64(o.Size) / o.Inches
}

// markerRadius converts the marker area from points² to a pixel radius.
func (o Options) markerRadius() float64 {
	return math.Sqrt(o.PointSize) / 2 * o.dpi() / 72
}

// textScale is the magnification applied to the 7x13 bitmap font.
func (o Options) textScale() int {
	s := o.Size / 400
	if s < 1 {
		return 1
	}
	return s
}

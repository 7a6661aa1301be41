package renderer

import (
	"image"
	"image/color"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/ivlev/cloud2video/internal/source"
	"github.com/ivlev/cloud2video/internal/system"
)

// ScatterRenderer draws a 3D scatter plot inside a labelled axis box.
//
// A ScatterRenderer is not safe for concurrent use. Captured images are taken
// from the shared image pool; callers that are done with an image may return
// it with system.PutImage.
type ScatterRenderer struct {
	opts   Options
	proj   Projection
	points []source.Point
}

// NewScatterRenderer returns a renderer with the camera at elevation 0,
// azimuth 0 and no points.
func NewScatterRenderer(opts Options) *ScatterRenderer {
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	if opts.Bounds <= 0 {
		opts.Bounds = DefaultOptions().Bounds
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	r := &ScatterRenderer{opts: opts}
	r.SetCamera(0, 0)
	return r
}

// SetCamera places the camera; angles are in degrees.
func (r *ScatterRenderer) SetCamera(elevation, azimuth float64) {
	r.proj = NewProjection(elevation, azimuth, r.opts.Size, r.opts.Bounds)
}

// SetPoints replaces the displayed point set. The slice is retained but
// never modified.
func (r *ScatterRenderer) SetPoints(points []source.Point) {
	r.points = points
}

// Camera returns the current projection.
func (r *ScatterRenderer) Camera() Projection {
	return r.proj
}

// Capture renders the current state into a new image.
func (r *ScatterRenderer) Capture() (image.Image, error) {
	rect := image.Rect(0, 0, r.opts.Size, r.opts.Size)
	img := system.GetImage(rect)
	draw.Draw(img, rect, image.NewUniform(r.opts.Background), image.Point{}, draw.Src)

	c := newCanvas(img)
	ax := newAxes(r.proj, r.opts)
	ax.drawPanes(c)
	r.drawPoints(c)
	ax.drawEdges(c)
	ax.drawLabels(img)
	return img, nil
}

type projected struct {
	x, y, depth float64
}

func (r *ScatterRenderer) drawPoints(c *canvas) {
	if len(r.points) == 0 {
		return
	}
	radius := r.opts.markerRadius()

	pts := make([]projected, 0, len(r.points))
	for _, p := range r.points {
		x, y, d := r.proj.Project(p.Vec())
		// At or behind the camera plane the perspective divide flips sign.
		if d >= viewDistance || !c.visible(x, y, radius) {
			continue
		}
		pts = append(pts, projected{x: x, y: y, depth: d})
	}
	// Painter's order: far points first.
	slices.SortStableFunc(pts, func(a, b projected) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})

	bg, _ := colorful.MakeColor(r.opts.Background)
	near, far := depthRange()
	for _, p := range pts {
		col := r.opts.Marker
		if r.opts.DepthShade {
			t := (near - p.depth) / (near - far)
			col = col.BlendRgb(bg, 0.7*clamp01(t))
		}
		c.disc(p.x, p.y, radius, toRGBA(col))
	}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

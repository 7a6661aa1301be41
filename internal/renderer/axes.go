package renderer

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	paneColor  = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	gridColor  = color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff}
	edgeColor  = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	labelColor = color.Black
)

// axes draws the bounding box decorations for one camera placement.
type axes struct {
	proj Projection
	opts Options

	// side holds, per axis, the sign of the box face nearest the camera.
	side r3.Vec
}

func newAxes(proj Projection, opts Options) axes {
	eye := proj.Eye()
	return axes{
		proj: proj,
		opts: opts,
		side: r3.Vec{X: sign(eye.X), Y: sign(eye.Y), Z: sign(eye.Z)},
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// ticks returns five evenly spaced tick positions in box units.
func (a axes) ticks() []float64 {
	const n = 5
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(2*i-(n-1)) / n
	}
	return t
}

func (a axes) px(n r3.Vec) [2]float64 {
	x, y, _ := a.proj.projectNormalized(n)
	return [2]float64{x, y}
}

func (a axes) lineWidth() float64 {
	return math.Max(1, float64(a.opts.Size)/800)
}

// drawPanes paints the three faces of the box facing away from the camera
// together with their grid lines.
func (a axes) drawPanes(c *canvas) {
	s := a.side
	faces := []struct {
		corners [4]r3.Vec
		grid    func(t float64) (r3.Vec, r3.Vec, r3.Vec, r3.Vec)
	}{
		{ // x = back
			corners: [4]r3.Vec{{X: -s.X, Y: -1, Z: -1}, {X: -s.X, Y: 1, Z: -1}, {X: -s.X, Y: 1, Z: 1}, {X: -s.X, Y: -1, Z: 1}},
			grid: func(t float64) (r3.Vec, r3.Vec, r3.Vec, r3.Vec) {
				return r3.Vec{X: -s.X, Y: t, Z: -1}, r3.Vec{X: -s.X, Y: t, Z: 1},
					r3.Vec{X: -s.X, Y: -1, Z: t}, r3.Vec{X: -s.X, Y: 1, Z: t}
			},
		},
		{ // y = back
			corners: [4]r3.Vec{{X: -1, Y: -s.Y, Z: -1}, {X: 1, Y: -s.Y, Z: -1}, {X: 1, Y: -s.Y, Z: 1}, {X: -1, Y: -s.Y, Z: 1}},
			grid: func(t float64) (r3.Vec, r3.Vec, r3.Vec, r3.Vec) {
				return r3.Vec{X: t, Y: -s.Y, Z: -1}, r3.Vec{X: t, Y: -s.Y, Z: 1},
					r3.Vec{X: -1, Y: -s.Y, Z: t}, r3.Vec{X: 1, Y: -s.Y, Z: t}
			},
		},
		{ // z = back
			corners: [4]r3.Vec{{X: -1, Y: -1, Z: -s.Z}, {X: 1, Y: -1, Z: -s.Z}, {X: 1, Y: 1, Z: -s.Z}, {X: -1, Y: 1, Z: -s.Z}},
			grid: func(t float64) (r3.Vec, r3.Vec, r3.Vec, r3.Vec) {
				return r3.Vec{X: t, Y: -1, Z: -s.Z}, r3.Vec{X: t, Y: 1, Z: -s.Z},
					r3.Vec{X: -1, Y: t, Z: -s.Z}, r3.Vec{X: 1, Y: t, Z: -s.Z}
			},
		},
	}

	w := a.lineWidth()
	for _, f := range faces {
		poly := make([][2]float64, len(f.corners))
		for i, v := range f.corners {
			poly[i] = a.px(v)
		}
		c.fill(poly, paneColor)
		for _, t := range a.ticks() {
			p0, p1, q0, q1 := f.grid(t)
			g0, g1 := a.px(p0), a.px(p1)
			c.line(g0[0], g0[1], g1[0], g1[1], w, gridColor)
			h0, h1 := a.px(q0), a.px(q1)
			c.line(h0[0], h0[1], h1[0], h1[1], w, gridColor)
		}
	}
}

// axisEdge returns the box edge, in box units, that carries the ticks and
// label of the given axis (0: x, 1: y, 2: z) as a function of t in [-1, 1].
func (a axes) axisEdge(axis int) func(t float64) r3.Vec {
	s := a.side
	floor := -s.Z
	switch axis {
	case 0:
		return func(t float64) r3.Vec { return r3.Vec{X: t, Y: s.Y, Z: floor} }
	case 1:
		return func(t float64) r3.Vec { return r3.Vec{X: s.X, Y: t, Z: floor} }
	default:
		return func(t float64) r3.Vec { return r3.Vec{X: s.X, Y: -s.Y, Z: t} }
	}
}

// drawEdges strokes the three labelled axis lines.
func (a axes) drawEdges(c *canvas) {
	w := a.lineWidth()
	for axis := 0; axis < 3; axis++ {
		edge := a.axisEdge(axis)
		p0, p1 := a.px(edge(-1)), a.px(edge(1))
		c.line(p0[0], p0[1], p1[0], p1[1], w, edgeColor)
	}
}

// drawLabels writes tick values and the X, Y and Z axis names.
func (a axes) drawLabels(dst draw.Image) {
	scale := a.opts.textScale()
	centre := a.px(r3.Vec{})
	pad := float64(13 * scale)

	for axis, name := range []string{"X", "Y", "Z"} {
		edge := a.axisEdge(axis)
		for _, t := range a.ticks() {
			p := a.px(edge(t))
			x, y := push(p, centre, pad)
			DrawText(dst, fmt.Sprintf("%.4g", t*a.opts.Bounds), x, y, scale, labelColor)
		}
		p := a.px(edge(0))
		x, y := push(p, centre, 3*pad)
		DrawText(dst, name, x, y, scale, labelColor)
	}
}

// push moves p away from centre by d pixels.
func push(p, centre [2]float64, d float64) (float64, float64) {
	dx, dy := p[0]-centre[0], p[1]-centre[1]
	l := math.Hypot(dx, dy)
	if l == 0 {
		return p[0], p[1] + d
	}
	return p[0] + dx/l*d, p[1] + dy/l*d
}

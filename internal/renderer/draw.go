package renderer

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points to approximate a quarter circle.
const kappa = 0.5522847498

// canvas wraps a destination image and a reusable rasterizer. Each
// primitive is rasterized only over its own bounding box.
type canvas struct {
	dst *image.RGBA
	z   *vector.Rasterizer
	box image.Rectangle // area of the current primitive in dst coordinates
}

func newCanvas(dst *image.RGBA) *canvas {
	return &canvas{dst: dst, z: vector.NewRasterizer(0, 0)}
}

// begin prepares the rasterizer for a primitive spanning [x0, x1]x[y0, y1].
// It reports false when nothing of it lands on dst.
func (c *canvas) begin(x0, y0, x1, y1 float64) bool {
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	box := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1))+1, int(math.Ceil(y1))+1,
	).Intersect(c.dst.Bounds())
	if box.Empty() {
		return false
	}
	c.box = box
	c.z.Reset(box.Dx(), box.Dy())
	c.z.DrawOp = draw.Over
	return true
}

func (c *canvas) moveTo(x, y float64) {
	c.z.MoveTo(c.local(x, y))
}

func (c *canvas) lineTo(x, y float64) {
	c.z.LineTo(c.local(x, y))
}

func (c *canvas) cubeTo(bx, by, cx, cy, x, y float64) {
	x1, y1 := c.local(bx, by)
	x2, y2 := c.local(cx, cy)
	x3, y3 := c.local(x, y)
	c.z.CubeTo(x1, y1, x2, y2, x3, y3)
}

// local converts dst coordinates to rasterizer coordinates.
func (c *canvas) local(x, y float64) (float32, float32) {
	return float32(x - float64(c.box.Min.X)), float32(y - float64(c.box.Min.Y))
}

// paint composites the current path onto dst. The rasterizer's origin is
// aligned with c.box.Min.
func (c *canvas) paint(col color.Color) {
	c.z.Draw(c.dst, c.box, image.NewUniform(col), image.Point{})
}

// fill paints a closed polygon.
func (c *canvas) fill(pts [][2]float64, col color.Color) {
	if len(pts) < 3 {
		return
	}
	x0, y0 := pts[0][0], pts[0][1]
	x1, y1 := x0, y0
	for _, p := range pts[1:] {
		x0, x1 = math.Min(x0, p[0]), math.Max(x1, p[0])
		y0, y1 = math.Min(y0, p[1]), math.Max(y1, p[1])
	}
	if !c.begin(x0, y0, x1, y1) {
		return
	}
	c.moveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		c.lineTo(p[0], p[1])
	}
	c.z.ClosePath()
	c.paint(col)
}

// line strokes a segment of the given pixel width.
func (c *canvas) line(x0, y0, x1, y1, width float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	c.fill([][2]float64{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}, col)
}

// disc paints a filled circle.
func (c *canvas) disc(cx, cy, r float64, col color.Color) {
	if !c.begin(cx-r, cy-r, cx+r, cy+r) {
		return
	}
	k := r * kappa
	c.moveTo(cx+r, cy)
	c.cubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	c.cubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	c.cubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	c.cubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	c.z.ClosePath()
	c.paint(col)
}

// visible reports whether a disc at (x, y) of radius r touches the canvas.
func (c *canvas) visible(x, y, r float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	b := c.dst.Bounds()
	return x+r >= float64(b.Min.X) && x-r <= float64(b.Max.X) &&
		y+r >= float64(b.Min.Y) && y-r <= float64(b.Max.Y)
}

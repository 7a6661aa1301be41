package renderer

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawText draws s centred on (x, y), magnifying the 7x13 bitmap font by
// scale.
func DrawText(dst draw.Image, s string, x, y float64, scale int, col color.Color) {
	drawText(dst, s, x, y, scale, col, 0.5)
}

// DrawTextLeft draws s with its top-left corner at (x, y).
func DrawTextLeft(dst draw.Image, s string, x, y float64, scale int, col color.Color) {
	drawText(dst, s, x, y, scale, col, 0)
}

func drawText(dst draw.Image, s string, x, y float64, scale int, col color.Color, anchor float64) {
	if s == "" {
		return
	}
	fnt := basicfont.Face7x13
	w := font.MeasureString(fnt, s).Ceil()
	h := fnt.Height

	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col),
		Face: fnt,
		Dot:  fixed.P(0, fnt.Ascent),
	}
	d.DrawString(s)

	if scale < 1 {
		scale = 1
	}
	sw, sh := w*scale, h*scale
	min := image.Point{
		X: int(x - anchor*float64(sw)),
		Y: int(y - anchor*float64(sh)),
	}
	r := image.Rectangle{Min: min, Max: min.Add(image.Pt(sw, sh))}
	draw.NearestNeighbor.Scale(dst, r, glyphs, glyphs.Bounds(), draw.Over, nil)
}

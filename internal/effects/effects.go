package effects

import (
	"fmt"
	"image"
	"image/color"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"

	"github.com/ivlev/cloud2video/internal/renderer"
)

// FrameInfo identifies the frame an overlay is drawn on.
type FrameInfo struct {
	Index     int
	Azimuth   float64
	Elevation float64
	Points    int
}

// Effect draws an overlay onto a captured frame.
type Effect interface {
	Apply(dst draw.Image, info FrameInfo) error
}

// DebugText writes the frame index and camera angles in the top-left corner.
type DebugText struct {
	Scale int
	Color color.Color
}

func (e *DebugText) Apply(dst draw.Image, info FrameInfo) error {
	scale := e.Scale
	if scale <= 0 {
		scale = max(1, dst.Bounds().Dx()/400)
	}
	col := e.Color
	if col == nil {
		col = color.RGBA{R: 0xc0, G: 0x20, B: 0x20, A: 0xff}
	}
	text := fmt.Sprintf("Frame %d | Azim %.0f | Elev %.0f | Points %d",
		info.Index, info.Azimuth, info.Elevation, info.Points)
	min := dst.Bounds().Min
	renderer.DrawTextLeft(dst, text, float64(min.X+4*scale), float64(min.Y+4*scale), scale, col)
	return nil
}

// QRStamp draws a QR code in the bottom-right corner encoding the frame
// index and azimuth, so that frame order can be checked in the encoded video.
type QRStamp struct {
	// Size is the edge length in pixels; zero picks an eighth of the frame.
	Size int
}

// Payload returns the text encoded for a frame.
func (e *QRStamp) Payload(info FrameInfo) string {
	return fmt.Sprintf("frame=%d azim=%.0f", info.Index, info.Azimuth)
}

func (e *QRStamp) Apply(dst draw.Image, info FrameInfo) error {
	q, err := qrcode.New(e.Payload(info), qrcode.Medium)
	if err != nil {
		return fmt.Errorf("qr frame %d: %w", info.Index, err)
	}
	b := dst.Bounds()
	size := e.Size
	if size <= 0 {
		size = b.Dx() / 8
	}
	code := q.Image(size)
	cb := code.Bounds()
	at := image.Pt(b.Max.X-cb.Dx(), b.Max.Y-cb.Dy())
	draw.Draw(dst, cb.Sub(cb.Min).Add(at), code, cb.Min, draw.Src)
	return nil
}

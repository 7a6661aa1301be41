package engine

import (
	"context"
	"fmt"
	"image"
	"iter"

	"golang.org/x/image/draw"

	"github.com/ivlev/cloud2video/internal/director"
	"github.com/ivlev/cloud2video/internal/effects"
	"github.com/ivlev/cloud2video/internal/renderer"
	"github.com/ivlev/cloud2video/internal/source"
)

// Rendered is the image captured for one frame together with the camera
// state it was requested with.
type Rendered struct {
	Index  int
	Camera director.CameraState
	Image  image.Image
}

// Driver steps a renderer through frames in order. It is the only user of
// its renderer.
type Driver struct {
	renderer renderer.Renderer
	sweep    director.Sweep
	effects  []effects.Effect
}

// NewDriver returns a Driver that owns r.
func NewDriver(r renderer.Renderer, sweep director.Sweep, effs ...effects.Effect) *Driver {
	return &Driver{renderer: r, sweep: sweep, effects: effs}
}

// Render sets the camera and point set for f and captures one image.
func (d *Driver) Render(f source.Frame) (Rendered, error) {
	cam := d.sweep.Camera(f.Index)
	d.renderer.SetCamera(cam.Elevation, cam.Azimuth)
	d.renderer.SetPoints(f.Points)

	img, err := d.renderer.Capture()
	if err != nil {
		return Rendered{}, fmt.Errorf("render frame %d: %w", f.Index, err)
	}
	if len(d.effects) != 0 {
		dst, ok := img.(draw.Image)
		if !ok {
			rgba := image.NewRGBA(img.Bounds())
			draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
			dst = rgba
		}
		info := effects.FrameInfo{
			Index:     f.Index,
			Azimuth:   cam.Azimuth,
			Elevation: cam.Elevation,
			Points:    len(f.Points),
		}
		for _, e := range d.effects {
			if err := e.Apply(dst, info); err != nil {
				return Rendered{}, err
			}
		}
		img = dst
	}
	return Rendered{Index: f.Index, Camera: cam, Image: img}, nil
}

// Run renders every frame of the sequence in order and passes each result
// to emit before the next frame is touched. It returns the number of frames
// emitted.
func (d *Driver) Run(ctx context.Context, frames iter.Seq2[source.Frame, error], emit func(Rendered) error) (int, error) {
	var n int
	for f, err := range frames {
		if err != nil {
			return n, err
		}
		if err := ctx.Err(); err != nil {
			return n, err
		}
		r, err := d.Render(f)
		if err != nil {
			return n, err
		}
		if err := emit(r); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// RenderAll renders frames and returns one image per frame in frame order.
func (d *Driver) RenderAll(ctx context.Context, frames []source.Frame) ([]image.Image, error) {
	images := make([]image.Image, 0, len(frames))
	_, err := d.Run(ctx, Frames(frames), func(r Rendered) error {
		images = append(images, r.Image)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// Frames adapts a slice to the sequence form accepted by Run.
func Frames(frames []source.Frame) iter.Seq2[source.Frame, error] {
	return func(yield func(source.Frame, error) bool) {
		for _, f := range frames {
			if !yield(f, nil) {
				return
			}
		}
	}
}

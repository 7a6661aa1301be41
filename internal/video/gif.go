package video

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"os"

	"golang.org/x/image/draw"
)

// GIFEncoder writes animated GIFs without external tools. Frames are held
// in memory until Close.
type GIFEncoder struct{}

func (e *GIFEncoder) Open(ctx context.Context, path string, params Params) (Stream, error) {
	if params.FPS <= 0 {
		params.FPS = DefaultFPS
	}
	return &gifStream{ctx: ctx, path: path, params: params, g: &gif.GIF{}}, nil
}

type gifStream struct {
	ctx    context.Context
	path   string
	params Params
	g      *gif.GIF
	// elapsed is the playback time of the written frames in 1/(100*FPS) s.
	elapsed int
	done    bool
}

func (s *gifStream) WriteFrame(img image.Image) error {
	if s.done {
		return fmt.Errorf("write to closed stream %s", s.path)
	}
	if err := s.ctx.Err(); err != nil {
		return err
	}
	b := img.Bounds()
	pm := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.WebSafe)
	draw.FloydSteinberg.Draw(pm, pm.Bounds(), img, b.Min)

	s.g.Image = append(s.g.Image, pm)
	s.g.Delay = append(s.g.Delay, s.nextDelay())
	return nil
}

// nextDelay returns the delay of the next frame in centiseconds. GIF delays
// are whole centiseconds, so they are spread to keep the mean rate at FPS.
func (s *gifStream) nextDelay() int {
	before := s.elapsed / s.params.FPS
	s.elapsed += 100
	return s.elapsed/s.params.FPS - before
}

func (s *gifStream) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := gif.EncodeAll(w, s.g); err != nil {
		f.Close()
		os.Remove(s.path)
		return fmt.Errorf("gif encode: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *gifStream) Abort() error {
	s.done = true
	s.g = nil
	return nil
}

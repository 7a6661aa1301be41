package engine

import (
	"context"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/draw"

	"github.com/ivlev/cloud2video/internal/director"
	"github.com/ivlev/cloud2video/internal/effects"
	"github.com/ivlev/cloud2video/internal/source"
)

// call is one request made to a recordingRenderer.
type call struct {
	Op        string
	Elevation float64
	Azimuth   float64
	Points    []source.Point
}

// recordingRenderer logs every request and captures a 1x1 image per frame.
type recordingRenderer struct {
	calls   []call
	camera  call
	points  []source.Point
	failAt  int
	capture int
}

func (r *recordingRenderer) SetCamera(elevation, azimuth float64) {
	r.camera = call{Op: "camera", Elevation: elevation, Azimuth: azimuth}
	r.calls = append(r.calls, r.camera)
}

func (r *recordingRenderer) SetPoints(points []source.Point) {
	r.points = points
	r.calls = append(r.calls, call{Op: "points", Points: points})
}

func (r *recordingRenderer) Capture() (image.Image, error) {
	r.capture++
	if r.failAt > 0 && r.capture == r.failAt {
		return nil, errors.New("device lost")
	}
	r.calls = append(r.calls, call{Op: "capture", Elevation: r.camera.Elevation, Azimuth: r.camera.Azimuth, Points: r.points})
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

// captures returns the state each captured image was taken with.
func (r *recordingRenderer) captures() []call {
	var c []call
	for _, cl := range r.calls {
		if cl.Op == "capture" {
			c = append(c, cl)
		}
	}
	return c
}

func makeFrames(n int) []source.Frame {
	frames := make([]source.Frame, n)
	for i := range frames {
		frames[i] = source.Frame{Index: i}
		for j := 0; j < i%4; j++ {
			frames[i].Points = append(frames[i].Points, source.Point{X: float64(i), Y: float64(j), Z: -1})
		}
	}
	return frames
}

func TestRenderAll(t *testing.T) {
	const n = 725
	frames := makeFrames(n)
	r := &recordingRenderer{}
	d := NewDriver(r, director.NewSweep())

	images, err := d.RenderAll(context.Background(), frames)
	if err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}
	if len(images) != n {
		t.Fatalf("expected %d images, got %d", n, len(images))
	}

	caps := r.captures()
	if len(caps) != n {
		t.Fatalf("expected %d captures, got %d", n, len(caps))
	}
	for k, c := range caps {
		if want := float64(director.AzimuthFor(k)); c.Azimuth != want {
			t.Errorf("image %d: azimuth %v, want %v", k, c.Azimuth, want)
		}
		if c.Elevation != director.DefaultElevation {
			t.Errorf("image %d: elevation %v, want %v", k, c.Elevation, director.DefaultElevation)
		}
		if diff := cmp.Diff(frames[k].Points, c.Points); diff != "" {
			t.Errorf("image %d points mismatch (-want +got):\n%s", k, diff)
		}
	}
}

func TestRenderOrder(t *testing.T) {
	r := &recordingRenderer{}
	d := NewDriver(r, director.NewSweep())
	frames := []source.Frame{
		{Index: 0, Points: []source.Point{{X: 1, Y: 2, Z: 3}}},
		{Index: 1},
	}
	if _, err := d.RenderAll(context.Background(), frames); err != nil {
		t.Fatal(err)
	}

	want := []call{
		{Op: "camera", Elevation: 30, Azimuth: 0},
		{Op: "points", Points: []source.Point{{X: 1, Y: 2, Z: 3}}},
		{Op: "capture", Elevation: 30, Azimuth: 0, Points: []source.Point{{X: 1, Y: 2, Z: 3}}},
		{Op: "camera", Elevation: 30, Azimuth: 1},
		{Op: "points"},
		{Op: "capture", Elevation: 30, Azimuth: 1},
	}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("renderer calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDeterministic(t *testing.T) {
	input := "1 2 3\n4 5 6\n\n7 8 9\n\n-1 -1 -1\n"
	run := func() []call {
		frames, err := source.ReadAll(&source.StreamSource{Parser: source.NewParser(strings.NewReader(input))})
		if err != nil {
			t.Fatal(err)
		}
		r := &recordingRenderer{}
		if _, err := NewDriver(r, director.NewSweep()).RenderAll(context.Background(), frames); err != nil {
			t.Fatal(err)
		}
		return r.captures()
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
}

func TestRunStopsOnError(t *testing.T) {
	r := &recordingRenderer{failAt: 3}
	d := NewDriver(r, director.NewSweep())
	var emitted []int
	n, err := d.Run(context.Background(), Frames(makeFrames(10)), func(rd Rendered) error {
		emitted = append(emitted, rd.Index)
		return nil
	})
	if err == nil || !strings.Contains(err.Error(), "device lost") {
		t.Fatalf("expected capture error, got %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 frames emitted, got %d", n)
	}
	if diff := cmp.Diff([]int{0, 1}, emitted); diff != "" {
		t.Errorf("emitted mismatch (-want +got):\n%s", diff)
	}
}

func TestRunParseError(t *testing.T) {
	p := source.NewParser(strings.NewReader("1 2 3\n\n1 2\n"))
	d := NewDriver(&recordingRenderer{}, director.NewSweep())
	n, err := d.Run(context.Background(), p.All(), func(Rendered) error { return nil })
	if !errors.Is(err, source.ErrMalformedLine) {
		t.Fatalf("expected malformed line error, got %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 frame before the error, got %d", n)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := NewDriver(&recordingRenderer{}, director.NewSweep())
	_, err := d.Run(ctx, Frames(makeFrames(3)), func(Rendered) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRenderEffects(t *testing.T) {
	d := NewDriver(&recordingRenderer{}, director.NewSweep(), stampEffect{})
	rd, err := d.Render(source.Frame{Index: 400, Points: []source.Point{{}}})
	if err != nil {
		t.Fatal(err)
	}
	got := rd.Image.(*image.RGBA).RGBAAt(0, 0)
	if got.R != 40 || got.G != 1 {
		t.Errorf("effect saw wrong frame info: %+v", got)
	}
}

// stampEffect writes the azimuth and point count into the first pixel.
type stampEffect struct{}

func (stampEffect) Apply(dst draw.Image, info effects.FrameInfo) error {
	dst.Set(0, 0, color.RGBA{R: uint8(info.Azimuth), G: uint8(info.Points), A: 0xff})
	return nil
}

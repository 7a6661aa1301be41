package video

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// DefaultFPS is the playback rate of the rotating-camera video.
const DefaultFPS = 8

// Params configures an output stream.
type Params struct {
	Width, Height int
	FPS           int
	Codec         string // ffmpeg encoder name; empty selects the best H.264
	Quality       int    // codec specific; zero selects a default
}

// Encoder opens output streams. Every image written to a stream becomes
// exactly one video frame, in write order.
type Encoder interface {
	Open(ctx context.Context, path string, params Params) (Stream, error)
}

// Stream receives frames for a single output file.
type Stream interface {
	WriteFrame(img image.Image) error
	// Close finalizes the output file.
	Close() error
	// Abort stops encoding and removes any partial output.
	Abort() error
}

// ErrEncoderUnavailable matches any *EncoderUnavailableError with errors.Is.
var ErrEncoderUnavailable = errors.New("video encoder unavailable")

// EncoderUnavailableError reports that an encoding backend could not be
// located or started.
type EncoderUnavailableError struct {
	Name string
	Err  error
}

func (e *EncoderUnavailableError) Error() string {
	return fmt.Sprintf("encoder %s unavailable: %v", e.Name, e.Err)
}

func (e *EncoderUnavailableError) Unwrap() error {
	return e.Err
}

func (e *EncoderUnavailableError) Is(target error) bool {
	return target == ErrEncoderUnavailable
}

// ForPath picks the encoder for an output file from its extension.
func ForPath(path string) Encoder {
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		return &GIFEncoder{}
	}
	return &FFmpegEncoder{}
}

// Checker is implemented by encoders that can verify their backend before
// any work is done.
type Checker interface {
	Check() error
}

func writeRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}

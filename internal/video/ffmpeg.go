package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/ivlev/cloud2video/internal/system"
)

// FFmpegEncoder streams raw RGBA frames into the system ffmpeg binary.
type FFmpegEncoder struct{}

// Check reports whether ffmpeg can be found on PATH.
func (e *FFmpegEncoder) Check() error {
	if _, err := system.LookupFFmpeg(); err != nil {
		return &EncoderUnavailableError{Name: system.FFmpegBinary, Err: err}
	}
	return nil
}

func (e *FFmpegEncoder) Open(ctx context.Context, path string, params Params) (Stream, error) {
	if err := e.Check(); err != nil {
		return nil, err
	}
	if params.FPS <= 0 {
		params.FPS = DefaultFPS
	}
	if params.Codec == "" {
		params.Codec = system.GetBestH264Encoder(ctx)
	}
	if params.Quality == 0 {
		params.Quality = system.DefaultQuality(params.Codec)
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, system.FFmpegBinary, buildFFmpegArgs(path, params)...)
	s := &ffmpegStream{cmd: cmd, cancel: cancel, path: path, params: params}
	cmd.Stdout = &s.out
	cmd.Stderr = &s.out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("stdin pipe error: %w", err)
	}
	s.stdin = stdin

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, &EncoderUnavailableError{Name: system.FFmpegBinary, Err: err}
	}
	return s, nil
}

// buildFFmpegArgs returns the ffmpeg command line for a rawvideo stream. The
// input and output rates are equal, so no frame is dropped or duplicated.
func buildFFmpegArgs(path string, p Params) []string {
	rate := strconv.Itoa(p.FPS)
	args := []string{
		"-hide_banner",
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"-framerate", rate,
		"-i", "-",
		"-vf", EvenSizeFilter(p.Width, p.Height),
		"-r", rate,
		"-pix_fmt", "yuv420p",
		"-c:v", p.Codec,
	}

	// Quality flag depends on the encoder.
	switch p.Codec {
	case "h264_videotoolbox":
		args = append(args, "-b:v", fmt.Sprintf("%dk", p.Quality*100))
	case "h264_nvenc":
		args = append(args, "-cq", strconv.Itoa(p.Quality))
	default: // libx264
		args = append(args, "-crf", strconv.Itoa(p.Quality), "-preset", "medium")
	}

	return append(args, path)
}

type ffmpegStream struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	cancel context.CancelFunc
	out    bytes.Buffer
	path   string
	params Params
	frames int
	done   bool
}

func (s *ffmpegStream) WriteFrame(img image.Image) error {
	if s.done {
		return fmt.Errorf("write to closed stream %s", s.path)
	}
	b := img.Bounds()
	if b.Dx() != s.params.Width || b.Dy() != s.params.Height {
		return fmt.Errorf("frame %d is %dx%d, stream is %dx%d",
			s.frames, b.Dx(), b.Dy(), s.params.Width, s.params.Height)
	}
	if err := writeRawRGBA(s.stdin, img); err != nil {
		return fmt.Errorf("write raw frame %d: %w, output: %s", s.frames, err, s.out.String())
	}
	s.frames++
	return nil
}

func (s *ffmpegStream) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	defer s.cancel()
	s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %w, output: %s", err, s.out.String())
	}
	return nil
}

func (s *ffmpegStream) Abort() error {
	if s.done {
		return nil
	}
	s.done = true
	s.stdin.Close()
	s.cancel()
	s.cmd.Wait()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

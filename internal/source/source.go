package source

import (
	"io"
	"os"
)

// Source yields frames in arrival order. Next returns io.EOF once the
// underlying stream has no more frames.
type Source interface {
	Next() (Frame, error)
	Close() error
}

// StreamSource reads frames from stdin or a file.
type StreamSource struct {
	*Parser
	path   string
	closer io.Closer
}

// Open returns a StreamSource over the named file. An empty path or "-"
// selects standard input.
func Open(path string) (*StreamSource, error) {
	if path == "" || path == "-" {
		return &StreamSource{Parser: NewParser(os.Stdin), path: "stdin"}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &StreamSource{Parser: NewParser(f), path: path, closer: f}, nil
}

// Name returns the display name of the stream.
func (s *StreamSource) Name() string {
	return s.path
}

func (s *StreamSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// ReadAll drains src, returning every frame or the first error. A stream
// without any frame is reported as ErrEmptyInput.
func ReadAll(src Source) ([]Frame, error) {
	var frames []Frame
	for {
		f, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	if len(frames) == 0 {
		return nil, ErrEmptyInput
	}
	return frames, nil
}

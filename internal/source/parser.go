package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Parser splits a line-oriented stream into frames of points.
//
// Each non-blank line contributes one point taken from its first three
// whitespace-separated tokens; further tokens are ignored. A blank line closes
// the pending frame. A blank line seen while no frame is pending ends the
// input, as does the end of the stream. The parser is single-use: it owns the
// read cursor of the underlying reader.
type Parser struct {
	r    *bufio.Reader
	line int
	next int
	err  error
}

// NewParser returns a Parser reading from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: bufio.NewReader(r)}
}

// Next returns the next frame, io.EOF when the input is exhausted, or a
// *MalformedLineError. Once an error has been returned every later call
// returns it again.
func (p *Parser) Next() (Frame, error) {
	if p.err != nil {
		return Frame{}, p.err
	}

	var points []Point
	for {
		text, err := p.readLine()
		if err != nil && err != io.EOF {
			p.err = err
			return Frame{}, err
		}
		eof := err == io.EOF

		if strings.TrimSpace(text) == "" {
			if len(points) == 0 {
				p.err = io.EOF
				return Frame{}, io.EOF
			}
			if eof {
				p.err = io.EOF
			}
			return p.emit(points), nil
		}

		pt, perr := parsePoint(text)
		if perr != nil {
			p.err = &MalformedLineError{Line: p.line, Text: text, Err: perr}
			return Frame{}, p.err
		}
		points = append(points, pt)

		if eof {
			// Last line lacked a newline; flush what we have.
			p.err = io.EOF
			return p.emit(points), nil
		}
	}
}

// All returns the remaining frames as a lazy sequence. Iteration stops after
// the first non-nil error is yielded.
func (p *Parser) All() iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		for {
			f, err := p.Next()
			if err == io.EOF {
				return
			}
			if !yield(f, err) || err != nil {
				return
			}
		}
	}
}

func (p *Parser) emit(points []Point) Frame {
	f := Frame{Index: p.next, Points: points}
	p.next++
	return f
}

// readLine returns the next line with its line terminator removed. At the end
// of the stream it returns the final partial line, possibly empty, and io.EOF.
func (p *Parser) readLine() (string, error) {
	s, err := p.r.ReadString('\n')
	if s == "" && err == io.EOF {
		return "", io.EOF
	}
	p.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, err
}

func parsePoint(text string) (Point, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return Point{}, fmt.Errorf("want 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i, f := range fields[:3] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			var nerr *strconv.NumError
			if errors.As(err, &nerr) && nerr.Err == strconv.ErrRange {
				// Overflow parses to ±Inf; keep it and let the renderer cope.
				c[i] = v
				continue
			}
			return Point{}, fmt.Errorf("coordinate %d: %w", i+1, err)
		}
		c[i] = v
	}
	return Point{X: c[0], Y: c[1], Z: c[2]}, nil
}

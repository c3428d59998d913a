package point

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLine decodes a single "x,y,z" line. Surrounding whitespace is ignored,
// as is whitespace around each field.
func ParseLine(s string) (Point, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if len(fields) != fieldCount {
		return Point{}, fmt.Errorf("%w: want %d fields, got %d in %q",
			ErrMalformedLine, fieldCount, len(fields), s)
	}

	var coords [fieldCount]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("%w: field %d %q is not a non-negative integer",
				ErrMalformedLine, i+1, f)
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// Parse reads one point per non-blank line from r, preserving input order.
// The first malformed line aborts parsing; the returned error wraps
// ErrMalformedLine and names the 1-based line number.
func Parse(r io.Reader) ([]Point, error) {
	var (
		pts  []Point
		sc   = bufio.NewScanner(r)
		line int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		p, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return pts, nil
}

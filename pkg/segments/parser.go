// Package segments reads segment files: one line per segment, six comma-separated
// numbers x0,y0,z0,x1,y1,z1.
package segments

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/segplot/pkg/geometry"
	"github.com/philipparndt/segplot/pkg/plot"
)

// FieldCount is the number of fields read from each line; extra fields are ignored
const FieldCount = 6

// ErrTooFewFields is returned for a line with less than FieldCount fields
var ErrTooFewFields = errors.New("too few fields")

// LineError reports the line that stopped a read
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseLine parses a single non-blank line into a segment
func ParseLine(line string) (geometry.Segment, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) < FieldCount {
		return geometry.Segment{}, fmt.Errorf("%w: expected %d, got %d", ErrTooFewFields, FieldCount, len(fields))
	}

	var values [FieldCount]float64
	for i := 0; i < FieldCount; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return geometry.Segment{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		values[i] = v
	}

	return geometry.NewSegment(
		geometry.NewVector3(values[0], values[1], values[2]),
		geometry.NewVector3(values[3], values[4], values[5]),
	), nil
}

// Read parses every non-blank line of r in order and hands each segment to draw.
// It stops at the first malformed line and returns the number of segments drawn so far.
func Read(reader io.Reader, draw func(geometry.Segment)) (int, error) {
	scanner := bufio.NewScanner(reader)
	count := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		segment, err := ParseLine(text)
		if err != nil {
			return count, &LineError{Line: lineNo, Text: text, Err: err}
		}

		draw(segment)
		count++
	}

	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("error reading segments: %w", err)
	}

	return count, nil
}

// Load reads a segment file and plots every segment onto fig
func Load(filename string, fig *plot.Figure) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	_, err = Read(file, func(s geometry.Segment) {
		plot.Plot(fig, s)
	})
	return err
}

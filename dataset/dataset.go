// Package dataset reads and writes 2-D point sets as whitespace-separated
// text, the interchange format of the clustering pipeline. Input is a run
// of "x y" coordinate pairs; output adds the final cluster label per line.
package dataset

import (
	"bytes"
	"strconv"

	"github.com/hupe1980/densgo/engine"
	"github.com/hupe1980/densgo/geom"
)

// DefaultMaxPoints caps a parsed dataset unless overridden.
const DefaultMaxPoints = 10000

// Options configures parsing and loading.
type Options struct {
	// MaxPoints is the largest accepted point count. Values below 1 fall
	// back to DefaultMaxPoints.
	MaxPoints int
}

// DefaultOptions contains the default dataset configuration.
var DefaultOptions = Options{
	MaxPoints: DefaultMaxPoints,
}

func applyOptions(optFns []func(o *Options)) Options {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxPoints < 1 {
		opts.MaxPoints = DefaultMaxPoints
	}
	return opts
}

// Parse decodes whitespace-separated "x y" pairs. Any run of spaces, tabs,
// or newlines separates tokens, so one pair per line and all pairs on one
// line parse the same. A dangling coordinate, a malformed number, an empty
// input, or exceeding the point cap is an input error.
func Parse(data []byte, optFns ...func(o *Options)) ([]geom.Point, error) {
	opts := applyOptions(optFns)

	fields := bytes.Fields(data)
	if len(fields) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(fields)%2 != 0 {
		return nil, &ParseError{Token: string(fields[len(fields)-1]), Index: len(fields) - 1, Reason: "dangling coordinate"}
	}

	count := len(fields) / 2
	if count > opts.MaxPoints {
		return nil, &CapacityError{Count: count, Limit: opts.MaxPoints}
	}

	points := make([]geom.Point, 0, count)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(string(fields[i]), 64)
		if err != nil {
			return nil, &ParseError{Token: string(fields[i]), Index: i, Reason: "not a number"}
		}
		y, err := strconv.ParseFloat(string(fields[i+1]), 64)
		if err != nil {
			return nil, &ParseError{Token: string(fields[i+1]), Index: i + 1, Reason: "not a number"}
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}

// FormatPoints renders points one "x y" line per point.
func FormatPoints(points []geom.Point) []byte {
	var buf bytes.Buffer
	for _, p := range points {
		writeFloat(&buf, p.X)
		buf.WriteByte(' ')
		writeFloat(&buf, p.Y)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// FormatResults renders one "x y label" line per point in input order.
// Labels use the output encoding: 0 for noise or unassigned, the cluster
// identity otherwise.
func FormatResults(points []geom.Point, labels []engine.Label) ([]byte, error) {
	if len(points) != len(labels) {
		return nil, &LengthMismatchError{Points: len(points), Labels: len(labels)}
	}
	var buf bytes.Buffer
	for i, p := range points {
		writeFloat(&buf, p.X)
		buf.WriteByte(' ')
		writeFloat(&buf, p.Y)
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatInt(labels[i].Output(), 10))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func writeFloat(buf *bytes.Buffer, v float64) {
	buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

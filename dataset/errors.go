package dataset

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when the input contains no points.
var ErrEmptyDataset = errors.New("dataset: no points")

// ParseError reports a malformed coordinate token and where it occurred.
type ParseError struct {
	Token  string
	Index  int // zero-based token index in the input
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: token %d %q: %s", e.Index, e.Token, e.Reason)
}

// CapacityError reports a dataset exceeding the configured point cap.
type CapacityError struct {
	Count int
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("dataset: %d points exceeds limit of %d", e.Count, e.Limit)
}

// LengthMismatchError reports a label slice that does not match the point
// slice it describes.
type LengthMismatchError struct {
	Points int
	Labels int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("dataset: %d points but %d labels", e.Points, e.Labels)
}

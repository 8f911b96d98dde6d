package densgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/densgo/dataset"
	"github.com/hupe1980/densgo/engine"
	"github.com/hupe1980/densgo/index"
)

var (
	// ErrNoPoints is returned when clustering is attempted over an empty
	// point set.
	ErrNoPoints = errors.New("densgo: no points")

	// ErrInvalidInput marks recoverable input and configuration errors:
	// fix the input or parameters and retry.
	ErrInvalidInput = errors.New("densgo: invalid input")

	// ErrInternal marks fatal internal-consistency violations. A run that
	// fails with ErrInternal produced no usable partition and reveals a
	// scheduling bug, not a data condition.
	ErrInternal = errors.New("densgo: internal consistency violation")
)

// ErrInvalidEpsilon indicates a non-positive or non-finite radius.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidEpsilon struct {
	Epsilon float64
	cause   error
}

func (e *ErrInvalidEpsilon) Error() string {
	return fmt.Sprintf("invalid epsilon: %v", e.Epsilon)
}

func (e *ErrInvalidEpsilon) Unwrap() error { return e.cause }

// CapacityError indicates a point set exceeding the configured cap.
type CapacityError struct {
	Points int
	Limit  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%d points exceeds limit of %d", e.Points, e.Limit)
}

// ErrPayloadMismatch indicates a payload slice whose length differs from
// the point slice.
type ErrPayloadMismatch struct {
	Points  int
	Payload int
}

func (e *ErrPayloadMismatch) Error() string {
	return fmt.Sprintf("payload mismatch: %d points, %d payload items", e.Points, e.Payload)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Input normalization: all recoverable by fixing input or config.
	if errors.Is(err, index.ErrNoPoints) || errors.Is(err, dataset.ErrEmptyDataset) {
		return fmt.Errorf("%w: %w", ErrNoPoints, err)
	}
	var ie *index.ErrInvalidEpsilon
	if errors.As(err, &ie) {
		return &ErrInvalidEpsilon{Epsilon: ie.Epsilon, cause: err}
	}
	if errors.Is(err, engine.ErrInvalidMinPts) || errors.Is(err, engine.ErrInvalidWorkers) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var ce *dataset.CapacityError
	if errors.As(err, &ce) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var pe *dataset.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// Fatal internal errors: the run must not be retried as-is.
	var lc *engine.LabelConflictError
	if errors.As(err, &lc) {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if errors.Is(err, engine.ErrIdentityExhausted) {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return err
}

package kdgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
)

// ErrBufferLength indicates a point buffer whose length is not a
// multiple of the configured dimension.
type ErrBufferLength struct {
	Length    int
	Dimension int
}

func (e *ErrBufferLength) Error() string {
	return fmt.Sprintf("buffer length %d is not a multiple of dimension %d", e.Length, e.Dimension)
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrDimensionMismatch indicates a query/point dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrPreconditionViolation is the root of every error caused by arguments
	// that break a documented precondition: coordinates out of bounds or
	// buffers too small for the declared layout.
	ErrPreconditionViolation = errors.New("frame: precondition violation")
	// ErrUnsupportedFormat is returned when a format has no known chroma
	// layout.
	ErrUnsupportedFormat = errors.New("frame: unsupported format")
)

// InsufficientBufferError tells the caller that the buffer provided is not sufficient/big
// enough to hold the whole frame.
type InsufficientBufferError struct {
	RequiredSize int
	ActualSize   int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("provided buffer doesn't meet the size requirement of length, %d (got %d)", e.RequiredSize, e.ActualSize)
}

func (e *InsufficientBufferError) Unwrap() error {
	return ErrPreconditionViolation
}

// OutOfBoundsError is returned when a pixel coordinate lies outside of the frame.
type OutOfBoundsError struct {
	Row, Col      int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("pixel (row %d, col %d) is outside of %dx%d frame", e.Row, e.Col, e.Width, e.Height)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrPreconditionViolation
}

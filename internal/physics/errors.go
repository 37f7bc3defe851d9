package physics

import "errors"

var (
	// ErrDimensionMismatch indicates a vector that cannot take part in a cross product.
	ErrDimensionMismatch = errors.New("physics: vector dimension must be 2 or 3")

	// ErrInvalidVector indicates a vector holding NaN or Inf components.
	ErrInvalidVector = errors.New("physics: invalid vector (NaN or Inf detected)")

	// ErrUnknownParam indicates SetParam was called with an unrecognized name.
	ErrUnknownParam = errors.New("physics: unknown parameter")
)

// ForceError wraps an error with the operand that caused it.
type ForceError struct {
	Op      string
	Operand string
	Wrapped error
}

func (e *ForceError) Error() string {
	return e.Op + ": " + e.Operand + ": " + e.Wrapped.Error()
}

func (e *ForceError) Unwrap() error {
	return e.Wrapped
}

package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by LayoutError. Test with errors.Is.
var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrNotBijective      = errors.New("table is not a permutation")
)

// Error codes
const (
	ErrCodeInvalidDimensions = "INVALID_DIMENSIONS"
	ErrCodeInvalidLayout     = "INVALID_LAYOUT"
	ErrCodeOutOfRange        = "OUT_OF_RANGE"
	ErrCodeNotBijective      = "NOT_BIJECTIVE"
)

// LayoutError represents a matrix layout or table error.
type LayoutError struct {
	Code    string
	Message string
	Cause   error
}

func (e *LayoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LayoutError) Unwrap() error {
	return e.Cause
}

// NewLayoutError creates a new layout error.
func NewLayoutError(code, message string, cause error) *LayoutError {
	return &LayoutError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func dimensionsError(format string, args ...any) *LayoutError {
	return NewLayoutError(ErrCodeInvalidDimensions, fmt.Sprintf(format, args...), ErrInvalidDimensions)
}

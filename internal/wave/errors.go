package wave

import "errors"

var (
	// ErrParameterBounds indicates a parameter value is outside its slider range.
	ErrParameterBounds = errors.New("wave: parameter out of valid bounds")

	// ErrInvalidGrid indicates a sample grid that cannot be built.
	ErrInvalidGrid = errors.New("wave: invalid sample grid")
)

// BoundsError reports which parameter left its range.
type BoundsError struct {
	Param string
	Value float64
	Range Range
}

func (e *BoundsError) Error() string {
	return e.Param + ": " + ErrParameterBounds.Error()
}

func (e *BoundsError) Unwrap() error {
	return ErrParameterBounds
}

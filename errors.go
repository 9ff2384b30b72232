package extinction

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/unit"
)

var (
	// ErrMissingUnit is returned when a sample grid carries no unit at all.
	ErrMissingUnit = errors.New("extinction: sample grid has no unit")

	// ErrUnsupportedDimension is returned when a sample grid carries a unit
	// that is neither a length nor an inverse length.
	ErrUnsupportedDimension = errors.New("extinction: unit is not a length or inverse length")

	// ErrZeroRV is returned by [Curve.Evaluate] when Rv is zero, which would
	// divide the b(x) component by zero.
	ErrZeroRV = errors.New("extinction: rv is zero")
)

// InvalidUnitError describes a sample grid whose unit cannot be resolved to
// inverse micrometers. It unwraps to [ErrMissingUnit] or
// [ErrUnsupportedDimension].
type InvalidUnitError struct {
	// Dims holds the dimensions of the offending unit. It is nil when the
	// grid carried no unit at all.
	Dims unit.Dimensions

	kind error
}

func (e *InvalidUnitError) Error() string {
	if e.Dims == nil {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %v", e.kind, e.Dims)
}

func (e *InvalidUnitError) Unwrap() error {
	return e.kind
}

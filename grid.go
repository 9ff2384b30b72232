package extinction

import (
	"gonum.org/v1/gonum/unit"
)

// Common wave sample scales. A grid of wavelengths in nanometers is
// NewGrid(samples, Nanometer); a grid of wavenumbers in inverse micrometers
// is NewGrid(samples, PerMicrometer). Any other unit.Uniter with length or
// inverse-length dimensions works the same way.
var (
	Micrometer = unit.Length(1e-6)
	Nanometer  = unit.Length(1e-9)
	Angstrom   = unit.Length(1e-10)

	// PerMicrometer is the wavenumber scale 1 µm⁻¹.
	PerMicrometer = unit.New(1e6, unit.Dimensions{unit.LengthDim: -1})
)

// perMetre is the reference dimension for wavenumber input.
var perMetre = unit.New(1, unit.Dimensions{unit.LengthDim: -1})

// A Grid is an ordered sequence of wave samples sharing one unit scale: the
// physical value of sample i is Samples[i] × Scale.
type Grid struct {
	Samples []float64

	// Scale is the unit of a sample with value 1. A nil Scale marks the grid
	// as dimensionless, which Resolve rejects.
	Scale unit.Uniter
}

// NewGrid returns the grid with the given samples, each a multiple of scale.
// The samples slice is retained, not copied.
func NewGrid(samples []float64, scale unit.Uniter) Grid {
	return Grid{Samples: samples, Scale: scale}
}

// Resolve converts the grid to wavenumbers in inverse micrometers. Grids of
// lengths are converted to micrometers and inverted; grids of inverse
// lengths are rescaled directly. The result is freshly allocated and aligned
// with Samples.
//
// Resolve returns an [InvalidUnitError] if the grid has no scale or if the
// scale has any other dimension.
func (g Grid) Resolve() ([]float64, error) {
	if g.Scale == nil {
		return nil, &InvalidUnitError{kind: ErrMissingUnit}
	}
	u := g.Scale.Unit()
	out := make([]float64, len(g.Samples))
	switch {
	case unit.DimensionsMatch(u, unit.Length(0)):
		um := u.Value() * 1e6 // micrometers per sample unit
		for i, s := range g.Samples {
			out[i] = 1 / (s * um)
		}
	case unit.DimensionsMatch(u, perMetre):
		perUm := u.Value() * 1e-6 // inverse micrometers per sample unit
		for i, s := range g.Samples {
			out[i] = s * perUm
		}
	default:
		return nil, &InvalidUnitError{Dims: u.Dimensions(), kind: ErrUnsupportedDimension}
	}
	return out, nil
}

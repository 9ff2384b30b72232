package extinction

import "gonum.org/v1/gonum/floats"

// DefaultRV is the total-to-selective extinction ratio of the diffuse medium
// the [SMC] law was fit for.
const DefaultRV = 2.74

// A Curve pairs one sample grid with one shape parameter under one law. It
// is read-only after construction; Evaluate recomputes from scratch on every
// call and caches nothing.
type Curve struct {
	grid Grid
	rv   float64
	law  Law
}

// New returns the curve over grid under the [SMC] law with [DefaultRV].
func New(grid Grid) Curve {
	return SMC.Curve(grid, DefaultRV)
}

// Curve returns the curve over grid with the given total-to-selective
// extinction ratio rv.
//
// Any nonzero rv is accepted as given: the law is a pure rescaling in 1/rv,
// so negative or non-finite values are the caller's to interpret. An rv of
// zero makes Evaluate fail with [ErrZeroRV].
func (l Law) Curve(grid Grid, rv float64) Curve {
	return Curve{grid: grid, rv: rv, law: l}
}

func (c Curve) Grid() Grid  { return c.grid }
func (c Curve) RV() float64 { return c.rv }
func (c Curve) Law() Law    { return c.law }

// Evaluate computes the normalized extinction A(λ)/A(V) at every grid
// sample. The result is freshly allocated, dimensionless, and positionally
// aligned with the grid.
//
// Evaluate returns [ErrZeroRV] if rv is zero and propagates the
// [InvalidUnitError] from [Grid.Resolve] unchanged.
func (c Curve) Evaluate() ([]float64, error) {
	if c.rv == 0 {
		return nil, ErrZeroRV
	}
	xs, err := c.grid.Resolve()
	if err != nil {
		return nil, err
	}
	// Classify regions once; a and b share the partition.
	regs := c.law.regions(xs)
	out := c.law.a(xs, regs)
	floats.AddScaled(out, 1/c.rv, c.law.b(xs, regs))
	return out, nil
}

package extinction

import "math"

// Region boundaries in inverse micrometers. The infrared boundary and the
// bump onset are common to all law variants; the optical/ultraviolet
// boundary is part of the coefficient table.
const (
	irBoundary = 1.1
	bumpOnset  = 5.9
)

// Optical/near-infrared polynomial coefficients in y = x − 1.82, ascending
// powers. All law variants share them.
var (
	aOptical = [8]float64{1, 0.17699, -0.50447, -0.02427, 0.72085, 0.01979, -0.77530, 0.32999}
	bOptical = [8]float64{0, 1.41338, 2.28305, 1.07233, -5.38434, -0.62251, 5.30260, -2.09002}
)

// A Law is one coefficient table for the extinction parameterization. All
// variants share the same piecewise skeleton; only the ultraviolet and bump
// coefficients and the optical/ultraviolet boundary differ.
//
// The zero value is not a valid law; use [CCM89] or [SMC].
type Law struct {
	name string

	// uvBoundary separates the optical/near-infrared and ultraviolet
	// regions, in inverse micrometers.
	uvBoundary float64

	aUV, bUV uvTerm
	fa, fb   bumpTerm
}

// CCM89 is the Galactic law of Cardelli, Clayton & Mathis (1989), with the
// optical/ultraviolet boundary at x = 3.3.
var CCM89 = Law{
	name:       "CCM89",
	uvBoundary: 3.3,
	aUV:        uvTerm{c0: 1.752, c1: -0.316, c2: -0.104, c3: 0.341, center: 4.67},
	bUV:        uvTerm{c0: -3.090, c1: 1.825, c2: 1.206, c3: 0.263, center: 4.62},
	fa:         bumpTerm{p: -0.04473, q: -0.009779},
	fb:         bumpTerm{p: 0.2130, q: 0.1207},
}

// SMC keeps the shared infrared and optical pieces of the skeleton but
// carries ultraviolet and bump coefficients refit to the Small Magellanic
// Cloud, with the boundary at x = 3.2429. The refit anchors only loosely to
// the optical polynomial, so the curve steps slightly at the boundary.
var SMC = Law{
	name:       "SMC",
	uvBoundary: 3.2429,
	aUV:        uvTerm{c0: -1.10895637, c1: 0.53314169, c2: 0.017348, c3: 0.2444, center: 4.6},
	bUV:        uvTerm{c0: 1.01154931, c1: 0.76809458, c2: 0.047807, c3: 0.2444, center: 4.6},
	fa:         bumpTerm{p: 1.0004e-3, q: 1e-4},
	fb:         bumpTerm{p: 2.8548e-1, q: 1e-4},
}

func (l Law) String() string { return l.name }

// A evaluates the wavelength-dependent component a(x) at each wavenumber in
// xs (inverse micrometers). The result is aligned with xs.
func (l Law) A(xs []float64) []float64 {
	return l.a(xs, l.regions(xs))
}

// B evaluates the shape-dependent component b(x), which [Curve.Evaluate]
// weighs by 1/rv. The result is aligned with xs.
func (l Law) B(xs []float64) []float64 {
	return l.b(xs, l.regions(xs))
}

func (l Law) a(xs []float64, regs []region) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		switch regs[i] {
		case infrared:
			out[i] = 0.574 * math.Pow(x, 1.61)
		case optical:
			out[i] = horner(x-1.82, aOptical)
		default:
			out[i] = l.aUV.eval(x) + l.fa.eval(x)
		}
	}
	return out
}

func (l Law) b(xs []float64, regs []region) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		switch regs[i] {
		case infrared:
			out[i] = -0.527 * math.Pow(x, 1.61)
		case optical:
			out[i] = horner(x-1.82, bOptical)
		default:
			out[i] = l.bUV.eval(x) + l.fb.eval(x)
		}
	}
	return out
}

// region tags one wavenumber with the piece of the law covering it. A
// boundary value belongs to the region below it: x = 1.1 is infrared and
// x = uvBoundary is optical.
type region uint8

const (
	infrared region = iota
	optical
	ultraviolet
)

// regions partitions xs in a single pass. Every sample lands in exactly one
// region; a and b reuse the same partition.
func (l Law) regions(xs []float64) []region {
	regs := make([]region, len(xs))
	for i, x := range xs {
		switch {
		case x <= irBoundary:
			regs[i] = infrared
		case x <= l.uvBoundary:
			regs[i] = optical
		default:
			regs[i] = ultraviolet
		}
	}
	return regs
}

// uvTerm is the ultraviolet base: a linear part plus a Drude-like profile
// around the 2175 Å feature.
type uvTerm struct {
	c0, c1 float64
	c2, c3 float64
	center float64
}

func (t uvTerm) eval(x float64) float64 {
	d := x - t.center
	return t.c0 + t.c1*x + t.c2/(d*d+t.c3)
}

// bumpTerm is the far-ultraviolet curvature correction. The law switches it
// on at x = 5.9 with no blending: the value is continuous there but the
// first derivative is not.
type bumpTerm struct {
	p, q float64
}

func (t bumpTerm) eval(x float64) float64 {
	if x < bumpOnset {
		return 0
	}
	d := x - bumpOnset
	return t.p*d*d + t.q*d*d*d
}

// horner evaluates the polynomial with ascending coefficients cs at y.
func horner(y float64, cs [8]float64) float64 {
	v := cs[len(cs)-1]
	for i := len(cs) - 2; i >= 0; i-- {
		v = v*y + cs[i]
	}
	return v
}

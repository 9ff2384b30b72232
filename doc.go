// Package extinction evaluates parametric interstellar extinction curves,
// computing the normalized extinction A(λ)/A(V) over a grid of wave samples.
//
// # The law
//
// The curve follows the Cardelli, Clayton & Mathis (1989) parameterization:
// the extinction at wavenumber x (in inverse micrometers) is
//
//	A(λ)/A(V) = a(x) + b(x)/Rv
//
// where Rv is the ratio of total to selective extinction and a, b are
// piecewise empirical functions covering three wavelength regions: a power
// law in the infrared (x ≤ 1.1), degree-7 polynomials in the optical and
// near-infrared, and a linear term plus a Drude-like profile in the
// ultraviolet, with an additional correction for the 2175 Å absorption bump
// at x ≥ 5.9.
//
// Two coefficient sets are provided as [Law] values. [CCM89] carries the
// published Galactic coefficients with the optical/ultraviolet boundary at
// x = 3.3. [SMC] carries ultraviolet and bump coefficients refit to the Small
// Magellanic Cloud, with the boundary at x = 3.2429 and a default Rv of 2.74
// appropriate for its diffuse medium. Both share the same algorithm skeleton;
// only the coefficient tables differ.
//
// # Units
//
// Wave samples carry an explicit physical unit, expressed with
// [gonum.org/v1/gonum/unit]. Grids given as wavelengths (any length unit) are
// converted to wavenumbers in inverse micrometers before evaluation; grids
// given as wavenumbers (any inverse length) are rescaled directly. Grids with
// no unit, or with a unit of any other dimension, are rejected rather than
// guessed at.
//
// # Literature
//
//   - [The relationship between infrared, optical, and ultraviolet extinction]
//     by Cardelli, Clayton & Mathis (1989)
//   - [A quantitative comparison of SMC, LMC, and Milky Way UV to NIR extinction curves]
//     by Gordon et al. (2003)
//
// [The relationship between infrared, optical, and ultraviolet extinction]: https://ui.adsabs.harvard.edu/abs/1989ApJ...345..245C
// [A quantitative comparison of SMC, LMC, and Milky Way UV to NIR extinction curves]: https://ui.adsabs.harvard.edu/abs/2003ApJ...594..279G
package extinction

// Package dynamics implements the frequency-response model and minimax
// tuning optimizer for a tuned mass damper (TMD) attached to a viscously
// damped single-degree-of-freedom primary structure under harmonic forcing.
//
// All quantities are dimensionless: g is the excitation frequency over the
// primary natural frequency, f is the absorber natural frequency over the
// primary natural frequency, mu is absorber mass over primary mass, and
// zeta1/zeta2 are the primary and absorber damping ratios.
package dynamics

import "math"

// ResonantSentinel is the amplitude reported when a response denominator is
// exactly zero (an undamped resonance). Downstream consumers do arithmetic
// and charting on these values, so the model never emits Inf or NaN.
const ResonantSentinel = 100.0

// WithAbsorber returns the steady-state dynamic amplification of the primary
// mass with the absorber attached, evaluated at excitation ratio g.
func WithAbsorber(g, f, zeta2, mu, zeta1 float64) float64 {
	g2 := g * g
	f2 := f * f

	num := math.Sqrt((f2-g2)*(f2-g2) + (2*zeta2*f*g)*(2*zeta2*f*g))

	d1 := (1-g2)*(f2-g2) - mu*f2*g2 - 4*zeta1*zeta2*f*g2
	d2 := 2*zeta2*f*g*(1-g2-mu*g2) + 2*zeta1*g*(f2-g2)
	den := math.Sqrt(d1*d1 + d2*d2)

	if den == 0 {
		return ResonantSentinel
	}
	return num / den
}

// WithoutAbsorber returns the dynamic amplification of the bare primary
// system, the baseline the absorber is judged against.
func WithoutAbsorber(g, zeta1 float64) float64 {
	g2 := g * g
	den := math.Sqrt((1-g2)*(1-g2) + (2*zeta1*g)*(2*zeta1*g))
	if den == 0 {
		return ResonantSentinel
	}
	return 1 / den
}

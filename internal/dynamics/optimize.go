package dynamics

import "math"

// Coordinate-descent bounds and termination. The tuning bracket comfortably
// contains the optimum for any realistic mass ratio; the damping bracket
// stays off zero so the objective remains well conditioned.
const (
	tuningLower  = 0.5
	tuningUpper  = 1.5
	dampingLower = 0.01
	dampingUpper = 0.5

	bracketTol     = 1e-4
	improvementTol = 1e-4
	maxIterations  = 20
)

// Result is the optimizer's output: the tuning that minimizes the worst-case
// primary-mass amplification, plus convergence diagnostics. Hitting the
// iteration budget is not a failure; the best candidate found is returned.
type Result struct {
	TuningRatio     float64
	AbsorberDamping float64
	PeakAmplitude   float64
	Iterations      int
	Converged       bool
}

// DenHartog returns the classical closed-form optimum for an undamped
// primary: f = 1/(1+mu), zeta2 = sqrt(3mu/(8(1+mu))). It is exact only for
// zeta1 = 0 but close enough everywhere to serve as the warm start.
func DenHartog(mu float64) (f, zeta2 float64) {
	f = 1 / (1 + mu)
	zeta2 = math.Sqrt(3 * mu / (8 * (1 + mu)))
	return f, zeta2
}

// Optimize finds the absorber tuning ratio and damping ratio that minimize
// the peak amplification for the given mass ratio and primary damping.
//
// The search alternates golden-section line minimizations along each axis,
// starting from the Den Hartog warm start, and stops once an iteration
// improves the peak by less than improvementTol. Coupling between the two
// axes is weak near the optimum, so per-axis descent converges in a handful
// of sweeps. The descent is local and greedy; it does not certify a global
// optimum for inputs outside the documented domain (mu > 0, 0 <= zeta1 < 1).
func Optimize(mu, zeta1 float64) Result {
	f, zeta2 := DenHartog(mu)
	prev := PeakAmplitude(f, zeta2, mu, zeta1)

	res := Result{TuningRatio: f, AbsorberDamping: zeta2, PeakAmplitude: prev}
	for i := 1; i <= maxIterations; i++ {
		f = GoldenSection(func(x float64) float64 {
			return PeakAmplitude(x, zeta2, mu, zeta1)
		}, tuningLower, tuningUpper, bracketTol)

		zeta2 = GoldenSection(func(x float64) float64 {
			return PeakAmplitude(f, x, mu, zeta1)
		}, dampingLower, dampingUpper, bracketTol)

		cur := PeakAmplitude(f, zeta2, mu, zeta1)
		res = Result{
			TuningRatio:     f,
			AbsorberDamping: zeta2,
			PeakAmplitude:   cur,
			Iterations:      i,
		}
		if prev-cur < improvementTol {
			res.Converged = true
			break
		}
		prev = cur
	}
	return res
}

package dynamics

import "math"

// invPhi is the inverse golden ratio, (sqrt(5)-1)/2.
var invPhi = (math.Sqrt(5) - 1) / 2

// GoldenSection minimizes fn over [lower, upper], assumed unimodal, to an
// absolute bracket width of tol and returns the bracket midpoint. Each
// iteration after the first discards the sub-interval that cannot contain
// the minimizer, keeps the surviving probe and its value, and evaluates fn
// exactly once. fn need not be differentiable; the peak-amplitude objective
// has kinks where the worst-case excitation ratio jumps between samples.
func GoldenSection(fn func(float64) float64, lower, upper, tol float64) float64 {
	a, b := lower, upper
	x1 := b - invPhi*(b-a)
	x2 := a + invPhi*(b-a)
	f1 := fn(x1)
	f2 := fn(x2)

	for b-a > tol {
		if f1 < f2 {
			b = x2
			x2, f2 = x1, f1
			x1 = b - invPhi*(b-a)
			f1 = fn(x1)
		} else {
			a = x1
			x1, f1 = x2, f2
			x2 = a + invPhi*(b-a)
			f2 = fn(x2)
		}
	}
	return (a + b) / 2
}

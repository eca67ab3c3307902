package design

import (
	"github.com/mhartwell/tmdlab/internal/dynamics"
	"github.com/mhartwell/tmdlab/pkg/models"
)

// perturbation applied to the optimal tuning ratio for the sensitivity
// curves, showing how forgiving the design is to mistuning.
const tuningPerturbation = 0.10

// BuildCurves samples the display curves for a finished design: the bare
// primary baseline, the optimized absorber, the Den Hartog reference, and a
// mistuned pair around the optimum. Sampling is presentation-only and feeds
// nothing back into the optimization.
func BuildCurves(mu, zeta1 float64, opt dynamics.Result) []models.ResponseCurve {
	refTuning, refDamping := dynamics.DenHartog(mu)

	return []models.ResponseCurve{
		{Label: "bare primary", Points: sampleBare(zeta1)},
		{Label: "optimized", Points: sampleAbsorber(opt.TuningRatio, opt.AbsorberDamping, mu, zeta1)},
		{Label: "den hartog", Points: sampleAbsorber(refTuning, refDamping, mu, zeta1)},
		{Label: "tuning -10%", Points: sampleAbsorber(opt.TuningRatio*(1-tuningPerturbation), opt.AbsorberDamping, mu, zeta1)},
		{Label: "tuning +10%", Points: sampleAbsorber(opt.TuningRatio*(1+tuningPerturbation), opt.AbsorberDamping, mu, zeta1)},
	}
}

func sampleAbsorber(f, zeta2, mu, zeta1 float64) []models.CurvePoint {
	return sample(func(g float64) float64 {
		return dynamics.WithAbsorber(g, f, zeta2, mu, zeta1)
	})
}

func sampleBare(zeta1 float64) []models.CurvePoint {
	return sample(func(g float64) float64 {
		return dynamics.WithoutAbsorber(g, zeta1)
	})
}

func sample(fn func(float64) float64) []models.CurvePoint {
	points := make([]models.CurvePoint, 0, dynamics.ScanSamples)
	for i := 0; i < dynamics.ScanSamples; i++ {
		g := dynamics.ScanRatio(i)
		points = append(points, models.CurvePoint{ExcitationRatio: g, Amplitude: fn(g)})
	}
	return points
}

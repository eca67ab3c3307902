package models

// CurvePoint is a single sample of a dynamic amplification curve.
type CurvePoint struct {
	ExcitationRatio float64 `json:"excitation_ratio" doc:"Excitation frequency over primary natural frequency"`
	Amplitude       float64 `json:"amplitude" doc:"Dimensionless amplification of the primary mass"`
}

// ResponseCurve is a labeled amplification curve for display.
type ResponseCurve struct {
	Label  string       `json:"label" doc:"Curve label, e.g. 'optimized' or 'bare primary'"`
	Points []CurvePoint `json:"points" doc:"Samples over the excitation band"`
}

// SweepPoint is the optimal design for one mass ratio in a sweep.
type SweepPoint struct {
	MassRatio       float64 `json:"mass_ratio" doc:"Absorber mass over primary mass"`
	TuningRatio     float64 `json:"tuning_ratio" doc:"Optimal absorber frequency ratio"`
	AbsorberDamping float64 `json:"absorber_damping" doc:"Optimal absorber damping ratio"`
	PeakAmplitude   float64 `json:"peak_amplitude" doc:"Minimized worst-case amplification"`
}

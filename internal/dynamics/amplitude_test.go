package dynamics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithAbsorberZeroMassMatchesBarePrimary(t *testing.T) {
	// With no absorber mass the attached system must respond exactly like
	// the bare primary, whatever tuning the phantom absorber carries.
	tunings := []struct {
		f     float64
		zeta2 float64
	}{
		{0.8, 0.05},
		{1.0, 0.2},
		{1.3, 0.0},
		{0.5, 0.45},
	}

	for _, zeta1 := range []float64{0.02, 0.1, 0.3} {
		for _, tc := range tunings {
			for g := 0.5; g <= 2.0; g += 0.1 {
				want := WithoutAbsorber(g, zeta1)
				got := WithAbsorber(g, tc.f, tc.zeta2, 0, zeta1)
				assert.InDelta(t, want, got, 1e-9*want,
					"g=%v f=%v zeta2=%v zeta1=%v", g, tc.f, tc.zeta2, zeta1)
			}
		}
	}
}

func TestWithoutAbsorberKnownValues(t *testing.T) {
	// Static case: unit amplification at zero frequency.
	assert.Equal(t, 1.0, WithoutAbsorber(0, 0.1))

	// At resonance with damping, amplification is 1/(2*zeta1).
	assert.InDelta(t, 10.0, WithoutAbsorber(1.0, 0.05), 1e-12)
}

func TestResonantSentinel(t *testing.T) {
	// g = f = 1 with mu = zeta1 = zeta2 = 0 zeroes both denominator terms
	// exactly in floating point.
	got := WithAbsorber(1, 1, 0, 0, 0)
	assert.Equal(t, ResonantSentinel, got)
	assert.False(t, math.IsInf(got, 1))
	assert.False(t, math.IsNaN(got))

	// Undamped bare primary at resonance hits the same singularity.
	assert.Equal(t, ResonantSentinel, WithoutAbsorber(1, 0))
}

func TestPeakAmplitudeCoversBothResonances(t *testing.T) {
	// For a lightly damped absorber the response has two resonance humps;
	// the scanned peak must be at least as large as the response at any
	// individual excitation ratio.
	f, zeta2, mu, zeta1 := 0.95, 0.05, 0.05, 0.02
	peak := PeakAmplitude(f, zeta2, mu, zeta1)
	for g := ScanLow; g <= ScanHigh; g += 0.017 {
		assert.GreaterOrEqual(t, peak*(1+1e-12), WithAbsorber(g, f, zeta2, mu, zeta1))
	}
	assert.Greater(t, peak, 1.0)
}

func TestScanGridCoversWindowInclusive(t *testing.T) {
	// 301 samples from 0.5 to 2.0, both endpoints exact.
	assert.Equal(t, 301, ScanSamples)
	assert.Equal(t, ScanLow, ScanRatio(0))
	assert.Equal(t, ScanHigh, ScanRatio(ScanSamples-1))
}

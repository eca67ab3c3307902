package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhartwell/tmdlab/pkg/models"
)

func TestRenderCurves(t *testing.T) {
	curves := []models.ResponseCurve{
		{
			Label: "bare primary",
			Points: []models.CurvePoint{
				{ExcitationRatio: 0.5, Amplitude: 1.32},
				{ExcitationRatio: 1.0, Amplitude: 10.0},
			},
		},
		{
			Label: "optimized",
			Points: []models.CurvePoint{
				{ExcitationRatio: 0.5, Amplitude: 1.31},
				{ExcitationRatio: 1.0, Amplitude: 3.9},
			},
		},
	}

	var buf bytes.Buffer
	err := RenderCurves(&buf, "Absorber design", curves)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "bare primary")
	assert.Contains(t, html, "optimized")
	assert.Contains(t, html, "Absorber design")
}

func TestRenderCurvesEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := RenderCurves(&buf, "empty", nil)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

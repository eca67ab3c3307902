// Package chart renders response curves as a standalone HTML line chart.
package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mhartwell/tmdlab/pkg/models"
)

// RenderCurves writes an HTML chart of the given response curves. All curves
// are expected to share the excitation axis of the first one.
func RenderCurves(w io.Writer, title string, curves []models.ResponseCurve) error {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       title,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Excitation ratio g",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Amplification",
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	if len(curves) > 0 {
		x := make([]float64, len(curves[0].Points))
		for i, p := range curves[0].Points {
			x[i] = p.ExcitationRatio
		}
		line.SetXAxis(x)
	}

	for _, curve := range curves {
		series := make([]opts.LineData, len(curve.Points))
		for i, p := range curve.Points {
			series[i] = opts.LineData{Value: p.Amplitude}
		}
		line.AddSeries(curve.Label, series)
	}

	return line.Render(w)
}

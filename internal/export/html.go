package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/san-kum/waveviz/internal/wave"
)

// NewChart builds an interactive line chart of all three curves.
func NewChart(grid wave.Grid, c wave.Curves, p wave.Params, yMin, yMax float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "Wave interference",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Waves and interference",
			Subtitle: p.String(),
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
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "t",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Min:  yMin,
			Max:  yMax,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	xs := make([]string, len(grid))
	for i, t := range grid {
		xs[i] = fmt.Sprintf("%.3f", t)
	}
	line.SetXAxis(xs).
		AddSeries("wave1", lineData(c.Wave1), seriesStyle("#1f77b4")...).
		AddSeries("wave2", lineData(c.Wave2), seriesStyle("#d62728")...).
		AddSeries("interference", lineData(c.Interference), seriesStyle("#2ca02c")...)
	return line
}

// WriteHTML renders the chart page to w.
func WriteHTML(w io.Writer, grid wave.Grid, c wave.Curves, p wave.Params, yMin, yMax float64) error {
	if c.Len() != len(grid) {
		return ErrLengthMismatch
	}
	if err := NewChart(grid, c, p, yMin, yMax).Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func lineData(ys []float64) []opts.LineData {
	out := make([]opts.LineData, len(ys))
	for i, v := range ys {
		out[i] = opts.LineData{Value: v}
	}
	return out
}

func seriesStyle(color string) []charts.SeriesOpts {
	return []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: 2}),
	}
}

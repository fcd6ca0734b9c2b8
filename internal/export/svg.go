package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/waveviz/internal/wave"
)

// SVGOptions controls CurvesToSVG. Zero values fall back to the defaults.
type SVGOptions struct {
	Width, Height int
	YMin, YMax    float64
}

func (o SVGOptions) withDefaults() SVGOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if !(o.YMax > o.YMin) {
		o.YMin, o.YMax = -4, 4
	}
	return o
}

// CurvesToSVG draws the two panels stacked vertically: both waves on top and
// the interference below, sharing the same y-range.
func CurvesToSVG(grid wave.Grid, c wave.Curves, opt SVGOptions) string {
	if len(grid) < 2 || c.Len() != len(grid) {
		return ""
	}
	opt = opt.withDefaults()
	panelH := opt.Height / 2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, opt.Width, opt.Height, opt.Width, opt.Height))

	panel := func(title string, top int, series []struct {
		y     []float64
		color string
	}) {
		sb.WriteString(fmt.Sprintf(`<g transform="translate(0,%d)">
<text x="%d" y="16" font-family="sans-serif" font-size="14" text-anchor="middle">%s</text>
<rect x="0" y="0" width="%d" height="%d" fill="none" stroke="#cccccc"/>
`, top, opt.Width/2, title, opt.Width, panelH))
		for _, s := range series {
			sb.WriteString(pathFor(grid, s.y, opt.Width, panelH, opt.YMin, opt.YMax, s.color))
		}
		sb.WriteString("</g>\n")
	}

	panel("Waves", 0, []struct {
		y     []float64
		color string
	}{{c.Wave1, "#1f77b4"}, {c.Wave2, "#d62728"}})
	panel("Interference", panelH, []struct {
		y     []float64
		color string
	}{{c.Interference, "#2ca02c"}})

	sb.WriteString("</svg>")
	return sb.String()
}

func pathFor(grid wave.Grid, ys []float64, width, height int, yMin, yMax float64, color string) string {
	x0, x1 := grid.Bounds()
	rangeX, rangeY := x1-x0, yMax-yMin

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2" d="M`, color))
	for i, t := range grid {
		x := (t - x0) / rangeX * float64(width)
		y := float64(height) - (ys[i]-yMin)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")
	return sb.String()
}

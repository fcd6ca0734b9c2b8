package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/waveviz/internal/figure"
)

const (
	fontSize  = 16
	tickSize  = 12
	yTickStep = 2.0
)

// project maps data coordinates into r. Values outside the y-range are
// pinned to the frame.
func project(r rl.Rectangle, x, x0, x1, y, y0, y1 float64) rl.Vector2 {
	if y < y0 {
		y = y0
	} else if y > y1 {
		y = y1
	}
	px := r.X + float32((x-x0)/(x1-x0))*r.Width
	py := r.Y + r.Height - float32((y-y0)/(y1-y0))*r.Height
	return rl.NewVector2(px, py)
}

func (a *App) drawAxes(ax *figure.Axes, r rl.Rectangle) {
	rl.DrawRectangleRec(r, ColBg)

	x0, x1 := a.Fig.Grid.Bounds()
	for y := ax.YMin; y <= ax.YMax; y += yTickStep {
		p := project(r, x0, x0, x1, y, ax.YMin, ax.YMax)
		rl.DrawLineV(p, rl.NewVector2(r.X+r.Width, p.Y), ColGrid)
		label := fmt.Sprintf("%g", y)
		rl.DrawText(label, int32(r.X)-rl.MeasureText(label, tickSize)-6, int32(p.Y)-tickSize/2, tickSize, ColTextDim)
	}

	for _, line := range ax.Lines {
		if len(line.Y) != len(a.Fig.Grid) {
			continue
		}
		points := make([]rl.Vector2, len(line.Y))
		for i, y := range line.Y {
			points[i] = project(r, a.Fig.Grid[i], x0, x1, y, ax.YMin, ax.YMax)
		}
		rl.DrawLineStrip(points, lineColor(line.Color))
	}

	rl.DrawRectangleLinesEx(r, 1, ColFrame)
	tw := rl.MeasureText(ax.Title, fontSize)
	rl.DrawText(ax.Title, int32(r.X+r.Width/2)-tw/2, int32(r.Y)-fontSize-4, fontSize, ColText)
}

func (a *App) drawSlider(label string, value, frac, initFrac float64, r rl.Rectangle) {
	rl.DrawRectangleRec(r, ColAxes)
	fill := r
	fill.Width = r.Width * float32(frac)
	rl.DrawRectangleRec(fill, ColFill)

	ix := r.X + r.Width*float32(initFrac)
	rl.DrawLineEx(rl.NewVector2(ix, r.Y), rl.NewVector2(ix, r.Y+r.Height), 1, ColInit)

	ty := int32(r.Y+r.Height/2) - fontSize/2
	lw := rl.MeasureText(label, fontSize)
	rl.DrawText(label, int32(r.X)-lw-8, ty, fontSize, ColText)
	rl.DrawText(fmt.Sprintf("%.2f", value), int32(r.X+r.Width)+8, ty, fontSize, ColText)
}

func (a *App) drawButton(label string, r rl.Rectangle) {
	bg := ColAxes
	if a.hover {
		bg = ColHover
	}
	rl.DrawRectangleRec(r, bg)
	rl.DrawRectangleLinesEx(r, 1, ColFrame)
	tw := rl.MeasureText(label, fontSize)
	rl.DrawText(label, int32(r.X+r.Width/2)-tw/2, int32(r.Y+r.Height/2)-fontSize/2, fontSize, ColText)
}

func lineColor(name string) rl.Color {
	if c, ok := lineColors[name]; ok {
		return c
	}
	return ColFrame
}

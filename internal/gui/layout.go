package gui

import rl "github.com/gen2brain/raylib-go/raylib"

// Figure-fraction geometry, measured from the bottom-left corner as in the
// classic plotting layout: [left, bottom, width, height].
var (
	plotBox       = [4]float32{0.25, 0.25, 0.65, 0.63}
	wavelengthBox = [4]float32{0.25, 0.10, 0.65, 0.03}
	amplitudeBox  = [4]float32{0.25, 0.15, 0.65, 0.03}
	phaseBox      = [4]float32{0.25, 0.05, 0.65, 0.03}
	resetBox      = [4]float32{0.80, 0.025, 0.10, 0.04}
)

const panelGap = 0.08

// Layout holds screen rectangles for every element of the window.
type Layout struct {
	Width, Height int
	Waves         rl.Rectangle
	Interference  rl.Rectangle
	// Sliders are ordered wavelength, amplitude, phase.
	Sliders [3]rl.Rectangle
	Reset   rl.Rectangle
}

func NewLayout(width, height int) Layout {
	box := func(b [4]float32) rl.Rectangle {
		w, h := float32(width), float32(height)
		return rl.NewRectangle(b[0]*w, h-(b[1]+b[3])*h, b[2]*w, b[3]*h)
	}

	plots := box(plotBox)
	gap := panelGap * float32(height)
	panelH := (plots.Height - gap) / 2

	return Layout{
		Width:        width,
		Height:       height,
		Waves:        rl.NewRectangle(plots.X, plots.Y, plots.Width, panelH),
		Interference: rl.NewRectangle(plots.X, plots.Y+panelH+gap, plots.Width, panelH),
		Sliders:      [3]rl.Rectangle{box(wavelengthBox), box(amplitudeBox), box(phaseBox)},
		Reset:        box(resetBox),
	}
}

// SliderAt returns the index of the slider track under p, or -1.
func (l Layout) SliderAt(p rl.Vector2) int {
	for i, r := range l.Sliders {
		if rl.CheckCollisionPointRec(p, r) {
			return i
		}
	}
	return -1
}

func (l Layout) OnReset(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, l.Reset)
}

// fraction maps an x coordinate onto a track, unclamped.
func fraction(r rl.Rectangle, x float32) float64 {
	if r.Width == 0 {
		return 0
	}
	return float64((x - r.X) / r.Width)
}

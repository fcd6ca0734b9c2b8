// Package figure wires the widgets to the wave model: three sliders, a reset
// button and the plotted curves that follow them.
package figure

import (
	"github.com/san-kum/waveviz/internal/config"
	"github.com/san-kum/waveviz/internal/wave"
	"github.com/san-kum/waveviz/internal/widget"
)

const (
	LabelWavelength = "Wavelength"
	LabelAmplitude  = "Amplitude"
	LabelPhase      = "Phase"
	LabelReset      = "Reset"

	TitleWaves        = "Waves"
	TitleInterference = "Interference"
)

// Canvas receives redraw requests. Front-ends repaint on their own schedule;
// DrawIdle only marks the view stale.
type Canvas interface {
	DrawIdle()
}

type NopCanvas struct{}

func (NopCanvas) DrawIdle() {}

// Line is one plotted curve. Y aliases the figure's curve buffers and is
// rewritten in place on every update.
type Line struct {
	Label string
	Color string
	Y     []float64
}

type Axes struct {
	Title      string
	YMin, YMax float64
	Lines      []*Line
}

type Figure struct {
	Grid       wave.Grid
	Wavelength *widget.Slider
	Amplitude  *widget.Slider
	Phase      *widget.Slider
	ResetBtn   *widget.Button
	Waves      *Axes
	Interf     *Axes

	canvas     Canvas
	curves     wave.Curves
	wave1      *Line
	wave2      *Line
	sum        *Line
	generation int
	batching   bool
}

// New builds the figure from cfg and computes the initial curves. A nil
// canvas is replaced by NopCanvas.
func New(cfg *config.Config, canvas Canvas) (*Figure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := cfg.BuildGrid()
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		canvas = NopCanvas{}
	}

	wr, ar, pr := wave.WavelengthRange, wave.AmplitudeRange, wave.PhaseRange
	f := &Figure{
		Grid:       grid,
		Wavelength: widget.NewSlider(LabelWavelength, wr.Min, wr.Max, wr.Init),
		Amplitude:  widget.NewSlider(LabelAmplitude, ar.Min, ar.Max, ar.Init),
		Phase:      widget.NewSlider(LabelPhase, pr.Min, pr.Max, pr.Init),
		ResetBtn:   widget.NewButton(LabelReset),
		canvas:     canvas,
		curves:     wave.NewCurves(len(grid)),
	}

	f.wave1 = &Line{Label: "wave1", Color: "blue"}
	f.wave2 = &Line{Label: "wave2", Color: "red"}
	f.sum = &Line{Label: "interference", Color: "green"}
	f.Waves = &Axes{Title: TitleWaves, YMin: cfg.Plot.YMin, YMax: cfg.Plot.YMax, Lines: []*Line{f.wave1, f.wave2}}
	f.Interf = &Axes{Title: TitleInterference, YMin: cfg.Plot.YMin, YMax: cfg.Plot.YMax, Lines: []*Line{f.sum}}

	// Sliders reset to the model defaults; the configured start is only
	// where they begin.
	f.Wavelength.Set(cfg.Initial.Wavelength)
	f.Amplitude.Set(cfg.Initial.Amplitude)
	f.Phase.Set(cfg.Initial.Phase)

	for _, s := range f.Sliders() {
		s.OnChanged(func(float64) { f.update() })
	}
	f.ResetBtn.OnClicked(f.Reset)

	f.update()
	return f, nil
}

// update recomputes every curve from the current slider values.
func (f *Figure) update() {
	if f.batching {
		return
	}
	wave.ComputeInto(&f.curves, f.Grid, f.Params())
	f.wave1.Y = f.curves.Wave1
	f.wave2.Y = f.curves.Wave2
	f.sum.Y = f.curves.Interference
	f.generation++
	f.canvas.DrawIdle()
}

// batch runs fn with slider callbacks muted, then recomputes once.
func (f *Figure) batch(fn func()) {
	f.batching = true
	fn()
	f.batching = false
	f.update()
}

// Reset restores λ=2π, A=1, φ=0 whatever the figure started from.
func (f *Figure) Reset() {
	f.batch(func() {
		for _, s := range f.Sliders() {
			s.Reset()
		}
	})
}

// Apply moves all three sliders at once; values are clamped by the sliders.
func (f *Figure) Apply(p wave.Params) {
	f.batch(func() {
		f.Wavelength.Set(p.Wavelength)
		f.Amplitude.Set(p.Amplitude)
		f.Phase.Set(p.Phase)
	})
}

func (f *Figure) Params() wave.Params {
	return wave.Params{
		Wavelength: f.Wavelength.Value(),
		Amplitude:  f.Amplitude.Value(),
		Phase:      f.Phase.Value(),
	}
}

// Curves returns the live buffers. Callers must not keep them across updates.
func (f *Figure) Curves() wave.Curves { return f.curves }

// Generation counts recomputations since construction.
func (f *Figure) Generation() int { return f.generation }

// Sliders returns wavelength, amplitude and phase in that order.
func (f *Figure) Sliders() []*widget.Slider {
	return []*widget.Slider{f.Wavelength, f.Amplitude, f.Phase}
}

func (f *Figure) Axes() []*Axes {
	return []*Axes{f.Waves, f.Interf}
}

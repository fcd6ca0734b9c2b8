package wave

import (
	"fmt"
	"math"
)

// Range is the closed interval a parameter may take, plus its initial value.
type Range struct {
	Min, Max, Init float64
}

// Clamp pins v into [Min, Max]. NaN maps to Init.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Init
	}
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

var (
	WavelengthRange = Range{Min: 0.1, Max: 10.0, Init: 2 * math.Pi}
	AmplitudeRange  = Range{Min: 0.1, Max: 2.0, Init: 1}
	PhaseRange      = Range{Min: 0, Max: 2 * math.Pi, Init: 0}
)

type Params struct {
	Wavelength float64 `json:"wavelength" yaml:"wavelength"`
	Amplitude  float64 `json:"amplitude" yaml:"amplitude"`
	Phase      float64 `json:"phase" yaml:"phase"`
}

func DefaultParams() Params {
	return Params{
		Wavelength: WavelengthRange.Init,
		Amplitude:  AmplitudeRange.Init,
		Phase:      PhaseRange.Init,
	}
}

// Validate checks every field against its range and returns a *BoundsError
// for the first one outside it.
func (p Params) Validate() error {
	checks := []struct {
		name string
		v    float64
		r    Range
	}{
		{"wavelength", p.Wavelength, WavelengthRange},
		{"amplitude", p.Amplitude, AmplitudeRange},
		{"phase", p.Phase, PhaseRange},
	}
	for _, c := range checks {
		if !c.r.Contains(c.v) {
			return &BoundsError{Param: c.name, Value: c.v, Range: c.r}
		}
	}
	return nil
}

func (p Params) Clamp() Params {
	return Params{
		Wavelength: WavelengthRange.Clamp(p.Wavelength),
		Amplitude:  AmplitudeRange.Clamp(p.Amplitude),
		Phase:      PhaseRange.Clamp(p.Phase),
	}
}

// WaveNumber is 2π/λ.
func (p Params) WaveNumber() float64 {
	return 2 * math.Pi / p.Wavelength
}

func (p Params) String() string {
	return fmt.Sprintf("λ=%.3f A=%.3f φ=%.3f", p.Wavelength, p.Amplitude, p.Phase)
}

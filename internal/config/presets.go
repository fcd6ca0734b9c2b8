package config

import (
	"math"
	"sort"

	"github.com/san-kum/waveviz/internal/wave"
)

var Presets = map[string]wave.Params{
	"default":      wave.DefaultParams(),
	"constructive": {Wavelength: 2, Amplitude: 1, Phase: 0},
	"destructive":  {Wavelength: 2, Amplitude: 1, Phase: math.Pi},
	"quadrature":   {Wavelength: 2, Amplitude: 1, Phase: math.Pi / 2},
	"ripple":       {Wavelength: 0.5, Amplitude: 0.5, Phase: math.Pi / 3},
	"swell":        {Wavelength: 10, Amplitude: 2, Phase: math.Pi / 4},
}

func GetPreset(name string) (wave.Params, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

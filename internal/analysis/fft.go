package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrTooShort = errors.New("analysis: need at least 2 samples")

// Bin is one line of a spectrum.
type Bin struct {
	Freq float64
	Mag  float64
}

type Spectrum struct {
	Bins       []Bin
	Resolution float64
}

// NewSpectrum transforms samples taken every spacing units. Magnitudes are
// scaled so a pure sinusoid of amplitude A on a bin centre reads A.
func NewSpectrum(samples []float64, spacing float64) (*Spectrum, error) {
	n := len(samples)
	if n < 2 || spacing <= 0 {
		return nil, ErrTooShort
	}

	coeffs := fft.FFTReal(samples)
	half := n/2 + 1
	res := 1 / (float64(n) * spacing)

	s := &Spectrum{Bins: make([]Bin, half), Resolution: res}
	for k := 0; k < half; k++ {
		mag := cmplx.Abs(coeffs[k]) / float64(n)
		if k != 0 && !(n%2 == 0 && k == n/2) {
			mag *= 2
		}
		s.Bins[k] = Bin{Freq: float64(k) * res, Mag: mag}
	}
	return s, nil
}

// Peak returns the strongest bin above DC, with its frequency refined by a
// parabola through the bin and its neighbours. A short record puts only a few
// cycles in the window, so the raw bin can be off by half a resolution step.
// A flat spectrum yields the first non-DC bin.
func (s *Spectrum) Peak() Bin {
	if len(s.Bins) < 2 {
		return Bin{}
	}
	k := 1
	for i := 2; i < len(s.Bins); i++ {
		if s.Bins[i].Mag > s.Bins[k].Mag {
			k = i
		}
	}
	best := s.Bins[k]
	if k+1 < len(s.Bins) {
		best.Freq += interpolate(s.Bins[k-1].Mag, best.Mag, s.Bins[k+1].Mag) * s.Resolution
	}
	return best
}

// interpolate returns the vertex offset, in bins, of the parabola through
// three equally spaced magnitudes. It stays within half a bin.
func interpolate(a, b, c float64) float64 {
	den := a - 2*b + c
	if den >= 0 {
		return 0
	}
	d := 0.5 * (a - c) / den
	return math.Max(-0.5, math.Min(0.5, d))
}

// Magnitudes returns the magnitude column, for plotting.
func (s *Spectrum) Magnitudes() []float64 {
	out := make([]float64, len(s.Bins))
	for i, b := range s.Bins {
		out[i] = b.Mag
	}
	return out
}

// Wavelength converts the peak frequency back into a wavelength; when
// the peak frequency is zero it is +Inf.
func (s *Spectrum) Wavelength() float64 {
	p := s.Peak()
	if p.Freq == 0 {
		return math.Inf(1)
	}
	return 1 / p.Freq
}

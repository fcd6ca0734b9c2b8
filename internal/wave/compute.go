package wave

import "math"

// Curves are the three derived sample arrays, aligned with a Grid.
type Curves struct {
	Wave1        []float64
	Wave2        []float64
	Interference []float64
}

func NewCurves(n int) Curves {
	return Curves{
		Wave1:        make([]float64, n),
		Wave2:        make([]float64, n),
		Interference: make([]float64, n),
	}
}

func (c Curves) Len() int { return len(c.Interference) }

func (c Curves) Clone() Curves {
	out := NewCurves(c.Len())
	copy(out.Wave1, c.Wave1)
	copy(out.Wave2, c.Wave2)
	copy(out.Interference, c.Interference)
	return out
}

// Compute evaluates both waves and their sum at every grid point.
func Compute(grid Grid, p Params) Curves {
	c := NewCurves(len(grid))
	ComputeInto(&c, grid, p)
	return c
}

// ComputeInto recomputes dst in full, growing its buffers when they are
// shorter than the grid.
func ComputeInto(dst *Curves, grid Grid, p Params) {
	n := len(grid)
	dst.Wave1 = resize(dst.Wave1, n)
	dst.Wave2 = resize(dst.Wave2, n)
	dst.Interference = resize(dst.Interference, n)

	k := 2 * math.Pi / p.Wavelength
	for i, t := range grid {
		w1 := p.Amplitude * math.Sin(k*t)
		w2 := p.Amplitude * math.Sin(k*t+p.Phase)
		dst.Wave1[i] = w1
		dst.Wave2[i] = w2
		dst.Interference[i] = w1 + w2
	}
}

// Sample evaluates the model at a single position.
func Sample(t float64, p Params) (w1, w2, sum float64) {
	k := 2 * math.Pi / p.Wavelength
	w1 = p.Amplitude * math.Sin(k*t)
	w2 = p.Amplitude * math.Sin(k*t+p.Phase)
	return w1, w2, w1 + w2
}

// Envelope is the peak magnitude of the interference, 2A|cos(φ/2)|.
func Envelope(p Params) float64 {
	return 2 * p.Amplitude * math.Abs(math.Cos(p.Phase/2))
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}

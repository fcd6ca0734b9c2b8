package wave

import "fmt"

const (
	DefaultSamples = 1000
	DefaultStart   = 0.0
	DefaultStop    = 10.0
)

// Grid holds the sample positions shared by every curve.
type Grid []float64

// Linspace returns n evenly spaced samples over [start, stop], both included.
func Linspace(start, stop float64, n int) (Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidGrid, n)
	}
	if !(stop > start) {
		return nil, fmt.Errorf("%w: stop %.3f must exceed start %.3f", ErrInvalidGrid, stop, start)
	}
	g := make(Grid, n)
	step := (stop - start) / float64(n-1)
	for i := range g {
		g[i] = start + float64(i)*step
	}
	g[n-1] = stop
	return g, nil
}

// DefaultGrid is 1000 samples over [0, 10].
func DefaultGrid() Grid {
	g, _ := Linspace(DefaultStart, DefaultStop, DefaultSamples)
	return g
}

// Spacing returns the distance between adjacent samples.
func (g Grid) Spacing() float64 {
	if len(g) < 2 {
		return 0
	}
	return (g[len(g)-1] - g[0]) / float64(len(g)-1)
}

func (g Grid) Bounds() (float64, float64) {
	if len(g) == 0 {
		return 0, 0
	}
	return g[0], g[len(g)-1]
}

package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/san-kum/waveviz/internal/wave"
)

var ErrUnknownParam = errors.New("analysis: unknown sweep parameter")

// SweepPoint is the interference summary for one parameter value.
type SweepPoint struct {
	Value    float64
	Params   wave.Params
	Stats    Stats
	Envelope float64
}

// Sweep varies one parameter of base across values and summarises the
// interference curve for each. Points come back in the order of values.
// Values are clamped to the slider bounds.
func Sweep(ctx context.Context, grid wave.Grid, base wave.Params, param string, values []float64) ([]SweepPoint, error) {
	set, err := setter(param)
	if err != nil {
		return nil, err
	}

	points := make([]SweepPoint, len(values))
	parallelFor(len(values), 8, func(start, end int) {
		c := wave.NewCurves(len(grid))
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			p := base
			set(&p, values[i])
			p = p.Clamp()
			wave.ComputeInto(&c, grid, p)
			points[i] = SweepPoint{
				Value:    values[i],
				Params:   p,
				Stats:    Describe(c.Interference),
				Envelope: wave.Envelope(p),
			}
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// Steps returns n evenly spaced values covering r.
func Steps(r wave.Range, n int) []float64 {
	if n < 2 {
		return []float64{r.Init}
	}
	out := make([]float64, n)
	step := r.Span() / float64(n-1)
	for i := range out {
		out[i] = r.Min + float64(i)*step
	}
	out[n-1] = r.Max
	return out
}

// Extremes returns the points with the lowest and highest RMS.
func Extremes(points []SweepPoint) (lo, hi SweepPoint) {
	best, worst := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if p.Stats.RMS < best {
			best, lo = p.Stats.RMS, p
		}
		if p.Stats.RMS > worst {
			worst, hi = p.Stats.RMS, p
		}
	}
	return lo, hi
}

// RangeFor maps a parameter name to its slider range.
func RangeFor(param string) (wave.Range, error) {
	switch param {
	case "wavelength":
		return wave.WavelengthRange, nil
	case "amplitude":
		return wave.AmplitudeRange, nil
	case "phase":
		return wave.PhaseRange, nil
	}
	return wave.Range{}, fmt.Errorf("%w: %q", ErrUnknownParam, param)
}

func setter(param string) (func(*wave.Params, float64), error) {
	switch param {
	case "wavelength":
		return func(p *wave.Params, v float64) { p.Wavelength = v }, nil
	case "amplitude":
		return func(p *wave.Params, v float64) { p.Amplitude = v }, nil
	case "phase":
		return func(p *wave.Params, v float64) { p.Phase = v }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownParam, param)
}

// parallelFor splits [0, n) into contiguous chunks, one goroutine each.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

package analysis

import "math"

type Stats struct {
	Min, Max, RMS float64
}

func Describe(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	st := Stats{Min: samples[0], Max: samples[0]}
	sum := 0.0
	for _, v := range samples {
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
		sum += v * v
	}
	st.RMS = math.Sqrt(sum / float64(len(samples)))
	return st
}

// PeakToPeak is Max - Min.
func (s Stats) PeakToPeak() float64 { return s.Max - s.Min }

package audio

import (
	"math"
	"sync"

	"github.com/san-kum/waveviz/internal/wave"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// per-sample glide toward new targets, to keep slider drags click free
	glide = 0.999
)

// Synth renders the interference as sound: two sines at a pitch set by the
// wavelength, the second shifted by the phase, summed.
type Synth struct {
	BaseFreq float64
	Volume   float64

	mu     sync.Mutex
	target wave.Params

	freq, amp, phase float64
	theta            float64
	primed           bool
}

func NewSynth(baseFreq, volume float64) *Synth {
	return &Synth{
		BaseFreq: baseFreq,
		Volume:   volume,
		target:   wave.DefaultParams(),
	}
}

// SetParams is called from the UI loop; the audio callback picks the values
// up on its next buffer.
func (s *Synth) SetParams(p wave.Params) {
	p = p.Clamp()
	s.mu.Lock()
	s.target = p
	s.mu.Unlock()
}

// Pitch maps a wavelength onto an audible frequency; the default wavelength
// of 2π sounds at BaseFreq.
func (s *Synth) Pitch(wavelength float64) float64 {
	return s.BaseFreq * 2 * math.Pi / wavelength
}

// Process fills every output channel with the same mono signal.
func (s *Synth) Process(out [][]float32) {
	if len(out) == 0 {
		return
	}
	s.mu.Lock()
	target := s.target
	s.mu.Unlock()

	tf, ta, tp := s.Pitch(target.Wavelength), target.Amplitude, target.Phase
	if !s.primed {
		s.freq, s.amp, s.phase = tf, ta, tp
		s.primed = true
	}

	dt := 1.0 / float64(SampleRate)
	// the interference peaks at 2A and A peaks at 2
	norm := s.Volume / 4

	for i := range out[0] {
		s.freq = s.freq*glide + tf*(1-glide)
		s.amp = s.amp*glide + ta*(1-glide)
		s.phase = s.phase*glide + tp*(1-glide)

		v := s.amp * (math.Sin(s.theta) + math.Sin(s.theta+s.phase)) * norm
		for ch := range out {
			out[ch][i] = float32(v)
		}

		s.theta += 2 * math.Pi * s.freq * dt
		if s.theta > 2*math.Pi {
			s.theta -= 2 * math.Pi
		}
	}
}

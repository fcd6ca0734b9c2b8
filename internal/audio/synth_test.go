package audio

import (
	"math"
	"testing"

	"github.com/san-kum/waveviz/internal/wave"
)

func render(s *Synth, buffers int) [][]float32 {
	out := [][]float32{make([]float32, BufferSize), make([]float32, BufferSize)}
	for i := 0; i < buffers; i++ {
		s.Process(out)
	}
	return out
}

func peak(buf []float32) float64 {
	m := 0.0
	for _, v := range buf {
		m = math.Max(m, math.Abs(float64(v)))
	}
	return m
}

func TestSynthDestructiveIsSilent(t *testing.T) {
	s := NewSynth(110, 0.5)
	s.SetParams(wave.Params{Wavelength: 2 * math.Pi, Amplitude: 2, Phase: math.Pi})
	out := render(s, 1)
	if p := peak(out[0]); p > 1e-6 {
		t.Errorf("expected silence, got peak %g", p)
	}
}

func TestSynthLevelFollowsAmplitude(t *testing.T) {
	s := NewSynth(110, 0.8)
	s.SetParams(wave.Params{Wavelength: 2 * math.Pi, Amplitude: 2, Phase: 0})
	out := render(s, 1)

	// 2A * volume/4 = 0.8
	if p := peak(out[0]); math.Abs(p-0.8) > 0.01 {
		t.Errorf("expected peak ~0.8, got %f", p)
	}
	for i := range out[0] {
		if out[0][i] != out[1][i] {
			t.Fatalf("channels differ at %d", i)
		}
	}
}

func TestSynthNeverClips(t *testing.T) {
	s := NewSynth(110, 1)
	s.SetParams(wave.Params{Wavelength: 50, Amplitude: 50, Phase: 0})
	out := render(s, 4)
	if p := peak(out[0]); p > 1.0001 {
		t.Errorf("expected clamped params to stay within full scale, got %f", p)
	}
}

func TestPitch(t *testing.T) {
	s := NewSynth(110, 1)
	if f := s.Pitch(2 * math.Pi); math.Abs(f-110) > 1e-9 {
		t.Errorf("expected 110 Hz at default wavelength, got %f", f)
	}
	if s.Pitch(1) <= s.Pitch(2) {
		t.Error("shorter wavelength should sound higher")
	}
}

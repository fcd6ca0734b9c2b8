package wave

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.Wavelength != 2*math.Pi {
		t.Errorf("expected wavelength 2π, got %f", p.Wavelength)
	}
	if p.Amplitude != 1 {
		t.Errorf("expected amplitude 1, got %f", p.Amplitude)
	}
	if p.Phase != 0 {
		t.Errorf("expected phase 0, got %f", p.Phase)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestRangeClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-5, 0.1},
		{0.05, 0.1},
		{0.1, 0.1},
		{4.2, 4.2},
		{10, 10},
		{10.01, 10},
		{math.Inf(1), 10},
		{math.NaN(), 2 * math.Pi},
	}
	for _, tt := range tests {
		if got := WavelengthRange.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		param string
	}{
		{"short wavelength", Params{0.05, 1, 0}, "wavelength"},
		{"long wavelength", Params{11, 1, 0}, "wavelength"},
		{"zero amplitude", Params{1, 0, 0}, "amplitude"},
		{"negative phase", Params{1, 1, -0.1}, "phase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if !errors.Is(err, ErrParameterBounds) {
				t.Fatalf("expected ErrParameterBounds, got %v", err)
			}
			var be *BoundsError
			if !errors.As(err, &be) {
				t.Fatalf("expected *BoundsError, got %T", err)
			}
			if be.Param != tt.param {
				t.Errorf("expected param %s, got %s", tt.param, be.Param)
			}
			if err := tt.p.Clamp().Validate(); err != nil {
				t.Errorf("clamped params should validate: %v", err)
			}
		})
	}
}

func TestLinspace(t *testing.T) {
	g := DefaultGrid()
	if len(g) != 1000 {
		t.Fatalf("expected 1000 samples, got %d", len(g))
	}
	if lo, hi := g.Bounds(); lo != 0 || hi != 10 {
		t.Errorf("expected bounds [0, 10], got [%v, %v]", lo, hi)
	}
	if math.Abs(g.Spacing()-10.0/999) > 1e-15 {
		t.Errorf("unexpected spacing %v", g.Spacing())
	}
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			t.Fatalf("grid not increasing at %d", i)
		}
	}
}

func TestLinspaceInvalid(t *testing.T) {
	tests := []struct {
		name        string
		start, stop float64
		n           int
	}{
		{"one sample", 0, 10, 1},
		{"reversed", 10, 0, 100},
		{"empty span", 1, 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Linspace(tt.start, tt.stop, tt.n); !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("expected ErrInvalidGrid, got %v", err)
			}
		})
	}
}

package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/waveviz/internal/wave"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Initial != wave.DefaultParams() {
		t.Errorf("expected default params, got %v", cfg.Initial)
	}
	if cfg.Plot.YMin != -4 || cfg.Plot.YMax != 4 {
		t.Errorf("expected y range [-4, 4], got [%v, %v]", cfg.Plot.YMin, cfg.Plot.YMax)
	}

	grid, err := cfg.BuildGrid()
	if err != nil {
		t.Fatalf("build grid: %v", err)
	}
	if len(grid) != 1000 {
		t.Errorf("expected 1000 samples, got %d", len(grid))
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waveviz.yaml")

	cfg := DefaultConfig()
	cfg.Initial = wave.Params{Wavelength: 3, Amplitude: 0.5, Phase: 1}
	cfg.Theme = "ocean"
	cfg.Grid.Samples = 512

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Initial != cfg.Initial {
		t.Errorf("expected %v, got %v", cfg.Initial, loaded.Initial)
	}
	if loaded.Theme != "ocean" {
		t.Errorf("expected theme ocean, got %s", loaded.Theme)
	}
	if loaded.Grid.Samples != 512 {
		t.Errorf("expected 512 samples, got %d", loaded.Grid.Samples)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("initial:\n  phase: 1.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Initial.Phase != 1.5 {
		t.Errorf("expected phase 1.5, got %f", cfg.Initial.Phase)
	}
	if cfg.Initial.Wavelength != 2*math.Pi {
		t.Errorf("expected default wavelength, got %f", cfg.Initial.Wavelength)
	}
	if cfg.Window.Width != DefaultWidth {
		t.Errorf("expected default width, got %d", cfg.Window.Width)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wavelength too small", "initial:\n  wavelength: 0.01\n"},
		{"single sample", "grid:\n  samples: 1\n"},
		{"flat y range", "plot:\n  y_min: 1\n  y_max: 1\n"},
		{"loud", "audio:\n  volume: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		p, ok := GetPreset(name)
		if !ok {
			t.Fatalf("preset %s missing", name)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("preset %s out of bounds: %v", name, err)
		}
	}
	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected no preset for unknown name")
	}
}

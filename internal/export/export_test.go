package export

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/waveviz/internal/wave"
)

func fixture() (wave.Grid, wave.Curves, wave.Params) {
	grid := wave.DefaultGrid()
	p := wave.Params{Wavelength: 2, Amplitude: 1.5, Phase: math.Pi / 3}
	return grid, wave.Compute(grid, p), p
}

func TestCurvesToSVG(t *testing.T) {
	grid, c, _ := fixture()
	svg := CurvesToSVG(grid, c, SVGOptions{})

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("expected a complete svg document")
	}
	if n := strings.Count(svg, "<path "); n != 3 {
		t.Errorf("expected 3 paths, got %d", n)
	}
	for _, title := range []string{">Waves<", ">Interference<"} {
		if !strings.Contains(svg, title) {
			t.Errorf("missing panel title %s", title)
		}
	}
}

func TestCurvesToSVGMismatch(t *testing.T) {
	grid, c, _ := fixture()
	if svg := CurvesToSVG(grid[:10], c, SVGOptions{}); svg != "" {
		t.Error("expected empty output for mismatched lengths")
	}
}

func TestCSVRoundTrip(t *testing.T) {
	grid, c, _ := fixture()
	var buf bytes.Buffer
	if err := WriteCSV(&buf, grid, c); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "t,wave1,wave2,interference" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if len(lines) != len(grid)+1 {
		t.Fatalf("expected %d lines, got %d", len(grid)+1, len(lines))
	}

	g2, c2, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for i := range grid {
		if math.Abs(g2[i]-grid[i]) > 1e-6 || math.Abs(c2.Interference[i]-c.Interference[i]) > 1e-6 {
			t.Fatalf("row %d differs", i)
		}
	}
}

func TestWriteCSVMismatch(t *testing.T) {
	grid, c, _ := fixture()
	if err := WriteCSV(&bytes.Buffer{}, grid[:5], c); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestWriteHTML(t *testing.T) {
	grid, c, p := fixture()
	var buf bytes.Buffer
	if err := WriteHTML(&buf, grid, c, p, -4, 4); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<html", "echarts", "interference", "Wave interference"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	grid, c, p := fixture()
	dir := t.TempDir()

	for _, ext := range Formats {
		path := filepath.Join(dir, "out"+ext)
		if err := WriteFile(path, grid, c, p, -4, 4); err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s: empty file", ext)
		}
	}

	err := WriteFile(filepath.Join(dir, "out.png"), grid, c, p, -4, 4)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

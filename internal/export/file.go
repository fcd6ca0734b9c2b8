package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/waveviz/internal/wave"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists the supported file extensions.
var Formats = []string{".svg", ".csv", ".html"}

// WriteFile picks the format from the file extension.
func WriteFile(path string, grid wave.Grid, c wave.Curves, p wave.Params, yMin, yMax float64) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".svg", ".csv", ".html":
	default:
		return fmt.Errorf("%w %q (want one of %v)", ErrUnknownFormat, ext, Formats)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".svg":
		svg := CurvesToSVG(grid, c, SVGOptions{YMin: yMin, YMax: yMax})
		if svg == "" {
			return ErrLengthMismatch
		}
		_, err = f.WriteString(svg)
	case ".csv":
		err = WriteCSV(f, grid, c)
	case ".html":
		err = WriteHTML(f, grid, c, p, yMin, yMax)
	}
	if err != nil {
		return err
	}
	return f.Close()
}

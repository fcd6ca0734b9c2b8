package export

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/san-kum/waveviz/internal/wave"
)

var ErrLengthMismatch = errors.New("export: curves and grid differ in length")

var CSVHeader = []string{"t", "wave1", "wave2", "interference"}

// WriteCSV writes one row per grid sample.
func WriteCSV(w io.Writer, grid wave.Grid, c wave.Curves) error {
	if c.Len() != len(grid) || len(c.Wave1) != len(grid) || len(c.Wave2) != len(grid) {
		return ErrLengthMismatch
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for i, t := range grid {
		row := []string{
			strconv.FormatFloat(t, 'f', 6, 64),
			strconv.FormatFloat(c.Wave1[i], 'f', 6, 64),
			strconv.FormatFloat(c.Wave2[i], 'f', 6, 64),
			strconv.FormatFloat(c.Interference[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses what WriteCSV produced.
func ReadCSV(r io.Reader) (wave.Grid, wave.Curves, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, wave.Curves{}, err
	}
	if len(records) < 2 {
		return nil, wave.Curves{}, io.ErrUnexpectedEOF
	}

	n := len(records) - 1
	grid := make(wave.Grid, n)
	c := wave.NewCurves(n)
	cols := [][]float64{grid, c.Wave1, c.Wave2, c.Interference}
	for i, rec := range records[1:] {
		if len(rec) != len(cols) {
			return nil, wave.Curves{}, csv.ErrFieldCount
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, wave.Curves{}, err
			}
			cols[j][i] = v
		}
	}
	return grid, c, nil
}

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/waveviz/internal/analysis"
	"github.com/san-kum/waveviz/internal/export"
	"github.com/san-kum/waveviz/internal/wave"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

var (
	ErrNotFound  = errors.New("storage: snapshot not found")
	ErrInvalidID = errors.New("storage: invalid snapshot id")
)

// Store keeps snapshots of the figure under baseDir, one directory each.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Params    wave.Params `json:"params"`
	Samples   int         `json:"samples"`
	Start     float64     `json:"start"`
	Stop      float64     `json:"stop"`
	Envelope  float64     `json:"envelope"`
	RMS       float64     `json:"rms"`
	Note      string      `json:"note,omitempty"`
}

// Save writes samples.csv and then metadata.json for the given state and
// returns the snapshot id. A failed save leaves no directory behind.
func (s *Store) Save(p wave.Params, grid wave.Grid, c wave.Curves, note string) (string, error) {
	now := s.now()
	id := fmt.Sprintf("snap_%d", now.UnixNano())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	lo, hi := grid.Bounds()
	meta := Metadata{
		ID:        id,
		Timestamp: now,
		Params:    p,
		Samples:   len(grid),
		Start:     lo,
		Stop:      hi,
		Envelope:  wave.Envelope(p),
		RMS:       analysis.Describe(c.Interference).RMS,
		Note:      note,
	}

	err := writeFile(filepath.Join(dir, samplesFile), func(f *os.File) error {
		if err := export.WriteCSV(f, grid, c); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}
		return nil
	})
	if err == nil {
		err = writeFile(filepath.Join(dir, metadataFile), func(f *os.File) error {
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			return enc.Encode(meta)
		})
	}
	if err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			log.WithError(rmErr).WithField("dir", dir).Warn("could not remove partial snapshot")
		}
		return "", err
	}

	log.WithFields(log.Fields{
		"id":     id,
		"params": p.String(),
	}).Debug("snapshot saved")
	return id, nil
}

// writeFile creates path, runs fill and reports the first of its error or
// the close error.
func writeFile(path string, fill func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// checkID rejects ids that would resolve outside the store.
func checkID(id string) error {
	if id == "" || id == "." || strings.Contains(id, "..") || strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// List returns every readable snapshot, oldest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	snaps := make([]Metadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			log.WithError(err).WithField("dir", entry.Name()).Debug("skipping unreadable snapshot")
			continue
		}
		snaps = append(snaps, *meta)
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].Timestamp.Before(snaps[j].Timestamp)
	})
	return snaps, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSamples(id string) (wave.Grid, wave.Curves, error) {
	if err := checkID(id); err != nil {
		return nil, wave.Curves{}, err
	}
	f, err := os.Open(filepath.Join(s.baseDir, id, samplesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wave.Curves{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, wave.Curves{}, err
	}
	defer f.Close()
	return export.ReadCSV(f)
}

// Package store loads and saves a ledger as a JSON document on disk.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/budgetwise/budgetwise/internal/ledger"
)

// Store reads and writes one budget file.
type Store struct {
	path string
	log  zerolog.Logger
	now  func() time.Time
}

// New creates a Store for path.
func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log.With().Str("file", path).Logger(), now: time.Now}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load restores l from the file. A missing file is not an error: l is left
// unchanged and loaded is false. On any other failure l is not modified.
func (s *Store) Load(l *ledger.Ledger) (loaded bool, err error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Warn().Msg("budget file not found, starting with empty budget")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading budget: %w", err)
	}

	st, err := Decode(bytes.NewReader(data))
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", s.path, err)
	}

	st.Apply(l)
	s.log.Debug().
		Int("expenses", len(st.Expenses)).
		Int("goals", len(st.Goals)).
		Str("last_updated", st.LastUpdated).
		Msg("budget loaded")
	return true, nil
}

// Save overwrites the file with the ledger's full state.
func (s *Store) Save(l *ledger.Ledger) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, l, s.now()); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing budget: %w", err)
	}

	s.log.Debug().Int("bytes", buf.Len()).Msg("budget saved")
	return nil
}

// Package state persists timer snapshots between host runs as CBOR.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/airbornedetergent/frametimer/timer"
)

// Version is the current state file format version.
const Version = 1

type File struct {
	Version int              `cbor:"1,keyasint"`
	SavedAt time.Time        `cbor:"2,keyasint"`
	Timers  []timer.Snapshot `cbor:"3,keyasint,omitempty"`
}

// Store reads and writes one state file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Save writes the snapshots through a temp file and a rename.
func (s *Store) Save(snaps []timer.Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := cbor.Marshal(File{
		Version: Version,
		SavedAt: time.Now().UTC(),
		Timers:  snaps,
	})
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}

// Load returns nil, nil when no state file exists.
func (s *Store) Load() ([]timer.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	var f File
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode state %s: %w", s.path, err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("state %s: unsupported version %d", s.path, f.Version)
	}
	return f.Timers, nil
}

// Clear removes the state file.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

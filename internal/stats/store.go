package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
)

// Store persists a snapshot as a JSON file
type Store struct {
	filePath string
}

// NewStore creates a new snapshot store
func NewStore(filePath string) *Store {
	return &Store{
		filePath: filePath,
	}
}

// Save writes the snapshot to disk as JSON
func (s *Store) Save(snap *Snapshot) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

// Load reads a snapshot from disk
func (s *Store) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return nil, errors.StatsNotFound(s.filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.StatsParseError(s.filePath, err)
	}
	if snap.Files == nil {
		snap.Files = make(map[string]*FileStats)
	}
	return &snap, nil
}

// Exists checks if the stats file exists
func (s *Store) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Delete removes the stats file
func (s *Store) Delete() error {
	if !s.Exists() {
		return nil
	}
	return os.Remove(s.filePath)
}

// Path returns the file path where the snapshot is stored
func (s *Store) Path() string {
	return s.filePath
}

// SaveCollector saves the collector's snapshot to filePath
func SaveCollector(collector *Collector, filePath string) error {
	return NewStore(filePath).Save(collector.Snapshot())
}

// LoadToCollector loads a snapshot into a new collector
func LoadToCollector(filePath string) (*Collector, error) {
	snap, err := NewStore(filePath).Load()
	if err != nil {
		return nil, err
	}

	collector := NewCollector()
	collector.snapshot = snap
	return collector, nil
}

// Package store implements persistence of graph snapshots as flat JSON files.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.SnapshotStore using a flat JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a new SnapshotStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{
		path: filepath.Clean(path),
	}
}

// Load reads the persisted snapshot. A missing or empty file yields an empty
// snapshot.
func (s *Store) Load() (*domain.GraphSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewGraphSnapshot(nil), nil
		}
		return nil, zerr.Wrap(err, "failed to read snapshot store")
	}

	if len(data) == 0 {
		return domain.NewGraphSnapshot(nil), nil
	}

	var nodes map[domain.NodeID]*domain.NodeSnapshot
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal snapshot store")
	}

	return domain.NewGraphSnapshot(nodes), nil
}

// Save persists the snapshot, creating parent directories as needed.
func (s *Store) Save(snapshot *domain.GraphSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodes := make(map[domain.NodeID]*domain.NodeSnapshot, snapshot.Len())
	for id, node := range snapshot.Nodes() {
		nodes[id] = node
	}

	data, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for snapshot store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write snapshot store")
	}

	return nil
}

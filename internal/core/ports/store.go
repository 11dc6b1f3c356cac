package ports

import "go.trai.ch/strata/internal/core/domain"

// SnapshotStore persists committed graph snapshots between invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Load reads the persisted snapshot. A missing store yields an empty
	// snapshot, not an error.
	Load() (*domain.GraphSnapshot, error)

	// Save writes the snapshot, replacing any previous state.
	Save(snapshot *domain.GraphSnapshot) error
}

package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/store"
	"go.trai.ch/strata/internal/core/domain"
)

func sampleSnapshot() *domain.GraphSnapshot {
	alice := domain.NewEntitySnapshot(map[string]any{"id": "1", "name": "Alice"})
	alice.Inbound = []domain.Edge{{ID: "ROOT_QUERY", Path: domain.Path{domain.Field("viewer")}}}

	root := domain.NewEntitySnapshot(map[string]any{
		"viewer": map[string]any{"id": "1", "name": "Alice"},
	})
	root.Outbound = []domain.Edge{{ID: "1", Path: domain.Path{domain.Field("viewer")}}}

	return domain.NewGraphSnapshot(map[domain.NodeID]*domain.NodeSnapshot{
		"1":          alice,
		"ROOT_QUERY": root,
	})
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	s := store.NewStore(path)

	require.NoError(t, s.Save(sampleSnapshot()))

	loaded, err := s.Load()
	require.NoError(t, err)

	assert.Equal(t, 2, loaded.Len())

	alice, ok := loaded.GetNodeSnapshot("1")
	require.True(t, ok)
	assert.Equal(t, domain.KindEntity, alice.Kind)
	assert.True(t, domain.HasEdge(alice.Inbound, domain.Edge{ID: "ROOT_QUERY", Path: domain.Path{domain.Field("viewer")}}))

	data, ok := alice.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice", data["name"])
}

func TestStore_LoadMissingFileYieldsEmptySnapshot(t *testing.T) {
	s := store.NewStore(filepath.Join(t.TempDir(), "absent.json"))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestStore_LoadEmptyFileYieldsEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	loaded, err := store.NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestStore_LoadCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := store.NewStore(path).Load()
	assert.Error(t, err)
}

func TestStore_SaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "cache.json")

	require.NoError(t, store.NewStore(path).Save(sampleSnapshot()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_SerializedFormIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, store.NewStore(path).Save(sampleSnapshot()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "snapshot", data)
}

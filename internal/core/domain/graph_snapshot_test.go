package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/strata/internal/core/domain"
)

func TestGraphSnapshot_NilReceiverBehavesEmpty(t *testing.T) {
	var g *domain.GraphSnapshot

	_, ok := g.GetNodeSnapshot("1")
	assert.False(t, ok)
	assert.Nil(t, g.GetNodeData("1"))
	assert.False(t, g.Has("1"))
	assert.Equal(t, 0, g.Len())

	for range g.Nodes() {
		t.Fatal("nil snapshot must not yield nodes")
	}
}

func TestGraphSnapshot_Access(t *testing.T) {
	nodes := map[domain.NodeID]*domain.NodeSnapshot{
		"1": domain.NewEntitySnapshot(map[string]any{"id": "1", "name": "Alice"}),
	}
	g := domain.NewGraphSnapshot(nodes)

	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Has("1"))
	assert.False(t, g.Has("2"))

	snap, ok := g.GetNodeSnapshot("1")
	assert.True(t, ok)
	assert.Equal(t, domain.KindEntity, snap.Kind)

	data, ok := g.GetNodeData("1").(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "Alice", data["name"])
}

func TestGraphSnapshot_NilMapYieldsEmpty(t *testing.T) {
	g := domain.NewGraphSnapshot(nil)
	assert.Equal(t, 0, g.Len())
}

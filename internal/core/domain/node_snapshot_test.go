package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/core/domain"
)

func TestNodeKind_TextRoundtrip(t *testing.T) {
	for _, kind := range []domain.NodeKind{domain.KindEntity, domain.KindParameterizedValue} {
		text, err := kind.MarshalText()
		require.NoError(t, err)

		var decoded domain.NodeKind
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, kind, decoded)
	}

	var invalid domain.NodeKind
	assert.Error(t, invalid.UnmarshalText([]byte("bogus")))
}

func TestNodeSnapshot_CloneIsolatesEdgeLists(t *testing.T) {
	original := domain.NewEntitySnapshot(map[string]any{"id": "1"})
	original.Inbound = domain.AddEdge(original.Inbound, domain.Edge{ID: "ROOT_QUERY"})

	clone := original.Clone()
	clone.Inbound = domain.AddEdge(clone.Inbound, domain.Edge{ID: "2"})
	clone.Outbound = domain.AddEdge(clone.Outbound, domain.Edge{ID: "3"})

	assert.Len(t, original.Inbound, 1)
	assert.Empty(t, original.Outbound)
	assert.Len(t, clone.Inbound, 2)
}

func TestNodeSnapshot_JSONShape(t *testing.T) {
	snap := domain.NewParameterizedSnapshot("value")
	snap.Inbound = []domain.Edge{{ID: "1", Path: domain.Path{domain.Field("history")}}}

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"parameterized","data":"value","inbound":[{"id":"1","path":["history"]}]}`, string(data))

	var decoded domain.NodeSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, domain.KindParameterizedValue, decoded.Kind)
	assert.Equal(t, "value", decoded.Data)
	require.Len(t, decoded.Inbound, 1)
	assert.True(t, decoded.Inbound[0].Equal(snap.Inbound[0]))
}

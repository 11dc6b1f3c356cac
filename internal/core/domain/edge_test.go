package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/strata/internal/core/domain"
)

func TestEdge_Equal(t *testing.T) {
	a := domain.Edge{ID: "1", Path: domain.Path{domain.Field("friend")}}
	b := domain.Edge{ID: "1", Path: domain.Path{domain.Field("friend")}}
	c := domain.Edge{ID: "1", Path: domain.Path{domain.Field("enemy")}}
	d := domain.Edge{ID: "2", Path: domain.Path{domain.Field("friend")}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestAddEdge_Deduplicates(t *testing.T) {
	e := domain.Edge{ID: "1", Path: domain.Path{domain.Field("friend")}}

	list := domain.AddEdge(nil, e)
	list = domain.AddEdge(list, e)

	assert.Len(t, list, 1)
	assert.True(t, domain.HasEdge(list, e))
}

func TestRemoveEdge_PreservesOrder(t *testing.T) {
	a := domain.Edge{ID: "1"}
	b := domain.Edge{ID: "2"}
	c := domain.Edge{ID: "3"}

	list := []domain.Edge{a, b, c}
	list = domain.RemoveEdge(list, b)

	assert.Equal(t, []domain.Edge{a, c}, list)
	assert.False(t, domain.HasEdge(list, b))
}

func TestRemoveEdge_MissingIsNoOp(t *testing.T) {
	a := domain.Edge{ID: "1"}
	list := []domain.Edge{a}

	list = domain.RemoveEdge(list, domain.Edge{ID: "9"})
	assert.Equal(t, []domain.Edge{a}, list)
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/strata/internal/core/domain"
)

func TestFieldNode_ChildIsNilSafe(t *testing.T) {
	var f *domain.FieldNode
	assert.Nil(t, f.Child("anything"))
}

func TestFieldNode_FieldAtSkipsIndexes(t *testing.T) {
	history := &domain.FieldNode{HasArgs: true, Args: map[string]any{"limit": 10}}
	fields := &domain.FieldNode{
		Children: map[string]*domain.FieldNode{
			"friends": {
				Children: map[string]*domain.FieldNode{
					"history": history,
				},
			},
		},
	}

	// Index parts are transparent: the field map entry applies to every
	// array element.
	got := fields.FieldAt(domain.Path{
		domain.Field("friends"),
		domain.Index(2),
		domain.Field("history"),
	})
	assert.Same(t, history, got)

	assert.Nil(t, fields.FieldAt(domain.Path{domain.Field("absent")}))
	assert.Nil(t, fields.FieldAt(domain.Path{domain.Field("friends"), domain.Field("absent"), domain.Field("deeper")}))
}

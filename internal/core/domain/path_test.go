package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/core/domain"
)

func TestPathPart_FieldAndIndexAreDistinct(t *testing.T) {
	field := domain.Field("1")
	index := domain.Index(1)

	assert.NotEqual(t, field, index)

	fieldJSON, err := json.Marshal(field)
	require.NoError(t, err)
	indexJSON, err := json.Marshal(index)
	require.NoError(t, err)

	assert.Equal(t, `"1"`, string(fieldJSON))
	assert.Equal(t, `1`, string(indexJSON))
}

func TestPathPart_Accessors(t *testing.T) {
	key, ok := domain.Field("name").Key()
	assert.True(t, ok)
	assert.Equal(t, "name", key)

	_, ok = domain.Field("name").Index()
	assert.False(t, ok)

	idx, ok := domain.Index(3).Index()
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestPathPart_JSONRoundtrip(t *testing.T) {
	parts := domain.Path{domain.Field("friends"), domain.Index(0), domain.Field("name")}

	data, err := json.Marshal(parts)
	require.NoError(t, err)
	assert.Equal(t, `["friends",0,"name"]`, string(data))

	var decoded domain.Path
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, parts.Equal(decoded))
}

func TestPathPart_UnmarshalRejectsOtherTypes(t *testing.T) {
	var p domain.PathPart
	err := json.Unmarshal([]byte(`true`), &p)
	assert.Error(t, err)
}

func TestPath_String(t *testing.T) {
	p := domain.Path{domain.Field("friends"), domain.Index(0), domain.Field("name")}
	assert.Equal(t, ".friends[0].name", p.String())
}

func TestPath_ChildDoesNotMutateParent(t *testing.T) {
	parent := domain.Path{domain.Field("a")}
	childOne := parent.Child(domain.Field("b"))
	childTwo := parent.Child(domain.Field("c"))

	assert.True(t, parent.Equal(domain.Path{domain.Field("a")}))
	assert.True(t, childOne.Equal(domain.Path{domain.Field("a"), domain.Field("b")}))
	assert.True(t, childTwo.Equal(domain.Path{domain.Field("a"), domain.Field("c")}))
}

func TestPath_Equal(t *testing.T) {
	a := domain.Path{domain.Field("x"), domain.Index(1)}
	b := domain.Path{domain.Field("x"), domain.Index(1)}
	c := domain.Path{domain.Field("x"), domain.Field("1")}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(a[:1]))
}

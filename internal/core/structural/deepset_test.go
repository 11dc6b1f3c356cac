package structural_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/structural"
)

func TestSetAtPath_EmptyPathReplacesRoot(t *testing.T) {
	got := structural.SetAtPath(map[string]any{"a": 1}, nil, nil, "replaced")
	assert.Equal(t, "replaced", got)
}

func TestSetAtPath_ClonesSharedSpineOnly(t *testing.T) {
	base := map[string]any{
		"touched":   map[string]any{"value": 1},
		"untouched": map[string]any{"value": 2},
	}

	got := structural.SetAtPath(base, base, domain.Path{domain.Field("touched"), domain.Field("value")}, 9)

	gm, ok := got.(map[string]any)
	require.True(t, ok)

	// Base is untouched.
	assert.Equal(t, 1, base["touched"].(map[string]any)["value"])
	assert.Equal(t, 9, gm["touched"].(map[string]any)["value"])

	// The root and the touched spine are new objects; the untouched sibling
	// stays shared.
	base["rootProbe"] = true
	assert.NotContains(t, gm, "rootProbe")
	baseUntouched := base["untouched"].(map[string]any)
	gotUntouched := gm["untouched"].(map[string]any)
	baseUntouched["probe"] = true
	assert.Equal(t, true, gotUntouched["probe"])
}

func TestSetAtPath_MutatesOwnedSpineInPlace(t *testing.T) {
	base := map[string]any{"a": map[string]any{"x": 1}}

	first := structural.SetAtPath(base, base, domain.Path{domain.Field("a"), domain.Field("x")}, 2)
	second := structural.SetAtPath(first, base, domain.Path{domain.Field("a"), domain.Field("y")}, 3)

	// The working copy keeps its object identity across writes.
	fm := first.(map[string]any)
	sm := second.(map[string]any)
	fm["probe"] = true
	assert.Equal(t, true, sm["probe"])
	assert.Equal(t, 2, sm["a"].(map[string]any)["x"])
	assert.Equal(t, 3, sm["a"].(map[string]any)["y"])
}

func TestSetAtPath_GrowsSlices(t *testing.T) {
	got := structural.SetAtPath(nil, nil, domain.Path{domain.Field("list"), domain.Index(2)}, "c")

	list, ok := got.(map[string]any)["list"].([]any)
	require.True(t, ok)
	require.Len(t, list, 3)
	assert.Nil(t, list[0])
	assert.Nil(t, list[1])
	assert.Equal(t, "c", list[2])
}

func TestSetAtPath_ReplacesWrongShape(t *testing.T) {
	base := map[string]any{"a": "scalar"}
	got := structural.SetAtPath(base, base, domain.Path{domain.Field("a"), domain.Field("b")}, 1)

	inner, ok := got.(map[string]any)["a"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, inner["b"])
}

func TestGetAtPath(t *testing.T) {
	value := map[string]any{
		"friends": []any{
			map[string]any{"name": "Bob"},
		},
	}

	got := structural.GetAtPath(value, domain.Path{domain.Field("friends"), domain.Index(0), domain.Field("name")})
	assert.Equal(t, "Bob", got)

	assert.Nil(t, structural.GetAtPath(value, domain.Path{domain.Field("friends"), domain.Index(5)}))
	assert.Nil(t, structural.GetAtPath(value, domain.Path{domain.Field("absent"), domain.Field("deeper")}))
	assert.Nil(t, structural.GetAtPath("scalar", domain.Path{domain.Field("a")}))
}

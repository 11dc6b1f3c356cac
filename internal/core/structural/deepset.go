// Package structural implements the structural-sharing primitives the
// snapshot editor is built on: a path-based copy-on-write setter and a
// payload-tree walker. Value trees are JSON-shaped: map[string]any,
// []any, and scalars.
package structural

import (
	"maps"
	"reflect"
	"slices"

	"go.trai.ch/strata/internal/core/domain"
)

// SetAtPath writes value at path inside target and returns the resulting
// root. target is the transaction's working value for a node and base is
// the parent snapshot's value for the same node; any part of the spine
// still shared with base is shallow-cloned before being touched, while
// spine objects already owned by the transaction are mutated in place.
// Siblings off the path stay shared with base. base is never mutated.
func SetAtPath(target, base any, path domain.Path, value any) any {
	if len(path) == 0 {
		return value
	}

	if key, ok := path[0].Key(); ok {
		m := ownedMap(target, base)
		var childBase any
		if bm, ok := base.(map[string]any); ok {
			childBase = bm[key]
		}
		m[key] = SetAtPath(m[key], childBase, path[1:], value)
		return m
	}

	idx, _ := path[0].Index()
	s := ownedSlice(target, base, idx+1)
	var childBase any
	if bs, ok := base.([]any); ok && idx < len(bs) {
		childBase = bs[idx]
	}
	s[idx] = SetAtPath(s[idx], childBase, path[1:], value)
	return s
}

// GetAtPath reads the value at path, or nil when the path does not resolve.
func GetAtPath(value any, path domain.Path) any {
	cur := value
	for _, part := range path {
		if key, ok := part.Key(); ok {
			m, isMap := cur.(map[string]any)
			if !isMap {
				return nil
			}
			cur = m[key]
			continue
		}
		idx, _ := part.Index()
		s, isSlice := cur.([]any)
		if !isSlice || idx < 0 || idx >= len(s) {
			return nil
		}
		cur = s[idx]
	}
	return cur
}

// ownedMap returns a map the transaction may mutate at this position.
func ownedMap(target, base any) map[string]any {
	tm, ok := target.(map[string]any)
	if !ok {
		return make(map[string]any)
	}
	if sameRef(target, base) {
		return maps.Clone(tm)
	}
	return tm
}

// ownedSlice returns a slice of at least minLen the transaction may mutate.
func ownedSlice(target, base any, minLen int) []any {
	ts, ok := target.([]any)
	if !ok {
		return make([]any, minLen)
	}
	if sameRef(target, base) {
		ts = slices.Clone(ts)
	}
	if len(ts) < minLen {
		grown := make([]any, minLen)
		copy(grown, ts)
		return grown
	}
	return ts
}

// sameRef reports whether two values are the same map or slice object.
// Scalars are never "shared"; assigning them copies.
func sameRef(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != vb.Kind() {
		return false
	}
	switch va.Kind() {
	case reflect.Map:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len()
	default:
		return false
	}
}

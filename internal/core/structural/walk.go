package structural

import (
	"maps"
	"reflect"
	"slices"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/zerr"
)

type hole struct{}

// Hole marks a missing array element in a programmatically built payload.
// Go slices cannot be sparse, so producers substitute this sentinel where
// other representations would have a hole. The editor coerces it to null
// and reports a warning.
var Hole any = hole{}

// IsHole reports whether v is the sparse-array sentinel.
func IsHole(v any) bool {
	return v == Hole
}

// VisitFunc inspects one payload value paired with the stored value at the
// same path. Returning skip prevents descent into the payload value's
// children; a non-nil error aborts the walk.
type VisitFunc func(path domain.Path, payload, stored any) (skip bool, err error)

// Walk visits every path present in payload, pairing each payload value
// with the stored value at the same location. Traversal uses a LIFO
// worklist; the order paths are visited in is unspecified, but each path is
// visited exactly once. Encountering the same object or array twice in one
// walk fails with a cycle error, so non-entity values must form a tree;
// the visitor is expected to cut references off before descent.
func Walk(payload, stored any, visit VisitFunc) error {
	type frame struct {
		path    domain.Path
		payload any
		stored  any
	}

	visited := make(map[uintptr]struct{})
	stack := []frame{{payload: payload, stored: stored}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		skip, err := visit(f.path, f.payload, f.stored)
		if err != nil {
			return err
		}
		if skip {
			continue
		}

		switch pv := f.payload.(type) {
		case map[string]any:
			if err := mark(visited, pv, f.path); err != nil {
				return err
			}
			sm, _ := f.stored.(map[string]any)
			keys := slices.Sorted(maps.Keys(pv))
			for i := len(keys) - 1; i >= 0; i-- {
				key := keys[i]
				var sv any
				if sm != nil {
					sv = sm[key]
				}
				stack = append(stack, frame{f.path.Child(domain.Field(key)), pv[key], sv})
			}
		case []any:
			if len(pv) == 0 {
				continue
			}
			if err := mark(visited, pv, f.path); err != nil {
				return err
			}
			ss, _ := f.stored.([]any)
			for i := len(pv) - 1; i >= 0; i-- {
				var sv any
				if i < len(ss) {
					sv = ss[i]
				}
				stack = append(stack, frame{f.path.Child(domain.Index(i)), pv[i], sv})
			}
		}
	}
	return nil
}

// mark registers a container in the visited set, failing on a repeat visit.
func mark(visited map[uintptr]struct{}, container any, path domain.Path) error {
	ptr := reflect.ValueOf(container).Pointer()
	if _, seen := visited[ptr]; seen {
		return zerr.With(zerr.Wrap(domain.ErrCycle, "container visited twice"), "path", path.String())
	}
	visited[ptr] = struct{}{}
	return nil
}

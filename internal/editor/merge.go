package editor

import (
	"reflect"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/structural"
)

// refEdit is a deferred reference change collected during the payload walk
// and applied in a second pass, once every touched node has a stable new
// version.
type refEdit struct {
	containerID domain.NodeID
	path        domain.Path
	prevID      domain.NodeID
	nextID      domain.NodeID
	// removeOnly drops the prevID edge without writing a value; the
	// position's new value, if any, goes through the normal value path.
	removeOnly bool
}

// mergeJob is one container to walk: an entity or a parameterized value
// node paired with the payload subtree that describes it.
type mergeJob struct {
	containerID domain.NodeID
	kind        domain.NodeKind
	payload     any
	fields      *domain.FieldNode
	// refAtRoot enables reference detection at the container's own root,
	// so a parameterized value can point straight at an entity. Entity
	// containers keep it off: their root value is themselves.
	refAtRoot bool
}

// mergePayloadValues walks the payload container by container, applying
// scalar and structural edits immediately and collecting reference edits
// for the second pass. Each payload object is walked at most once as a
// container root, which is what makes cyclic entity graphs safe.
func (e *Editor) mergePayloadValues(q *domain.ParsedQuery, payload map[string]any) ([]refEdit, error) {
	var edits []refEdit
	roots := map[uintptr]struct{}{reflect.ValueOf(payload).Pointer(): {}}
	stack := []mergeJob{{
		containerID: q.RootID,
		kind:        domain.KindEntity,
		payload:     payload,
		fields:      q.Fields,
	}}

	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := e.mergeContainer(job, roots, &stack, &edits); err != nil {
			return nil, err
		}
	}
	return edits, nil
}

// mergeContainer walks one container's payload against its stored value.
func (e *Editor) mergeContainer(job mergeJob, roots map[uintptr]struct{}, stack *[]mergeJob, edits *[]refEdit) error {
	stored := e.currentData(job.containerID)

	return structural.Walk(job.payload, stored, func(path domain.Path, pv, sv any) (bool, error) {
		atRoot := len(path) == 0

		// Parameterized fields divert the walk through their indirection
		// node; the container's own value tree never holds their results.
		// Pure-index paths address positions inside an already resolved
		// field value and never divert, otherwise every element of an
		// array-valued parameterized field would resolve back to the
		// container's own field node.
		if !atRoot && pathHasKey(path) {
			if fn := job.fields.FieldAt(path); fn != nil && fn.HasArgs {
				paramID := NodeIDForParameterizedValue(job.containerID, path, fn.Args)
				e.ensureParameterizedNode(job.containerID, job.kind, path, paramID)
				e.enqueue(stack, roots, mergeJob{
					containerID: paramID,
					kind:        domain.KindParameterizedValue,
					payload:     pv,
					fields:      fn,
					refAtRoot:   true,
				})
				return true, nil
			}
		}

		if structural.IsHole(pv) {
			e.warn("sparse array hole coerced to null", map[string]any{
				"container": string(job.containerID),
				"path":      path.String(),
			})
			pv = nil
		}

		if !atRoot || job.refAtRoot {
			if skip := e.visitReference(job, path, pv, sv, roots, stack, edits); skip {
				return true, nil
			}
		}

		switch val := pv.(type) {
		case map[string]any:
			// An empty object replaces wholesale when the stored value
			// differs structurally; anything else merges per key. The rule
			// never applies to an entity container's own root: an empty
			// payload there contributes no fields, it does not erase the
			// entity's stored value tree.
			if len(val) == 0 {
				if atRoot && job.kind == domain.KindEntity {
					return true, nil
				}
				if sm, ok := sv.(map[string]any); !ok || len(sm) > 0 {
					e.setValue(job.containerID, job.kind, path, map[string]any{})
				}
				return true, nil
			}
			return false, nil

		case []any:
			// Arrays are full replacements: a length change installs a
			// fresh array eagerly and recursion fills the elements.
			// References that lived at truncated indexes lose their edges.
			if cur, ok := sv.([]any); !ok || len(cur) != len(val) {
				e.truncatedArrayEdits(job.containerID, path, len(val), edits)
				e.installArray(job.containerID, job.kind, path, len(val))
			}
			return false, nil

		default:
			if !scalarEqual(pv, sv) {
				e.setValue(job.containerID, job.kind, path, pv)
			}
			return false, nil
		}
	})
}

// visitReference classifies a potentially reference-typed position. It
// returns true when the position was handled as a reference: the value
// write is deferred to the second pass and the walk must not descend.
func (e *Editor) visitReference(job mergeJob, path domain.Path, pv, sv any, roots map[uintptr]struct{}, stack *[]mergeJob, edits *[]refEdit) bool {
	prevID := e.identityOf(sv)
	nextID := e.identityOf(pv)

	payloadObj, isObj := pv.(map[string]any)
	if isObj && nextID == "" && prevID != "" {
		// Merging an object that carries no identity of its own on top of
		// a stored reference keeps the previous referent.
		nextID = prevID
	}

	if prevID == "" && nextID == "" {
		return false
	}

	if nextID == "" {
		// The reference is dropped. Only the edge goes through the second
		// pass; the payload value itself takes the normal value path, so
		// the walk must continue at this position.
		*edits = append(*edits, refEdit{
			containerID: job.containerID,
			path:        path,
			prevID:      prevID,
			removeOnly:  true,
		})
		return false
	}

	if prevID != nextID {
		*edits = append(*edits, refEdit{
			containerID: job.containerID,
			path:        path,
			prevID:      prevID,
			nextID:      nextID,
		})
	}

	if isObj {
		e.enqueue(stack, roots, mergeJob{
			containerID: nextID,
			kind:        domain.KindEntity,
			payload:     payloadObj,
			fields:      job.fields.FieldAt(path),
		})
	}
	return true
}

// truncatedArrayEdits emits edge removals for every reference held at or
// below an array index the incoming payload truncates away.
func (e *Editor) truncatedArrayEdits(id domain.NodeID, path domain.Path, n int, edits *[]refEdit) {
	node := e.current(id)
	if node == nil {
		return
	}
	for _, out := range node.Outbound {
		if len(out.Path) <= len(path) || !out.Path[:len(path)].Equal(path) {
			continue
		}
		idx, ok := out.Path[len(path)].Index()
		if !ok || idx < n {
			continue
		}
		*edits = append(*edits, refEdit{
			containerID: id,
			path:        out.Path,
			prevID:      out.ID,
			removeOnly:  true,
		})
	}
}

// enqueue schedules a container walk. Entity jobs dedup on the payload
// object's pointer: each payload object is walked at most once as an
// entity, which is the cycle breaker for self-referencing and mutually
// referencing entities. Parameterized jobs never claim the pointer; their
// payload may legitimately be walked again as the entity it resolves to.
func (e *Editor) enqueue(stack *[]mergeJob, roots map[uintptr]struct{}, job mergeJob) {
	if m, ok := job.payload.(map[string]any); ok && job.kind == domain.KindEntity {
		ptr := reflect.ValueOf(m).Pointer()
		if _, seen := roots[ptr]; seen {
			return
		}
		roots[ptr] = struct{}{}
	}
	*stack = append(*stack, job)
}

// pathHasKey reports whether any part of path is a field key.
func pathHasKey(path domain.Path) bool {
	for _, part := range path {
		if _, ok := part.Key(); ok {
			return true
		}
	}
	return false
}

// ensureParameterizedNode makes sure the indirection node for a
// parameterized field exists, with its bidirectional edge to the container.
func (e *Editor) ensureParameterizedNode(containerID domain.NodeID, containerKind domain.NodeKind, path domain.Path, paramID domain.NodeID) {
	if e.current(paramID) != nil {
		return
	}
	ws := e.ensureNew(paramID, domain.KindParameterizedValue)
	container := e.ensureNew(containerID, containerKind)
	container.Outbound = domain.AddEdge(container.Outbound, domain.Edge{ID: paramID, Path: path})
	ws.Inbound = domain.AddEdge(ws.Inbound, domain.Edge{ID: containerID, Path: path})
}

// installArray resizes the stored array at path to length n, carrying over
// any prefix the transaction already wrote. Element values resolve through
// the normal per-index recursion afterwards.
func (e *Editor) installArray(id domain.NodeID, kind domain.NodeKind, path domain.Path, n int) {
	next := make([]any, n)
	if cur, ok := structural.GetAtPath(e.currentData(id), path).([]any); ok {
		copy(next, cur)
	}
	e.setValue(id, kind, path, next)
}

// identityOf extracts the entity identity of an object-shaped value.
func (e *Editor) identityOf(v any) domain.NodeID {
	if _, ok := v.(map[string]any); !ok {
		return ""
	}
	return e.cfg.Identity.IdentityOf(v)
}

// scalarEqual compares two scalar positions. Differing dynamic types never
// compare equal; a stored container against a payload scalar is a change.
func scalarEqual(a, b any) bool {
	switch b.(type) {
	case map[string]any, []any:
		return false
	}
	return a == b
}

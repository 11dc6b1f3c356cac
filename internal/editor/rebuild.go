package editor

import (
	"maps"
	"slices"

	"go.trai.ch/strata/internal/core/domain"
)

// rebuildAncestors rewrites, for every node whose value was edited, the
// embedded copy of that value held by each of its containers, walking
// inbound edges until the propagation settles. Every node that transitively
// contains an edited node gets a new object identity, which is what keeps
// the parent snapshot immutable as a whole. Each ancestor is enqueued at
// most once; in-place mutation of already-owned working copies makes the
// visit order irrelevant.
func (e *Editor) rebuildAncestors() {
	queue := slices.Sorted(maps.Keys(e.valueEdited))
	seen := make(map[domain.NodeID]struct{}, len(queue))
	for _, id := range queue {
		seen[id] = struct{}{}
	}

	for len(queue) > 0 {
		id := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		node := e.current(id)
		if node == nil {
			continue
		}
		// Containers do not embed parameterized values; readers resolve
		// them through the node map, so there is nothing to rewrite.
		if node.Kind == domain.KindParameterizedValue {
			continue
		}

		for _, in := range node.Inbound {
			if e.current(in.ID) == nil {
				continue
			}
			e.rewriteValue(in.ID, in.Path, node.Data)
			if _, ok := seen[in.ID]; !ok {
				seen[in.ID] = struct{}{}
				queue = append(queue, in.ID)
			}
		}
	}
}

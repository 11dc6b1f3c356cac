package editor

import (
	"maps"
	"slices"

	"go.trai.ch/strata/internal/core/domain"
)

// collectOrphans cascade-removes the seed orphans and everything that
// becomes unreachable as a result. Each node is tombstoned at most once,
// which guarantees termination even on graphs that used to be cyclic.
func (e *Editor) collectOrphans(seed map[domain.NodeID]struct{}) {
	queue := slices.Sorted(maps.Keys(seed))

	for len(queue) > 0 {
		id := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		node := e.current(id)
		if node == nil {
			continue
		}

		e.newNodes[id] = nil
		e.editedIDs[id] = struct{}{}
		delete(e.valueEdited, id)

		for _, out := range node.Outbound {
			target := e.current(out.ID)
			if target == nil {
				continue
			}
			ws := e.ensureNew(out.ID, target.Kind)
			ws.Inbound = domain.RemoveEdge(ws.Inbound, domain.Edge{ID: id, Path: out.Path})
			if len(ws.Inbound) == 0 {
				queue = append(queue, out.ID)
			}
		}
	}
}

package editor

import "go.trai.ch/strata/internal/core/domain"

// applyReferenceEdits performs the second pass over the reference edits
// collected during the walk. Each edit adds or removes exactly the one
// edge it names, so any application order converges to the same edge set.
// It returns the ids orphaned by the pass; a node re-referenced by a later
// edit is rescued before collection.
func (e *Editor) applyReferenceEdits(edits []refEdit) map[domain.NodeID]struct{} {
	orphaned := make(map[domain.NodeID]struct{})

	for _, edit := range edits {
		if !edit.removeOnly {
			var value any
			if edit.nextID != "" {
				value = e.currentData(edit.nextID)
			}
			e.setValue(edit.containerID, domain.KindEntity, edit.path, value)
		}
		container := e.ensureNew(edit.containerID, domain.KindEntity)

		if edit.prevID != "" {
			container.Outbound = domain.RemoveEdge(container.Outbound, domain.Edge{ID: edit.prevID, Path: edit.path})
			if e.current(edit.prevID) != nil {
				prev := e.ensureNew(edit.prevID, domain.KindEntity)
				prev.Inbound = domain.RemoveEdge(prev.Inbound, domain.Edge{ID: edit.containerID, Path: edit.path})
				if len(prev.Inbound) == 0 {
					orphaned[edit.prevID] = struct{}{}
				}
			}
		}

		if edit.nextID != "" {
			container.Outbound = domain.AddEdge(container.Outbound, domain.Edge{ID: edit.nextID, Path: edit.path})
			next := e.ensureNew(edit.nextID, domain.KindEntity)
			next.Inbound = domain.AddEdge(next.Inbound, domain.Edge{ID: edit.containerID, Path: edit.path})
			delete(orphaned, edit.nextID)
		}
	}
	return orphaned
}

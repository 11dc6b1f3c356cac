package domain

// Edge describes one endpoint of a reference relationship at a specific
// location inside a node's value tree. Every outbound edge {id, path} on a
// node A has a symmetric inbound edge {A, path} on node id.
type Edge struct {
	ID   NodeID `json:"id"`
	Path Path   `json:"path,omitempty"`
}

// Equal reports whether two edges name the same node at the same path.
func (e Edge) Equal(other Edge) bool {
	return e.ID == other.ID && e.Path.Equal(other.Path)
}

// HasEdge reports whether the list contains an edge equal to e.
func HasEdge(list []Edge, e Edge) bool {
	for _, cur := range list {
		if cur.Equal(e) {
			return true
		}
	}
	return false
}

// AddEdge appends e to the list unless an equal edge is already present.
// The lists behave as ordered sets.
func AddEdge(list []Edge, e Edge) []Edge {
	if HasEdge(list, e) {
		return list
	}
	return append(list, e)
}

// RemoveEdge removes the edge equal to e, preserving the order of the rest.
// The list is mutated in place; callers own their edge lists.
func RemoveEdge(list []Edge, e Edge) []Edge {
	for i, cur := range list {
		if cur.Equal(e) {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

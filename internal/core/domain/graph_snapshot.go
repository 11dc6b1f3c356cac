package domain

import "iter"

// GraphSnapshot is an immutable mapping from NodeID to NodeSnapshot,
// representing the cache at one point in time. A snapshot returned by a
// committed transaction is never mutated; later edits produce new node
// objects in a new snapshot while unchanged nodes stay shared.
type GraphSnapshot struct {
	nodes map[NodeID]*NodeSnapshot
}

// NewGraphSnapshot creates a snapshot over the given node map. The snapshot
// takes ownership of the map; callers must not modify it afterwards.
func NewGraphSnapshot(nodes map[NodeID]*NodeSnapshot) *GraphSnapshot {
	if nodes == nil {
		nodes = make(map[NodeID]*NodeSnapshot)
	}
	return &GraphSnapshot{nodes: nodes}
}

// GetNodeSnapshot returns the snapshot for id. A nil receiver behaves as an
// empty snapshot so a fresh cache needs no special casing.
func (g *GraphSnapshot) GetNodeSnapshot(id NodeID) (*NodeSnapshot, bool) {
	if g == nil {
		return nil, false
	}
	s, ok := g.nodes[id]
	return s, ok
}

// GetNodeData returns the value tree for id, or nil if the node is absent.
func (g *GraphSnapshot) GetNodeData(id NodeID) any {
	s, ok := g.GetNodeSnapshot(id)
	if !ok {
		return nil
	}
	return s.Data
}

// Has reports whether id names a live node.
func (g *GraphSnapshot) Has(id NodeID) bool {
	_, ok := g.GetNodeSnapshot(id)
	return ok
}

// Len returns the number of live nodes.
func (g *GraphSnapshot) Len() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// Nodes returns an iterator over all live nodes. Iteration order is
// unspecified.
func (g *GraphSnapshot) Nodes() iter.Seq2[NodeID, *NodeSnapshot] {
	return func(yield func(NodeID, *NodeSnapshot) bool) {
		if g == nil {
			return
		}
		for id, s := range g.nodes {
			if !yield(id, s) {
				return
			}
		}
	}
}

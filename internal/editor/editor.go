// Package editor implements the transactional snapshot editor: it merges
// query result payloads into a parent graph snapshot and commits a new
// immutable snapshot, using structural sharing so unchanged nodes stay
// shared between versions.
package editor

import (
	"maps"
	"slices"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/core/structural"
	"go.trai.ch/zerr"
)

// Config carries the collaborators a transaction needs. Identity is
// required; Warnings and Transformer may be nil.
type Config struct {
	Identity    ports.IdentityExtractor
	Warnings    ports.WarningSink
	Transformer ports.ValueTransformer
}

type txState uint8

const (
	stateOpen txState = iota
	stateCommitted
	stateAborted
)

// Editor is a single-use transaction bound to one parent snapshot. Any
// number of payloads may be merged before Commit; each merge sees the
// effects of the previous ones. An editor is not safe for concurrent use.
//
// The parent snapshot and every node object reachable from it are never
// mutated; all edits go through per-transaction working copies.
type Editor struct {
	parent *domain.GraphSnapshot
	cfg    Config
	st     txState

	// newNodes holds this transaction's working node versions, keyed by
	// id. A nil entry is a tombstone: the node is removed in the next
	// snapshot.
	newNodes map[domain.NodeID]*domain.NodeSnapshot

	// editedIDs tracks nodes whose next snapshot differs observably:
	// value edits, creations, and removals. Ancestors rebuilt at commit
	// purely because a descendant changed are not included.
	editedIDs map[domain.NodeID]struct{}

	// valueEdited tracks nodes whose value tree was written this
	// transaction; these seed the ancestor rebuild.
	valueEdited map[domain.NodeID]struct{}

	written map[string]*domain.ParsedQuery
}

// Result is the outcome of a committed transaction.
type Result struct {
	// Snapshot is the new immutable graph snapshot.
	Snapshot *domain.GraphSnapshot
	// EditedNodeIDs lists every node added, removed, or whose value
	// changed, sorted for determinism.
	EditedNodeIDs []domain.NodeID
	// WrittenQueries lists the parsed queries merged in this transaction.
	WrittenQueries []*domain.ParsedQuery
}

// New creates an editor over parent. A nil parent behaves as an empty
// snapshot.
func New(parent *domain.GraphSnapshot, cfg Config) *Editor {
	return &Editor{
		parent:      parent,
		cfg:         cfg,
		newNodes:    make(map[domain.NodeID]*domain.NodeSnapshot),
		editedIDs:   make(map[domain.NodeID]struct{}),
		valueEdited: make(map[domain.NodeID]struct{}),
		written:     make(map[string]*domain.ParsedQuery),
	}
}

// MergePayload merges one query result payload into the transaction. A
// returned error aborts the transaction: its working state is
// indeterminate and every later call fails with ErrEditorAborted.
func (e *Editor) MergePayload(q *domain.ParsedQuery, payload map[string]any) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if q == nil {
		return zerr.New("nil parsed query")
	}
	if payload == nil {
		e.written[q.Key] = q
		return nil
	}

	edits, err := e.mergePayloadValues(q, payload)
	if err != nil {
		e.st = stateAborted
		return err
	}

	orphaned := e.applyReferenceEdits(edits)
	e.collectOrphans(orphaned)
	e.written[q.Key] = q
	return nil
}

// Commit rebuilds the ancestors of every edited node and materializes the
// next graph snapshot. The editor is spent afterwards.
func (e *Editor) Commit() (*Result, error) {
	if err := e.checkOpen(); err != nil {
		return nil, err
	}
	e.st = stateCommitted

	e.rebuildAncestors()

	nodes := make(map[domain.NodeID]*domain.NodeSnapshot, e.parent.Len()+len(e.newNodes))
	for id, snap := range e.parent.Nodes() {
		nodes[id] = snap
	}
	for id, snap := range e.newNodes {
		if snap == nil {
			delete(nodes, id)
			continue
		}
		if e.cfg.Transformer != nil && snap.Kind == domain.KindEntity {
			e.cfg.Transformer.Transform(snap.Data)
		}
		nodes[id] = snap
	}

	edited := slices.Sorted(maps.Keys(e.editedIDs))
	queries := make([]*domain.ParsedQuery, 0, len(e.written))
	for _, key := range slices.Sorted(maps.Keys(e.written)) {
		queries = append(queries, e.written[key])
	}

	return &Result{
		Snapshot:       domain.NewGraphSnapshot(nodes),
		EditedNodeIDs:  edited,
		WrittenQueries: queries,
	}, nil
}

func (e *Editor) checkOpen() error {
	switch e.st {
	case stateCommitted:
		return domain.ErrEditorCommitted
	case stateAborted:
		return domain.ErrEditorAborted
	default:
		return nil
	}
}

// current returns the transaction's view of a node: the working version if
// one exists, nil if tombstoned, otherwise the parent's version.
func (e *Editor) current(id domain.NodeID) *domain.NodeSnapshot {
	if snap, ok := e.newNodes[id]; ok {
		return snap
	}
	snap, _ := e.parent.GetNodeSnapshot(id)
	return snap
}

// currentData returns the transaction's view of a node's value tree.
func (e *Editor) currentData(id domain.NodeID) any {
	snap := e.current(id)
	if snap == nil {
		return nil
	}
	return snap.Data
}

// ensureNew returns the working version of a node, creating it if needed.
// Existing parent versions are cloned; absent or tombstoned nodes are
// created fresh with the given kind, which counts as an edit.
func (e *Editor) ensureNew(id domain.NodeID, kind domain.NodeKind) *domain.NodeSnapshot {
	if snap, ok := e.newNodes[id]; ok && snap != nil {
		return snap
	}
	_, tombstoned := e.newNodes[id]

	var ws *domain.NodeSnapshot
	if parent, ok := e.parent.GetNodeSnapshot(id); ok && !tombstoned {
		ws = parent.Clone()
	} else {
		ws = &domain.NodeSnapshot{Kind: kind}
		e.editedIDs[id] = struct{}{}
	}
	e.newNodes[id] = ws
	return ws
}

// setValue writes value at path inside a node's value tree, marking the
// node edited. The spine of the path is cloned on first touch; everything
// else stays shared with the parent snapshot.
func (e *Editor) setValue(id domain.NodeID, kind domain.NodeKind, path domain.Path, value any) {
	ws := e.ensureNew(id, kind)
	ws.Data = structural.SetAtPath(ws.Data, e.parent.GetNodeData(id), path, value)
	e.editedIDs[id] = struct{}{}
	e.valueEdited[id] = struct{}{}
}

// rewriteValue is setValue for the commit-time ancestor rebuild: the node
// gets a new object identity but is not reported as edited, since only the
// reference it holds changed, not its logical content.
func (e *Editor) rewriteValue(id domain.NodeID, path domain.Path, value any) {
	ws := e.ensureNew(id, domain.KindEntity)
	ws.Data = structural.SetAtPath(ws.Data, e.parent.GetNodeData(id), path, value)
}

func (e *Editor) warn(msg string, detail map[string]any) {
	if e.cfg.Warnings != nil {
		e.cfg.Warnings.Warn(msg, detail)
	}
}

// Package domain contains the core domain models for the normalized graph cache.
package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// NodeID identifies a node within a graph snapshot. IDs are opaque; entity
// ids come from the identity extractor, parameterized value ids are derived
// from their (container, path, arguments) triple.
type NodeID string

// ReservedIDSeparator joins the components of derived node ids. Entity
// identities must never contain it; identity extractors treat a value whose
// key field contains it as carrying no identity.
const ReservedIDSeparator = "❖"

// NodeKind discriminates the two node snapshot variants.
type NodeKind uint8

const (
	// KindEntity is an identity-bearing value addressable by NodeID.
	KindEntity NodeKind = iota + 1
	// KindParameterizedValue is an indirection node holding the result of a
	// field invoked with arguments.
	KindParameterizedValue
)

// String returns the kind's serialized name.
func (k NodeKind) String() string {
	switch k {
	case KindEntity:
		return "entity"
	case KindParameterizedValue:
		return "parameterized"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *NodeKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "entity":
		*k = KindEntity
	case "parameterized":
		*k = KindParameterizedValue
	default:
		return zerr.With(zerr.New("unknown node kind"), "kind", string(text))
	}
	return nil
}

// NodeSnapshot holds one node's value tree plus its reference edge lists.
// Snapshots that belong to a committed GraphSnapshot are immutable by
// convention: editors clone them before changing anything.
type NodeSnapshot struct {
	Kind     NodeKind `json:"kind"`
	Data     any      `json:"data"`
	Inbound  []Edge   `json:"inbound,omitempty"`
	Outbound []Edge   `json:"outbound,omitempty"`
}

// NewEntitySnapshot creates an entity node snapshot holding data.
func NewEntitySnapshot(data any) *NodeSnapshot {
	return &NodeSnapshot{Kind: KindEntity, Data: data}
}

// NewParameterizedSnapshot creates a parameterized value node snapshot.
func NewParameterizedSnapshot(data any) *NodeSnapshot {
	return &NodeSnapshot{Kind: KindParameterizedValue, Data: data}
}

// Clone returns a copy safe to edit without touching the receiver. The edge
// lists are copied; the value tree is shared and must go through the
// structural-sharing setter before being modified.
func (s *NodeSnapshot) Clone() *NodeSnapshot {
	return &NodeSnapshot{
		Kind:     s.Kind,
		Data:     s.Data,
		Inbound:  slices.Clone(s.Inbound),
		Outbound: slices.Clone(s.Outbound),
	}
}

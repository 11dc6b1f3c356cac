package editor

import (
	"encoding/json"
	"fmt"

	"go.trai.ch/strata/internal/core/domain"
)

// paramSeparator joins the components of a parameterized value id. The
// identity extractor contract keeps it out of entity identifiers.
const paramSeparator = domain.ReservedIDSeparator

// noArgsSentinel stands in for an absent argument map, so "no arguments"
// and "empty arguments" produce distinct ids.
const noArgsSentinel = "∅"

// NodeIDForParameterizedValue derives the id of the indirection node for a
// field invoked with arguments. The id is a pure function of the
// (container, path, arguments) triple: identical triples always collide,
// distinct triples never do. Argument maps are canonicalized with sorted
// keys, so argument order is irrelevant; paths keep the string/number
// distinction, so Field("1") and Index(1) yield different ids.
func NodeIDForParameterizedValue(containerID domain.NodeID, path domain.Path, args map[string]any) domain.NodeID {
	return containerID +
		paramSeparator + domain.NodeID(canonicalize(path)) +
		paramSeparator + domain.NodeID(canonicalizeArgs(args))
}

func canonicalizeArgs(args map[string]any) string {
	if args == nil {
		return noArgsSentinel
	}
	return canonicalize(args)
}

// canonicalize serializes deterministically: encoding/json writes map keys
// in sorted order at every level.
func canonicalize(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Arguments are expected to be JSON-shaped; anything else still
		// needs a deterministic form.
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

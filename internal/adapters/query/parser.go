// Package query implements the query document parser. A query document is
// a YAML (or JSON) descriptor naming the root node and the dynamic field
// map: which paths carry call arguments and which carry nested dynamic
// fields. Argument values of the form "$name" are variable references
// resolved at parse time.
package query

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultRootID is assumed when a document names no root.
const DefaultRootID = domain.NodeID("ROOT_QUERY")

var _ ports.QueryParser = (*Parser)(nil)

// Parser implements ports.QueryParser for YAML/JSON query documents.
type Parser struct {
	defaultRoot domain.NodeID
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{defaultRoot: DefaultRootID}
}

// NewParserWithRoot creates a Parser that assumes root for documents that
// name none. An empty root falls back to DefaultRootID.
func NewParserWithRoot(root domain.NodeID) *Parser {
	if root == "" {
		root = DefaultRootID
	}
	return &Parser{defaultRoot: root}
}

type queryDoc struct {
	Root   string              `yaml:"root"`
	Fields map[string]fieldDTO `yaml:"fields"`
}

type fieldDTO struct {
	Args   map[string]any      `yaml:"args"`
	Fields map[string]fieldDTO `yaml:"fields"`
}

// Parse parses source, resolving variable references against variables.
// Parsing the same source with the same variables yields an identical Key.
func (p *Parser) Parse(source []byte, variables map[string]any) (*domain.ParsedQuery, error) {
	var doc queryDoc
	if err := yaml.Unmarshal(source, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse query document")
	}

	rootID := p.defaultRoot
	if doc.Root != "" {
		rootID = domain.NodeID(doc.Root)
	}

	fields, err := buildFieldNode(doc.Fields, variables)
	if err != nil {
		return nil, err
	}

	return &domain.ParsedQuery{
		RootID: rootID,
		Fields: fields,
		Key:    computeKey(source, variables),
	}, nil
}

// buildFieldNode converts the DTO tree into the tagged field map. A field
// with an args mapping (even an empty one) is parameterized; one without
// exists only to carry children.
func buildFieldNode(fields map[string]fieldDTO, variables map[string]any) (*domain.FieldNode, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	node := &domain.FieldNode{Children: make(map[string]*domain.FieldNode, len(fields))}
	for name, dto := range fields {
		child := &domain.FieldNode{}
		if dto.Args != nil {
			resolved, err := resolveArgs(dto.Args, variables)
			if err != nil {
				return nil, zerr.With(err, "field", name)
			}
			child.HasArgs = true
			child.Args = resolved
		}
		nested, err := buildFieldNode(dto.Fields, variables)
		if err != nil {
			return nil, err
		}
		if nested != nil {
			child.Children = nested.Children
		}
		node.Children[name] = child
	}
	return node, nil
}

// resolveArgs substitutes variable references throughout an argument tree.
func resolveArgs(args map[string]any, variables map[string]any) (map[string]any, error) {
	resolved := make(map[string]any, len(args))
	for key, value := range args {
		v, err := resolveValue(value, variables)
		if err != nil {
			return nil, err
		}
		resolved[key] = v
	}
	return resolved, nil
}

func resolveValue(value any, variables map[string]any) (any, error) {
	switch v := value.(type) {
	case string:
		if len(v) > 1 && v[0] == '$' {
			name := v[1:]
			resolved, ok := variables[name]
			if !ok {
				return nil, zerr.With(zerr.Wrap(domain.ErrMissingVariable, "failed to resolve variable reference"), "variable", name)
			}
			return resolved, nil
		}
		return v, nil
	case map[string]any:
		return resolveArgs(v, variables)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			resolved, err := resolveValue(item, variables)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		return v, nil
	}
}

// computeKey hashes the source and canonicalized variables into the
// parsed query's stable identity.
func computeKey(source []byte, variables map[string]any) string {
	h := xxhash.New()
	_, _ = h.Write(source)
	_, _ = h.Write([]byte{0})
	vars, err := json.Marshal(variables)
	if err != nil {
		vars = fmt.Appendf(nil, "%v", variables)
	}
	_, _ = h.Write(vars)
	return fmt.Sprintf("%016x", h.Sum64())
}

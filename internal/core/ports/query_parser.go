// Package ports defines the interfaces through which the cache core talks
// to its collaborators: query parsing, identity extraction, diagnostics,
// persistence, and configuration.
package ports

import "go.trai.ch/strata/internal/core/domain"

// QueryParser turns a query document into the stable parsed representation
// the editor consumes. Parsing the same source with the same variables must
// yield an identical Key.
//
//go:generate go run go.uber.org/mock/mockgen -source=query_parser.go -destination=mocks/mock_query_parser.go -package=mocks
type QueryParser interface {
	// Parse parses source and resolves variable references against
	// variables. It returns an error for malformed documents or missing
	// variables.
	Parse(source []byte, variables map[string]any) (*domain.ParsedQuery, error)
}

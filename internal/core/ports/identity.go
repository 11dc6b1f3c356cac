package ports

import "go.trai.ch/strata/internal/core/domain"

// IdentityExtractor computes the stable identity of an object-shaped value.
// It must be pure and deterministic: the same value always yields the same
// id. Returning the empty id means the value is not an entity. Returned ids
// must never contain domain.ReservedIDSeparator; it delimits the components
// of derived node ids.
//
//go:generate go run go.uber.org/mock/mockgen -source=identity.go -destination=mocks/mock_identity.go -package=mocks
type IdentityExtractor interface {
	IdentityOf(value any) domain.NodeID
}

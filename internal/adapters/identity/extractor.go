// Package identity implements entity identity extraction from key fields.
package identity

import (
	"strconv"
	"strings"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
)

var _ ports.IdentityExtractor = (*KeyFieldExtractor)(nil)

// KeyFieldExtractor derives an entity's identity from the first configured
// key field present on an object-shaped value. Extraction is pure: the
// same value always yields the same id.
type KeyFieldExtractor struct {
	fields []string
}

// New creates an extractor over the given key fields. With no fields, "id"
// is assumed.
func New(fields ...string) *KeyFieldExtractor {
	if len(fields) == 0 {
		fields = []string{"id"}
	}
	return &KeyFieldExtractor{fields: fields}
}

// IdentityOf returns the value's entity id, or "" when the value carries
// none. String ids are taken verbatim; numeric ids are formatted without
// a fractional part when they are whole. A string id containing the
// reserved separator would collide with derived node ids and is treated as
// no identity.
func (x *KeyFieldExtractor) IdentityOf(value any) domain.NodeID {
	m, ok := value.(map[string]any)
	if !ok {
		return ""
	}
	for _, field := range x.fields {
		switch id := m[field].(type) {
		case string:
			if id != "" && !strings.Contains(id, domain.ReservedIDSeparator) {
				return domain.NodeID(id)
			}
		case float64:
			return domain.NodeID(strconv.FormatFloat(id, 'f', -1, 64))
		case int:
			return domain.NodeID(strconv.Itoa(id))
		}
	}
	return ""
}

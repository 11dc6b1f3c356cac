package domain

import (
	"encoding/json"
	"strconv"

	"go.trai.ch/zerr"
)

// PathPart addresses one step into a node's value tree: either an object
// field name or an array index. The two are distinct even when they look
// alike; Field("1") and Index(1) never compare or serialize equal.
type PathPart struct {
	key     string
	index   int
	isIndex bool
}

// Field creates a PathPart addressing an object field.
func Field(name string) PathPart {
	return PathPart{key: name}
}

// Index creates a PathPart addressing an array element.
func Index(i int) PathPart {
	return PathPart{index: i, isIndex: true}
}

// Key returns the field name and true when the part addresses an object field.
func (p PathPart) Key() (string, bool) {
	return p.key, !p.isIndex
}

// Index returns the array index and true when the part addresses an element.
func (p PathPart) Index() (int, bool) {
	return p.index, p.isIndex
}

// String renders the part in display form: ".name" for fields, "[3]" for indexes.
func (p PathPart) String() string {
	if p.isIndex {
		return "[" + strconv.Itoa(p.index) + "]"
	}
	return "." + p.key
}

// MarshalJSON encodes fields as JSON strings and indexes as JSON numbers,
// which keeps the serialized forms of Field("1") and Index(1) distinct.
func (p PathPart) MarshalJSON() ([]byte, error) {
	if p.isIndex {
		return json.Marshal(p.index)
	}
	return json.Marshal(p.key)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *PathPart) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return zerr.Wrap(err, "failed to decode path part")
	}
	switch t := v.(type) {
	case string:
		*p = Field(t)
	case float64:
		*p = Index(int(t))
	default:
		return zerr.With(zerr.New("path part must be a string or a number"), "value", v)
	}
	return nil
}

// Path locates a value inside a node's value tree.
type Path []PathPart

// Equal reports whether two paths address the same location.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Child returns a new path extended by one part. The receiver is never
// mutated, so parent paths held elsewhere stay valid.
func (p Path) Child(part PathPart) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, part)
}

// String renders the path in display form, e.g. ".friends[0].name".
func (p Path) String() string {
	s := ""
	for _, part := range p {
		s += part.String()
	}
	return s
}

package domain

// ParsedQuery is the stable parsed representation of a query, produced by a
// ports.QueryParser. Key identifies the parsed form (source plus resolved
// variables) so committed transactions can report which queries they wrote.
type ParsedQuery struct {
	RootID NodeID
	Fields *FieldNode
	Key    string
}

// FieldNode describes one field of a query's dynamic field map: a plain
// field, a field invoked with arguments, or a container of nested dynamic
// fields. HasArgs is the explicit discriminant; a node with HasArgs false
// exists only to carry Children.
type FieldNode struct {
	HasArgs  bool
	Args     map[string]any
	Children map[string]*FieldNode
}

// Child returns the field node for the named child, or nil. Safe on a nil
// receiver so lookups can chain through absent branches.
func (f *FieldNode) Child(name string) *FieldNode {
	if f == nil {
		return nil
	}
	return f.Children[name]
}

// FieldAt resolves the field node addressed by path relative to f. Array
// index parts are transparent: a field map entry applies to every element
// of an array-valued field.
func (f *FieldNode) FieldAt(path Path) *FieldNode {
	cur := f
	for _, part := range path {
		if cur == nil {
			return nil
		}
		if key, ok := part.Key(); ok {
			cur = cur.Child(key)
		}
	}
	return cur
}

package ast

// ShallowEqual reports whether a and b are the same kind of node carrying
// the same literal value, ignoring children and attributes.  Kinds without
// a literal value are equal whenever the kinds are.
func ShallowEqual(a, b *Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind.HasValue() {
		return a.Value == b.Value
	}
	return true
}

// Equal reports whether a and b are structurally identical, including
// attributes and field names.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Value != b.Value || a.Comment != b.Comment {
		return false
	}
	if !a.Modifiers.Equal(b.Modifiers) {
		return false
	}
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for i := range a.Fields {
		fa, fb := &a.Fields[i], &b.Fields[i]
		if fa.Name != fb.Name || fa.List != fb.List {
			return false
		}
		if !fa.List {
			if !Equal(fa.Node, fb.Node) {
				return false
			}
			continue
		}
		if len(fa.Items) != len(fb.Items) {
			return false
		}
		for j := range fa.Items {
			if !Equal(fa.Items[j], fb.Items[j]) {
				return false
			}
		}
	}
	return true
}

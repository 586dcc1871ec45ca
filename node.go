package arbor

// Node is the capability surface the core requires of every user IR
// node. A node is an immutable record: a variant tag naming its concrete
// type, plus an ordered mapping from field name to field value. A field
// value is a Node, a Container of nodes, or a leaf (any other value).
//
// Implementations must make Fields return field values in a stable,
// deterministic, declaration order — walks rely on that order for
// sibling visitation (spec's determinism requirement).
type Node interface {
	// VariantTag returns the stable string identifying this node's
	// concrete variant. It is the dispatch key every Rule looks up.
	VariantTag() string

	// Fields enumerates this node's immediate fields, left to right in
	// declaration order.
	Fields() Fields

	// Rebuild constructs a new node of the same variant from an updated
	// field mapping. It must validate the new fields against the
	// variant's schema and return a *Error of kind ValidationError if
	// they don't fit.
	Rebuild(Fields) (Node, error)

	// Equal reports whether two nodes are structurally equal. It must be
	// content-based, not identity-based: FixedPoint relies on it to
	// detect when a rewrite pass has stopped changing the tree.
	Equal(Node) bool
}

// Field is one named field of a Node. Value is a Node, a Container, or a
// leaf (any other Go value: string, int, bool, float64, ...).
type Field struct {
	Name  string
	Value any
}

// Fields is the ordered field list of a Node, as returned by
// Node.Fields and consumed by Node.Rebuild.
type Fields []Field

// Get looks up a field by name.
func (fs Fields) Get(name string) (any, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// With returns a copy of fs with the named field's value replaced. It
// panics if no such field exists; callers are expected to only ever
// replace fields a prior call to Fields reported.
func (fs Fields) With(name string, value any) Fields {
	out := make(Fields, len(fs))
	copy(out, fs)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	panic("arbor: Fields.With: no such field " + name)
}

// Clone returns a shallow copy of fs, safe to mutate independently of
// the original (used by walks when assembling a rebuilt node from
// walked children).
func (fs Fields) Clone() Fields {
	out := make(Fields, len(fs))
	copy(out, fs)
	return out
}

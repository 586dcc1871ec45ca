package arbor

// ContainerKind names the three container shapes a Field's value may
// take on, recognized by shape rather than by concrete Go type.
type ContainerKind int

const (
	// KindSequence is an ordered sequence of elements; Rebuild preserves
	// order.
	KindSequence ContainerKind = iota
	// KindSet is an unordered collection; Rebuild canonicalizes it.
	KindSet
	// KindMapping is a key-to-value mapping; keys are preserved
	// verbatim, only values are walked.
	KindMapping
)

func (k ContainerKind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindSet:
		return "set"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Container is a field value holding zero or more elements, each of
// which is itself a Node, a nested Container, or a leaf. Concrete
// implementations (arbor/containers.Sequence, Set, Mapping) wrap
// emirpasic/gods collections; the walk package only ever talks to this
// interface, never to the concrete type, so a user IR may supply its own
// Container implementation if the three built-in shapes don't fit.
type Container interface {
	// Kind reports which of the three container shapes this is.
	Kind() ContainerKind

	// Elements returns the container's elements in iteration order. For
	// a Mapping, this is the values, in the same order as Keys.
	Elements() []any

	// WithElements rebuilds a container of the same shape from a new
	// element slice of the same length as Elements returned. A sequence
	// preserves the given order; a set canonicalizes (deduplicates and
	// sorts by content); a mapping pairs the new values positionally
	// with its existing Keys.
	WithElements([]any) (Container, error)
}

// KeyedContainer is implemented by Container shapes that additionally
// carry keys (currently only Mapping). Walks use it to preserve keys
// verbatim while only walking values.
type KeyedContainer interface {
	Container
	Keys() []any
}

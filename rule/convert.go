package rule

import "github.com/arborlang/arbor"

// Results is the already-converted results of a node's fields, keyed by
// field name, with the same keys as arbor.Node.Fields. A field that was
// a bare Node maps to its converted R value (boxed as any); a field
// that was a Container maps to a ContainerResult snapshot of the same
// shape, with Node elements converted to R and leaves passed through
// unchanged.
type Results map[string]any

// ContainerResult is the converted snapshot of a Container-valued
// field: Elements holds the (possibly converted) values in the
// container's iteration order, and Keys is non-nil only for a
// KindMapping container, giving the verbatim key for each entry in
// Elements.
type ContainerResult struct {
	Kind     arbor.ContainerKind
	Elements []any
	Keys     []any
}

// ResultAs returns the named field's result cast to R, panicking if the
// field wasn't a bare Node field converted to R (helper for handlers
// that know their own shape, mirroring operands["left"] in the
// distilled rule examples).
func ResultAs[R any](r Results, name string) R {
	return r[name].(R)
}

// ConvertFunc is a per-variant conversion handler: given a node and its
// already-converted children, produce a result of type R.
type ConvertFunc[R any] func(arbor.Node, Results) (R, error)

// ConversionRule is the handler registry a Post-order conversion walk
// dispatches through. Unlike RewriteRule, there is no identity default:
// every reachable variant must have a registered handler, or the walk
// fails with UnhandledVariant.
type ConversionRule[R any] interface {
	HandlerFor(tag string) (ConvertFunc[R], bool)
}

// ConvertTable is the table-based ConversionRule[R] implementation.
type ConvertTable[R any] struct {
	handlers map[string]ConvertFunc[R]
}

// NewConvertTable builds an empty table for incremental registration
// via On.
func NewConvertTable[R any]() *ConvertTable[R] {
	return &ConvertTable[R]{handlers: make(map[string]ConvertFunc[R])}
}

// NewConvertTableFrom builds a table declaratively from a complete
// handler map.
func NewConvertTableFrom[R any](handlers map[string]ConvertFunc[R]) *ConvertTable[R] {
	t := NewConvertTable[R]()
	for tag, fn := range handlers {
		t.handlers[tag] = fn
	}
	return t
}

// On registers (or replaces) the handler for a variant tag and returns
// the table, for fluent incremental construction.
func (t *ConvertTable[R]) On(tag string, fn ConvertFunc[R]) *ConvertTable[R] {
	tracer().Infof("registering conversion handler for variant %q", tag)
	t.handlers[tag] = fn
	return t
}

// HandlerFor implements ConversionRule[R].
func (t *ConvertTable[R]) HandlerFor(tag string) (ConvertFunc[R], bool) {
	fn, ok := t.handlers[tag]
	return fn, ok
}

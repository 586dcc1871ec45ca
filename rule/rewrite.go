package rule

import "github.com/arborlang/arbor"

// RewriteFunc is a per-variant rewrite handler. Returning (nil, nil)
// signals the unchanged marker: the walk substitutes the node already
// rebuilt from its walked children. Returning a non-nil Node replaces
// the current position with it.
type RewriteFunc func(arbor.Node) (arbor.Node, error)

// RewriteRule is the handler registry a rewrite walk dispatches
// through. HandlerFor returns ok=false for a tag with no registered
// handler, in which case the walk applies the identity default.
type RewriteRule interface {
	HandlerFor(tag string) (RewriteFunc, bool)
}

// RewriteTable is the table-based RewriteRule implementation: a plain
// map from variant tag to handler, matching
// termr.ASTBuilder.rewriters' map[string]TermRewriter.
type RewriteTable struct {
	handlers map[string]RewriteFunc
}

var _ RewriteRule = (*RewriteTable)(nil)

// NewRewriteTable builds an empty table for incremental registration
// via On.
func NewRewriteTable() *RewriteTable {
	return &RewriteTable{handlers: make(map[string]RewriteFunc)}
}

// NewRewriteTableFrom builds a table declaratively from a complete
// handler map.
func NewRewriteTableFrom(handlers map[string]RewriteFunc) *RewriteTable {
	t := NewRewriteTable()
	for tag, fn := range handlers {
		t.handlers[tag] = fn
	}
	return t
}

// On registers (or replaces) the handler for a variant tag and returns
// the table, for fluent incremental construction.
func (t *RewriteTable) On(tag string, fn RewriteFunc) *RewriteTable {
	tracer().Infof("registering rewrite handler for variant %q", tag)
	t.handlers[tag] = fn
	return t
}

// HandlerFor implements RewriteRule.
func (t *RewriteTable) HandlerFor(tag string) (RewriteFunc, bool) {
	fn, ok := t.handlers[tag]
	return fn, ok
}

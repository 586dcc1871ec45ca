// Package walk implements the four traversal strategies over a Node
// tree -- Pre, Post, In, Level -- each available in a left-to-right or
// right-to-left (reverse) flavor, plus the Post-only conversion walk.
//
// A walk pairs a strategy with a rule and becomes a Pass (package
// arbor/pass) by virtue of its Apply method matching that contract. All
// four rewrite strategies visit every node of the input tree exactly
// once; In and Level are read-only for rewriting (a non-identity
// replacement under either is InvalidWalkForRule), because neither
// strategy can change tree shape while traversing it.
package walk

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'arbor.walk'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.walk")
}

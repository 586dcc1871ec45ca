// Package rewriter implements the pass combinators: Chain (sequential
// composition) and FixedPoint (iterate until stable), plus
// BoundedFixedPoint, the external step cap spec reserves to callers for
// detecting divergence the core itself does not check for.
package rewriter

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'arbor.rewriter'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.rewriter")
}

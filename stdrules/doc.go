// Package stdrules collects the generic rules the engine needs
// regardless of which IR it is pointed at: a pretty-printer that works
// on any Node without a per-variant handler table, a canonicalization
// helper for associative/commutative operators, and a pterm-backed
// tree dump for interactive inspection.
package stdrules

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'arbor.stdrules'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.stdrules")
}

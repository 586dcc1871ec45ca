// Package containers implements the three Container shapes a Node
// field may hold: an ordered Sequence, an unordered, canonicalizing
// Set, and a key-preserving Mapping. All three are thin, shape-aware
// wrappers around emirpasic/gods collections, the way the teacher wraps
// gods collections for its own LR table construction.
package containers

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.containers'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.containers")
}

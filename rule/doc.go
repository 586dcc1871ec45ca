// Package rule implements the two rule flavors of the node protocol:
// RewriteRule (node -> node of the same IR) and ConversionRule (node +
// already-converted children -> any result type R). Both dispatch by
// variant tag through a table, the statically-typed replacement for the
// "derive a method name from the runtime variant tag" pattern a
// dynamically typed host would use: a user populates
// map[string]handler once. For a RewriteRule an unregistered tag falls
// back to the identity default; for a ConversionRule it is an
// UnhandledVariant error.
package rule

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'arbor.rule'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.rule")
}

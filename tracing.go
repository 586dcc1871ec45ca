package arbor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor'.
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

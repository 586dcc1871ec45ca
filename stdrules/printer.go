package stdrules

import (
	"fmt"
	"strings"

	"github.com/arborlang/arbor"
	"github.com/arborlang/arbor/rule"
)

// Printer is a ConversionRule[string] with no per-variant table: its
// single handler is synthesized generically from VariantTag and
// Fields, so it prints any Node whatsoever without the caller
// registering a thing. Render it bottom-up with walk.NewConvert --
// conversion guarantees every child already arrives as its printed
// string, which Printer simply interpolates.
//
// Output is Tag(field=value, field=value, ...), with container fields
// rendered as [a, b, c] for a sequence, {a, b, c} for a set, and
// {k: v, ...} for a mapping (keys and elements unquoted).
type Printer struct{}

// NewPrinter returns a Printer. It carries no state; the value exists
// so call sites read like every other rule constructor.
func NewPrinter() Printer {
	return Printer{}
}

// HandlerFor implements rule.ConversionRule[string]. It returns the
// same handler for every tag, so no variant is ever unhandled.
func (Printer) HandlerFor(tag string) (rule.ConvertFunc[string], bool) {
	return printNode, true
}

func printNode(n arbor.Node, results rule.Results) (string, error) {
	fields := n.Fields()
	if len(fields) == 0 {
		return n.VariantTag(), nil
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%s", f.Name, printField(f.Value, results[f.Name])))
	}
	return fmt.Sprintf("%s(%s)", n.VariantTag(), strings.Join(parts, ", ")), nil
}

// printField renders one field's already-converted result, dispatching
// on the ORIGINAL field value's shape (not the result's, since a leaf
// result and a converted-Node result are both bare strings) to decide
// whether to quote, interpolate verbatim, or render as a container.
func printField(original, result any) string {
	switch original.(type) {
	case arbor.Node:
		s, _ := result.(string)
		return s
	case arbor.Container:
		cr, _ := result.(rule.ContainerResult)
		return printContainer(cr)
	default:
		return printLeaf(original)
	}
}

func printContainer(cr rule.ContainerResult) string {
	elems := make([]string, len(cr.Elements))
	switch cr.Kind {
	case arbor.KindMapping:
		for i, v := range cr.Elements {
			var key any
			if cr.Keys != nil && i < len(cr.Keys) {
				key = cr.Keys[i]
			}
			elems[i] = fmt.Sprintf("%s: %s", printElement(key), printElement(v))
		}
		return "{" + strings.Join(elems, ", ") + "}"
	case arbor.KindSet:
		for i, v := range cr.Elements {
			elems[i] = printElement(v)
		}
		return "{" + strings.Join(elems, ", ") + "}"
	default: // KindSequence
		for i, v := range cr.Elements {
			elems[i] = printElement(v)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	}
}

// printElement renders one already-converted container element. A
// converted Node and a leaf are indistinguishable once both are
// boxed as any here (a leaf could itself be a string), so unlike a
// top-level leaf field, container elements are never quoted.
func printElement(v any) string {
	return fmt.Sprintf("%v", v)
}

func printLeaf(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

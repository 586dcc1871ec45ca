package stdrules

import (
	"strings"
	"testing"

	"github.com/arborlang/arbor"
	"github.com/arborlang/arbor/containers"
	"github.com/arborlang/arbor/walk"
)

type fixtureLeaf struct {
	tag   string
	value int
}

func (n fixtureLeaf) VariantTag() string { return n.tag }
func (n fixtureLeaf) Fields() arbor.Fields {
	return arbor.Fields{{Name: "value", Value: n.value}}
}
func (n fixtureLeaf) Rebuild(fields arbor.Fields) (arbor.Node, error) {
	v, _ := fields.Get("value")
	return fixtureLeaf{tag: n.tag, value: v.(int)}, nil
}
func (n fixtureLeaf) Equal(other arbor.Node) bool { return arbor.DeepEqual(n, other) }

type fixtureBinary struct {
	tag         string
	left, right arbor.Node
}

func (n fixtureBinary) VariantTag() string { return n.tag }
func (n fixtureBinary) Fields() arbor.Fields {
	return arbor.Fields{{Name: "left", Value: n.left}, {Name: "right", Value: n.right}}
}
func (n fixtureBinary) Rebuild(fields arbor.Fields) (arbor.Node, error) {
	left, _ := fields.Get("left")
	right, _ := fields.Get("right")
	return fixtureBinary{tag: n.tag, left: left.(arbor.Node), right: right.(arbor.Node)}, nil
}
func (n fixtureBinary) Equal(other arbor.Node) bool { return arbor.DeepEqual(n, other) }

type fixtureContainerNode struct {
	tag   string
	field string
	value arbor.Container
}

func (n fixtureContainerNode) VariantTag() string { return n.tag }
func (n fixtureContainerNode) Fields() arbor.Fields {
	return arbor.Fields{{Name: n.field, Value: n.value}}
}
func (n fixtureContainerNode) Rebuild(fields arbor.Fields) (arbor.Node, error) {
	v, _ := fields.Get(n.field)
	return fixtureContainerNode{tag: n.tag, field: n.field, value: v.(arbor.Container)}, nil
}
func (n fixtureContainerNode) Equal(other arbor.Node) bool { return arbor.DeepEqual(n, other) }

func printed(t *testing.T, n arbor.Node) string {
	t.Helper()
	s, err := walk.NewConvert[string](NewPrinter()).Apply(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestPrinterLeafFieldFormat(t *testing.T) {
	got := printed(t, fixtureLeaf{tag: "Int", value: 3})
	if want := "Int(value=3)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrinterTagWithNoFields(t *testing.T) {
	// A zero-field node prints as its bare tag, with no parentheses.
	got, err := walk.NewConvert[string](NewPrinter()).Apply(bareTag{tag: "Unit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Unit" {
		t.Fatalf("got %q, want %q", got, "Unit")
	}
}

type bareTag struct{ tag string }

func (n bareTag) VariantTag() string                      { return n.tag }
func (n bareTag) Fields() arbor.Fields                     { return nil }
func (n bareTag) Rebuild(arbor.Fields) (arbor.Node, error) { return n, nil }
func (n bareTag) Equal(other arbor.Node) bool              { return arbor.DeepEqual(n, other) }

func TestPrinterNestedNodeFields(t *testing.T) {
	tree := fixtureBinary{
		tag:   "Add",
		left:  fixtureLeaf{tag: "Int", value: 1},
		right: fixtureLeaf{tag: "Int", value: 2},
	}
	got := printed(t, tree)
	if want := "Add(left=Int(value=1), right=Int(value=2))"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrinterSequenceContainerFormat(t *testing.T) {
	tree := fixtureContainerNode{tag: "Vec", field: "elems", value: containers.NewSequence(1, 2, 3)}
	got := printed(t, tree)
	if want := "Vec(elems=[1, 2, 3])"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrinterMappingContainerFormat(t *testing.T) {
	tree := fixtureContainerNode{tag: "Env", field: "bindings", value: containers.NewMapping(
		[]any{"a", "b"}, []any{1, 2},
	)}
	got := printed(t, tree)
	if want := "Env(bindings={a: 1, b: 2})"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrinterSetContainerFormat(t *testing.T) {
	tree := fixtureContainerNode{tag: "Bag", field: "items", value: containers.NewSet(1, 2, 3)}
	got := printed(t, tree)
	if !strings.HasPrefix(got, "Bag(items={") || !strings.HasSuffix(got, "})") {
		t.Fatalf("got %q, want Bag(items={...}) braces", got)
	}
	for _, want := range []string{"1", "2", "3"} {
		if !strings.Contains(got, want) {
			t.Fatalf("got %q, missing element %q", got, want)
		}
	}
}

func TestPrinterHasNoUnhandledVariant(t *testing.T) {
	p := NewPrinter()
	if _, ok := p.HandlerFor("AnyMadeUpTag"); !ok {
		t.Fatalf("Printer reported no handler for an unregistered tag; it must handle every tag generically")
	}
}

func TestCanonicalizerAssociateLeftAssociates(t *testing.T) {
	c := NewCanonicalizer().Associate("Add", AssocSpec{Left: "left", Right: "right"})
	// Add(1, Add(2, 3)) -> Add(Add(1, 2), 3)
	tree := fixtureBinary{
		tag:  "Add",
		left: fixtureLeaf{tag: "Int", value: 1},
		right: fixtureBinary{
			tag:   "Add",
			left:  fixtureLeaf{tag: "Int", value: 2},
			right: fixtureLeaf{tag: "Int", value: 3},
		},
	}
	handler, ok := c.HandlerFor("Add")
	if !ok {
		t.Fatalf("no handler registered for Add")
	}
	out, err := handler(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.(fixtureBinary)
	if got.right.(fixtureLeaf).value != 3 {
		t.Fatalf("right operand after one re-association = %v, want Int(3)", got.right)
	}
	inner := got.left.(fixtureBinary)
	if inner.left.(fixtureLeaf).value != 1 || inner.right.(fixtureLeaf).value != 2 {
		t.Fatalf("left operand after one re-association = %+v, want Add(Int(1), Int(2))", inner)
	}
}

func TestCanonicalizerLeavesAlreadyLeftAssociatedUnchanged(t *testing.T) {
	c := NewCanonicalizer().Associate("Add", AssocSpec{Left: "left", Right: "right"})
	tree := fixtureBinary{
		tag: "Add",
		left: fixtureBinary{
			tag:   "Add",
			left:  fixtureLeaf{tag: "Int", value: 1},
			right: fixtureLeaf{tag: "Int", value: 2},
		},
		right: fixtureLeaf{tag: "Int", value: 3},
	}
	handler, _ := c.HandlerFor("Add")
	out, err := handler(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Fatalf("got a replacement for an already left-associated tree: %v", out)
	}
}

func TestCanonicalizerUnregisteredTagHasNoHandler(t *testing.T) {
	c := NewCanonicalizer()
	if _, ok := c.HandlerFor("Mul"); ok {
		t.Fatalf("unregistered tag reported a handler")
	}
}

func TestRenderProducesTreeRootedAtVariantTag(t *testing.T) {
	tree := fixtureBinary{
		tag:   "Add",
		left:  fixtureLeaf{tag: "Int", value: 1},
		right: fixtureLeaf{tag: "Int", value: 2},
	}
	root := Render(tree)
	if root.Text != "Add" {
		t.Fatalf("Render root.Text = %q, want %q", root.Text, "Add")
	}
	if len(root.Children) == 0 {
		t.Fatalf("Render root has no children for a node with fields")
	}
}

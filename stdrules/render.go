package stdrules

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/arborlang/arbor"
)

// Render builds a pterm tree representation of root for interactive
// inspection, grounded line for line on the trepl REPL's "tree"
// command (terexlang/trepl/repl.go's leveledElem/indentedListFrom):
// walk the tree by hand (Render predates any generic walk, the same
// way the REPL's tree command predates the engine it inspects),
// flattening it into a pterm.LeveledList, then hand that list to
// pterm.NewTreeFromLeveledList.
func Render(root arbor.Node) pterm.TreeNode {
	ll := leveledNode(root, pterm.LeveledList{}, 0)
	return pterm.NewTreeFromLeveledList(ll)
}

// Print renders root and writes it to the default tree renderer,
// matching the REPL's `pterm.DefaultTree.WithRoot(root).Render()`
// call.
func Print(root arbor.Node) error {
	return pterm.DefaultTree.WithRoot(Render(root)).Render()
}

func leveledNode(n arbor.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  n.VariantTag(),
	})
	for _, f := range n.Fields() {
		ll = leveledField(f, ll, level+1)
	}
	return ll
}

func leveledField(f arbor.Field, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch v := f.Value.(type) {
	case arbor.Node:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  f.Name + ":",
		})
		return leveledNode(v, ll, level+1)
	case arbor.Container:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%s: %s", f.Name, v.Kind()),
		})
		return leveledElements(v, ll, level+1)
	default:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%s = %v", f.Name, v),
		})
		return ll
	}
}

func leveledElements(c arbor.Container, ll pterm.LeveledList, level int) pterm.LeveledList {
	for i, el := range c.Elements() {
		if node, ok := el.(arbor.Node); ok {
			ll = leveledNode(node, ll, level)
			continue
		}
		label := fmt.Sprintf("%v", el)
		if kc, ok := c.(arbor.KeyedContainer); ok {
			keys := kc.Keys()
			if i < len(keys) {
				label = fmt.Sprintf("%v: %v", keys[i], el)
			}
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: label})
	}
	return ll
}

package walk

import (
	"github.com/arborlang/arbor"
	"github.com/arborlang/arbor/rule"
)

type levelItem struct {
	node arbor.Node
	path arbor.Path
}

// levelWalk implements Level (breadth-first) rewriting: read-only, the
// rule is applied as each node is dequeued. reverse reverses the order
// in which a node's children are enqueued, which reverses that node's
// contribution to its level's visitation order.
func levelWalk(r rule.RewriteRule, root arbor.Node, dir Direction) error {
	queue := []levelItem{{node: root}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if err := invokeReadOnly(r, item.node, item.path, Level); err != nil {
			return err
		}
		for _, ref := range orderedChildRefs(item.node, dir) {
			queue = append(queue, levelItem{node: ref.node, path: ref.path(item.path)})
		}
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/aglyzov/go-ntree/ntree"
)

// prettyTree renders every materialized node, children in composite index order.
func prettyTree[T any](tree *ntree.Tree[T]) string {
	root := treeprint.NewWithRoot(fmt.Sprintf("[root] dims:%d depth:%d scale:%g",
		tree.Dims(), tree.Depth(), tree.Scale()))

	addChildren(tree, tree.Root(), root)

	return root.String()
}

func addChildren[T any](tree *ntree.Tree[T], h ntree.Handle, branch treeprint.Tree) {
	for _, child := range tree.Children(h) {
		if payload, ok := tree.Payload(child); ok {
			branch.AddNode(fmt.Sprintf("[%d]─◉ %v", tree.Slot(child), payload))
			continue
		}

		if kind, _ := tree.Kind(child); kind == ntree.KindEmpty {
			branch.AddNode(fmt.Sprintf("[%d]─◌", tree.Slot(child)))
			continue
		}

		addChildren(tree, child, branch.AddBranch(fmt.Sprintf("[%d]", tree.Slot(child))))
	}
}

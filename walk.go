// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// NodeInfo describes one explicit node reached by Walk.
type NodeInfo[S comparable] struct {
	ID     int
	Parent int
	// Level counts edges from the root, Depth counts symbols.
	Level int
	Depth int
	// Label is the label of the edge entering the node. It aliases the
	// stored sequence and must not be modified.
	Label       []S
	Terminators []Terminator
}

// WalkFn is used when walking the tree. Returning true stops the walk.
type WalkFn[S comparable] func(n NodeInfo[S]) bool

// Walk visits every node in pre-order, the root first. Siblings are
// visited in the order of their first symbol's printed form.
func (t *Tree[S]) Walk(fn WalkFn[S]) {
	type frame struct {
		node  int
		level int
		depth int
	}

	stack := []frame{{node: rootID}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info := NodeInfo[S]{
			ID:          f.node,
			Level:       f.level,
			Depth:       f.depth,
			Terminators: t.terms.at(f.node),
		}
		if f.node != rootID {
			e := t.edges.get(f.node)
			info.Parent = e.parent
			info.Label = t.edges.label(e)
			info.Depth += e.length
		}
		if fn(info) {
			return
		}

		children := t.sortedChildren(f.node)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:  children[i].id,
				level: f.level + 1,
				depth: info.Depth,
			})
		}
	}
}

func (t *Tree[S]) sortedChildren(node int) []edge {
	children := t.edges.children(node)
	// Symbols of different dynamic types may print alike, the type name
	// breaks the tie.
	slices.SortFunc(children, func(a, b edge) int {
		x, y := t.edges.symbolAt(a, 0), t.edges.symbolAt(b, 0)
		if c := strings.Compare(fmt.Sprint(x), fmt.Sprint(y)); c != 0 {
			return c
		}
		if c := strings.Compare(fmt.Sprintf("%T", x), fmt.Sprintf("%T", y)); c != 0 {
			return c
		}
		return strings.Compare(fmt.Sprintf("%#v", x), fmt.Sprintf("%#v", y))
	})
	return children
}

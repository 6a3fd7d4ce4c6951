// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Validate walks the whole tree and checks that every suffix of every
// registered sequence ends at exactly one node carrying that sequence's
// terminator, and that edges and suffix links are well formed. Any error
// wraps ErrInconsistent and means construction is broken.
func (t *Tree[S]) Validate() error {
	err := t.validate()
	if err != nil {
		t.log.Warn("validation failed", zap.Error(err))
	}
	return err
}

type suffixKey struct {
	text   int
	length int
}

func (t *Tree[S]) validate() error {
	type frame struct {
		node  int
		depth int
	}

	nodes := t.edges.nodes()
	depths := make([]int, nodes)
	seen := make([]bool, nodes)
	counts := make(map[suffixKey]int)
	instances := make(map[int]uint64)

	path := make([]S, 0, 64)
	stack := []frame{{node: rootID}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[f.node] {
			return inconsistent("node %d reached twice", f.node)
		}
		seen[f.node] = true

		path = path[:f.depth]
		if f.node != rootID {
			e := t.edges.get(f.node)
			if err := t.checkEdge(e); err != nil {
				return err
			}
			path = append(path, t.edges.label(e)...)

			end := e.offset + e.length
			if end < len(path) {
				return inconsistent("%s ends at %d but its path is %d long", e, end, len(path))
			}
			if !slices.Equal(path, t.texts.text(e.text)[end-len(path):end]) {
				return inconsistent("%s: path does not occur in text %d", e, e.text)
			}
		}
		depths[f.node] = len(path)

		for _, term := range t.terms.at(f.node) {
			if term.Text < 0 || term.Text >= t.texts.len() {
				return inconsistent("node %d: terminator %s names unknown text", f.node, term)
			}
			if inst, ok := instances[term.Text]; ok && inst != term.Instance {
				return inconsistent("text %d carries instances %d and %d", term.Text, inst, term.Instance)
			}
			instances[term.Text] = term.Instance

			text := t.texts.text(term.Text)
			if len(path) == 0 || len(path) > len(text) ||
				!slices.Equal(path, text[len(text)-len(path):]) {
				return inconsistent("node %d: path of length %d is not a suffix of text %d", f.node, len(path), term.Text)
			}
			counts[suffixKey{text: term.Text, length: len(path)}]++
		}

		for _, c := range t.edges.children(f.node) {
			if c.parent != f.node {
				return inconsistent("%s registered below node %d", c, f.node)
			}
			stack = append(stack, frame{node: c.id, depth: len(path)})
		}
	}

	for id, ok := range seen {
		if !ok {
			return inconsistent("node %d is unreachable", id)
		}
	}

	for i := 0; i < t.texts.len(); i++ {
		for n := 1; n <= len(t.texts.text(i)); n++ {
			if c := counts[suffixKey{text: i, length: n}]; c != 1 {
				return inconsistent("suffix of length %d of text %d found %d times", n, i, c)
			}
		}
	}

	for id := 1; id < nodes; id++ {
		if !t.links.isSet(id) {
			continue
		}
		target := t.links.get(id)
		if target < 0 || target >= nodes {
			return inconsistent("node %d links to unknown node %d", id, target)
		}
		if depths[target] != depths[id]-1 ||
			!slices.Equal(t.spell(id, depths[id])[1:], t.spell(target, depths[target])) {
			return inconsistent("node %d links to node %d which is not its suffix", id, target)
		}
	}
	return nil
}

func (t *Tree[S]) checkEdge(e edge) error {
	if e.length <= 0 {
		return inconsistent("%s has an empty label", e)
	}
	if e.text < 0 || e.text >= t.texts.len() {
		return inconsistent("%s references unknown text", e)
	}
	if e.offset < 0 || e.offset+e.length > len(t.texts.text(e.text)) {
		return inconsistent("%s runs outside text %d", e, e.text)
	}
	if got, ok := t.edges.find(e.parent, t.edges.symbolAt(e, 0)); !ok || got.id != e.id {
		return inconsistent("%s is not registered under its first symbol", e)
	}
	return nil
}

// spell returns the path of node, which has the given depth. A node's
// path always occurs in the text of the edge entering it, ending where
// that edge's label ends.
func (t *Tree[S]) spell(node, depth int) []S {
	if node == rootID {
		return nil
	}
	e := t.edges.get(node)
	end := e.offset + e.length
	return t.texts.text(e.text)[end-depth : end]
}

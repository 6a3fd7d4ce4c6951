// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import (
	"fmt"

	"golang.org/x/exp/maps"
)

const rootID = 0

// edge is the labelled transition from parent into node id. The label is
// texts[text][offset:offset+length] and is never copied out of the store.
type edge struct {
	id     int
	text   int
	offset int
	length int
	parent int
}

func (e edge) String() string {
	return fmt.Sprintf("edge(id=%d parent=%d text=%d offset=%d length=%d)",
		e.id, e.parent, e.text, e.offset, e.length)
}

// edgeTable is the arena holding the branching structure. Node ids and
// edge ids share one space: node n is entered through edges[n]. The
// record at index 0 stands in for the root and is never registered.
type edgeTable[S comparable] struct {
	texts    *textStore[S]
	edges    []edge
	branches []map[S]int
}

func newEdgeTable[S comparable](texts *textStore[S], capacity int) *edgeTable[S] {
	t := &edgeTable[S]{
		texts:    texts,
		edges:    make([]edge, 1, capacity+1),
		branches: make([]map[S]int, 1, capacity+1),
	}
	return t
}

// newEdge allocates the next id and registers the edge under its parent.
func (t *edgeTable[S]) newEdge(text, offset, length, parent int) edge {
	e := edge{
		id:     len(t.edges),
		text:   text,
		offset: offset,
		length: length,
		parent: parent,
	}
	t.edges = append(t.edges, e)
	t.branches = append(t.branches, nil)
	t.register(e)
	return e
}

// register maps (parent, first symbol) to e, replacing whatever edge held
// that slot before.
func (t *edgeTable[S]) register(e edge) {
	if e.length <= 0 {
		panic(fmt.Sprintf("register: empty label on %s", e))
	}
	t.edges[e.id] = e
	m := t.branches[e.parent]
	if m == nil {
		m = make(map[S]int, 2)
		t.branches[e.parent] = m
	}
	m[t.symbolAt(e, 0)] = e.id
}

func (t *edgeTable[S]) find(node int, sym S) (edge, bool) {
	id, ok := t.branches[node][sym]
	if !ok {
		return edge{}, false
	}
	return t.edges[id], true
}

// split cuts e after length symbols. The head keeps e's first symbol and
// parent and gets a fresh id; the tail keeps e's id and hangs below the
// head. Returns the id of the new intermediate node.
func (t *edgeTable[S]) split(e edge, length int) int {
	if length <= 0 || length >= e.length {
		panic(fmt.Sprintf("split: length %d out of range for %s", length, e))
	}
	head := t.newEdge(e.text, e.offset, length, e.parent)

	e.offset += length
	e.length -= length
	e.parent = head.id
	t.register(e)

	return head.id
}

func (t *edgeTable[S]) symbolAt(e edge, k int) S {
	return t.texts.symbol(e.text, e.offset+k)
}

func (t *edgeTable[S]) label(e edge) []S {
	return t.texts.text(e.text)[e.offset : e.offset+e.length]
}

func (t *edgeTable[S]) get(id int) edge {
	return t.edges[id]
}

// children returns the outgoing edges of node in no particular order.
func (t *edgeTable[S]) children(node int) []edge {
	ids := maps.Values(t.branches[node])
	out := make([]edge, len(ids))
	for i, id := range ids {
		out[i] = t.edges[id]
	}
	return out
}

// nodes reports the number of node ids in use, root included.
func (t *edgeTable[S]) nodes() int {
	return len(t.edges)
}

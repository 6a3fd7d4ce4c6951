// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import (
	"fmt"

	"go.uber.org/zap"
)

// cursor is the active point of one insertion. It spells the path of
// node followed by text[offset:offset+length] of the sequence being
// inserted. It is canonical when length is 0 or the edge it points into is
// strictly longer than length.
type cursor struct {
	node   int
	text   int
	offset int
	length int
	term   Terminator
}

// AddString indexes seq and returns its text index. Every suffix of seq
// ends at an explicit node carrying a fresh Terminator, including when
// identical content was added before.
func (t *Tree[S]) AddString(seq []S) (int, error) {
	if t.checkSymbols {
		if err := checkSymbols(seq); err != nil {
			return -1, err
		}
	}

	idx := t.texts.register(seq)
	t.instance++
	cur := &cursor{
		node: rootID,
		text: idx,
		term: Terminator{Text: idx, Instance: t.instance},
	}

	// ends[k] collects the node where seq[k:] ends.
	ends := make([]int, 0, len(seq))
	for pos := range seq {
		ends = t.extend(cur, pos, ends)
	}
	ends = t.terminate(cur, ends)
	if len(ends) != len(seq) {
		panic(fmt.Sprintf("add: %d suffix ends recorded for %d symbols", len(ends), len(seq)))
	}
	t.linkSuffixEnds(ends)

	if len(seq) == 0 {
		t.empties++
	}
	if t.cache != nil {
		t.cache.Purge()
	}

	t.log.Debug("sequence indexed",
		zap.Int("text", idx),
		zap.Uint64("instance", cur.term.Instance),
		zap.Int("length", len(seq)),
		zap.Int("nodes", t.edges.nodes()))
	return idx, nil
}

// extend runs one phase: it makes every suffix of text[:pos+1] present in
// the tree, adding a leaf for each suffix that was not there yet.
func (t *Tree[S]) extend(cur *cursor, pos int, ends []int) []int {
	text := t.texts.text(cur.text)
	sym := text[pos]
	last := rootID

	for {
		var parent int
		if cur.length == 0 {
			if _, ok := t.edges.find(cur.node, sym); ok {
				break
			}
			parent = cur.node
		} else {
			e := t.mustFind(cur.node, text[cur.offset])
			if t.edges.symbolAt(e, cur.length) == sym {
				break
			}
			parent = t.edges.split(e, cur.length)
		}

		leaf := t.edges.newEdge(cur.text, pos, len(text)-pos, parent)
		t.terms.mark(leaf.id, cur.term)
		ends = append(ends, leaf.id)

		if last != rootID {
			t.links.setLink(last, parent)
		}
		last = parent

		if cur.node == rootID && cur.length == 0 {
			// sym was new below the root, nothing shorter is left.
			cur.offset = pos + 1
			return ends
		}
		t.advance(cur)
	}

	if last != rootID && cur.length == 0 {
		t.links.setLink(last, cur.node)
	}
	cur.length++
	t.canonize(cur)
	return ends
}

// terminate makes the end of every suffix not yet ending at a leaf
// explicit and marks it. No sentinel symbol is appended to the text.
func (t *Tree[S]) terminate(cur *cursor, ends []int) []int {
	text := t.texts.text(cur.text)
	last := rootID

	for cur.node != rootID || cur.length > 0 {
		end := cur.node
		if cur.length > 0 {
			e := t.mustFind(cur.node, text[cur.offset])
			end = t.edges.split(e, cur.length)
		}
		t.terms.mark(end, cur.term)
		ends = append(ends, end)

		if last != rootID {
			t.links.setLink(last, end)
		}
		last = end
		t.advance(cur)
	}
	return ends
}

// linkSuffixEnds links the end of text[k:] to the end of text[k+1:].
// Leaves never get a link during construction, but a later insertion may
// park its cursor on one.
func (t *Tree[S]) linkSuffixEnds(ends []int) {
	for k := 0; k+1 < len(ends); k++ {
		t.links.setLink(ends[k], ends[k+1])
	}
	if n := len(ends); n > 0 {
		t.links.setLink(ends[n-1], rootID)
	}
}

// advance moves the cursor to the next shorter suffix.
func (t *Tree[S]) advance(cur *cursor) {
	if cur.node == rootID {
		cur.offset++
		cur.length--
	} else {
		cur.node = t.links.get(cur.node)
	}
	t.canonize(cur)
}

// canonize walks the cursor down while the edge ahead fits entirely in
// the remaining length. An edge exactly as long as the remainder is
// consumed, leaving the cursor on the node below it.
func (t *Tree[S]) canonize(cur *cursor) {
	text := t.texts.text(cur.text)
	for cur.length > 0 {
		e := t.mustFind(cur.node, text[cur.offset])
		if e.length > cur.length {
			return
		}
		cur.node = e.id
		cur.offset += e.length
		cur.length -= e.length
	}
}

func (t *Tree[S]) mustFind(node int, sym S) edge {
	e, ok := t.edges.find(node, sym)
	if !ok {
		panic(fmt.Sprintf("cursor fell off node %d at symbol %v", node, sym))
	}
	return e
}

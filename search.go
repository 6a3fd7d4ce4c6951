// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Mode selects what Search reports. There is no default; the zero Mode is
// rejected.
type Mode int

const (
	// ModeSubstring matches a query occurring anywhere in any sequence.
	ModeSubstring Mode = iota + 1
	// ModeSuffix matches a query that is a suffix of some sequence.
	ModeSuffix
	// ModeExact matches a query equal to some whole sequence.
	ModeExact
)

func (m Mode) String() string {
	switch m {
	case ModeSubstring:
		return "substring"
	case ModeSuffix:
		return "suffix"
	case ModeExact:
		return "exact"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool {
	return m >= ModeSubstring && m <= ModeExact
}

// Search reports whether q is present in the tree under mode.
//
// The empty query is a substring of anything, a suffix of every
// registered sequence (so it matches once at least one was added), and
// an exact match only if an empty sequence was added.
func (t *Tree[S]) Search(q []S, mode Mode) (bool, error) {
	if !mode.valid() {
		return false, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
	if t.checkSymbols {
		if err := checkSymbols(q); err != nil {
			return false, err
		}
	}
	if t.cache == nil {
		return t.search(q, mode), nil
	}

	// The key only narrows the lookup. Distinct queries can print alike,
	// so a hit counts only when the stored query equals q.
	key := fmt.Sprintf("%d/%#v", mode, q)
	if hit, ok := t.cache.Get(key); ok && slices.Equal(hit.query, q) {
		return hit.found, nil
	}
	found := t.search(q, mode)
	t.cache.Add(key, cachedSearch[S]{query: slices.Clone(q), found: found})
	return found, nil
}

type cachedSearch[S comparable] struct {
	query []S
	found bool
}

// Contains reports whether q occurs inside some registered sequence.
func (t *Tree[S]) Contains(q []S) bool {
	found, _ := t.Search(q, ModeSubstring)
	return found
}

// HasSuffix reports whether q is a suffix of some registered sequence.
func (t *Tree[S]) HasSuffix(q []S) bool {
	found, _ := t.Search(q, ModeSuffix)
	return found
}

// HasSequence reports whether q was registered as a whole sequence.
func (t *Tree[S]) HasSequence(q []S) bool {
	found, _ := t.Search(q, ModeExact)
	return found
}

func (t *Tree[S]) search(q []S, mode Mode) bool {
	if len(q) == 0 {
		switch mode {
		case ModeSuffix:
			return t.texts.len() > 0
		case ModeExact:
			return t.empties > 0
		}
		return true
	}

	node, atNode, ok := t.locate(q)
	if !ok {
		return false
	}
	switch mode {
	case ModeSubstring:
		return true
	case ModeSuffix:
		return atNode && len(t.terms.at(node)) > 0
	}
	if !atNode {
		return false
	}
	for _, term := range t.terms.at(node) {
		if len(t.texts.text(term.Text)) == len(q) {
			return true
		}
	}
	return false
}

// locate follows q from the root. It returns the node where q ends and
// true, or the parent of the edge q stops inside of and false. ok is
// false when q does not occur at all.
func (t *Tree[S]) locate(q []S) (node int, atNode bool, ok bool) {
	node = rootID
	var e edge
	inEdge := false
	k := 0

	for _, sym := range q {
		if !inEdge || k == e.length {
			if inEdge {
				node = e.id
			}
			if e, ok = t.edges.find(node, sym); !ok {
				return rootID, false, false
			}
			inEdge = true
			k = 0
		}
		if t.edges.symbolAt(e, k) != sym {
			return rootID, false, false
		}
		k++
	}

	if !inEdge {
		return node, true, true
	}
	if k == e.length {
		return e.id, true, true
	}
	return e.parent, false, true
}

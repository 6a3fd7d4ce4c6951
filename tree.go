// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Tree is a generalized suffix tree over sequences of S. Sequences are
// added one at a time with AddString; once construction is finished the
// tree may be queried from any number of goroutines. AddString must not
// run concurrently with anything else on the same Tree.
type Tree[S comparable] struct {
	texts *textStore[S]
	edges *edgeTable[S]
	links linkTable
	terms terminatorRegistry

	instance uint64
	empties  int

	checkSymbols bool
	cache        *lru.Cache[string, cachedSearch[S]]
	log          *zap.Logger
}

// New returns an empty tree. The root node always exists.
func New[S comparable](opts ...Option) *Tree[S] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	texts := &textStore[S]{}
	t := &Tree[S]{
		texts:        texts,
		edges:        newEdgeTable(texts, o.capacity),
		checkSymbols: needsSymbolCheck[S](),
		log:          o.logger,
	}
	if o.cacheSize > 0 {
		cache, err := lru.New[string, cachedSearch[S]](o.cacheSize)
		if err != nil {
			t.log.Warn("search cache disabled", zap.Int("size", o.cacheSize), zap.Error(err))
		} else {
			t.cache = cache
		}
	}
	return t
}

// Len is used to return the number of sequences added to the tree
func (t *Tree[S]) Len() int {
	return t.texts.len()
}

// Nodes returns the number of explicit nodes, root included.
func (t *Tree[S]) Nodes() int {
	return t.edges.nodes()
}

// Sequence returns a copy of the i-th registered sequence.
func (t *Tree[S]) Sequence(i int) ([]S, bool) {
	if i < 0 || i >= t.texts.len() {
		return nil, false
	}
	return slices.Clone(t.texts.text(i)), true
}

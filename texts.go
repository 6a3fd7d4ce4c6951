// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import "golang.org/x/exp/slices"

// textStore owns every sequence submitted to the tree. Edges reference
// the stored texts by index and offset, so entries are never mutated.
type textStore[S comparable] struct {
	texts [][]S
}

// register stores a private copy of seq and returns its index.
func (s *textStore[S]) register(seq []S) int {
	s.texts = append(s.texts, slices.Clone(seq))
	return len(s.texts) - 1
}

func (s *textStore[S]) symbol(text, pos int) S {
	return s.texts[text][pos]
}

func (s *textStore[S]) text(i int) []S {
	return s.texts[i]
}

func (s *textStore[S]) len() int {
	return len(s.texts)
}

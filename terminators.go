// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Terminator marks a node as the end of a suffix of one registered
// sequence. Instance is assigned once per AddString call, so two calls
// with identical content never produce equal terminators.
type Terminator struct {
	Text     int
	Instance uint64
}

func (t Terminator) String() string {
	return fmt.Sprintf("$%d#%d", t.Text, t.Instance)
}

// terminatorRegistry maps node ids to the set of terminators ending there.
type terminatorRegistry struct {
	sets [][]Terminator
}

// mark adds t to the node's set. Marking twice is a no-op. Sets are kept
// ordered by Instance; construction only ever appends.
func (r *terminatorRegistry) mark(node int, t Terminator) {
	for len(r.sets) <= node {
		r.sets = append(r.sets, nil)
	}
	set := r.sets[node]
	if n := len(set); n == 0 || set[n-1].Instance < t.Instance {
		r.sets[node] = append(set, t)
		return
	}
	i, _ := slices.BinarySearchFunc(set, t.Instance, func(have Terminator, inst uint64) int {
		switch {
		case have.Instance < inst:
			return -1
		case have.Instance > inst:
			return 1
		}
		return 0
	})
	for j := i; j < len(set) && set[j].Instance == t.Instance; j++ {
		if set[j] == t {
			return
		}
	}
	r.sets[node] = slices.Insert(set, i, t)
}

func (r *terminatorRegistry) at(node int) []Terminator {
	if node < len(r.sets) {
		return r.sets[node]
	}
	return nil
}

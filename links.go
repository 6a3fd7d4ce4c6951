// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

// linkTable holds suffix links. A link from n points at the node spelling
// n's path without its first symbol. Unset links resolve to the root.
type linkTable struct {
	links []int
	set   []bool
}

func (l *linkTable) grow(node int) {
	for len(l.links) <= node {
		l.links = append(l.links, rootID)
		l.set = append(l.set, false)
	}
}

func (l *linkTable) setLink(node, target int) {
	l.grow(node)
	l.links[node] = target
	l.set[node] = true
}

func (l *linkTable) get(node int) int {
	if node < len(l.links) {
		return l.links[node]
	}
	return rootID
}

func (l *linkTable) isSet(node int) bool {
	return node < len(l.set) && l.set[node]
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Fprint writes one line per edge, indented by level, followed by the
// terminators of the node the edge enters.
func (t *Tree[S]) Fprint(w io.Writer) error {
	var err error
	t.Walk(func(n NodeInfo[S]) bool {
		if n.ID == rootID {
			return false
		}
		line := strings.Repeat("\t", n.Level-1) + formatLabel(n.Label)
		if len(n.Terminators) > 0 {
			line += fmt.Sprintf(" %v", n.Terminators)
		}
		_, err = fmt.Fprintln(w, line)
		return err != nil
	})
	return err
}

func (t *Tree[S]) String() string {
	var buf bytes.Buffer
	_ = t.Fprint(&buf)
	return buf.String()
}

func formatLabel[S comparable](label []S) string {
	switch l := any(label).(type) {
	case []byte:
		return string(l)
	case []rune:
		return string(l)
	case []string:
		return strings.Join(l, " ")
	}
	return fmt.Sprint(label)
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkTable(t *testing.T) {
	t.Parallel()

	var l linkTable
	require.Equal(t, rootID, l.get(7))
	require.False(t, l.isSet(7))

	l.setLink(7, 3)
	require.Equal(t, 3, l.get(7))
	require.True(t, l.isSet(7))
	require.False(t, l.isSet(6))
	require.Equal(t, rootID, l.get(6))

	l.setLink(2, rootID)
	require.True(t, l.isSet(2))
	require.Equal(t, rootID, l.get(2))
}

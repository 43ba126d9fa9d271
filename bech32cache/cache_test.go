// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationCache(t *testing.T) {
	c := New(4)

	_, ok := c.Lookup("a12uel5l")
	require.False(t, ok)

	c.MarkGood("a12uel5l")
	good, ok := c.Lookup("a12uel5l")
	require.True(t, ok)
	require.True(t, good)

	c.MarkBad("a12uel5l")
	good, ok = c.Lookup("a12uel5l")
	require.True(t, ok)
	require.False(t, good)

	c.Forget("a12uel5l")
	_, ok = c.Lookup("a12uel5l")
	require.False(t, ok)
}

func TestValidationCacheDefaultSize(t *testing.T) {
	c := New(0)
	c.MarkGood("x")
	good, ok := c.Lookup("x")
	require.True(t, ok)
	require.True(t, good)
}

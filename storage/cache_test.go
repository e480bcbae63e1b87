// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheGetSet(t *testing.T) {
	c := newCache()

	_, found := c.Get("missing")
	assert.False(t, found)

	c.Set(dbPut, "a", []byte("1"))
	c.Set(dbDelete, "b", nil)

	p, found := c.Get("a")
	assert.True(t, found)
	assert.False(t, p.IsDelete())
	assert.Equal(t, []byte("1"), p.Value)

	p, found = c.Get("b")
	assert.True(t, found)
	assert.True(t, p.IsDelete())

	c.Clear()
	_, found = c.Get("a")
	assert.False(t, found)
}

func TestCachePrefixed(t *testing.T) {
	c := newCache()
	c.Set(dbPut, "Zkey-1", []byte("1"))
	c.Set(dbPut, "Zkey-2", []byte("2"))
	c.Set(dbPut, "Ikey-1", []byte("3"))

	p := c.Prefixed("Zkey")
	assert.Len(t, p, 2)
	assert.Equal(t, []byte("2"), p["Zkey-2"].Value)
}

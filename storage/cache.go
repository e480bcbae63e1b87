// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"strings"

	cache "github.com/patrickmn/go-cache"
)

// Cache - pending writes of the open batch
type Cache interface {
	Get(string) (Pending, bool)
	Set(int, string, []byte)
	Clear()
	Prefixed(string) map[string]Pending
}

const (
	dbPut = iota
	dbDelete
)

// Pending - one uncommitted operation
type Pending struct {
	Op    int
	Value []byte
}

// IsDelete - key was removed in the open batch
func (p Pending) IsDelete() bool {
	return dbDelete == p.Op
}

type dbCache struct {
	cache *cache.Cache
}

// entries must survive until the batch is committed or aborted
func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *dbCache) Get(key string) (Pending, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return Pending{}, false
	}
	return obj.(Pending), true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	c.cache.Set(key, Pending{Op: op, Value: value}, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}

func (c *dbCache) Prefixed(prefix string) map[string]Pending {
	result := make(map[string]Pending)
	for key, item := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			result[key] = item.Object.(Pending)
		}
	}
	return result
}

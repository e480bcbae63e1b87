// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - batched writes over a database with a read-through
// cache of the pending batch
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
	Scan(*ldb_util.Range) ([]Element, error)
}

type accessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) Access {
	return &accessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

func (d *accessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fmt.Errorf("batch already in use")
	}

	d.inUse = true
	return nil
}

func (d *accessData) Put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	d.cache.Set(dbPut, string(key), v)
	d.batch.Put(key, v)
}

func (d *accessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

func (d *accessData) Commit() error {
	if 0 == d.batch.Len() {
		return nil
	}
	return d.db.Write(d.batch, nil)
}

// Get - pending value first, then the database
//
// returns leveldb.ErrNotFound for missing or deleted keys
func (d *accessData) Get(key []byte) ([]byte, error) {
	p, found := d.cache.Get(string(key))
	if found {
		if p.IsDelete() {
			return nil, leveldb.ErrNotFound
		}
		return p.Value, nil
	}
	return d.db.Get(key, nil)
}

func (d *accessData) Has(key []byte) (bool, error) {
	p, found := d.cache.Get(string(key))
	if found {
		return !p.IsDelete(), nil
	}
	return d.db.Has(key, nil)
}

func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// Scan - committed elements in the range merged with the open batch
//
// keys are returned with the pool prefix still attached
func (d *accessData) Scan(searchRange *ldb_util.Range) ([]Element, error) {
	pending := d.cache.Prefixed(string(searchRange.Start))

	iter := d.db.NewIterator(searchRange, nil)
	results := make([]Element, 0, len(pending))
	for iter.Next() {
		key := iter.Key()
		if p, found := pending[string(key)]; found {
			delete(pending, string(key))
			if p.IsDelete() {
				continue
			}
			results = append(results, element(key, p.Value))
			continue
		}
		results = append(results, element(key, iter.Value()))
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return nil, err
	}

	added := false
	for k, p := range pending {
		key := []byte(k)
		if p.IsDelete() || !inRange(searchRange, key) {
			continue
		}
		results = append(results, element(key, p.Value))
		added = true
	}
	if added {
		sort.Slice(results, func(i, j int) bool {
			return bytes.Compare(results[i].Key, results[j].Key) < 0
		})
	}
	return results, nil
}

func (d *accessData) InUse() bool {
	return d.inUse
}

func (d *accessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// contents of iterator slices are only valid until the next call to
// Next so both parts are copied
func element(key []byte, value []byte) Element {
	k := make([]byte, len(key))
	copy(k, key)
	v := make([]byte, len(value))
	copy(v, value)
	return Element{Key: k, Value: v}
}

func inRange(r *ldb_util.Range, key []byte) bool {
	if bytes.Compare(key, r.Start) < 0 {
		return false
	}
	return nil == r.Limit || bytes.Compare(key, r.Limit) < 0
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptnet/promptd/storage"
)

var initial = []stringElement{
	{"key-one", "data-one"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
}

func TestUpdateCommits(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	load(t, db, initial)

	err := db.View(func(r storage.Reader) error {
		for _, e := range initial {
			assert.True(t, r.Has(db.Pool.TestData, []byte(e.key)), e.key)
			assert.Equal(t, []byte(e.value), r.Get(db.Pool.TestData, []byte(e.key)), e.key)
		}
		assert.Nil(t, r.Get(db.Pool.TestData, []byte("/nonexistant")))
		assert.False(t, r.Has(db.Pool.TestData, []byte("/nonexistant")))
		return nil
	})
	assert.NoError(t, err)
}

func TestUpdateDiscardsOnError(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	load(t, db, initial)

	failure := errors.New("stop")
	err := db.Update(func(trx storage.Transaction) error {
		trx.Put(db.Pool.TestData, []byte("key-four"), []byte("data-four"))
		trx.Delete(db.Pool.TestData, []byte("key-one"))
		trx.PutN(db.Pool.Counters, []byte("n"), 7)
		return failure
	})
	assert.Equal(t, failure, err)

	err = db.View(func(r storage.Reader) error {
		assert.False(t, r.Has(db.Pool.TestData, []byte("key-four")))
		assert.True(t, r.Has(db.Pool.TestData, []byte("key-one")))
		_, found := r.GetN(db.Pool.Counters, []byte("n"))
		assert.False(t, found)
		return nil
	})
	assert.NoError(t, err)
}

func TestReadOwnWrites(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	load(t, db, initial)

	err := db.Update(func(trx storage.Transaction) error {
		trx.Put(db.Pool.TestData, []byte("key-one"), []byte("data-one(NEW)"))
		trx.Delete(db.Pool.TestData, []byte("key-two"))
		trx.PutN(db.Pool.Counters, []byte("n"), 1234)

		assert.Equal(t, []byte("data-one(NEW)"), trx.Get(db.Pool.TestData, []byte("key-one")))
		assert.Nil(t, trx.Get(db.Pool.TestData, []byte("key-two")))
		assert.False(t, trx.Has(db.Pool.TestData, []byte("key-two")))

		n, found := trx.GetN(db.Pool.Counters, []byte("n"))
		assert.True(t, found)
		assert.Equal(t, uint64(1234), n)
		return nil
	})
	require.NoError(t, err)

	err = db.View(func(r storage.Reader) error {
		assert.Equal(t, []byte("data-one(NEW)"), r.Get(db.Pool.TestData, []byte("key-one")))
		assert.False(t, r.Has(db.Pool.TestData, []byte("key-two")))
		n, _ := r.GetN(db.Pool.Counters, []byte("n"))
		assert.Equal(t, uint64(1234), n)
		return nil
	})
	assert.NoError(t, err)
}

func collect(r storage.Reader, pool *storage.PoolHandle, partial []byte) []stringElement {
	result := []stringElement{}
	_ = r.Map(pool, partial, func(key []byte, value []byte) error {
		result = append(result, stringElement{string(key), string(value)})
		return nil
	})
	return result
}

func TestMapMergesPending(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	load(t, db, initial)
	load(t, db, []stringElement{{"other", "x"}})

	expected := []stringElement{
		{"key-five", "data-five"},
		{"key-one", "data-one(NEW)"},
		{"key-three", "data-three"},
	}

	err := db.Update(func(trx storage.Transaction) error {
		trx.Put(db.Pool.TestData, []byte("key-one"), []byte("data-one(NEW)"))
		trx.Put(db.Pool.TestData, []byte("key-five"), []byte("data-five"))
		trx.Delete(db.Pool.TestData, []byte("key-two"))
		trx.Put(db.Pool.Items, []byte("key-zero"), []byte("elsewhere"))

		assert.Equal(t, expected, collect(trx, db.Pool.TestData, []byte("key-")))
		return nil
	})
	require.NoError(t, err)

	err = db.View(func(r storage.Reader) error {
		assert.Equal(t, expected, collect(r, db.Pool.TestData, []byte("key-")))
		assert.Len(t, collect(r, db.Pool.TestData, nil), 4)
		assert.Len(t, collect(r, db.Pool.Items, nil), 1)
		return nil
	})
	assert.NoError(t, err)
}

func TestMapStops(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	load(t, db, initial)

	stop := errors.New("enough")
	n := 0
	err := db.View(func(r storage.Reader) error {
		return r.Map(db.Pool.TestData, nil, func(key []byte, value []byte) error {
			n += 1
			return stop
		})
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 1, n)
}

func TestViewIsSnapshot(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	load(t, db, initial)

	err := db.View(func(r storage.Reader) error {
		load(t, db, []stringElement{{"key-one", "changed"}})
		assert.Equal(t, []byte("data-one"), r.Get(db.Pool.TestData, []byte("key-one")))
		return nil
	})
	assert.NoError(t, err)
}

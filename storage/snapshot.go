// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// consistent view of committed data
type snapshot struct {
	snap *leveldb.Snapshot
}

func (s *snapshot) Get(p *PoolHandle, key []byte) []byte {
	value, err := s.snap.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("snapshot.Get", err)
	return value
}

func (s *snapshot) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, s.Get(p, key))
}

func (s *snapshot) Has(p *PoolHandle, key []byte) bool {
	found, err := s.snap.Has(p.prefixKey(key), nil)
	logger.PanicIfError("snapshot.Has", err)
	return found
}

func (s *snapshot) Map(p *PoolHandle, partial []byte, f func(key []byte, value []byte) error) error {
	iter := s.snap.NewIterator(p.prefixRange(partial), nil)
	defer iter.Release()

	for iter.Next() {
		e := element(iter.Key(), iter.Value())
		err := f(e.Key[1:], e.Value)
		if nil != err {
			return err
		}
	}
	return iter.Error()
}

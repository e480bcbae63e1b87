// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/fault"
)

// Pools - the set of tables in one database
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Items      *PoolHandle `prefix:"I"`
	Balances   *PoolHandle `prefix:"B"`
	Operators  *PoolHandle `prefix:"P"`
	Orders     *PoolHandle `prefix:"O"`
	Receipts   *PoolHandle `prefix:"R"`
	Funds      *PoolHandle `prefix:"F"`
	Allowances *PoolHandle `prefix:"W"`
	Control    *PoolHandle `prefix:"C"`
	Counters   *PoolHandle `prefix:"N"`
	TestData   *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// DB - an open database
type DB struct {
	sync.Mutex
	Pool Pools

	log      *logger.L
	readOnly bool
	db       *leveldb.DB
	access   Access
	trx      *transaction
}

// Open - open or create the database
func Open(name string, readOnly bool) (*DB, error) {
	log := logger.New("storage")

	db, version, err := getDB(name, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.DatabaseVersion
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %q has no version", name)
			return nil, fault.DatabaseVersion
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	access := newDA(db, new(leveldb.Batch), newCache())
	d := &DB{
		log:      log,
		readOnly: readOnly,
		db:       db,
		access:   access,
		trx:      newTransaction(access),
	}

	err = d.Pool.assign()
	if nil != err {
		return nil, err
	}

	log.Infof("opened: %q  version: %d  read only: %t", name, currentDBVersion, readOnly)

	ok = true // prevent db close
	return d, nil
}

// assign a handle to every field using its prefix tag
func (pools *Pools) assign() error {

	// this will be a struct type
	poolType := reflect.TypeOf(*pools)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(pools).Elem()

	seen := make(map[byte]string)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s has same prefix as: %s", fieldInfo.Name, other)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (d *DB) Close() {
	d.Lock()
	defer d.Unlock()

	if nil != d.db {
		d.db.Close()
		d.db = nil
		d.log.Info("closed")
	}
}

// Update - run f inside a write transaction
//
// updates are serialised; the batch is written only if f returns nil
// and is discarded otherwise
func (d *DB) Update(f func(trx Transaction) error) error {
	if d.readOnly {
		return fault.DatabaseIsReadOnly
	}

	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.NotInitialised
	}

	err := d.access.Begin()
	if nil != err {
		return err
	}
	defer d.access.Abort()

	err = f(d.trx)
	if nil != err {
		return err
	}

	return d.access.Commit()
}

// View - run f against a consistent snapshot of committed data
func (d *DB) View(f func(r Reader) error) error {
	d.Lock()
	if nil == d.db {
		d.Unlock()
		return fault.NotInitialised
	}
	snap, err := d.db.GetSnapshot()
	d.Unlock()
	if nil != err {
		return err
	}
	defer snap.Release()

	return f(&snapshot{snap: snap})
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

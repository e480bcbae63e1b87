// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/record"
	"github.com/promptnet/promptd/storage"
)

// Holding - units of one item held by one address
type Holding struct {
	Holder   account.Address `json:"holder"`
	Quantity uint64          `json:"quantity"`
}

// Item - committed metadata and supply of an item
func (reg *Registry) Item(id uint64) (*record.Item, error) {
	var item *record.Item
	err := reg.db.View(func(r storage.Reader) error {
		var err error
		item, err = reg.ItemOf(r, id)
		return err
	})
	return item, err
}

// LastItemID - the most recently authorized item, zero if none
func (reg *Registry) LastItemID() (uint64, error) {
	id := uint64(0)
	err := reg.db.View(func(r storage.Reader) error {
		id, _ = r.GetN(reg.db.Pool.Counters, lastItemKey)
		return nil
	})
	return id, err
}

// Balance - units of an item held by holder
func (reg *Registry) Balance(holder account.Address, id uint64) (uint64, error) {
	n := uint64(0)
	err := reg.db.View(func(r storage.Reader) error {
		n = reg.BalanceOf(r, id, holder)
		return nil
	})
	return n, err
}

// IsApprovedForAll - operator may move units of holder
func (reg *Registry) IsApprovedForAll(holder account.Address, operator account.Address) (bool, error) {
	approved := false
	err := reg.db.View(func(r storage.Reader) error {
		approved = reg.IsApproved(r, holder, operator)
		return nil
	})
	return approved, err
}

// HoldersOf - every address with a non-zero balance, in address order
func (reg *Registry) HoldersOf(r storage.Reader, id uint64) ([]Holding, error) {
	holders := make([]Holding, 0)
	err := r.Map(reg.db.Pool.Balances, record.Key(id), func(key []byte, value []byte) error {
		holder, err := account.FromBytes(key[8:])
		if nil != err || len(value) < 8 {
			return fault.CorruptRecord
		}
		holders = append(holders, Holding{
			Holder:   holder,
			Quantity: binary.BigEndian.Uint64(value[:8]),
		})
		return nil
	})
	return holders, err
}

// Holders - committed holders of an item
func (reg *Registry) Holders(id uint64) ([]Holding, error) {
	var holders []Holding
	err := reg.db.View(func(r storage.Reader) error {
		if !r.Has(reg.db.Pool.Items, record.Key(id)) {
			return fault.ItemNotFound
		}
		var err error
		holders, err = reg.HoldersOf(r, id)
		return err
	})
	return holders, err
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/access"
	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/funds"
	"github.com/promptnet/promptd/record"
	"github.com/promptnet/promptd/storage"
)

var lastItemKey = []byte("item")

// Registry - items, their supply and who holds them
type Registry struct {
	log     *logger.L
	db      *storage.DB
	access  *access.Controller
	funds   *funds.Ledger
	address account.Address
}

// New - create a registry known to other components as address
func New(db *storage.DB, ac *access.Controller, ledger *funds.Ledger, address account.Address) *Registry {
	return &Registry{
		log:     logger.New("registry"),
		db:      db,
		access:  ac,
		funds:   ledger,
		address: address,
	}
}

// Address - the asset address orders must name
func (reg *Registry) Address() account.Address {
	return reg.address
}

// ItemOf - read an item inside a transaction or snapshot
func (reg *Registry) ItemOf(r storage.Reader, id uint64) (*record.Item, error) {
	packed := r.Get(reg.db.Pool.Items, record.Key(id))
	if nil == packed {
		return nil, fault.ItemNotFound
	}
	item, err := record.Packed(packed).UnpackItem()
	if nil != err {
		logger.Panicf("registry: item: %d  error: %s", id, err)
	}
	return item, nil
}

// PutItem - store an updated item
func (reg *Registry) PutItem(trx storage.Transaction, item *record.Item) error {
	packed, err := item.Pack()
	if nil != err {
		return err
	}
	trx.Put(reg.db.Pool.Items, record.Key(item.ID), packed)
	return nil
}

func balanceKey(id uint64, holder account.Address) []byte {
	return append(record.Key(id), holder[:]...)
}

// BalanceOf - units of an item held
func (reg *Registry) BalanceOf(r storage.Reader, id uint64, holder account.Address) uint64 {
	n, _ := r.GetN(reg.db.Pool.Balances, balanceKey(id, holder))
	return n
}

// zero balances are removed so that holders lists only current holders
func (reg *Registry) setBalance(trx storage.Transaction, id uint64, holder account.Address, n uint64) {
	if 0 == n {
		trx.Delete(reg.db.Pool.Balances, balanceKey(id, holder))
		return
	}
	trx.PutN(reg.db.Pool.Balances, balanceKey(id, holder), n)
}

func (reg *Registry) credit(trx storage.Transaction, id uint64, holder account.Address, quantity uint64) error {
	if holder.IsZero() {
		return fault.InvalidAddress
	}
	balance := reg.BalanceOf(trx, id, holder)
	if balance+quantity < balance {
		return fault.AmountOverflow
	}
	reg.setBalance(trx, id, holder, balance+quantity)
	return nil
}

func (reg *Registry) debit(trx storage.Transaction, id uint64, holder account.Address, quantity uint64) error {
	balance := reg.BalanceOf(trx, id, holder)
	if balance < quantity {
		return fault.InsufficientBalance
	}
	reg.setBalance(trx, id, holder, balance-quantity)
	return nil
}

// Move - atomic debit/credit of item units
//
// no authorisation is performed, callers must already have checked
func (reg *Registry) Move(trx storage.Transaction, id uint64, from account.Address, to account.Address, quantity uint64) error {
	if 0 == quantity {
		return fault.InvalidQuantity
	}
	if !trx.Has(reg.db.Pool.Items, record.Key(id)) {
		return fault.ItemNotFound
	}
	err := reg.debit(trx, id, from, quantity)
	if nil != err {
		return err
	}
	return reg.credit(trx, id, to, quantity)
}

func operatorKey(holder account.Address, operator account.Address) []byte {
	k := make([]byte, 0, 2*account.AddressLength)
	k = append(k, holder[:]...)
	return append(k, operator[:]...)
}

// IsApproved - caller may move units belonging to holder
func (reg *Registry) IsApproved(r storage.Reader, holder account.Address, caller account.Address) bool {
	if holder == caller {
		return true
	}
	return r.Has(reg.db.Pool.Operators, operatorKey(holder, caller))
}

// run a mutating call: fails if paused
func (reg *Registry) update(f func(trx storage.Transaction, s access.State) error) error {
	return reg.db.Update(func(trx storage.Transaction) error {
		s, err := reg.access.Running(trx)
		if nil != err {
			return err
		}
		return f(trx, s)
	})
}

// run a mutating call on one item as its creator
func (reg *Registry) asCreator(caller account.Address, id uint64, f func(trx storage.Transaction, item *record.Item) error) error {
	return reg.update(func(trx storage.Transaction, _ access.State) error {
		item, err := reg.ItemOf(trx, id)
		if nil != err {
			return err
		}
		if item.Creator != caller {
			reg.log.Warnf("item: %d  caller: %s is not creator", id, caller)
			return fault.Unauthorized
		}
		err = f(trx, item)
		if nil != err {
			return err
		}
		return reg.PutItem(trx, item)
	})
}

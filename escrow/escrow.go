// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/access"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/funds"
	"github.com/promptnet/promptd/record"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/storage"
)

var lastOrderKey = []byte("order")

// Engine - the order book
//
// offered units stay with the maker until a fill, so every fill
// re-checks the maker's balance
type Engine struct {
	log      *logger.L
	db       *storage.DB
	access   *access.Controller
	registry *registry.Registry
	funds    *funds.Ledger
}

// New - create an engine trading items of the registry
func New(db *storage.DB, ac *access.Controller, reg *registry.Registry, ledger *funds.Ledger) *Engine {
	return &Engine{
		log:      logger.New("escrow"),
		db:       db,
		access:   ac,
		registry: reg,
		funds:    ledger,
	}
}

// OrderOf - read an order inside a transaction or snapshot
func (e *Engine) OrderOf(r storage.Reader, id uint64) (*record.Order, error) {
	packed := r.Get(e.db.Pool.Orders, record.Key(id))
	if nil == packed {
		return nil, fault.OrderNotFound
	}
	order, err := record.Packed(packed).UnpackOrder()
	if nil != err {
		logger.Panicf("escrow: order: %d  error: %s", id, err)
	}
	return order, nil
}

func (e *Engine) putOrder(trx storage.Transaction, order *record.Order) error {
	packed, err := order.Pack()
	if nil != err {
		return err
	}
	trx.Put(e.db.Pool.Orders, record.Key(order.ID), packed)
	return nil
}

func (e *Engine) putReceipt(trx storage.Transaction, receipt *record.Receipt) error {
	packed, err := receipt.Pack()
	if nil != err {
		return err
	}
	trx.Put(e.db.Pool.Receipts, record.Key2(receipt.OrderID, receipt.Sequence), packed)
	return nil
}

// run a mutating call on one order
func (e *Engine) update(id uint64, f func(trx storage.Transaction, s access.State, order *record.Order) error) error {
	return e.db.Update(func(trx storage.Transaction) error {
		s, err := e.access.Running(trx)
		if nil != err {
			return err
		}
		order, err := e.OrderOf(trx, id)
		if nil != err {
			return err
		}
		err = f(trx, s, order)
		if nil != err {
			return err
		}
		return e.putOrder(trx, order)
	})
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/record"
	"github.com/promptnet/promptd/storage"
)

// Order - committed state of an order
func (e *Engine) Order(id uint64) (*record.Order, error) {
	var order *record.Order
	err := e.db.View(func(r storage.Reader) error {
		var err error
		order, err = e.OrderOf(r, id)
		return err
	})
	return order, err
}

// LastOrderID - the most recently created order, zero if none
func (e *Engine) LastOrderID() (uint64, error) {
	id := uint64(0)
	err := e.db.View(func(r storage.Reader) error {
		id, _ = r.GetN(e.db.Pool.Counters, lastOrderKey)
		return nil
	})
	return id, err
}

// Receipts - fills of an order in sequence
func (e *Engine) Receipts(id uint64) ([]*record.Receipt, error) {
	receipts := make([]*record.Receipt, 0)
	err := e.db.View(func(r storage.Reader) error {
		_, err := e.OrderOf(r, id)
		if nil != err {
			return err
		}
		return r.Map(e.db.Pool.Receipts, record.Key(id), func(key []byte, value []byte) error {
			receipt, err := record.Packed(value).UnpackReceipt()
			if nil != err {
				logger.Panicf("escrow: receipt: %x  error: %s", key, err)
			}
			receipts = append(receipts, receipt)
			return nil
		})
	})
	return receipts, err
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/promptnet/promptd/access"
	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/currency"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/record"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/storage"
)

// units moved by one fill
const unitsPerFill = 1

// Swap - buy one unit of an order paying with the order's currency
//
// the asset leg and every payment leg are applied together or not at all
func (e *Engine) Swap(caller account.Address, id uint64, payment registry.Payment) error {
	var receipt *record.Receipt
	err := e.update(id, func(trx storage.Transaction, s access.State, order *record.Order) error {
		if currency.Fiat == order.Price.Kind {
			return fault.InvalidOrder
		}
		var err error
		receipt, err = e.fill(trx, s, order, caller, caller, payment)
		return err
	})
	if nil != err {
		e.log.Debugf("swap order: %d  buyer: %s  error: %s", id, caller, err)
		return err
	}
	e.log.Infof("swap order: %d  fill: %d  buyer: %s  price: %d  fee: %d  royalty: %d", id, receipt.Sequence, caller, receipt.Price, receipt.Fee, receipt.Royalty)
	return nil
}

// SwapWithFiat - operator attests that payment for one unit was made
// outside the system and the unit is delivered to recipient
func (e *Engine) SwapWithFiat(caller account.Address, id uint64, recipient account.Address) error {
	var receipt *record.Receipt
	err := e.update(id, func(trx storage.Transaction, s access.State, order *record.Order) error {
		if !s.IsOperator(caller) {
			return fault.Unauthorized
		}
		if currency.Fiat != order.Price.Kind {
			return fault.InvalidOrder
		}
		var err error
		receipt, err = e.fill(trx, s, order, recipient, recipient, registry.Payment{})
		return err
	})
	if nil != err {
		e.log.Debugf("fiat swap order: %d  recipient: %s  error: %s", id, recipient, err)
		return err
	}
	e.log.Infof("fiat swap order: %d  fill: %d  recipient: %s  royalty owed: %d", id, receipt.Sequence, recipient, receipt.Royalty)
	return nil
}

// fill - move one unit to recipient and settle its price
func (e *Engine) fill(trx storage.Transaction, s access.State, order *record.Order, payer account.Address, recipient account.Address, payment registry.Payment) (*record.Receipt, error) {
	if order.Ended || order.Remaining < unitsPerFill {
		return nil, fault.OrderAlreadySettled
	}
	if recipient.IsZero() {
		return nil, fault.InvalidAddress
	}
	if recipient == order.Maker {
		return nil, fault.InvalidOrder
	}

	item, err := e.registry.ItemOf(trx, order.TokenID)
	if nil != err {
		return nil, err
	}

	// the maker kept custody so the unit may have gone elsewhere
	if e.registry.BalanceOf(trx, order.TokenID, order.Maker) < unitsPerFill {
		return nil, fault.StaleOrder
	}

	receipt := &record.Receipt{
		OrderID:  order.ID,
		Sequence: order.Filled + 1,
		Buyer:    recipient,
		Kind:     order.Price.Kind,
		Price:    order.Price.Amount,
	}

	err = e.settle(trx, s, order, item, payer, payment, receipt)
	if nil != err {
		return nil, err
	}

	err = e.registry.Move(trx, order.TokenID, order.Maker, recipient, unitsPerFill)
	if nil != err {
		return nil, err
	}

	order.Remaining -= unitsPerFill
	order.Filled += 1
	order.Ended = 0 == order.Remaining

	err = e.putReceipt(trx, receipt)
	if nil != err {
		return nil, err
	}
	return receipt, nil
}

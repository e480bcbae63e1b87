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

// leg - one transfer of the price
type leg struct {
	to     account.Address
	amount uint64
}

// split the unit price between seller, platform and creator and fill
// in the receipt
func legs(s access.State, order *record.Order, item *record.Item, receipt *record.Receipt) ([]leg, error) {
	shares, err := currency.Split(order.Price.Amount, order.FeeRate, order.RoyaltyRate)
	if nil != err {
		return nil, err
	}
	receipt.Fee = shares.Fee
	receipt.Royalty = shares.Royalty
	receipt.Proceeds = shares.Proceeds

	return []leg{
		{to: order.Maker, amount: shares.Proceeds},
		{to: s.Operator, amount: shares.Fee},
		{to: item.Creator, amount: shares.Royalty},
	}, nil
}

// settle - one fulfillment strategy per settlement kind
func (e *Engine) settle(trx storage.Transaction, s access.State, order *record.Order, item *record.Item, payer account.Address, payment registry.Payment, receipt *record.Receipt) error {
	switch order.Price.Kind {
	case currency.FungibleToken:
		return e.settleFungible(trx, s, order, item, payer, payment, receipt)
	case currency.Native:
		return e.settleNative(trx, s, order, item, payer, payment, receipt)
	case currency.Fiat:
		return e.settleFiat(s, order, item, receipt)
	case currency.Asset:
		return e.settleAsset(trx, order, payer, payment, receipt)
	default:
		return fault.InvalidOrder
	}
}

// token pulled from the payer's allowance
func (e *Engine) settleFungible(trx storage.Transaction, s access.State, order *record.Order, item *record.Item, payer account.Address, payment registry.Payment, receipt *record.Receipt) error {
	if 0 != payment.Value {
		return fault.InsufficientPayment
	}
	parts, err := legs(s, order, item, receipt)
	if nil != err {
		return err
	}
	for _, l := range parts {
		err := e.funds.Pull(trx, payer, l.to, order.Price.Currency(), l.amount)
		if nil != err {
			return err
		}
	}
	return nil
}

// attached value must be exactly the unit price
func (e *Engine) settleNative(trx storage.Transaction, s access.State, order *record.Order, item *record.Item, payer account.Address, payment registry.Payment, receipt *record.Receipt) error {
	if payment.Value != order.Price.Amount {
		return fault.InsufficientPayment
	}
	parts, err := legs(s, order, item, receipt)
	if nil != err {
		return err
	}
	for _, l := range parts {
		err := e.funds.Move(trx, payer, l.to, currency.NativeAddress, l.amount)
		if fault.InsufficientBalance == err {
			return fault.InsufficientPayment
		} else if nil != err {
			return err
		}
	}
	return nil
}

// nothing moves, the receipt records what is owed
func (e *Engine) settleFiat(s access.State, order *record.Order, item *record.Item, receipt *record.Receipt) error {
	_, err := legs(s, order, item, receipt)
	return err
}

// units of the counter item go to the maker, whole units cannot carry
// a fee or royalty
func (e *Engine) settleAsset(trx storage.Transaction, order *record.Order, payer account.Address, payment registry.Payment, receipt *record.Receipt) error {
	if 0 != payment.Value {
		return fault.InsufficientPayment
	}
	err := e.registry.Move(trx, order.CounterItem, payer, order.Maker, order.Price.Amount)
	if nil != err {
		return err
	}
	receipt.Proceeds = order.Price.Amount
	return nil
}

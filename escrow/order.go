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
	"github.com/promptnet/promptd/storage"
)

// Offer - parameters of a new order
//
// ItemID names the registry item; AssetAddress and TokenID name the
// same item as seen from outside and must agree with it.  Price is
// per unit.  Nil rates are taken from the item.
type Offer struct {
	ItemID       uint64          `json:"itemId,string"`
	AssetAddress account.Address `json:"assetAddress"`
	TokenID      uint64          `json:"tokenId,string"`
	Quantity     uint64          `json:"quantity"`
	Price        currency.Price  `json:"price"`
	CounterItem  uint64          `json:"counterItem,string"`
	FeeRate      *currency.Rate  `json:"feeRate,omitempty"`
	RoyaltyRate  *currency.Rate  `json:"royaltyRate,omitempty"`
}

// the fee and royalty together may not exceed the price
func checkRates(fee currency.Rate, royalty currency.Rate) error {
	_, err := currency.Split(0, fee, royalty)
	return err
}

// Create - list units of an item held by the caller
func (e *Engine) Create(caller account.Address, offer Offer) (uint64, error) {
	if 0 == offer.Quantity || 0 == offer.Price.Amount {
		return 0, fault.InvalidOrder
	}
	if offer.AssetAddress != e.registry.Address() || offer.TokenID != offer.ItemID {
		return 0, fault.InvalidOrder
	}
	err := offer.Price.Validate()
	if nil != err {
		return 0, err
	}

	id := uint64(0)
	err = e.db.Update(func(trx storage.Transaction) error {
		_, err := e.access.Running(trx)
		if nil != err {
			return err
		}

		item, err := e.registry.ItemOf(trx, offer.ItemID)
		if nil != err {
			return err
		}

		counterItem := uint64(0)
		if currency.Asset == offer.Price.Kind {
			if offer.CounterItem == offer.ItemID {
				return fault.InvalidOrder
			}
			_, err := e.registry.ItemOf(trx, offer.CounterItem)
			if nil != err {
				return err
			}
			counterItem = offer.CounterItem
		}

		if e.registry.BalanceOf(trx, offer.ItemID, caller) < offer.Quantity {
			return fault.InvalidOrder
		}

		fee := item.FeeRate
		if nil != offer.FeeRate {
			fee = *offer.FeeRate
		}
		royalty := item.RoyaltyRate
		if nil != offer.RoyaltyRate {
			royalty = *offer.RoyaltyRate
		}
		err = checkRates(fee, royalty)
		if nil != err {
			return err
		}

		last, _ := trx.GetN(e.db.Pool.Counters, lastOrderKey)
		id = last + 1

		order := &record.Order{
			ID:           id,
			Maker:        caller,
			AssetAddress: offer.AssetAddress,
			TokenID:      offer.TokenID,
			Quantity:     offer.Quantity,
			Remaining:    offer.Quantity,
			Price:        offer.Price.Normalise(),
			CounterItem:  counterItem,
			FeeRate:      fee,
			RoyaltyRate:  royalty,
		}
		err = e.putOrder(trx, order)
		if nil != err {
			return err
		}
		trx.PutN(e.db.Pool.Counters, lastOrderKey, id)
		return nil
	})
	if nil != err {
		e.log.Debugf("create by: %s  item: %d  error: %s", caller, offer.ItemID, err)
		return 0, err
	}
	e.log.Infof("order: %d  maker: %s  item: %d  quantity: %d  price: %d %s", id, caller, offer.ItemID, offer.Quantity, offer.Price.Amount, offer.Price.Kind)
	return id, nil
}

// Cancel - maker ends the order without a fill
func (e *Engine) Cancel(caller account.Address, id uint64) error {
	err := e.update(id, func(trx storage.Transaction, _ access.State, order *record.Order) error {
		if order.Maker != caller {
			return fault.Unauthorized
		}
		if order.Ended {
			return fault.OrderAlreadySettled
		}
		order.Ended = true
		return nil
	})
	if nil != err {
		e.log.Debugf("cancel order: %d  error: %s", id, err)
		return err
	}
	e.log.Infof("cancelled order: %d", id)
	return nil
}

// UpdateRates - change the fee and royalty of an unfilled order in one
// transaction; a nil rate is left as it is
//
// rates may only change before the first fill and only by the
// creator of the listed item
func (e *Engine) UpdateRates(caller account.Address, id uint64, fee *currency.Rate, royalty *currency.Rate) error {
	if nil == fee && nil == royalty {
		return fault.MissingParameters
	}
	err := e.update(id, func(trx storage.Transaction, _ access.State, order *record.Order) error {
		item, err := e.registry.ItemOf(trx, order.TokenID)
		if nil != err {
			return err
		}
		if item.Creator != caller {
			return fault.Unauthorized
		}
		if order.Ended || 0 != order.Filled {
			return fault.OrderAlreadySettled
		}
		if nil != fee {
			order.FeeRate = *fee
		}
		if nil != royalty {
			order.RoyaltyRate = *royalty
		}
		return checkRates(order.FeeRate, order.RoyaltyRate)
	})
	if nil != err {
		e.log.Debugf("update rates order: %d  error: %s", id, err)
		return err
	}
	e.log.Infof("order: %d  rates updated by: %s", id, caller)
	return nil
}

// UpdateFee - change the platform share of an unfilled order
func (e *Engine) UpdateFee(caller account.Address, id uint64, rate currency.Rate) error {
	return e.UpdateRates(caller, id, &rate, nil)
}

// UpdateRoyalty - change the creator share of an unfilled order
func (e *Engine) UpdateRoyalty(caller account.Address, id uint64, rate currency.Rate) error {
	return e.UpdateRates(caller, id, nil, &rate)
}

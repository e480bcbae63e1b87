// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/promptnet/promptd/access"
	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/currency"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/record"
	"github.com/promptnet/promptd/storage"
)

// primary sale prices must be paid on-path
func checkMintPrice(price currency.Price) error {
	if !price.Kind.Mintable() {
		return fault.InvalidCurrency
	}
	return price.Validate()
}

// Authorize - register a new item created by the caller
//
// initial units are credited to the creator without payment
func (reg *Registry) Authorize(caller account.Address, uri string, initial uint64, price currency.Price, maxSupply uint64) (uint64, error) {
	if caller.IsZero() {
		return 0, fault.InvalidAddress
	}
	if 0 != maxSupply && initial > maxSupply {
		return 0, fault.InvalidSupply
	}
	err := checkMintPrice(price)
	if nil != err {
		return 0, err
	}

	id := uint64(0)
	err = reg.update(func(trx storage.Transaction, _ access.State) error {
		last, _ := trx.GetN(reg.db.Pool.Counters, lastItemKey)
		id = last + 1

		item := &record.Item{
			ID:          id,
			Creator:     caller,
			URI:         uri,
			Price:       price.Normalise(),
			MaxSupply:   maxSupply,
			Supply:      initial,
			FeeRate:     currency.DefaultRate,
			RoyaltyRate: currency.DefaultRate,
		}
		err := reg.PutItem(trx, item)
		if nil != err {
			return err
		}
		if 0 != initial {
			err = reg.credit(trx, id, caller, initial)
			if nil != err {
				return err
			}
		}
		trx.PutN(reg.db.Pool.Counters, lastItemKey, id)
		return nil
	})
	if nil != err {
		reg.log.Debugf("authorize by: %s  error: %s", caller, err)
		return 0, err
	}
	reg.log.Infof("authorized item: %d  creator: %s  initial: %d  max: %d", id, caller, initial, maxSupply)
	return id, nil
}

// Changes - creator edits applied together by Update
//
// nil fields are left as they are
type Changes struct {
	URI         *string          `json:"uri,omitempty"`
	Price       *currency.Price  `json:"price,omitempty"`
	FeeRate     *currency.Rate   `json:"feeRate,omitempty"`
	RoyaltyRate *currency.Rate   `json:"royaltyRate,omitempty"`
	Creator     *account.Address `json:"creator,omitempty"`
}

// IsEmpty - true if no field is set
func (c Changes) IsEmpty() bool {
	return nil == c.URI && nil == c.Price && nil == c.FeeRate &&
		nil == c.RoyaltyRate && nil == c.Creator
}

// Update - apply creator edits in one transaction
//
// either every change is stored or none is
func (reg *Registry) Update(caller account.Address, id uint64, changes Changes) error {
	if changes.IsEmpty() {
		return fault.MissingParameters
	}
	if nil != changes.Price {
		err := checkMintPrice(*changes.Price)
		if nil != err {
			return err
		}
	}
	if nil != changes.Creator && changes.Creator.IsZero() {
		return fault.InvalidAddress
	}

	err := reg.asCreator(caller, id, func(trx storage.Transaction, item *record.Item) error {
		if nil != changes.URI {
			item.URI = *changes.URI
		}
		if nil != changes.Price {
			item.Price = changes.Price.Normalise()
		}
		if nil != changes.FeeRate {
			item.FeeRate = *changes.FeeRate
		}
		if nil != changes.RoyaltyRate {
			item.RoyaltyRate = *changes.RoyaltyRate
		}
		if nil != changes.Creator {
			item.Creator = *changes.Creator
		}

		// orders take these as defaults so the pair must split a price
		_, err := currency.Split(0, item.FeeRate, item.RoyaltyRate)
		return err
	})
	if nil != err {
		reg.log.Debugf("update item: %d  by: %s  error: %s", id, caller, err)
		return err
	}
	reg.log.Infof("item: %d  updated by: %s", id, caller)
	return nil
}

// SetURI - change the metadata locator
func (reg *Registry) SetURI(caller account.Address, id uint64, uri string) error {
	return reg.Update(caller, id, Changes{URI: &uri})
}

// SetPrice - change the primary sale price
func (reg *Registry) SetPrice(caller account.Address, id uint64, price currency.Price) error {
	return reg.Update(caller, id, Changes{Price: &price})
}

// SetFeeRate - change the platform share of future orders
func (reg *Registry) SetFeeRate(caller account.Address, id uint64, rate currency.Rate) error {
	return reg.Update(caller, id, Changes{FeeRate: &rate})
}

// SetRoyaltyRate - change the creator share of future orders
func (reg *Registry) SetRoyaltyRate(caller account.Address, id uint64, rate currency.Rate) error {
	return reg.Update(caller, id, Changes{RoyaltyRate: &rate})
}

// TransferItemOwner - reassign the creator role of an item
func (reg *Registry) TransferItemOwner(caller account.Address, id uint64, creator account.Address) error {
	return reg.Update(caller, id, Changes{Creator: &creator})
}

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

// Payment - value attached to a call
//
// fungible token payments are pulled through the caller's allowance
// and carry no attached value
type Payment struct {
	Value uint64 `json:"value"`
}

// Mint - primary sale of new units paid for by the caller
//
// the payment and the credit are applied in one transaction
func (reg *Registry) Mint(caller account.Address, to account.Address, id uint64, quantity uint64, payment Payment) error {
	if 0 == quantity {
		return fault.InvalidQuantity
	}
	if to.IsZero() {
		return fault.InvalidAddress
	}

	err := reg.update(func(trx storage.Transaction, _ access.State) error {
		item, err := reg.ItemOf(trx, id)
		if nil != err {
			return err
		}

		supply := item.Supply + quantity
		if supply < item.Supply || (item.Capped() && supply > item.MaxSupply) {
			return fault.SupplyExceeded
		}

		cost, err := item.Price.Times(quantity)
		if nil != err {
			return err
		}

		switch item.Price.Kind {
		case currency.FungibleToken:
			if 0 != payment.Value {
				return fault.InsufficientPayment
			}
			err = reg.funds.Pull(trx, caller, item.Creator, item.Price.Currency(), cost)

		case currency.Native:
			if payment.Value != cost {
				return fault.InsufficientPayment
			}
			err = reg.funds.Move(trx, caller, item.Creator, currency.NativeAddress, cost)
			if fault.InsufficientBalance == err {
				err = fault.InsufficientPayment
			}

		default:
			err = fault.InvalidCurrency
		}
		if nil != err {
			return err
		}

		err = reg.credit(trx, id, to, quantity)
		if nil != err {
			return err
		}
		item.Supply = supply
		return reg.PutItem(trx, item)
	})
	if nil != err {
		reg.log.Debugf("mint item: %d  quantity: %d  error: %s", id, quantity, err)
		return err
	}
	reg.log.Infof("minted item: %d  quantity: %d  to: %s  payer: %s", id, quantity, to, caller)
	return nil
}

// Burn - destroy units held by holder
func (reg *Registry) Burn(caller account.Address, holder account.Address, id uint64, quantity uint64) error {
	if 0 == quantity {
		return fault.InvalidQuantity
	}
	err := reg.update(func(trx storage.Transaction, _ access.State) error {
		item, err := reg.ItemOf(trx, id)
		if nil != err {
			return err
		}
		if !reg.IsApproved(trx, holder, caller) {
			return fault.Unauthorized
		}
		err = reg.debit(trx, id, holder, quantity)
		if nil != err {
			return err
		}
		item.Supply -= quantity
		item.TotalBurnt += quantity
		return reg.PutItem(trx, item)
	})
	if nil != err {
		reg.log.Debugf("burn item: %d  quantity: %d  error: %s", id, quantity, err)
		return err
	}
	reg.log.Infof("burnt item: %d  quantity: %d  holder: %s", id, quantity, holder)
	return nil
}

// Transfer - move units between holders
//
// caller must be the sender or an approved operator of the sender
func (reg *Registry) Transfer(caller account.Address, from account.Address, to account.Address, id uint64, quantity uint64) error {
	err := reg.update(func(trx storage.Transaction, _ access.State) error {
		if !trx.Has(reg.db.Pool.Items, record.Key(id)) {
			return fault.ItemNotFound
		}
		if !reg.IsApproved(trx, from, caller) {
			return fault.Unauthorized
		}
		return reg.Move(trx, id, from, to, quantity)
	})
	if nil != err {
		reg.log.Debugf("transfer item: %d  error: %s", id, err)
		return err
	}
	reg.log.Infof("transfer item: %d  quantity: %d  %s → %s", id, quantity, from, to)
	return nil
}

// SetApprovalForAll - allow or revoke an operator for all of the caller's units
func (reg *Registry) SetApprovalForAll(caller account.Address, operator account.Address, approved bool) error {
	if operator.IsZero() || operator == caller {
		return fault.InvalidAddress
	}
	return reg.update(func(trx storage.Transaction, _ access.State) error {
		if approved {
			trx.Put(reg.db.Pool.Operators, operatorKey(caller, operator), []byte{1})
		} else {
			trx.Delete(reg.db.Pool.Operators, operatorKey(caller, operator))
		}
		reg.log.Infof("holder: %s  operator: %s  approved: %t", caller, operator, approved)
		return nil
	})
}

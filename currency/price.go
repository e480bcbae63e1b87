// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"math/bits"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
)

// NativeAddress - funds key used for native value
var NativeAddress = account.Address{
	0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee,
	0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee,
}

// Price - amount of a settlement currency
//
// Address is only meaningful for FungibleToken and is zero otherwise
type Price struct {
	Kind    Kind            `json:"kind"`
	Address account.Address `json:"address"`
	Amount  uint64          `json:"amount"`
}

// Validate - check kind and address agree
func (p Price) Validate() error {
	if !p.Kind.IsValid() {
		return fault.InvalidCurrency
	}
	if p.Kind.NeedsAddress() {
		if p.Address.IsZero() || p.Address == NativeAddress {
			return fault.InvalidCurrency
		}
	}
	return nil
}

// Normalise - clear the address of kinds that do not use one
func (p Price) Normalise() Price {
	if !p.Kind.NeedsAddress() {
		p.Address = account.Zero
	}
	return p
}

// Currency - the funds key for the price's medium
func (p Price) Currency() account.Address {
	switch p.Kind {
	case FungibleToken:
		return p.Address
	case Native:
		return NativeAddress
	default:
		return account.Zero
	}
}

// Times - amount multiplied by a quantity
func (p Price) Times(quantity uint64) (uint64, error) {
	hi, lo := bits.Mul64(p.Amount, quantity)
	if 0 != hi {
		return 0, fault.AmountOverflow
	}
	return lo, nil
}

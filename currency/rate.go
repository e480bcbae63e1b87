// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/promptnet/promptd/fault"
)

// Rate - a rational share in the range [0, 1)
type Rate struct {
	d decimal.Decimal
}

var one = decimal.NewFromInt(1)

// DefaultRate - initial fee and royalty rate of items and orders
var DefaultRate = MustRate("0.1")

// ZeroRate - no share
var ZeroRate = Rate{d: decimal.Zero}

// NewRate - parse a decimal string
func NewRate(s string) (Rate, error) {
	d, err := decimal.NewFromString(s)
	if nil != err {
		return ZeroRate, fault.InvalidRate
	}
	return RateFromDecimal(d)
}

// RateFromDecimal - check range of a decimal value
func RateFromDecimal(d decimal.Decimal) (Rate, error) {
	if d.IsNegative() || d.GreaterThanOrEqual(one) {
		return ZeroRate, fault.InvalidRate
	}
	return Rate{d: d}, nil
}

// MustRate - for constants, panics on invalid input
func MustRate(s string) Rate {
	r, err := NewRate(s)
	if nil != err {
		panic("currency: invalid rate: " + s)
	}
	return r
}

// Decimal - underlying value
func (r Rate) Decimal() decimal.Decimal {
	return r.d
}

// IsZero - true for a zero rate
func (r Rate) IsZero() bool {
	return r.d.IsZero()
}

// Equal - compare values, ignoring representation
func (r Rate) Equal(other Rate) bool {
	return r.d.Equal(other.d)
}

// String - shortest decimal form
func (r Rate) String() string {
	return r.d.String()
}

// Of - the floor of amount × rate
func (r Rate) Of(amount uint64) uint64 {
	a := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0)
	return a.Mul(r.d).Floor().BigInt().Uint64()
}

// MarshalText - rate as a decimal string
func (r Rate) MarshalText() ([]byte, error) {
	return []byte(r.d.String()), nil
}

// UnmarshalText - parse and range check
func (r *Rate) UnmarshalText(s []byte) error {
	rate, err := NewRate(string(s))
	if nil != err {
		return err
	}
	*r = rate
	return nil
}

// Shares - division of a price between platform, creator and seller
type Shares struct {
	Fee      uint64 `json:"fee"`
	Royalty  uint64 `json:"royalty"`
	Proceeds uint64 `json:"proceeds"`
}

// Split - divide a price into fee, royalty and seller proceeds
//
// fee and royalty are each rounded down and the seller receives the
// remainder so the three shares always sum to the price
func Split(price uint64, fee Rate, royalty Rate) (Shares, error) {
	if fee.d.Add(royalty.d).GreaterThan(one) {
		return Shares{}, fault.InvalidRate
	}
	f := fee.Of(price)
	r := royalty.Of(price)
	if f+r > price {
		return Shares{}, fault.InvalidRate
	}
	return Shares{
		Fee:      f,
		Royalty:  r,
		Proceeds: price - f - r,
	}, nil
}

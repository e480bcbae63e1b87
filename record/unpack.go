// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/currency"
	"github.com/promptnet/promptd/fault"
)

// Unpack - turn a byte slice into a record
//
// the caller must type assert the result:
//   switch r := result.(type) {
//   case *record.Item:
func (record Packed) Unpack() (Record, error) {
	u := &unpacker{buffer: record}

	switch TagType(u.uint64()) {

	case ItemTag:
		item := &Item{
			ID:      u.uint64(),
			Creator: u.address(),
			URI:     u.string(),
			Price:   u.price(),
		}
		item.MaxSupply = u.uint64()
		item.Supply = u.uint64()
		item.TotalBurnt = u.uint64()
		item.FeeRate = u.rate()
		item.RoyaltyRate = u.rate()
		if nil != u.done() {
			return nil, u.err
		}
		return item, nil

	case OrderTag:
		order := &Order{
			ID:           u.uint64(),
			Maker:        u.address(),
			AssetAddress: u.address(),
			TokenID:      u.uint64(),
		}
		order.Quantity = u.uint64()
		order.Remaining = u.uint64()
		order.Filled = u.uint64()
		order.Price = u.price()
		order.CounterItem = u.uint64()
		order.FeeRate = u.rate()
		order.RoyaltyRate = u.rate()
		order.Ended = u.bool()
		if nil != u.done() {
			return nil, u.err
		}
		return order, nil

	case ReceiptTag:
		receipt := &Receipt{
			OrderID:  u.uint64(),
			Sequence: u.uint64(),
			Buyer:    u.address(),
		}
		receipt.Kind = currency.Kind(u.uint64())
		receipt.Price = u.uint64()
		receipt.Fee = u.uint64()
		receipt.Royalty = u.uint64()
		receipt.Proceeds = u.uint64()
		if nil != u.done() {
			return nil, u.err
		}
		return receipt, nil

	default:
		return nil, fault.CorruptRecord
	}
}

// UnpackItem - unpack and check the record is an item
func (record Packed) UnpackItem() (*Item, error) {
	r, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	item, ok := r.(*Item)
	if !ok {
		return nil, fault.CorruptRecord
	}
	return item, nil
}

// UnpackOrder - unpack and check the record is an order
func (record Packed) UnpackOrder() (*Order, error) {
	r, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	order, ok := r.(*Order)
	if !ok {
		return nil, fault.CorruptRecord
	}
	return order, nil
}

// UnpackReceipt - unpack and check the record is a receipt
func (record Packed) UnpackReceipt() (*Receipt, error) {
	r, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	receipt, ok := r.(*Receipt)
	if !ok {
		return nil, fault.CorruptRecord
	}
	return receipt, nil
}

// sequential field reader, the first failure sticks and all later
// reads return zero values
type unpacker struct {
	buffer []byte
	n      int
	err    error
}

func (u *unpacker) fail() {
	if nil == u.err {
		u.err = fault.CorruptRecord
	}
}

func (u *unpacker) uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, length := binary.Uvarint(u.buffer[u.n:])
	if length <= 0 {
		u.fail()
		return 0
	}
	u.n += length
	return value
}

func (u *unpacker) take(length uint64) []byte {
	if nil != u.err {
		return nil
	}
	if length > uint64(len(u.buffer)-u.n) {
		u.fail()
		return nil
	}
	b := u.buffer[u.n : u.n+int(length)]
	u.n += int(length)
	return b
}

func (u *unpacker) string() string {
	length := u.uint64()
	if length > maxURILength*4 {
		u.fail()
		return ""
	}
	return string(u.take(length))
}

func (u *unpacker) address() account.Address {
	b := u.take(account.AddressLength)
	if nil == b {
		return account.Zero
	}
	a, err := account.FromBytes(b)
	if nil != err {
		u.fail()
	}
	return a
}

func (u *unpacker) price() currency.Price {
	p := currency.Price{
		Kind:    currency.Kind(u.uint64()),
		Address: u.address(),
		Amount:  u.uint64(),
	}
	if nil == u.err && !p.Kind.IsValid() {
		u.fail()
	}
	return p
}

func (u *unpacker) rate() currency.Rate {
	s := u.string()
	if nil != u.err {
		return currency.ZeroRate
	}
	r, err := currency.NewRate(s)
	if nil != err {
		u.fail()
	}
	return r
}

func (u *unpacker) bool() bool {
	b := u.take(1)
	if nil == b {
		return false
	}
	switch b[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		u.fail()
		return false
	}
}

// whole buffer must have been consumed
func (u *unpacker) done() error {
	if nil == u.err && u.n != len(u.buffer) {
		u.fail()
	}
	return u.err
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/currency"
)

// Packed - packed records are just a byte slice
type Packed []byte

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	ItemTag    = TagType(iota)
	OrderTag   = TagType(iota)
	ReceiptTag = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// limits
const (
	maxURILength = 8192
)

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// Item - a registered asset class
type Item struct {
	ID          uint64          `json:"id,string"`
	Creator     account.Address `json:"creator"`
	URI         string          `json:"uri"`
	Price       currency.Price  `json:"price"`
	MaxSupply   uint64          `json:"maxSupply"`
	Supply      uint64          `json:"currentSupply"`
	TotalBurnt  uint64          `json:"totalBurnt"`
	FeeRate     currency.Rate   `json:"feeRate"`
	RoyaltyRate currency.Rate   `json:"royaltyRate"`
}

// Capped - supply has an upper bound
func (item *Item) Capped() bool {
	return 0 != item.MaxSupply
}

// Order - an escrow listing
//
// Price.Amount is per unit; for Asset kind it is the number of units
// of CounterItem per unit sold
type Order struct {
	ID           uint64          `json:"id,string"`
	Maker        account.Address `json:"maker"`
	AssetAddress account.Address `json:"assetAddress"`
	TokenID      uint64          `json:"tokenId,string"`
	Quantity     uint64          `json:"quantity"`
	Remaining    uint64          `json:"remaining"`
	Filled       uint64          `json:"filled"`
	Price        currency.Price  `json:"price"`
	CounterItem  uint64          `json:"counterItem,string"`
	FeeRate      currency.Rate   `json:"feeRate"`
	RoyaltyRate  currency.Rate   `json:"royaltyRate"`
	Ended        bool            `json:"ended"`
}

// Receipt - one fill of an order
//
// for fiat fills no currency moved, fee and royalty are the amounts owed
type Receipt struct {
	OrderID  uint64          `json:"orderId,string"`
	Sequence uint64          `json:"sequence"`
	Buyer    account.Address `json:"buyer"`
	Kind     currency.Kind   `json:"kind"`
	Price    uint64          `json:"price"`
	Fee      uint64          `json:"fee"`
	Royalty  uint64          `json:"royalty"`
	Proceeds uint64          `json:"proceeds"`
}

// Key - an id as a database key
func Key(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}

// Key2 - an id followed by a second id, for sequences under an id
func Key2(id uint64, seq uint64) []byte {
	k := make([]byte, 16)
	binary.BigEndian.PutUint64(k, id)
	binary.BigEndian.PutUint64(k[8:], seq)
	return k
}

// FromKey - recover an id from the first 8 bytes of a key
func FromKey(k []byte) uint64 {
	if len(k) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(k[:8])
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/currency"
	"github.com/promptnet/promptd/fault"
)

// Pack - Varint64(tag) followed by fields in order as struct above
func (item *Item) Pack() (Packed, error) {
	if utf8.RuneCountInString(item.URI) > maxURILength || !utf8.ValidString(item.URI) {
		return nil, fault.InvalidURI
	}
	if item.Capped() && item.Supply > item.MaxSupply {
		return nil, fault.SupplyExceeded
	}

	message := appendUint64(nil, uint64(ItemTag))
	message = appendUint64(message, item.ID)
	message = appendAddress(message, item.Creator)
	message = appendString(message, item.URI)
	message = appendPrice(message, item.Price)
	message = appendUint64(message, item.MaxSupply)
	message = appendUint64(message, item.Supply)
	message = appendUint64(message, item.TotalBurnt)
	message = appendRate(message, item.FeeRate)
	message = appendRate(message, item.RoyaltyRate)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in order as struct above
func (order *Order) Pack() (Packed, error) {
	if order.Remaining > order.Quantity {
		return nil, fault.InvalidQuantity
	}

	message := appendUint64(nil, uint64(OrderTag))
	message = appendUint64(message, order.ID)
	message = appendAddress(message, order.Maker)
	message = appendAddress(message, order.AssetAddress)
	message = appendUint64(message, order.TokenID)
	message = appendUint64(message, order.Quantity)
	message = appendUint64(message, order.Remaining)
	message = appendUint64(message, order.Filled)
	message = appendPrice(message, order.Price)
	message = appendUint64(message, order.CounterItem)
	message = appendRate(message, order.FeeRate)
	message = appendRate(message, order.RoyaltyRate)
	message = appendBool(message, order.Ended)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in order as struct above
func (receipt *Receipt) Pack() (Packed, error) {
	if receipt.Fee+receipt.Royalty+receipt.Proceeds != receipt.Price {
		return nil, fault.AmountOverflow
	}

	message := appendUint64(nil, uint64(ReceiptTag))
	message = appendUint64(message, receipt.OrderID)
	message = appendUint64(message, receipt.Sequence)
	message = appendAddress(message, receipt.Buyer)
	message = appendUint64(message, uint64(receipt.Kind))
	message = appendUint64(message, receipt.Price)
	message = appendUint64(message, receipt.Fee)
	message = appendUint64(message, receipt.Royalty)
	message = appendUint64(message, receipt.Proceeds)
	return message, nil
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return binary.AppendUvarint(buffer, value)
}

// append a string to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = appendUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// addresses are fixed length so no prefix
func appendAddress(buffer Packed, address account.Address) Packed {
	return append(buffer, address[:]...)
}

// kind ++ currency address ++ amount
func appendPrice(buffer Packed, price currency.Price) Packed {
	buffer = appendUint64(buffer, uint64(price.Kind))
	buffer = appendAddress(buffer, price.Address)
	return appendUint64(buffer, price.Amount)
}

// rates are kept in decimal string form so no precision is lost
func appendRate(buffer Packed, rate currency.Rate) Packed {
	return appendString(buffer, rate.String())
}

func appendBool(buffer Packed, b bool) Packed {
	if b {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"fmt"
	"strings"

	"github.com/promptnet/promptd/fault"
)

// Kind - settlement medium enumeration
//
// the set is closed: every switch over a Kind must handle all values
type Kind uint8

// possible settlement kinds
const (
	Nothing       Kind = iota // this must be the first value
	FungibleToken Kind = iota // token pulled through an allowance
	Native        Kind = iota // native value attached to the call
	Fiat          Kind = iota // paid outside the system, attested by the operator
	Asset         Kind = iota // another registered item (barter)
	maximumValue  Kind = iota // this must be the last value
	First         Kind = Nothing + 1
	Last          Kind = maximumValue - 1
)

// internal conversion
func toString(k Kind) (string, error) {
	switch k {
	case Nothing:
		return "", nil
	case FungibleToken:
		return "fungible", nil
	case Native:
		return "native", nil
	case Fiat:
		return "fiat", nil
	case Asset:
		return "asset", nil
	default:
		return "", fault.InvalidCurrency
	}
}

// FromString - convert a string to a kind
func FromString(in string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "":
		return Nothing, nil
	case "fungible", "token", "erc20":
		return FungibleToken, nil
	case "native", "eth":
		return Native, nil
	case "fiat":
		return Fiat, nil
	case "asset", "item":
		return Asset, nil
	default:
		return Nothing, fault.InvalidCurrency
	}
}

// String - symbol for a kind, "?" for out of range values
func (k Kind) String() string {
	s, err := toString(k)
	if nil != err {
		return "?"
	}
	return s
}

// GoString - enum value and symbol, for debugging
func (k Kind) GoString() string {
	return fmt.Sprintf("<Kind#%d:%q>", k, k.String())
}

// IsValid - valid if in range of First to Last
func (k Kind) IsValid() bool {
	return k >= First && k <= Last
}

// NeedsAddress - kind is identified by a token address
func (k Kind) NeedsAddress() bool {
	return FungibleToken == k
}

// Mintable - kind can be used as a primary-sale price
func (k Kind) Mintable() bool {
	return FungibleToken == k || Native == k
}

// MarshalText - convert a kind into JSON
func (k Kind) MarshalText() ([]byte, error) {
	s, err := toString(k)
	if nil != err {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText - convert kind string to a kind value from JSON
func (k *Kind) UnmarshalText(s []byte) error {
	c, err := FromString(string(s))
	if nil != err {
		return err
	}
	*k = c
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/promptnet/promptd/fault"
)

// AddressLength - number of bytes in a holder address
const AddressLength = common.AddressLength

// Address - a holder of items, funds or the operator role
//
// uses the Ethereum 20 byte address so that personal-sign signatures
// can be recovered directly to a holder
type Address [AddressLength]byte

// Zero - the empty address, never a valid holder
var Zero Address

// FromHex - convert a 0x prefixed hex string to an address
func FromHex(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return Zero, fault.InvalidAddress
	}
	return Address(common.HexToAddress(s)), nil
}

// FromBytes - convert a 20 byte slice to an address
func FromBytes(b []byte) (Address, error) {
	if AddressLength != len(b) {
		return Zero, fault.InvalidAddress
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// FromCommon - convert a go-ethereum address
func FromCommon(a common.Address) Address {
	return Address(a)
}

// Common - convert to a go-ethereum address
func (a Address) Common() common.Address {
	return common.Address(a)
}

// Bytes - byte slice of the address, suitable for use in database keys
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// IsZero - true for the empty address
func (a Address) IsZero() bool {
	return a == Zero
}

// Equal - compare two addresses
func (a Address) Equal(b Address) bool {
	return bytes.Equal(a[:], b[:])
}

// String - EIP-55 checksummed hex
func (a Address) String() string {
	return common.Address(a).Hex()
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - convert address to text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert text into an address
func (a *Address) UnmarshalText(s []byte) error {
	addr, err := FromHex(string(s))
	if nil != err {
		return err
	}
	*a = addr
	return nil
}

// Scan - convert a text representation for the fmt scan routines
func (a *Address) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		switch {
		case c >= '0' && c <= '9':
			return true
		case c >= 'A' && c <= 'F':
			return true
		case c >= 'a' && c <= 'f':
			return true
		case 'x' == c || 'X' == c:
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return a.UnmarshalText(token)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
)

const checksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

func TestFromHex(t *testing.T) {
	a, err := account.FromHex("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	assert.Equal(t, checksummed, a.String(), "wrong checksum form")
	assert.False(t, a.IsZero(), "address should not be zero")

	b, err := account.FromHex(checksummed)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same address decoded differently")
}

func TestFromHexInvalid(t *testing.T) {
	for i, s := range []string{
		"",
		"0x",
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1bea",
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaedff",
		"not an address",
	} {
		_, err := account.FromHex(s)
		assert.Equal(t, fault.InvalidAddress, err, "%d: expected invalid address for %q", i, s)
	}
}

func TestFromBytes(t *testing.T) {
	_, err := account.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidAddress, err, "short slice accepted")

	raw := make([]byte, account.AddressLength)
	raw[19] = 0x42
	a, err := account.FromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, a.Bytes(), "bytes do not round trip")
}

func TestJSON(t *testing.T) {
	type holder struct {
		Owner account.Address `json:"owner"`
	}

	a, _ := account.FromHex(checksummed)
	buffer, err := json.Marshal(holder{Owner: a})
	require.NoError(t, err)
	assert.Equal(t, `{"owner":"`+checksummed+`"}`, string(buffer), "wrong JSON")

	var h holder
	err = json.Unmarshal([]byte(`{"owner":"0x0000000000000000000000000000000000000000"}`), &h)
	require.NoError(t, err)
	assert.True(t, h.Owner.IsZero(), "expected zero address")

	err = json.Unmarshal([]byte(`{"owner":"junk"}`), &h)
	assert.Error(t, err, "junk address accepted")
}

func TestScan(t *testing.T) {
	var a account.Address
	n, err := fmt.Sscan(checksummed, &a)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "wrong scan count")
	assert.Equal(t, checksummed, a.String(), "wrong scanned address")
}

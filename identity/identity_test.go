// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/fixtures"
	"github.com/promptnet/promptd/identity"
)

var message = []byte("unlock prompt 1")

func TestSignVerify(t *testing.T) {
	sig, err := identity.Sign(fixtures.Alice.Private, message)
	require.NoError(t, err)
	assert.Len(t, sig, identity.SignatureLength)

	signer, err := identity.PersonalSign{}.Verify(message, sig)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Alice.Address, signer)

	// 0/1 recovery ids are also accepted
	sig[64] -= 27
	signer, err = identity.PersonalSign{}.Verify(message, sig)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Alice.Address, signer)
}

func TestOtherMessage(t *testing.T) {
	sig, err := identity.Sign(fixtures.Bob.Private, message)
	require.NoError(t, err)

	signer, err := identity.PersonalSign{}.Verify([]byte("something else"), sig)
	if nil == err {
		assert.NotEqual(t, fixtures.Bob.Address, signer, "different message recovers a different key")
	}
}

func TestGeneratedKey(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	sig, err := identity.Sign(key, message)
	require.NoError(t, err)

	signer, err := identity.PersonalSign{}.Verify(message, sig)
	require.NoError(t, err)
	assert.Equal(t, identity.AddressOf(key), signer)
}

func TestMalformed(t *testing.T) {
	sig, err := identity.Sign(fixtures.Alice.Private, message)
	require.NoError(t, err)

	tests := [][]byte{
		nil,
		sig[:64],
		append(append([]byte{}, sig...), 0),
		append(append([]byte{}, sig[:64]...), 30),
		make([]byte, identity.SignatureLength),
	}
	for i, s := range tests {
		_, err := identity.PersonalSign{}.Verify(message, s)
		assert.Equal(t, fault.InvalidSignature, err, "%d", i)
	}
}

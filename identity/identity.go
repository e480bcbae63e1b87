// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
)

// SignatureLength - R ++ S ++ V
const SignatureLength = crypto.SignatureLength

// Verifier - recover the address that signed a message
type Verifier interface {
	Verify(message []byte, signature []byte) (account.Address, error)
}

// PersonalSign - Ethereum signed message verification
//
// message is hashed as keccak256("\x19Ethereum Signed Message:\n" ++ len ++ message)
type PersonalSign struct{}

// Verify - recover the signer, V may be 0/1 or 27/28
func (PersonalSign) Verify(message []byte, signature []byte) (account.Address, error) {
	if SignatureLength != len(signature) {
		return account.Zero, fault.InvalidSignature
	}

	sig := make([]byte, SignatureLength)
	copy(sig, signature)

	// hardware wallets produce v = 0 or 1
	if sig[64] == 0 || sig[64] == 1 {
		sig[64] += 27
	}
	v := sig[64]
	if v != 27 && v != 28 {
		return account.Zero, fault.InvalidSignature
	}
	sig[64] -= 27

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(sig[64], r, s, true) {
		return account.Zero, fault.InvalidSignature
	}

	hash := accounts.TextHash(message)
	publicKey, err := crypto.SigToPub(hash, sig)
	if nil != err {
		return account.Zero, fault.InvalidSignature
	}

	if !crypto.VerifySignature(crypto.CompressPubkey(publicKey), hash, sig[:64]) {
		return account.Zero, fault.InvalidSignature
	}

	return account.FromCommon(crypto.PubkeyToAddress(*publicKey)), nil
}

// Sign - personal sign a message, V is 27 or 28
func Sign(key *ecdsa.PrivateKey, message []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(message), key)
	if nil != err {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}

// AddressOf - the address of a private key
func AddressOf(key *ecdsa.PrivateKey) account.Address {
	return account.FromCommon(crypto.PubkeyToAddress(key.PublicKey))
}

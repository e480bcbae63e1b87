// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package disclosure

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/identity"
)

// sizes
const (
	KeySize   = 32
	NonceSize = 24
)

// Balances - current holdings of an item
type Balances interface {
	Balance(holder account.Address, id uint64) (uint64, error)
}

// Gate - releases secrets to current holders of an item
type Gate struct {
	sync.RWMutex
	log      *logger.L
	key      [KeySize]byte
	verifier identity.Verifier
	balances Balances
}

// New - create a gate with the process wide key
func New(key [KeySize]byte, verifier identity.Verifier, balances Balances) *Gate {
	return &Gate{
		log:      logger.New("disclosure"),
		key:      key,
		verifier: verifier,
		balances: balances,
	}
}

// SetKey - replace the gate key
//
// secrets sealed under the previous key no longer open
func (g *Gate) SetKey(key [KeySize]byte) {
	g.Lock()
	g.key = key
	g.Unlock()
	g.log.Info("gate key replaced")
}

func (g *Gate) currentKey() [KeySize]byte {
	g.RLock()
	defer g.RUnlock()
	return g.key
}

// each item seals its secrets with its own key so a ciphertext only
// opens under the item it was prepared for
func itemKey(key *[KeySize]byte, id uint64) (*[KeySize]byte, error) {
	info := make([]byte, 0, 13)
	info = append(info, "item:"...)
	info = binary.BigEndian.AppendUint64(info, id)

	r := hkdf.New(sha3.New256, key[:], nil, info)
	k := new([KeySize]byte)
	_, err := io.ReadFull(r, k[:])
	if nil != err {
		return nil, err
	}
	return k, nil
}

// Encrypt - seal a secret for holders of an item
func (g *Gate) Encrypt(id uint64, plaintext []byte) ([]byte, error) {
	return Seal(g.currentKey(), id, plaintext)
}

// Seal - encrypt with a gate key without a running gate
//
// result is nonce ++ secretbox
func Seal(key [KeySize]byte, id uint64, plaintext []byte) ([]byte, error) {
	k, err := itemKey(&key, id)
	if nil != err {
		return nil, err
	}

	var nonce [NonceSize]byte
	_, err = io.ReadFull(rand.Reader, nonce[:])
	if nil != err {
		return nil, err
	}

	return secretbox.Seal(nonce[:], plaintext, &nonce, k), nil
}

// Decrypt - open a secret if the signer of message holds the item
//
// every failure is AccessDenied so callers cannot tell a bad
// signature from an empty balance or a missing item
func (g *Gate) Decrypt(message []byte, signature []byte, id uint64, ciphertext []byte) ([]byte, error) {
	signer, err := g.verifier.Verify(message, signature)
	if nil != err {
		g.log.Debugf("item: %d  verify error: %s", id, err)
		return nil, fault.AccessDenied
	}

	n, err := g.balances.Balance(signer, id)
	if nil != err || 0 == n {
		g.log.Debugf("item: %d  signer: %s  no balance", id, signer)
		return nil, fault.AccessDenied
	}

	if len(ciphertext) < NonceSize+secretbox.Overhead {
		return nil, fault.AccessDenied
	}

	key := g.currentKey()
	k, err := itemKey(&key, id)
	if nil != err {
		return nil, fault.AccessDenied
	}

	var nonce [NonceSize]byte
	copy(nonce[:], ciphertext[:NonceSize])

	plaintext, ok := secretbox.Open(nil, ciphertext[NonceSize:], &nonce, k)
	if !ok {
		g.log.Debugf("item: %d  signer: %s  ciphertext does not open", id, signer)
		return nil, fault.AccessDenied
	}

	g.log.Infof("item: %d  disclosed to: %s", id, signer)
	return plaintext, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secret

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/rpc/ratelimit"
)

// limits are lower than other services as every call recovers a
// public key
const (
	rateLimitSecret = 20
	rateBurstSecret = 10
)

// Gate - the disclosure operation reachable over RPC
type Gate interface {
	Decrypt(message []byte, signature []byte, id uint64, ciphertext []byte) ([]byte, error)
}

// Secret - type for the RPC
type Secret struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Gate    Gate
}

// New - create the RPC service
func New(log *logger.L, gate Gate) *Secret {
	return &Secret{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitSecret, rateBurstSecret),
		Gate:    gate,
	}
}

// DecryptArguments - arguments for RPC
//
// binary fields are 0x prefixed hex
type DecryptArguments struct {
	Message    string        `json:"message"`
	Signature  hexutil.Bytes `json:"signature"`
	ItemID     uint64        `json:"itemId,string"`
	Ciphertext hexutil.Bytes `json:"ciphertext"`
}

// DecryptReply - result of decrypt RPC
type DecryptReply struct {
	Plaintext hexutil.Bytes `json:"plaintext"`
}

// Decrypt - release a secret to a current holder of the item
func (s *Secret) Decrypt(arguments *DecryptArguments, reply *DecryptReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	if nil == arguments || 0 == len(arguments.Signature) || 0 == len(arguments.Ciphertext) {
		return fault.MissingParameters
	}

	s.Log.Debugf("Secret.Decrypt: item: %d", arguments.ItemID)

	plaintext, err := s.Gate.Decrypt([]byte(arguments.Message), arguments.Signature, arguments.ItemID, arguments.Ciphertext)
	if nil != err {
		return err
	}
	reply.Plaintext = plaintext
	return nil
}

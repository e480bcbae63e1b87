// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
)

type generateReply struct {
	Address    account.Address `json:"address"`
	PrivateKey string          `json:"privateKey,omitempty"`
	File       string          `json:"file,omitempty"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := crypto.GenerateKey()
	if nil != err {
		return err
	}

	reply := generateReply{
		Address: account.FromCommon(crypto.PubkeyToAddress(key.PublicKey)),
	}

	// the key is either saved or shown, never both
	if output := c.String("output"); "" != output {
		if checkFileExists(output) {
			return fault.KeyFileExists
		}
		err = crypto.SaveECDSA(output, key)
		if nil != err {
			return err
		}
		reply.File = output
	} else {
		reply.PrivateKey = hex.EncodeToString(crypto.FromECDSA(key))
	}

	printJson(m.w, reply)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli"

	"github.com/promptnet/promptd/disclosure"
)

type encryptReply struct {
	ItemID     uint64        `json:"itemId,string"`
	Ciphertext hexutil.Bytes `json:"ciphertext"`
}

func runEncrypt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyFile := c.String("gate-key")
	if "" == keyFile {
		return ErrRequiredGateKey
	}

	id, err := checkID(c, "item")
	if nil != err {
		return err
	}

	var plaintext []byte
	if text := c.String("text"); "" != text {
		plaintext = []byte(text)
	} else if file := c.String("file"); "" != file {
		plaintext, err = ioutil.ReadFile(file)
		if nil != err {
			return err
		}
	} else {
		return ErrRequiredSecret
	}

	key, err := disclosure.ReadKeyFile(keyFile)
	if nil != err {
		return err
	}

	ciphertext, err := disclosure.Seal(key, id, plaintext)
	if nil != err {
		return err
	}

	printJson(m.w, encryptReply{
		ItemID:     id,
		Ciphertext: ciphertext,
	})
	return nil
}

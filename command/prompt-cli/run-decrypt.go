// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli"

	"github.com/promptnet/promptd/identity"
	"github.com/promptnet/promptd/rpc/secret"
)

type decryptReply struct {
	ItemID    uint64 `json:"itemId,string"`
	Plaintext string `json:"plaintext"`
}

// the gate only checks who signed, the text is for the signer's benefit
func decryptMessage(id uint64, now time.Time) string {
	return fmt.Sprintf("promptd: disclose item %d at %s", id, now.UTC().Format(time.RFC3339))
}

func runDecrypt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "item")
	if nil != err {
		return err
	}

	text := c.String("ciphertext")
	if "" == text {
		file := c.String("file")
		if "" == file {
			return ErrRequiredCiphertext
		}
		b, err := ioutil.ReadFile(file)
		if nil != err {
			return err
		}
		text = string(b)
	}
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "0x") {
		text = "0x" + text
	}
	ciphertext, err := hexutil.Decode(text)
	if nil != err {
		return err
	}

	key, _, err := loadKey(m)
	if nil != err {
		return err
	}

	message := decryptMessage(id, time.Now())
	signature, err := identity.Sign(key, []byte(message))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Decrypt(&secret.DecryptArguments{
		Message:    message,
		Signature:  signature,
		ItemID:     id,
		Ciphertext: ciphertext,
	})
	if nil != err {
		return err
	}

	printJson(m.w, decryptReply{
		ItemID:    id,
		Plaintext: string(response.Plaintext),
	})
	return nil
}

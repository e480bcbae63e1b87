// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/identity"
)

type signReply struct {
	Address   account.Address `json:"address"`
	Message   string          `json:"message"`
	Signature hexutil.Bytes   `json:"signature"`
}

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	message := c.String("message")
	if "" == message {
		return ErrRequiredMessage
	}

	key, address, err := loadKey(m)
	if nil != err {
		return err
	}

	signature, err := identity.Sign(key, []byte(message))
	if nil != err {
		return err
	}

	printJson(m.w, signReply{
		Address:   address,
		Message:   message,
		Signature: signature,
	})
	return nil
}

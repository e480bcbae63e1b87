// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"crypto/ecdsa"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// Key - a test signing identity
type Key struct {
	Private *ecdsa.PrivateKey
	Address account.Address
}

// fixed keys so failures are reproducible
var (
	Operator = mustKey("4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")
	Alice    = mustKey("8da4ef21b864d2cc526dbdb2a120bd2874c36c9d0a1fb7f8c63d7f7a8b41de8f")
	Bob      = mustKey("b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291")
	Carol    = mustKey("d4ee6d0d4a9c5b8a4d2b73c1f8a7b1c0e6c2a0b97fe04b8d1c2d3e4f5a6b7c8d")
	Dave     = mustKey("1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727")
)

// Token - address of a test fungible token
var Token = mustAddress("0x2f5a8e2c1a44b1e7e4d9e2d7b5dcbf8c6b46a1f1")

// Registry - address the item registry is deployed under
var Registry = mustAddress("0x9f8f72aa9304c8b593d555f12ef6589cc3a579a2")

func mustKey(s string) Key {
	k, err := crypto.HexToECDSA(s)
	if nil != err {
		panic(err)
	}
	return Key{
		Private: k,
		Address: account.FromCommon(crypto.PubkeyToAddress(k.PublicKey)),
	}
}

func mustAddress(s string) account.Address {
	a, err := account.FromHex(s)
	if nil != err {
		panic(err)
	}
	return a
}

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ecdsa"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/command/prompt-cli/rpccalls"
	"github.com/promptnet/promptd/currency"
)

// flags shared by several commands
var (
	itemFlag = cli.Uint64Flag{
		Name:  "item, i",
		Value: 0,
		Usage: "*item `ID`",
	}
	orderFlag = cli.Uint64Flag{
		Name:  "order, o",
		Value: 0,
		Usage: "*order `ID`",
	}
	quantityFlag = cli.Uint64Flag{
		Name:  "quantity, q",
		Value: 1,
		Usage: " number of units `COUNT`",
	}
	valueFlag = cli.Uint64Flag{
		Name:  "value",
		Value: 0,
		Usage: " native value sent with the call `AMOUNT`",
	}
	currencyFlag = cli.StringFlag{
		Name:  "currency",
		Value: "native",
		Usage: " token `ADDRESS` or native",
	}
	amountFlag = cli.Uint64Flag{
		Name:  "amount, a",
		Value: 0,
		Usage: "*amount in the currency's smallest unit `AMOUNT`",
	}

	priceFlags = []cli.Flag{
		cli.StringFlag{
			Name:  "kind",
			Value: "",
			Usage: " price kind `KIND` [fungible|native|fiat|asset]",
		},
		cli.StringFlag{
			Name:  "price-currency",
			Value: "",
			Usage: " token `ADDRESS` for kind fungible",
		},
		cli.Uint64Flag{
			Name:  "price, p",
			Value: 0,
			Usage: " price per unit `AMOUNT`",
		},
	}

	rateFlags = []cli.Flag{
		cli.StringFlag{
			Name:  "fee",
			Value: "",
			Usage: " marketplace fee `RATE` in [0, 1)",
		},
		cli.StringFlag{
			Name:  "royalty",
			Value: "",
			Usage: " creator royalty `RATE` in [0, 1)",
		},
	}
)

// a required positive id
func checkID(c *cli.Context, name string) (uint64, error) {
	id := c.Uint64(name)
	if 0 == id {
		return 0, ErrRequiredID
	}
	return id, nil
}

// an address flag, returning the zero address if blank and not required
func checkAddress(c *cli.Context, name string, required bool) (account.Address, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		if required {
			return account.Zero, ErrRequiredAddress
		}
		return account.Zero, nil
	}
	return account.FromHex(s)
}

// an address flag that defaults to the account
func checkAddressOrCaller(c *cli.Context, name string, caller account.Address) (account.Address, error) {
	a, err := checkAddress(c, name, false)
	if nil != err {
		return account.Zero, err
	}
	if a.IsZero() {
		return caller, nil
	}
	return a, nil
}

// settlement currency: "native" or a token address
func checkCurrency(c *cli.Context, name string) (account.Address, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s || strings.EqualFold("native", s) {
		return currency.NativeAddress, nil
	}
	return account.FromHex(s)
}

// the price flags; ok is false when no kind was given
func checkPrice(c *cli.Context) (currency.Price, bool, error) {
	kind := strings.TrimSpace(c.String("kind"))
	if "" == kind {
		return currency.Price{}, false, nil
	}
	k, err := currency.FromString(kind)
	if nil != err {
		return currency.Price{}, false, err
	}
	p := currency.Price{
		Kind:   k,
		Amount: c.Uint64("price"),
	}
	if k.NeedsAddress() {
		p.Address, err = checkAddress(c, "price-currency", true)
		if nil != err {
			return currency.Price{}, false, err
		}
	}
	return p, true, p.Validate()
}

// an optional rate flag
func checkRate(c *cli.Context, name string) (*currency.Rate, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return nil, nil
	}
	r, err := currency.NewRate(s)
	if nil != err {
		return nil, err
	}
	return &r, nil
}

// the private key of the calling account
func loadKey(m *metadata) (*ecdsa.PrivateKey, account.Address, error) {
	if "" == m.keyFile {
		return nil, account.Zero, ErrRequiredKey
	}
	key, err := crypto.LoadECDSA(m.keyFile)
	if nil != err {
		return nil, account.Zero, err
	}
	return key, account.FromCommon(crypto.PubkeyToAddress(key.PublicKey)), nil
}

// the address of the calling account
func caller(m *metadata) (account.Address, error) {
	_, address, err := loadKey(m)
	return address, err
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
}

func checkFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

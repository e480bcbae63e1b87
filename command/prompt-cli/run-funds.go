// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/promptnet/promptd/rpc/funds"
)

// one action for each funds method, they differ only in which
// fields are required
func runFunds(method string) cli.ActionFunc {
	return func(c *cli.Context) error {

		m := c.App.Metadata["config"].(*metadata)

		cur, err := checkCurrency(c, "currency")
		if nil != err {
			return err
		}

		arguments := &funds.Arguments{
			Currency: cur,
			Amount:   c.Uint64("amount"),
		}

		switch method {
		case "Deposit":
			arguments.Holder, err = checkAddress(c, "holder", true)
		case "Balance":
			arguments.Holder, err = checkAddress(c, "holder", false)
		}
		if nil != err {
			return err
		}

		// a balance enquiry for an explicit holder needs no key
		if "Balance" != method || arguments.Holder.IsZero() {
			arguments.Caller, err = caller(m)
			if nil != err {
				return err
			}
		}

		client, err := connect(m)
		if nil != err {
			return err
		}
		defer client.Close()

		response, err := client.Funds(method, arguments)
		if nil != err {
			return err
		}

		printJson(m.w, response)
		return nil
	}
}

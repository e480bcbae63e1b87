// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/promptnet/promptd/rpc/control"
)

func runControl(method string) cli.ActionFunc {
	return func(c *cli.Context) error {

		m := c.App.Metadata["config"].(*metadata)

		arguments := &control.Arguments{}

		var err error
		if "Declare" == method {
			arguments.Candidate, err = checkAddress(c, "candidate", true)
			if nil != err {
				return err
			}
		}

		if "Status" != method {
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

		response, err := client.Control(method, arguments)
		if nil != err {
			return err
		}

		printJson(m.w, response)
		return nil
	}
}

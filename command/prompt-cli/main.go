// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/promptnet/promptd/rpc/certificate"
)

type metadata struct {
	connect     string
	fingerprint *certificate.Fingerprint
	keyFile     string
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "prompt-cli"
	app.Usage = "client for the promptd marketplace ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " promptd host/IP and port, `HOST:PORT`",
			EnvVar: "PROMPT_CONNECT",
		},
		cli.StringFlag{
			Name:   "fingerprint, f",
			Value:  "",
			Usage:  " expected SHA3-256 of the promptd certificate `HEX`",
			EnvVar: "PROMPT_FINGERPRINT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " private key file of the calling account `FILE`",
			EnvVar: "PROMPT_KEY_FILE",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new account key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " save the private key to `FILE` (never overwritten)",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "sign",
			Usage:     "personal sign a message with the account key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*message to sign `STRING`",
				},
			},
			Action: runSign,
		},
		{
			Name:      "encrypt",
			Usage:     "seal a secret for holders of an item using the gate key",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "gate-key, g",
					Value: "",
					Usage: "*disclosure key `FILE` created by: promptd gen-gate-key",
				},
				itemFlag,
				cli.StringFlag{
					Name:  "text, t",
					Value: "",
					Usage: "+secret `STRING`",
				},
				cli.StringFlag{
					Name:  "file",
					Value: "",
					Usage: "+read secret from `FILE`",
				},
			},
			Action: runEncrypt,
		},
		{
			Name:   "info",
			Usage:  "display promptd status",
			Action: runInfo,
		},

		// items
		{
			Name:      "authorize",
			Usage:     "register a new item created by the account",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*metadata `URI`",
				},
				cli.Uint64Flag{
					Name:  "initial, i",
					Value: 0,
					Usage: " units credited to the creator `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "max-supply, m",
					Value: 0,
					Usage: " supply cap, 0 = unlimited `COUNT`",
				},
			}, priceFlags...),
			Action: runAuthorize,
		},
		{
			Name:      "mint",
			Usage:     "buy new units of an item from its creator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				itemFlag,
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: " receiving `ADDRESS` [default: account]",
				},
				quantityFlag,
				valueFlag,
			},
			Action: runMint,
		},
		{
			Name:      "burn",
			Usage:     "destroy units of an item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				itemFlag,
				cli.StringFlag{
					Name:  "holder, H",
					Value: "",
					Usage: " holder `ADDRESS` [default: account]",
				},
				quantityFlag,
			},
			Action: runBurn,
		},
		{
			Name:      "transfer",
			Usage:     "move units of an item to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				itemFlag,
				cli.StringFlag{
					Name:  "from",
					Value: "",
					Usage: " sending `ADDRESS` [default: account]",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				quantityFlag,
			},
			Action: runTransfer,
		},
		{
			Name:      "approve-operator",
			Usage:     "allow an operator to move all of the account's units",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "revoke, r",
					Usage: " remove a previous approval",
				},
			},
			Action: runApproveOperator,
		},
		{
			Name:      "update-item",
			Usage:     "creator changes to an item",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				itemFlag,
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: " new metadata `URI`",
				},
				cli.StringFlag{
					Name:  "creator",
					Value: "",
					Usage: " hand the item to a new creator `ADDRESS`",
				},
			}, append(rateFlags, priceFlags...)...),
			Action: runUpdateItem,
		},
		{
			Name:      "item",
			Usage:     "display an item, or the last item id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "item, i",
					Value: 0,
					Usage: " item `ID` [default: last id only]",
				},
			},
			Action: runItem,
		},
		{
			Name:      "balance",
			Usage:     "units of an item held by an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				itemFlag,
				cli.StringFlag{
					Name:  "holder, H",
					Value: "",
					Usage: " holder `ADDRESS` [default: account]",
				},
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: " also report approval of operator `ADDRESS`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "holders",
			Usage:     "list the holders of an item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				itemFlag,
				cli.IntFlag{
					Name:  "count, n",
					Value: 100,
					Usage: " maximum holders to list `COUNT`",
				},
			},
			Action: runHolders,
		},

		// orders
		{
			Name:      "create-order",
			Usage:     "list units of an item for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: append(append([]cli.Flag{
				itemFlag,
				quantityFlag,
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: " registry `ADDRESS` [default: from promptd]",
				},
				cli.Uint64Flag{
					Name:  "counter-item",
					Value: 0,
					Usage: " item `ID` asked in exchange (kind: asset)",
				},
			}, priceFlags...), rateFlags...),
			Action: runCreateOrder,
		},
		{
			Name:      "cancel-order",
			Usage:     "withdraw an open order",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{orderFlag},
			Action:    runCancelOrder,
		},
		{
			Name:      "update-rates",
			Usage:     "item creator changes the fee or royalty of an open order",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{orderFlag}, rateFlags...),
			Action:    runUpdateRates,
		},
		{
			Name:      "swap",
			Usage:     "buy one unit from an order",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{orderFlag, valueFlag},
			Action:    runSwap,
		},
		{
			Name:      "swap-fiat",
			Usage:     "operator settles one unit of a fiat order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				orderFlag,
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*buyer `ADDRESS`",
				},
			},
			Action: runSwapWithFiat,
		},
		{
			Name:      "order",
			Usage:     "display an order, or the last order id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "order, o",
					Value: 0,
					Usage: " order `ID` [default: last id only]",
				},
				cli.BoolFlag{
					Name:  "receipts, r",
					Usage: " include fill receipts",
				},
			},
			Action: runOrder,
		},

		// funds
		{
			Name:      "deposit",
			Usage:     "operator credits value arriving from outside",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, H",
					Value: "",
					Usage: "*credited `ADDRESS`",
				},
				currencyFlag,
				amountFlag,
			},
			Action: runFunds("Deposit"),
		},
		{
			Name:      "approve",
			Usage:     "set the amount the marketplace may pull from the account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{currencyFlag, amountFlag},
			Action:    runFunds("Approve"),
		},
		{
			Name:      "withdraw",
			Usage:     "remove value from the account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{currencyFlag, amountFlag},
			Action:    runFunds("Withdraw"),
		},
		{
			Name:      "funds",
			Usage:     "display the balance and allowance of an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, H",
					Value: "",
					Usage: " holder `ADDRESS` [default: account]",
				},
				currencyFlag,
			},
			Action: runFunds("Balance"),
		},

		// access control
		{
			Name:   "pause",
			Usage:  "operator stops all mutations",
			Action: runControl("Pause"),
		},
		{
			Name:   "unpause",
			Usage:  "operator resumes mutations",
			Action: runControl("Unpause"),
		},
		{
			Name:      "declare",
			Usage:     "operator names a candidate operator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "candidate",
					Value: "",
					Usage: "*candidate `ADDRESS`",
				},
			},
			Action: runControl("Declare"),
		},
		{
			Name:   "claim",
			Usage:  "candidate takes over as operator",
			Action: runControl("Claim"),
		},
		{
			Name:   "status",
			Usage:  "display operator and pause state",
			Action: runControl("Status"),
		},

		// disclosure
		{
			Name:      "decrypt",
			Usage:     "ask promptd to open a secret for the account",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				itemFlag,
				cli.StringFlag{
					Name:  "ciphertext, x",
					Value: "",
					Usage: "+sealed secret `HEX`",
				},
				cli.StringFlag{
					Name:  "file",
					Value: "",
					Usage: "+read sealed secret hex from `FILE`",
				},
			},
			Action: runDecrypt,
		},

		{
			Name:  "version",
			Usage: "display program version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			connect: c.GlobalString("connect"),
			keyFile: c.GlobalString("key"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if s := c.GlobalString("fingerprint"); "" != s {
			f, err := certificate.ParseFingerprint(s)
			if nil != err {
				return err
			}
			m.fingerprint = &f
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
			if "" != m.keyFile {
				fmt.Fprintf(m.e, "key file: %q\n", m.keyFile)
			}
		}

		c.App.Metadata["config"] = m
		return nil
	}

	return app
}

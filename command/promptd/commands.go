// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/rpc/server"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	gateKeyFilename = "gate.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-gate-key", "gate":
		keyFilename := getFilenameWithDirectory(arguments, gateKeyFilename)

		err := makeGateKey(keyFilename)
		if nil != err {
			fmt.Printf("generate disclosure key: %q error: %s\n", keyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated disclosure key: %q\n", keyFilename)

	case "start", "run":
		return false // continue processing

	case "item", "i", "order", "o":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--set=NAME=VALUE...] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-gate-key [DIR]         (gate)   - create disclosure key in: %q\n", "DIR/"+gateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  item ID                    (i)      - dump an item as a JSON structure to stdout\n")
		fmt.Printf("\n")

		fmt.Printf("  order ID                   (o)      - dump an order and its receipts as a JSON structure to stdout\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger is open so these commands can read its records
func processDataCommand(log *logger.L, arguments []string, services server.Services) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "item", "i":
		id := getID(arguments, "item")
		item, err := services.Registry.Item(id)
		if nil != err {
			exitwithstatus.Message("item: %d  error: %s", id, err)
		}
		holders, err := services.Registry.Holders(id)
		if nil != err {
			exitwithstatus.Message("item: %d  holders error: %s", id, err)
		}
		printJSON(map[string]interface{}{
			"item":    item,
			"holders": holders,
		})

	case "order", "o":
		id := getID(arguments, "order")
		order, err := services.Escrow.Order(id)
		if nil != err {
			exitwithstatus.Message("order: %d  error: %s", id, err)
		}
		receipts, err := services.Escrow.Receipts(id)
		if nil != err {
			exitwithstatus.Message("order: %d  receipts error: %s", id, err)
		}
		printJSON(map[string]interface{}{
			"order":    order,
			"receipts": receipts,
		})

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	log.Infof("command: %s  complete", command)

	// indicate processing complete and perform normal exit from main
	return true
}

func getID(arguments []string, name string) uint64 {
	if len(arguments) < 1 {
		exitwithstatus.Message("missing %s id argument", name)
	}
	n, err := strconv.ParseUint(arguments[0], 10, 64)
	if nil != err {
		exitwithstatus.Message("error in %s id: %s", name, err)
	}
	if 0 == n {
		exitwithstatus.Message("error: invalid %s id: %d must be greater than 0", name, n)
	}
	return n
}

func printJSON(data interface{}) {
	b, err := json.Marshal(data)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	json.Indent(&out, b, "", "  ")
	out.WriteTo(os.Stdout)
	os.Stdout.WriteString("\n")
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

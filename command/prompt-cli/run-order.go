// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/promptnet/promptd/escrow"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/rpc/order"
)

func runCreateOrder(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "item")
	if nil != err {
		return err
	}

	price, ok, err := checkPrice(c)
	if nil != err {
		return err
	}
	if !ok {
		return fmt.Errorf("kind: a price kind is required")
	}

	asset, err := checkAddress(c, "asset", false)
	if nil != err {
		return err
	}

	fee, err := checkRate(c, "fee")
	if nil != err {
		return err
	}

	royalty, err := checkRate(c, "royalty")
	if nil != err {
		return err
	}

	maker, err := caller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	// orders name the registry the item lives in
	if asset.IsZero() {
		info, err := client.GetInfo()
		if nil != err {
			return err
		}
		asset = info.Registry
	}

	if m.verbose {
		fmt.Fprintf(m.e, "maker: %s\n", maker)
		fmt.Fprintf(m.e, "asset: %s  item: %d\n", asset, id)
	}

	response, err := client.CreateOrder(&order.CreateArguments{
		Caller: maker,
		Offer: escrow.Offer{
			ItemID:       id,
			AssetAddress: asset,
			TokenID:      id,
			Quantity:     c.Uint64("quantity"),
			Price:        price,
			CounterItem:  c.Uint64("counter-item"),
			FeeRate:      fee,
			RoyaltyRate:  royalty,
		},
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCancelOrder(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "order")
	if nil != err {
		return err
	}

	maker, err := caller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CancelOrder(&order.CancelArguments{
		Caller:  maker,
		OrderID: id,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runUpdateRates(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "order")
	if nil != err {
		return err
	}

	arguments := &order.RatesArguments{
		OrderID: id,
	}

	arguments.FeeRate, err = checkRate(c, "fee")
	if nil != err {
		return err
	}

	arguments.RoyaltyRate, err = checkRate(c, "royalty")
	if nil != err {
		return err
	}

	arguments.Caller, err = caller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.UpdateRates(arguments)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSwap(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "order")
	if nil != err {
		return err
	}

	buyer, err := caller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Swap(&order.SwapArguments{
		Caller:  buyer,
		OrderID: id,
		Payment: registry.Payment{Value: c.Uint64("value")},
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSwapWithFiat(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "order")
	if nil != err {
		return err
	}

	recipient, err := checkAddress(c, "recipient", true)
	if nil != err {
		return err
	}

	operator, err := caller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SwapWithFiat(&order.SwapArguments{
		Caller:    operator,
		OrderID:   id,
		Recipient: recipient,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runOrder(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetOrder(c.Uint64("order"), c.Bool("receipts"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

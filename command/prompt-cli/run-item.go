// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/rpc/item"
)

func runAuthorize(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	uri := c.String("uri")
	if "" == uri {
		return ErrRequiredURI
	}

	price, _, err := checkPrice(c)
	if nil != err {
		return err
	}

	from, err := caller(m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "creator: %s\n", from)
		fmt.Fprintf(m.e, "uri: %s\n", uri)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Authorize(&item.AuthorizeArguments{
		Caller:    from,
		URI:       uri,
		Initial:   c.Uint64("initial"),
		Price:     price,
		MaxSupply: c.Uint64("max-supply"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "item")
	if nil != err {
		return err
	}

	from, err := caller(m)
	if nil != err {
		return err
	}

	to, err := checkAddressOrCaller(c, "to", from)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(&item.MintArguments{
		Caller:   from,
		To:       to,
		ItemID:   id,
		Quantity: c.Uint64("quantity"),
		Payment:  registry.Payment{Value: c.Uint64("value")},
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBurn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "item")
	if nil != err {
		return err
	}

	from, err := caller(m)
	if nil != err {
		return err
	}

	holder, err := checkAddressOrCaller(c, "holder", from)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Burn(&item.BurnArguments{
		Caller:   from,
		Holder:   holder,
		ItemID:   id,
		Quantity: c.Uint64("quantity"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "item")
	if nil != err {
		return err
	}

	to, err := checkAddress(c, "to", true)
	if nil != err {
		return err
	}

	sender, err := caller(m)
	if nil != err {
		return err
	}

	from, err := checkAddressOrCaller(c, "from", sender)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "item: %d\n", id)
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(&item.TransferArguments{
		Caller:   sender,
		From:     from,
		To:       to,
		ItemID:   id,
		Quantity: c.Uint64("quantity"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runApproveOperator(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	operator, err := checkAddress(c, "operator", true)
	if nil != err {
		return err
	}

	from, err := caller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetApproval(&item.ApprovalArguments{
		Caller:   from,
		Operator: operator,
		Approved: !c.Bool("revoke"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runUpdateItem(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "item")
	if nil != err {
		return err
	}

	from, err := caller(m)
	if nil != err {
		return err
	}

	arguments := &item.UpdateArguments{
		Caller: from,
		ItemID: id,
	}

	if c.IsSet("uri") {
		uri := c.String("uri")
		arguments.URI = &uri
	}

	price, ok, err := checkPrice(c)
	if nil != err {
		return err
	}
	if ok {
		arguments.Price = &price
	}

	arguments.FeeRate, err = checkRate(c, "fee")
	if nil != err {
		return err
	}

	arguments.RoyaltyRate, err = checkRate(c, "royalty")
	if nil != err {
		return err
	}

	creator, err := checkAddress(c, "creator", false)
	if nil != err {
		return err
	}
	if !creator.IsZero() {
		arguments.Creator = &creator
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.UpdateItem(arguments)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runItem(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetItem(c.Uint64("item"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "item")
	if nil != err {
		return err
	}

	holder, err := checkAddress(c, "holder", false)
	if nil != err {
		return err
	}
	if holder.IsZero() {
		holder, err = caller(m)
		if nil != err {
			return err
		}
	}

	operator, err := checkAddress(c, "operator", false)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ItemBalance(holder, id, operator)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runHolders(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c, "item")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Holders(id, c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

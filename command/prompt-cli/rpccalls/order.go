// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/promptnet/promptd/rpc/order"
)

// CreateOrder - list units for sale
func (c *Client) CreateOrder(arguments *order.CreateArguments) (*order.CreateReply, error) {
	var reply order.CreateReply
	if err := c.call("Order.Create", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// CancelOrder - withdraw a listing
func (c *Client) CancelOrder(arguments *order.CancelArguments) (*order.Reply, error) {
	var reply order.Reply
	if err := c.call("Order.Cancel", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// UpdateRates - change fee and/or royalty of an open order
func (c *Client) UpdateRates(arguments *order.RatesArguments) (*order.Reply, error) {
	var reply order.Reply
	if err := c.call("Order.UpdateRates", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Swap - fill one unit of an order
func (c *Client) Swap(arguments *order.SwapArguments) (*order.Reply, error) {
	var reply order.Reply
	if err := c.call("Order.Swap", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// SwapWithFiat - operator fills a fiat order for a recipient
func (c *Client) SwapWithFiat(arguments *order.SwapArguments) (*order.Reply, error) {
	var reply order.Reply
	if err := c.call("Order.SwapWithFiat", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetOrder - an order and optionally its receipts
func (c *Client) GetOrder(id uint64, receipts bool) (*order.GetReply, error) {
	arguments := order.GetArguments{
		OrderID:  id,
		Receipts: receipts,
	}
	var reply order.GetReply
	if err := c.call("Order.Get", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

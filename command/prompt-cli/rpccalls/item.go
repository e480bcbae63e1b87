// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/rpc/item"
)

// Authorize - register a new item
func (c *Client) Authorize(arguments *item.AuthorizeArguments) (*item.AuthorizeReply, error) {
	var reply item.AuthorizeReply
	if err := c.call("Item.Authorize", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Mint - buy new units of an item from its creator
func (c *Client) Mint(arguments *item.MintArguments) (*item.Reply, error) {
	var reply item.Reply
	if err := c.call("Item.Mint", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Burn - destroy units
func (c *Client) Burn(arguments *item.BurnArguments) (*item.Reply, error) {
	var reply item.Reply
	if err := c.call("Item.Burn", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Transfer - move units between holders
func (c *Client) Transfer(arguments *item.TransferArguments) (*item.Reply, error) {
	var reply item.Reply
	if err := c.call("Item.Transfer", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// SetApproval - allow or revoke an operator for all of the caller's units
func (c *Client) SetApproval(arguments *item.ApprovalArguments) (*item.Reply, error) {
	var reply item.Reply
	if err := c.call("Item.SetApproval", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// UpdateItem - creator changes to an item
func (c *Client) UpdateItem(arguments *item.UpdateArguments) (*item.Reply, error) {
	var reply item.Reply
	if err := c.call("Item.Update", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetItem - an item, zero id returns only the last issued id
func (c *Client) GetItem(id uint64) (*item.GetReply, error) {
	var reply item.GetReply
	if err := c.call("Item.Get", item.GetArguments{ItemID: id}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ItemBalance - units of an item held by an address
func (c *Client) ItemBalance(holder account.Address, id uint64, operator account.Address) (*item.BalanceReply, error) {
	arguments := item.BalanceArguments{
		Holder:   holder,
		ItemID:   id,
		Operator: operator,
	}
	var reply item.BalanceReply
	if err := c.call("Item.Balance", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Holders - addresses holding an item
func (c *Client) Holders(id uint64, count int) (*item.HoldersReply, error) {
	arguments := item.HoldersArguments{
		ItemID: id,
		Count:  count,
	}
	var reply item.HoldersReply
	if err := c.call("Item.Holders", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

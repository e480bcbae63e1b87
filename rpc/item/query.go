// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/record"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/rpc/ratelimit"
)

// GetArguments - arguments for RPC
type GetArguments struct {
	ItemID uint64 `json:"itemId,string"`
}

// GetReply - an item and the newest item id
type GetReply struct {
	Item   *record.Item `json:"item"`
	LastID uint64       `json:"lastId,string"`
}

// Get - fetch an item record
func (item *Item) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	last, err := item.Registry.LastItemID()
	if nil != err {
		return err
	}
	reply.LastID = last

	if 0 == arguments.ItemID {
		return nil
	}
	reply.Item, err = item.Registry.Item(arguments.ItemID)
	return err
}

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Holder   account.Address `json:"holder"`
	ItemID   uint64          `json:"itemId,string"`
	Operator account.Address `json:"operator"`
}

// BalanceReply - result of balance RPC
type BalanceReply struct {
	Balance  uint64 `json:"balance"`
	Approved bool   `json:"approved"`
}

// Balance - units held, and whether operator may move them
//
// operator is optional
func (item *Item) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Holder.IsZero() {
		return fault.MissingParameters
	}

	balance, err := item.Registry.Balance(arguments.Holder, arguments.ItemID)
	if nil != err {
		return err
	}
	reply.Balance = balance

	if !arguments.Operator.IsZero() {
		reply.Approved, err = item.Registry.IsApprovedForAll(arguments.Holder, arguments.Operator)
	}
	return err
}

// HoldersArguments - arguments for RPC
type HoldersArguments struct {
	ItemID uint64 `json:"itemId,string"`
	Count  int    `json:"count"`
}

// HoldersReply - result of holders RPC
type HoldersReply struct {
	Holders []registry.Holding `json:"holders"`
	More    bool               `json:"more"`
}

// Holders - holders of an item and their quantities
func (item *Item) Holders(arguments *HoldersArguments, reply *HoldersReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(item.Limiter, arguments.Count, MaximumHolders); nil != err {
		return err
	}

	holders, err := item.Registry.Holders(arguments.ItemID)
	if nil != err {
		return err
	}
	if len(holders) > arguments.Count {
		holders = holders[:arguments.Count]
		reply.More = true
	}
	reply.Holders = holders
	return nil
}

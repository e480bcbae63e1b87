// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/currency"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/record"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/rpc/ratelimit"
)

const (
	rateLimitItem = 200
	rateBurstItem = 100

	// MaximumHolders - largest holder list returned in one reply
	MaximumHolders = 1000
)

// Registry - the item registry operations reachable over RPC
type Registry interface {
	Authorize(account.Address, string, uint64, currency.Price, uint64) (uint64, error)
	Mint(account.Address, account.Address, uint64, uint64, registry.Payment) error
	Burn(account.Address, account.Address, uint64, uint64) error
	Transfer(account.Address, account.Address, account.Address, uint64, uint64) error
	SetApprovalForAll(account.Address, account.Address, bool) error
	Update(account.Address, uint64, registry.Changes) error
	Item(uint64) (*record.Item, error)
	LastItemID() (uint64, error)
	Balance(account.Address, uint64) (uint64, error)
	IsApprovedForAll(account.Address, account.Address) (bool, error)
	Holders(uint64) ([]registry.Holding, error)
}

// Item - type for the RPC
type Item struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry Registry
}

// New - create the RPC service
func New(log *logger.L, reg Registry) *Item {
	return &Item{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitItem, rateBurstItem),
		Registry: reg,
	}
}

// Reply - result of a mutation with no other output
type Reply struct {
	OK bool `json:"ok"`
}

// Authorize
// ---------

// AuthorizeArguments - arguments for RPC
type AuthorizeArguments struct {
	Caller    account.Address `json:"caller"`
	URI       string          `json:"uri"`
	Initial   uint64          `json:"initial"`
	Price     currency.Price  `json:"price"`
	MaxSupply uint64          `json:"maxSupply"`
}

// AuthorizeReply - result of authorize RPC
type AuthorizeReply struct {
	ItemID uint64 `json:"itemId,string"`
}

// Authorize - register a new item
func (item *Item) Authorize(arguments *AuthorizeArguments, reply *AuthorizeReply) error {
	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	item.Log.Infof("Item.Authorize: %+v", arguments)

	id, err := item.Registry.Authorize(arguments.Caller, arguments.URI, arguments.Initial, arguments.Price, arguments.MaxSupply)
	if nil != err {
		return err
	}
	reply.ItemID = id
	return nil
}

// Mint
// ----

// MintArguments - arguments for RPC
type MintArguments struct {
	Caller   account.Address  `json:"caller"`
	To       account.Address  `json:"to"`
	ItemID   uint64           `json:"itemId,string"`
	Quantity uint64           `json:"quantity"`
	Payment  registry.Payment `json:"payment"`
}

// Mint - primary sale of units
func (item *Item) Mint(arguments *MintArguments, reply *Reply) error {
	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	item.Log.Infof("Item.Mint: %+v", arguments)

	err := item.Registry.Mint(arguments.Caller, arguments.To, arguments.ItemID, arguments.Quantity, arguments.Payment)
	reply.OK = nil == err
	return err
}

// Burn
// ----

// BurnArguments - arguments for RPC
type BurnArguments struct {
	Caller   account.Address `json:"caller"`
	Holder   account.Address `json:"holder"`
	ItemID   uint64          `json:"itemId,string"`
	Quantity uint64          `json:"quantity"`
}

// Burn - destroy held units
func (item *Item) Burn(arguments *BurnArguments, reply *Reply) error {
	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	item.Log.Infof("Item.Burn: %+v", arguments)

	err := item.Registry.Burn(arguments.Caller, arguments.Holder, arguments.ItemID, arguments.Quantity)
	reply.OK = nil == err
	return err
}

// Transfer
// --------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Caller   account.Address `json:"caller"`
	From     account.Address `json:"from"`
	To       account.Address `json:"to"`
	ItemID   uint64          `json:"itemId,string"`
	Quantity uint64          `json:"quantity"`
}

// Transfer - move units between holders
func (item *Item) Transfer(arguments *TransferArguments, reply *Reply) error {
	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	item.Log.Infof("Item.Transfer: %+v", arguments)

	err := item.Registry.Transfer(arguments.Caller, arguments.From, arguments.To, arguments.ItemID, arguments.Quantity)
	reply.OK = nil == err
	return err
}

// Approval
// --------

// ApprovalArguments - arguments for RPC
type ApprovalArguments struct {
	Caller   account.Address `json:"caller"`
	Operator account.Address `json:"operator"`
	Approved bool            `json:"approved"`
}

// SetApproval - allow or revoke an operator for all of the caller's units
func (item *Item) SetApproval(arguments *ApprovalArguments, reply *Reply) error {
	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	item.Log.Infof("Item.SetApproval: %+v", arguments)

	err := item.Registry.SetApprovalForAll(arguments.Caller, arguments.Operator, arguments.Approved)
	reply.OK = nil == err
	return err
}

// Update
// ------

// UpdateArguments - creator changes to an item
//
// only the fields present are changed
type UpdateArguments struct {
	Caller      account.Address  `json:"caller"`
	ItemID      uint64           `json:"itemId,string"`
	URI         *string          `json:"uri,omitempty"`
	Price       *currency.Price  `json:"price,omitempty"`
	FeeRate     *currency.Rate   `json:"feeRate,omitempty"`
	RoyaltyRate *currency.Rate   `json:"royaltyRate,omitempty"`
	Creator     *account.Address `json:"creator,omitempty"`
}

// Update - apply creator changes, all of them or none
func (item *Item) Update(arguments *UpdateArguments, reply *Reply) error {
	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	changes := registry.Changes{
		URI:         arguments.URI,
		Price:       arguments.Price,
		FeeRate:     arguments.FeeRate,
		RoyaltyRate: arguments.RoyaltyRate,
		Creator:     arguments.Creator,
	}
	if changes.IsEmpty() {
		return fault.MissingParameters
	}

	item.Log.Infof("Item.Update: %+v", arguments)

	err := item.Registry.Update(arguments.Caller, arguments.ItemID, changes)
	reply.OK = nil == err
	return err
}

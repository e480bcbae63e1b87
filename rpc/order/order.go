// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/currency"
	"github.com/promptnet/promptd/escrow"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/record"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/rpc/ratelimit"
)

const (
	rateLimitOrder = 200
	rateBurstOrder = 100
)

// Engine - the escrow operations reachable over RPC
type Engine interface {
	Create(account.Address, escrow.Offer) (uint64, error)
	Cancel(account.Address, uint64) error
	UpdateRates(account.Address, uint64, *currency.Rate, *currency.Rate) error
	Swap(account.Address, uint64, registry.Payment) error
	SwapWithFiat(account.Address, uint64, account.Address) error
	Order(uint64) (*record.Order, error)
	LastOrderID() (uint64, error)
	Receipts(uint64) ([]*record.Receipt, error)
}

// Order - type for the RPC
type Order struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  Engine
}

// New - create the RPC service
func New(log *logger.L, engine Engine) *Order {
	return &Order{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitOrder, rateBurstOrder),
		Engine:  engine,
	}
}

// Reply - result of a mutation with no other output
type Reply struct {
	OK bool `json:"ok"`
}

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Caller account.Address `json:"caller"`
	Offer  escrow.Offer    `json:"offer"`
}

// CreateReply - result of create RPC
type CreateReply struct {
	OrderID uint64 `json:"orderId,string"`
}

// Create - list units of an item for sale
func (o *Order) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	o.Log.Infof("Order.Create: %+v", arguments)

	id, err := o.Engine.Create(arguments.Caller, arguments.Offer)
	if nil != err {
		return err
	}
	reply.OrderID = id
	return nil
}

// CancelArguments - arguments for RPC
type CancelArguments struct {
	Caller  account.Address `json:"caller"`
	OrderID uint64          `json:"orderId,string"`
}

// Cancel - end an order early
func (o *Order) Cancel(arguments *CancelArguments, reply *Reply) error {
	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	o.Log.Infof("Order.Cancel: %+v", arguments)

	err := o.Engine.Cancel(arguments.Caller, arguments.OrderID)
	reply.OK = nil == err
	return err
}

// RatesArguments - arguments for RPC
//
// either or both rates may be given
type RatesArguments struct {
	Caller      account.Address `json:"caller"`
	OrderID     uint64          `json:"orderId,string"`
	FeeRate     *currency.Rate  `json:"feeRate,omitempty"`
	RoyaltyRate *currency.Rate  `json:"royaltyRate,omitempty"`
}

// UpdateRates - change the fee and royalty of an unfilled order
func (o *Order) UpdateRates(arguments *RatesArguments, reply *Reply) error {
	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}
	if nil == arguments.FeeRate && nil == arguments.RoyaltyRate {
		return fault.MissingParameters
	}

	o.Log.Infof("Order.UpdateRates: %+v", arguments)

	err := o.Engine.UpdateRates(arguments.Caller, arguments.OrderID, arguments.FeeRate, arguments.RoyaltyRate)
	if nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// SwapArguments - arguments for RPC
//
// Recipient is only used by fiat settlement
type SwapArguments struct {
	Caller    account.Address  `json:"caller"`
	OrderID   uint64           `json:"orderId,string"`
	Payment   registry.Payment `json:"payment"`
	Recipient account.Address  `json:"recipient"`
}

// Swap - fill one unit of an order paid by the caller
func (o *Order) Swap(arguments *SwapArguments, reply *Reply) error {
	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	o.Log.Infof("Order.Swap: %+v", arguments)

	err := o.Engine.Swap(arguments.Caller, arguments.OrderID, arguments.Payment)
	reply.OK = nil == err
	return err
}

// SwapWithFiat - operator attested fill for an off-system payment
func (o *Order) SwapWithFiat(arguments *SwapArguments, reply *Reply) error {
	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() || arguments.Recipient.IsZero() {
		return fault.MissingParameters
	}

	o.Log.Infof("Order.SwapWithFiat: %+v", arguments)

	err := o.Engine.SwapWithFiat(arguments.Caller, arguments.OrderID, arguments.Recipient)
	reply.OK = nil == err
	return err
}

// GetArguments - arguments for RPC
type GetArguments struct {
	OrderID  uint64 `json:"orderId,string"`
	Receipts bool   `json:"receipts"`
}

// GetReply - an order, its fills and the newest order id
type GetReply struct {
	Order    *record.Order     `json:"order,omitempty"`
	Receipts []*record.Receipt `json:"receipts,omitempty"`
	LastID   uint64            `json:"lastId,string"`
}

// Get - fetch an order and optionally its receipts
//
// an order id of zero only returns the newest id
func (o *Order) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	last, err := o.Engine.LastOrderID()
	if nil != err {
		return err
	}
	reply.LastID = last

	if 0 == arguments.OrderID {
		return nil
	}

	reply.Order, err = o.Engine.Order(arguments.OrderID)
	if nil != err {
		return err
	}
	if arguments.Receipts {
		reply.Receipts, err = o.Engine.Receipts(arguments.OrderID)
	}
	return err
}

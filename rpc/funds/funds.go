// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package funds

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/rpc/ratelimit"
)

const (
	rateLimitFunds = 100
	rateBurstFunds = 50
)

// Ledger - the settlement media operations reachable over RPC
type Ledger interface {
	Deposit(account.Address, account.Address, account.Address, uint64) error
	Approve(account.Address, account.Address, uint64) error
	Withdraw(account.Address, account.Address, uint64) error
	Balance(account.Address, account.Address) (uint64, error)
	Allowance(account.Address, account.Address) (uint64, error)
}

// Funds - type for the RPC
type Funds struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// New - create the RPC service
func New(log *logger.L, ledger Ledger) *Funds {
	return &Funds{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitFunds, rateBurstFunds),
		Ledger:  ledger,
	}
}

// Arguments - arguments for every funds RPC
//
// Holder is only used by Deposit
type Arguments struct {
	Caller   account.Address `json:"caller"`
	Holder   account.Address `json:"holder"`
	Currency account.Address `json:"currency"`
	Amount   uint64          `json:"amount"`
}

// Reply - holdings after the call
type Reply struct {
	Balance   uint64 `json:"balance"`
	Allowance uint64 `json:"allowance"`
}

func (f *Funds) begin(name string, arguments *Arguments) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}
	f.Log.Infof("Funds.%s: %+v", name, arguments)
	return nil
}

func (f *Funds) report(holder account.Address, cur account.Address, reply *Reply) error {
	var err error
	reply.Balance, err = f.Ledger.Balance(holder, cur)
	if nil != err {
		return err
	}
	reply.Allowance, err = f.Ledger.Allowance(holder, cur)
	return err
}

// Deposit - operator credits value arriving from outside
func (f *Funds) Deposit(arguments *Arguments, reply *Reply) error {
	if err := f.begin("Deposit", arguments); nil != err {
		return err
	}
	err := f.Ledger.Deposit(arguments.Caller, arguments.Holder, arguments.Currency, arguments.Amount)
	if nil != err {
		return err
	}
	return f.report(arguments.Holder, arguments.Currency, reply)
}

// Approve - set the amount the marketplace may pull from the caller
func (f *Funds) Approve(arguments *Arguments, reply *Reply) error {
	if err := f.begin("Approve", arguments); nil != err {
		return err
	}
	err := f.Ledger.Approve(arguments.Caller, arguments.Currency, arguments.Amount)
	if nil != err {
		return err
	}
	return f.report(arguments.Caller, arguments.Currency, reply)
}

// Withdraw - value leaving the system
func (f *Funds) Withdraw(arguments *Arguments, reply *Reply) error {
	if err := f.begin("Withdraw", arguments); nil != err {
		return err
	}
	err := f.Ledger.Withdraw(arguments.Caller, arguments.Currency, arguments.Amount)
	if nil != err {
		return err
	}
	return f.report(arguments.Caller, arguments.Currency, reply)
}

// Balance - current holdings of Holder (or Caller if no holder)
func (f *Funds) Balance(arguments *Arguments, reply *Reply) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	holder := arguments.Holder
	if holder.IsZero() {
		holder = arguments.Caller
	}
	if holder.IsZero() {
		return fault.MissingParameters
	}
	return f.report(holder, arguments.Currency, reply)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package funds

import (
	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/access"
	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/storage"
)

// Ledger - fungible token and native value held inside the system
//
// value enters by operator deposit and leaves by holder withdrawal;
// the marketplace moves value between holders during mint and swap
type Ledger struct {
	log    *logger.L
	db     *storage.DB
	access *access.Controller
}

// New - create a ledger
func New(db *storage.DB, ac *access.Controller) *Ledger {
	return &Ledger{
		log:    logger.New("funds"),
		db:     db,
		access: ac,
	}
}

func key(holder account.Address, currency account.Address) []byte {
	k := make([]byte, 0, 2*account.AddressLength)
	k = append(k, holder[:]...)
	return append(k, currency[:]...)
}

// BalanceOf - funds of holder in one currency
func (l *Ledger) BalanceOf(r storage.Reader, holder account.Address, currency account.Address) uint64 {
	n, _ := r.GetN(l.db.Pool.Funds, key(holder, currency))
	return n
}

// AllowanceOf - amount the marketplace may pull from holder
func (l *Ledger) AllowanceOf(r storage.Reader, holder account.Address, currency account.Address) uint64 {
	n, _ := r.GetN(l.db.Pool.Allowances, key(holder, currency))
	return n
}

func (l *Ledger) setBalance(trx storage.Transaction, holder account.Address, currency account.Address, amount uint64) {
	if 0 == amount {
		trx.Delete(l.db.Pool.Funds, key(holder, currency))
		return
	}
	trx.PutN(l.db.Pool.Funds, key(holder, currency), amount)
}

func (l *Ledger) setAllowance(trx storage.Transaction, holder account.Address, currency account.Address, amount uint64) {
	if 0 == amount {
		trx.Delete(l.db.Pool.Allowances, key(holder, currency))
		return
	}
	trx.PutN(l.db.Pool.Allowances, key(holder, currency), amount)
}

// Credit - add to a balance
func (l *Ledger) Credit(trx storage.Transaction, holder account.Address, currency account.Address, amount uint64) error {
	if 0 == amount {
		return nil
	}
	if holder.IsZero() {
		return fault.InvalidAddress
	}
	balance := l.BalanceOf(trx, holder, currency)
	if balance+amount < balance {
		return fault.AmountOverflow
	}
	l.setBalance(trx, holder, currency, balance+amount)
	return nil
}

// Debit - subtract from a balance
func (l *Ledger) Debit(trx storage.Transaction, holder account.Address, currency account.Address, amount uint64) error {
	if 0 == amount {
		return nil
	}
	balance := l.BalanceOf(trx, holder, currency)
	if balance < amount {
		return fault.InsufficientBalance
	}
	l.setBalance(trx, holder, currency, balance-amount)
	return nil
}

// Pull - move value the payer has approved to a payee
//
// fails with InsufficientPayment if either the allowance or the
// balance of the payer does not cover the amount
func (l *Ledger) Pull(trx storage.Transaction, payer account.Address, payee account.Address, currency account.Address, amount uint64) error {
	if 0 == amount {
		return nil
	}
	allowance := l.AllowanceOf(trx, payer, currency)
	if allowance < amount {
		return fault.InsufficientPayment
	}
	if l.BalanceOf(trx, payer, currency) < amount {
		return fault.InsufficientPayment
	}
	l.setAllowance(trx, payer, currency, allowance-amount)
	return l.Move(trx, payer, payee, currency, amount)
}

// Move - debit one holder and credit another
func (l *Ledger) Move(trx storage.Transaction, from account.Address, to account.Address, currency account.Address, amount uint64) error {
	err := l.Debit(trx, from, currency, amount)
	if nil != err {
		return err
	}
	return l.Credit(trx, to, currency, amount)
}

// Deposit - operator credits value arriving from outside the system
func (l *Ledger) Deposit(caller account.Address, holder account.Address, currency account.Address, amount uint64) error {
	if currency.IsZero() {
		return fault.InvalidCurrency
	}
	if 0 == amount {
		return fault.InvalidQuantity
	}
	return l.db.Update(func(trx storage.Transaction) error {
		s, err := l.access.Running(trx)
		if nil != err {
			return err
		}
		if !s.IsOperator(caller) {
			return fault.Unauthorized
		}
		err = l.Credit(trx, holder, currency, amount)
		if nil != err {
			return err
		}
		l.log.Infof("deposit: %d of: %s to: %s", amount, currency, holder)
		return nil
	})
}

// Approve - set the amount the marketplace may pull from the caller
func (l *Ledger) Approve(caller account.Address, currency account.Address, amount uint64) error {
	if currency.IsZero() {
		return fault.InvalidCurrency
	}
	return l.db.Update(func(trx storage.Transaction) error {
		_, err := l.access.Running(trx)
		if nil != err {
			return err
		}
		l.setAllowance(trx, caller, currency, amount)
		l.log.Debugf("approve: %d of: %s for: %s", amount, currency, caller)
		return nil
	})
}

// Withdraw - value leaves the system
func (l *Ledger) Withdraw(caller account.Address, currency account.Address, amount uint64) error {
	if 0 == amount {
		return fault.InvalidQuantity
	}
	return l.db.Update(func(trx storage.Transaction) error {
		_, err := l.access.Running(trx)
		if nil != err {
			return err
		}
		err = l.Debit(trx, caller, currency, amount)
		if nil != err {
			return err
		}
		l.log.Infof("withdraw: %d of: %s by: %s", amount, currency, caller)
		return nil
	})
}

// Balance - committed balance
func (l *Ledger) Balance(holder account.Address, currency account.Address) (uint64, error) {
	n := uint64(0)
	err := l.db.View(func(r storage.Reader) error {
		n = l.BalanceOf(r, holder, currency)
		return nil
	})
	return n, err
}

// Allowance - committed allowance
func (l *Ledger) Allowance(holder account.Address, currency account.Address) (uint64, error) {
	n := uint64(0)
	err := l.db.View(func(r storage.Reader) error {
		n = l.AllowanceOf(r, holder, currency)
		return nil
	})
	return n, err
}

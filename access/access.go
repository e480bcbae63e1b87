// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/storage"
)

// keys in the control pool
var (
	operatorKey = []byte("operator")
	pendingKey  = []byte("pending")
	pausedKey   = []byte("paused")
)

// State - operator and pause switch as seen by one transaction
type State struct {
	Operator   account.Address `json:"operator"`
	Pending    account.Address `json:"pending"`
	HasPending bool            `json:"hasPending"`
	Paused     bool            `json:"paused"`
}

// IsOperator - caller holds the operator role
func (s State) IsOperator(caller account.Address) bool {
	return s.Operator == caller
}

// Controller - operator role and global pause switch
type Controller struct {
	log *logger.L
	db  *storage.DB
}

// New - create a controller over an open database
func New(db *storage.DB) *Controller {
	return &Controller{
		log: logger.New("access"),
		db:  db,
	}
}

// Load - read the current state
//
// fails with NotInitialised until an operator has been set
func (c *Controller) Load(r storage.Reader) (State, error) {
	op := r.Get(c.db.Pool.Control, operatorKey)
	if nil == op {
		return State{}, fault.NotInitialised
	}
	operator, err := account.FromBytes(op)
	if nil != err {
		logger.Panicf("access: corrupt operator: %x", op)
	}

	s := State{
		Operator: operator,
		Paused:   r.Has(c.db.Pool.Control, pausedKey),
	}

	if p := r.Get(c.db.Pool.Control, pendingKey); nil != p {
		s.Pending, err = account.FromBytes(p)
		if nil != err {
			logger.Panicf("access: corrupt pending operator: %x", p)
		}
		s.HasPending = true
	}
	return s, nil
}

// Running - state for a mutating call, fails if paused
func (c *Controller) Running(r storage.Reader) (State, error) {
	s, err := c.Load(r)
	if nil != err {
		return s, err
	}
	if s.Paused {
		return s, fault.Paused
	}
	return s, nil
}

// Initialise - set the first operator
func (c *Controller) Initialise(operator account.Address) error {
	if operator.IsZero() {
		return fault.InvalidAddress
	}
	return c.db.Update(func(trx storage.Transaction) error {
		if trx.Has(c.db.Pool.Control, operatorKey) {
			return fault.AlreadyInitialised
		}
		trx.Put(c.db.Pool.Control, operatorKey, operator.Bytes())
		c.log.Infof("initial operator: %s", operator)
		return nil
	})
}

// update the state on behalf of the operator
//
// allowed while paused so that a paused ledger can be resumed
func (c *Controller) asOperator(caller account.Address, f func(trx storage.Transaction, s State) error) error {
	return c.db.Update(func(trx storage.Transaction) error {
		s, err := c.Load(trx)
		if nil != err {
			return err
		}
		if !s.IsOperator(caller) {
			c.log.Warnf("caller: %s is not operator", caller)
			return fault.Unauthorized
		}
		return f(trx, s)
	})
}

// Pause - stop all mutating calls
func (c *Controller) Pause(caller account.Address) error {
	return c.asOperator(caller, func(trx storage.Transaction, s State) error {
		if !s.Paused {
			trx.Put(c.db.Pool.Control, pausedKey, []byte{1})
			c.log.Info("paused")
		}
		return nil
	})
}

// Unpause - resume mutating calls
func (c *Controller) Unpause(caller account.Address) error {
	return c.asOperator(caller, func(trx storage.Transaction, s State) error {
		if s.Paused {
			trx.Delete(c.db.Pool.Control, pausedKey)
			c.log.Info("unpaused")
		}
		return nil
	})
}

// DeclareOwnership - first phase of operator transfer
//
// a later declaration replaces an earlier one
func (c *Controller) DeclareOwnership(caller account.Address, candidate account.Address) error {
	if candidate.IsZero() {
		return fault.InvalidAddress
	}
	return c.asOperator(caller, func(trx storage.Transaction, s State) error {
		trx.Put(c.db.Pool.Control, pendingKey, candidate.Bytes())
		c.log.Infof("declared operator candidate: %s", candidate)
		return nil
	})
}

// ClaimOwnership - second phase, only the declared candidate may claim
func (c *Controller) ClaimOwnership(caller account.Address) error {
	return c.db.Update(func(trx storage.Transaction) error {
		s, err := c.Load(trx)
		if nil != err {
			return err
		}
		if !s.HasPending || s.Pending != caller {
			c.log.Warnf("claim by: %s rejected", caller)
			return fault.Unauthorized
		}
		trx.Put(c.db.Pool.Control, operatorKey, caller.Bytes())
		trx.Delete(c.db.Pool.Control, pendingKey)
		c.log.Infof("operator: %s → %s", s.Operator, caller)
		return nil
	})
}

// Current - committed state
func (c *Controller) Current() (State, error) {
	var s State
	err := c.db.View(func(r storage.Reader) error {
		var err error
		s, err = c.Load(r)
		return err
	})
	return s, err
}

// Operator - current operator address
func (c *Controller) Operator() (account.Address, error) {
	s, err := c.Current()
	return s.Operator, err
}

// Pending - declared operator candidate, if any
func (c *Controller) Pending() (account.Address, bool, error) {
	s, err := c.Current()
	return s.Pending, s.HasPending, err
}

// Paused - true if mutating calls are stopped
func (c *Controller) Paused() (bool, error) {
	s, err := c.Current()
	return s.Paused, err
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package control

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/access"
	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/rpc/ratelimit"
)

const (
	rateLimitControl = 10
	rateBurstControl = 10
)

// Controller - access control operations reachable over RPC
type Controller interface {
	Pause(account.Address) error
	Unpause(account.Address) error
	DeclareOwnership(account.Address, account.Address) error
	ClaimOwnership(account.Address) error
	Current() (access.State, error)
}

// Control - type for the RPC
type Control struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Controller Controller
}

// New - create the RPC service
func New(log *logger.L, controller Controller) *Control {
	return &Control{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitControl, rateBurstControl),
		Controller: controller,
	}
}

// Arguments - arguments for RPC
//
// Candidate is only used by Declare
type Arguments struct {
	Caller    account.Address `json:"caller"`
	Candidate account.Address `json:"candidate"`
}

// Reply - access state after the call
type Reply struct {
	Operator account.Address  `json:"operator"`
	Pending  *account.Address `json:"pending,omitempty"`
	Paused   bool             `json:"paused"`
}

func (c *Control) run(name string, arguments *Arguments, reply *Reply, f func() error) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	c.Log.Infof("Control.%s: %+v", name, arguments)

	if err := f(); nil != err {
		c.Log.Warnf("Control.%s: caller: %s  error: %s", name, arguments.Caller, err)
		return err
	}
	return c.state(reply)
}

func (c *Control) state(reply *Reply) error {
	s, err := c.Controller.Current()
	if nil != err {
		return err
	}
	reply.Operator = s.Operator
	reply.Paused = s.Paused
	if s.HasPending {
		pending := s.Pending
		reply.Pending = &pending
	}
	return nil
}

// Pause - stop all mutations
func (c *Control) Pause(arguments *Arguments, reply *Reply) error {
	return c.run("Pause", arguments, reply, func() error {
		return c.Controller.Pause(arguments.Caller)
	})
}

// Unpause - resume mutations
func (c *Control) Unpause(arguments *Arguments, reply *Reply) error {
	return c.run("Unpause", arguments, reply, func() error {
		return c.Controller.Unpause(arguments.Caller)
	})
}

// Declare - name a candidate operator
func (c *Control) Declare(arguments *Arguments, reply *Reply) error {
	return c.run("Declare", arguments, reply, func() error {
		return c.Controller.DeclareOwnership(arguments.Caller, arguments.Candidate)
	})
}

// Claim - candidate becomes the operator
func (c *Control) Claim(arguments *Arguments, reply *Reply) error {
	return c.run("Claim", arguments, reply, func() error {
		return c.Controller.ClaimOwnership(arguments.Caller)
	})
}

// Status - current access state
func (c *Control) Status(arguments *Arguments, reply *Reply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	return c.state(reply)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/counter"
	"github.com/promptnet/promptd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Counts - newest identifiers issued by the ledger
type Counts interface {
	LastItemID() (uint64, error)
	LastOrderID() (uint64, error)
}

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Registry account.Address
	counts   Counts
	counter  *counter.Counter
}

// New - create the RPC service
func New(log *logger.L, start time.Time, version string, registry account.Address, counts Counts, counter *counter.Counter) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Registry: registry,
		counts:   counts,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for RPC
type InfoArguments struct{}

// InfoReply - daemon status
type InfoReply struct {
	Version     string          `json:"version"`
	Uptime      string          `json:"uptime"`
	Registry    account.Address `json:"registry"`
	Connections uint64          `json:"connections"`
	LastItemID  uint64          `json:"lastItemId,string"`
	LastOrderID uint64          `json:"lastOrderId,string"`
}

// Info - version, uptime and ledger counters
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	var err error
	reply.LastItemID, err = node.counts.LastItemID()
	if nil != err {
		return err
	}
	reply.LastOrderID, err = node.counts.LastOrderID()
	if nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).Round(time.Second).String()
	reply.Registry = node.Registry
	reply.Connections = node.counter.Uint64()
	return nil
}

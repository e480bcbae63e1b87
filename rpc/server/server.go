// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/access"
	"github.com/promptnet/promptd/counter"
	"github.com/promptnet/promptd/disclosure"
	"github.com/promptnet/promptd/escrow"
	"github.com/promptnet/promptd/funds"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/rpc/control"
	rpcfunds "github.com/promptnet/promptd/rpc/funds"
	"github.com/promptnet/promptd/rpc/item"
	"github.com/promptnet/promptd/rpc/node"
	"github.com/promptnet/promptd/rpc/order"
	"github.com/promptnet/promptd/rpc/secret"
)

// Services - the ledger components exposed over RPC
//
// Gate is optional; without it no Secret service is registered
type Services struct {
	Access   *access.Controller
	Funds    *funds.Ledger
	Registry *registry.Registry
	Escrow   *escrow.Engine
	Gate     *disclosure.Gate
}

type counts struct {
	reg    *registry.Registry
	engine *escrow.Engine
}

func (c counts) LastItemID() (uint64, error)  { return c.reg.LastItemID() }
func (c counts) LastOrderID() (uint64, error) { return c.engine.LastOrderID() }

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, services Services, rpcCount *counter.Counter) (*rpc.Server, error) {
	start := time.Now().UTC()

	server := rpc.NewServer()

	receivers := []interface{}{
		item.New(log, services.Registry),
		order.New(log, services.Escrow),
		rpcfunds.New(log, services.Funds),
		control.New(log, services.Access),
		node.New(log, start, version, services.Registry.Address(), counts{services.Registry, services.Escrow}, rpcCount),
	}
	if nil != services.Gate {
		receivers = append(receivers, secret.New(log, services.Gate))
	}

	for _, r := range receivers {
		if err := server.Register(r); nil != err {
			log.Criticalf("register: %T  error: %s", r, err)
			return nil, err
		}
	}
	return server, nil
}

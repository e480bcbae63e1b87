// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring promptd services
//
// standard golang RPC services can be used on the client side to
// access these services
//
// the mocks used by the service tests are regenerated with:
//
//   mockgen -package mocks -destination mocks/registry.go github.com/promptnet/promptd/rpc/item Registry
//   mockgen -package mocks -destination mocks/engine.go github.com/promptnet/promptd/rpc/order Engine
//   mockgen -package mocks -destination mocks/ledger.go github.com/promptnet/promptd/rpc/funds Ledger
//   mockgen -package mocks -destination mocks/controller.go github.com/promptnet/promptd/rpc/control Controller
//   mockgen -package mocks -destination mocks/gate.go github.com/promptnet/promptd/rpc/secret Gate
package rpc

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/background"
	"github.com/promptnet/promptd/counter"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/rpc/certificate"
	"github.com/promptnet/promptd/rpc/listeners"
	"github.com/promptnet/promptd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener   listeners.Listener
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

var connectionCountRPC counter.Counter

// Initialise - load the certificate and start serving
func Initialise(rpcConfiguration *listeners.RPCConfiguration, services server.Services, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Load(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	s, err := server.Create(log, version, services, &connectionCountRPC)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		s,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}

	// bind now so address errors are reported to the caller
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	globalData.listener = rpcListener
	globalData.background = background.Start(background.Processes{rpcListener}, nil)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	// finally...
	globalData.initialised = false
	globalData.listener = nil

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Addresses - where the RPC listener is bound
func Addresses() []net.Addr {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil == globalData.listener {
		return nil
	}
	return globalData.listener.Addresses()
}

// ConnectionCount - number of clients currently connected
func ConnectionCount() uint64 {
	return connectionCountRPC.Uint64()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/tls"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/access"
	"github.com/promptnet/promptd/command/prompt-cli/rpccalls"
	"github.com/promptnet/promptd/counter"
	"github.com/promptnet/promptd/currency"
	"github.com/promptnet/promptd/escrow"
	"github.com/promptnet/promptd/fixtures"
	"github.com/promptnet/promptd/funds"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/rpc/certificate"
	"github.com/promptnet/promptd/rpc/control"
	rpcfunds "github.com/promptnet/promptd/rpc/funds"
	"github.com/promptnet/promptd/rpc/item"
	"github.com/promptnet/promptd/rpc/server"
	"github.com/promptnet/promptd/storage"
)

const databaseFileName = "rpccalls-test.leveldb"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type daemon struct {
	db          *storage.DB
	listener    net.Listener
	fingerprint certificate.Fingerprint
}

func start(t *testing.T) daemon {
	os.RemoveAll(databaseFileName)
	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	require.NoError(t, err)

	ac := access.New(db)
	require.NoError(t, ac.Initialise(fixtures.Operator.Address))
	ledger := funds.New(db, ac)
	reg := registry.New(db, ac, ledger, fixtures.Registry)

	services := server.Services{
		Access:   ac,
		Funds:    ledger,
		Registry: reg,
		Escrow:   escrow.New(db, ac, reg, ledger),
	}

	log := logger.New(fixtures.LogCategory)
	count := counter.Counter(0)
	s, err := server.Create(log, "test", services, &count)
	require.NoError(t, err)

	cer, key := fixtures.Certificate()
	tlsConfig, fingerprint, err := certificate.Get(log, "test", cer, key)
	require.NoError(t, err)

	l, err := tls.Listen("tcp", "127.0.0.1:0", tlsConfig)
	require.NoError(t, err)

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	return daemon{
		db:          db,
		listener:    l,
		fingerprint: fingerprint,
	}
}

func (d daemon) stop() {
	d.listener.Close()
	d.db.Close()
	os.RemoveAll(databaseFileName)
}

func TestClient(t *testing.T) {
	d := start(t)
	defer d.stop()

	var trace bytes.Buffer
	client, err := rpccalls.NewClient(d.listener.Addr().String(), &d.fingerprint, true, &trace)
	require.NoError(t, err)
	defer client.Close()

	info, err := client.GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "test", info.Version)
	assert.Equal(t, fixtures.Registry, info.Registry)
	assert.Contains(t, trace.String(), "Node.Info reply:")

	authorized, err := client.Authorize(&item.AuthorizeArguments{
		Caller:    fixtures.Operator.Address,
		URI:       "ipfs://prompt",
		Initial:   1,
		Price:     currency.Price{Kind: currency.Native, Amount: 5},
		MaxSupply: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), authorized.ItemID)

	got, err := client.GetItem(authorized.ItemID)
	require.NoError(t, err)
	require.NotNil(t, got.Item)
	assert.Equal(t, "ipfs://prompt", got.Item.URI)
	assert.Equal(t, uint64(1), got.LastID)

	balance, err := client.ItemBalance(fixtures.Operator.Address, authorized.ItemID, fixtures.Alice.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance.Balance)
	assert.False(t, balance.Approved)

	deposited, err := client.Funds("Deposit", &rpcfunds.Arguments{
		Caller:   fixtures.Operator.Address,
		Holder:   fixtures.Bob.Address,
		Currency: currency.NativeAddress,
		Amount:   50,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(50), deposited.Balance)

	_, err = client.Funds("Steal", &rpcfunds.Arguments{})
	assert.Equal(t, rpccalls.ErrUnknownMethod, err)

	status, err := client.Control("Status", &control.Arguments{})
	require.NoError(t, err)
	assert.Equal(t, fixtures.Operator.Address, status.Operator)
	assert.False(t, status.Paused)
}

func TestClientWithoutFingerprint(t *testing.T) {
	d := start(t)
	defer d.stop()

	client, err := rpccalls.NewClient(d.listener.Addr().String(), nil, false, nil)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.GetInfo()
	assert.NoError(t, err)
}

func TestClientWrongFingerprint(t *testing.T) {
	d := start(t)
	defer d.stop()

	wrong := d.fingerprint
	wrong[0] ^= 0xff

	_, err := rpccalls.NewClient(d.listener.Addr().String(), &wrong, false, nil)
	assert.Error(t, err)
}

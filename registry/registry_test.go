// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptnet/promptd/access"
	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/currency"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/fixtures"
	"github.com/promptnet/promptd/funds"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/storage"
)

const databaseFileName = "registry-test.leveldb"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type env struct {
	db       *storage.DB
	access   *access.Controller
	funds    *funds.Ledger
	registry *registry.Registry
}

func setup(t *testing.T) env {
	os.RemoveAll(databaseFileName)
	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	require.NoError(t, err)
	ac := access.New(db)
	require.NoError(t, ac.Initialise(fixtures.Operator.Address))
	ledger := funds.New(db, ac)
	return env{
		db:       db,
		access:   ac,
		funds:    ledger,
		registry: registry.New(db, ac, ledger, fixtures.Registry),
	}
}

func (e env) teardown() {
	e.db.Close()
	os.RemoveAll(databaseFileName)
}

var nativePrice = currency.Price{Kind: currency.Native, Amount: 5}
var tokenPrice = currency.Price{Kind: currency.FungibleToken, Address: fixtures.Token, Amount: 200}

// supply must always equal the sum of balances
func checkSupply(t *testing.T, e env, id uint64) {
	item, err := e.registry.Item(id)
	require.NoError(t, err)
	holders, err := e.registry.Holders(id)
	require.NoError(t, err)

	total := uint64(0)
	for _, h := range holders {
		assert.NotZero(t, h.Quantity, "zero balance listed")
		total += h.Quantity
	}
	assert.Equal(t, item.Supply, total, "supply: item: %d", id)
	if item.Capped() {
		assert.LessOrEqual(t, item.Supply, item.MaxSupply)
	}
}

func holder(i int) account.Address {
	a := account.Address{}
	a[0] = 0xa0
	a[19] = byte(i)
	return a
}

func TestAuthorize(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	_, err := e.registry.Authorize(fixtures.Alice.Address, "uri", 11, nativePrice, 10)
	assert.Equal(t, fault.InvalidSupply, err)

	_, err = e.registry.Authorize(fixtures.Alice.Address, "uri", 1, currency.Price{Kind: currency.FungibleToken, Amount: 1}, 10)
	assert.Equal(t, fault.InvalidCurrency, err, "missing token address")

	_, err = e.registry.Authorize(fixtures.Alice.Address, "uri", 1, currency.Price{Kind: currency.Fiat, Amount: 1}, 10)
	assert.Equal(t, fault.InvalidCurrency, err, "fiat cannot be minted")

	last, _ := e.registry.LastItemID()
	assert.Equal(t, uint64(0), last, "failed authorize allocates no id")

	id, err := e.registry.Authorize(fixtures.Alice.Address, "ipfs://one", 3, tokenPrice, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	id, err = e.registry.Authorize(fixtures.Bob.Address, "ipfs://two", 0, nativePrice, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), id)

	last, _ = e.registry.LastItemID()
	assert.Equal(t, uint64(2), last)

	item, err := e.registry.Item(1)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Alice.Address, item.Creator)
	assert.Equal(t, "ipfs://one", item.URI)
	assert.Equal(t, uint64(3), item.Supply)
	assert.Equal(t, uint64(10), item.MaxSupply)
	assert.True(t, currency.DefaultRate.Equal(item.FeeRate))
	assert.True(t, currency.DefaultRate.Equal(item.RoyaltyRate))

	n, _ := e.registry.Balance(fixtures.Alice.Address, 1)
	assert.Equal(t, uint64(3), n)

	_, err = e.registry.Item(99)
	assert.Equal(t, fault.ItemNotFound, err)

	checkSupply(t, e, 1)
	checkSupply(t, e, 2)
}

func TestMintToSupplyLimit(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	id, err := e.registry.Authorize(fixtures.Alice.Address, "ipfs://capped", 0, nativePrice, 10)
	require.NoError(t, err)

	require.NoError(t, e.funds.Deposit(fixtures.Operator.Address, fixtures.Bob.Address, currency.NativeAddress, 1000))

	for i := 1; i <= 10; i += 1 {
		err := e.registry.Mint(fixtures.Bob.Address, holder(i), id, 1, registry.Payment{Value: 5})
		require.NoError(t, err, "mint: %d", i)
		checkSupply(t, e, id)
	}

	err = e.registry.Mint(fixtures.Bob.Address, holder(11), id, 1, registry.Payment{Value: 5})
	assert.Equal(t, fault.SupplyExceeded, err)

	holders, _ := e.registry.Holders(id)
	assert.Len(t, holders, 10)

	paid, _ := e.funds.Balance(fixtures.Alice.Address, currency.NativeAddress)
	assert.Equal(t, uint64(50), paid, "creator receives payment")

	left, _ := e.funds.Balance(fixtures.Bob.Address, currency.NativeAddress)
	assert.Equal(t, uint64(950), left, "failed mint takes nothing")
}

func TestMintNativePayment(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	id, err := e.registry.Authorize(fixtures.Alice.Address, "ipfs://native", 0, nativePrice, 0)
	require.NoError(t, err)

	err = e.registry.Mint(fixtures.Bob.Address, fixtures.Bob.Address, id, 2, registry.Payment{Value: 10})
	assert.Equal(t, fault.InsufficientPayment, err, "no funds")

	require.NoError(t, e.funds.Deposit(fixtures.Operator.Address, fixtures.Bob.Address, currency.NativeAddress, 100))

	err = e.registry.Mint(fixtures.Bob.Address, fixtures.Bob.Address, id, 2, registry.Payment{Value: 9})
	assert.Equal(t, fault.InsufficientPayment, err, "under")
	err = e.registry.Mint(fixtures.Bob.Address, fixtures.Bob.Address, id, 2, registry.Payment{Value: 11})
	assert.Equal(t, fault.InsufficientPayment, err, "over")

	err = e.registry.Mint(fixtures.Bob.Address, fixtures.Bob.Address, id, 0, registry.Payment{})
	assert.Equal(t, fault.InvalidQuantity, err)

	require.NoError(t, e.registry.Mint(fixtures.Bob.Address, fixtures.Carol.Address, id, 2, registry.Payment{Value: 10}))

	n, _ := e.registry.Balance(fixtures.Carol.Address, id)
	assert.Equal(t, uint64(2), n)
	n, _ = e.registry.Balance(fixtures.Bob.Address, id)
	assert.Equal(t, uint64(0), n)

	bob, _ := e.funds.Balance(fixtures.Bob.Address, currency.NativeAddress)
	alice, _ := e.funds.Balance(fixtures.Alice.Address, currency.NativeAddress)
	assert.Equal(t, uint64(90), bob)
	assert.Equal(t, uint64(10), alice)

	checkSupply(t, e, id)
}

func TestMintTokenPayment(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	id, err := e.registry.Authorize(fixtures.Alice.Address, "ipfs://token", 1, tokenPrice, 5)
	require.NoError(t, err)

	require.NoError(t, e.funds.Deposit(fixtures.Operator.Address, fixtures.Bob.Address, fixtures.Token, 1000))

	err = e.registry.Mint(fixtures.Bob.Address, fixtures.Bob.Address, id, 3, registry.Payment{})
	assert.Equal(t, fault.InsufficientPayment, err, "not approved")

	require.NoError(t, e.funds.Approve(fixtures.Bob.Address, fixtures.Token, 600))

	err = e.registry.Mint(fixtures.Bob.Address, fixtures.Bob.Address, id, 3, registry.Payment{Value: 600})
	assert.Equal(t, fault.InsufficientPayment, err, "native value on token item")

	err = e.registry.Mint(fixtures.Bob.Address, fixtures.Bob.Address, id, 5, registry.Payment{})
	assert.Equal(t, fault.SupplyExceeded, err)

	require.NoError(t, e.registry.Mint(fixtures.Bob.Address, fixtures.Bob.Address, id, 3, registry.Payment{}))

	alice, _ := e.funds.Balance(fixtures.Alice.Address, fixtures.Token)
	assert.Equal(t, uint64(600), alice)
	allowance, _ := e.funds.Allowance(fixtures.Bob.Address, fixtures.Token)
	assert.Equal(t, uint64(0), allowance)

	item, _ := e.registry.Item(id)
	assert.Equal(t, uint64(4), item.Supply)
	checkSupply(t, e, id)
}

func TestBurn(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	id, err := e.registry.Authorize(fixtures.Alice.Address, "ipfs://burn", 5, nativePrice, 5)
	require.NoError(t, err)

	err = e.registry.Burn(fixtures.Alice.Address, fixtures.Alice.Address, id, 6)
	assert.Equal(t, fault.InsufficientBalance, err)

	err = e.registry.Burn(fixtures.Bob.Address, fixtures.Alice.Address, id, 1)
	assert.Equal(t, fault.Unauthorized, err)

	burnt := uint64(0)
	for i := 0; i < 3; i += 1 {
		require.NoError(t, e.registry.Burn(fixtures.Alice.Address, fixtures.Alice.Address, id, 1))
		item, _ := e.registry.Item(id)
		assert.Greater(t, item.TotalBurnt, burnt, "monotonic")
		burnt = item.TotalBurnt
		checkSupply(t, e, id)
	}

	item, _ := e.registry.Item(id)
	assert.Equal(t, uint64(2), item.Supply)
	assert.Equal(t, uint64(3), item.TotalBurnt)

	// burning frees supply for minting but the burnt count stays
	require.NoError(t, e.funds.Deposit(fixtures.Operator.Address, fixtures.Bob.Address, currency.NativeAddress, 15))
	require.NoError(t, e.registry.Mint(fixtures.Bob.Address, fixtures.Bob.Address, id, 3, registry.Payment{Value: 15}))
	item, _ = e.registry.Item(id)
	assert.Equal(t, uint64(5), item.Supply)
	assert.Equal(t, uint64(3), item.TotalBurnt)
}

func TestTransfer(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	id, err := e.registry.Authorize(fixtures.Alice.Address, "ipfs://move", 4, nativePrice, 0)
	require.NoError(t, err)

	err = e.registry.Transfer(fixtures.Alice.Address, fixtures.Alice.Address, fixtures.Bob.Address, id, 5)
	assert.Equal(t, fault.InsufficientBalance, err)

	err = e.registry.Transfer(fixtures.Carol.Address, fixtures.Alice.Address, fixtures.Bob.Address, id, 1)
	assert.Equal(t, fault.Unauthorized, err)

	err = e.registry.Transfer(fixtures.Alice.Address, fixtures.Alice.Address, fixtures.Bob.Address, 77, 1)
	assert.Equal(t, fault.ItemNotFound, err)

	require.NoError(t, e.registry.Transfer(fixtures.Alice.Address, fixtures.Alice.Address, fixtures.Bob.Address, id, 1))

	require.NoError(t, e.registry.SetApprovalForAll(fixtures.Alice.Address, fixtures.Carol.Address, true))
	approved, _ := e.registry.IsApprovedForAll(fixtures.Alice.Address, fixtures.Carol.Address)
	assert.True(t, approved)

	require.NoError(t, e.registry.Transfer(fixtures.Carol.Address, fixtures.Alice.Address, fixtures.Dave.Address, id, 2))

	require.NoError(t, e.registry.SetApprovalForAll(fixtures.Alice.Address, fixtures.Carol.Address, false))
	err = e.registry.Transfer(fixtures.Carol.Address, fixtures.Alice.Address, fixtures.Dave.Address, id, 1)
	assert.Equal(t, fault.Unauthorized, err, "revoked")

	expected := map[account.Address]uint64{
		fixtures.Alice.Address: 1,
		fixtures.Bob.Address:   1,
		fixtures.Dave.Address:  2,
	}
	holders, _ := e.registry.Holders(id)
	assert.Len(t, holders, len(expected))
	for _, h := range holders {
		assert.Equal(t, expected[h.Holder], h.Quantity, "holder: %s", h.Holder)
	}
	checkSupply(t, e, id)
}

func TestCreatorSetters(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	id, err := e.registry.Authorize(fixtures.Alice.Address, "ipfs://before", 1, nativePrice, 0)
	require.NoError(t, err)

	bob := fixtures.Bob.Address
	assert.Equal(t, fault.Unauthorized, e.registry.SetURI(bob, id, "x"))
	assert.Equal(t, fault.Unauthorized, e.registry.SetPrice(bob, id, tokenPrice))
	assert.Equal(t, fault.Unauthorized, e.registry.SetFeeRate(bob, id, currency.MustRate("0.2")))
	assert.Equal(t, fault.Unauthorized, e.registry.SetRoyaltyRate(bob, id, currency.MustRate("0.2")))
	assert.Equal(t, fault.Unauthorized, e.registry.TransferItemOwner(bob, id, bob))

	alice := fixtures.Alice.Address
	require.NoError(t, e.registry.SetURI(alice, id, "ipfs://after"))
	require.NoError(t, e.registry.SetPrice(alice, id, tokenPrice))
	require.NoError(t, e.registry.SetFeeRate(alice, id, currency.MustRate("0.15")))
	require.NoError(t, e.registry.SetRoyaltyRate(alice, id, currency.MustRate("0.2")))

	assert.Equal(t, fault.InvalidCurrency, e.registry.SetPrice(alice, id, currency.Price{Kind: currency.Fiat, Amount: 1}))

	item, _ := e.registry.Item(id)
	assert.Equal(t, "ipfs://after", item.URI)
	assert.Equal(t, tokenPrice, item.Price)
	assert.Equal(t, "0.15", item.FeeRate.String())
	assert.Equal(t, "0.2", item.RoyaltyRate.String())

	require.NoError(t, e.registry.TransferItemOwner(alice, id, bob))
	assert.Equal(t, fault.Unauthorized, e.registry.SetURI(alice, id, "x"), "old creator")
	require.NoError(t, e.registry.SetURI(bob, id, "ipfs://bob"))

	item, _ = e.registry.Item(id)
	assert.Equal(t, bob, item.Creator)
}

func TestUpdateIsAllOrNothing(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	alice := fixtures.Alice.Address
	id, err := e.registry.Authorize(alice, "ipfs://before", 1, nativePrice, 0)
	require.NoError(t, err)

	uri := "ipfs://after"
	fee := currency.MustRate("0.5")
	royalty := currency.MustRate("0.6")
	err = e.registry.Update(alice, id, registry.Changes{URI: &uri, FeeRate: &fee, RoyaltyRate: &royalty})
	assert.Equal(t, fault.InvalidRate, err)

	item, _ := e.registry.Item(id)
	assert.Equal(t, "ipfs://before", item.URI, "uri must not change")
	assert.Equal(t, "0.1", item.FeeRate.String(), "fee must not change")
	assert.Equal(t, "0.1", item.RoyaltyRate.String())

	bad := currency.Price{Kind: currency.Fiat, Amount: 1}
	err = e.registry.Update(alice, id, registry.Changes{URI: &uri, Price: &bad})
	assert.Equal(t, fault.InvalidCurrency, err)

	zero := account.Zero
	err = e.registry.Update(alice, id, registry.Changes{URI: &uri, Creator: &zero})
	assert.Equal(t, fault.InvalidAddress, err)

	assert.Equal(t, fault.MissingParameters, e.registry.Update(alice, id, registry.Changes{}))

	item, _ = e.registry.Item(id)
	assert.Equal(t, "ipfs://before", item.URI)

	royalty = currency.MustRate("0.3")
	err = e.registry.Update(alice, id, registry.Changes{URI: &uri, FeeRate: &fee, RoyaltyRate: &royalty})
	require.NoError(t, err)

	item, _ = e.registry.Item(id)
	assert.Equal(t, "ipfs://after", item.URI)
	assert.Equal(t, "0.5", item.FeeRate.String())
	assert.Equal(t, "0.3", item.RoyaltyRate.String())
}

func TestRatesMustSplitPrice(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	alice := fixtures.Alice.Address
	id, err := e.registry.Authorize(alice, "ipfs://rates", 1, nativePrice, 0)
	require.NoError(t, err)

	require.NoError(t, e.registry.SetFeeRate(alice, id, currency.MustRate("0.6")))
	assert.Equal(t, fault.InvalidRate, e.registry.SetRoyaltyRate(alice, id, currency.MustRate("0.6")))

	item, _ := e.registry.Item(id)
	assert.Equal(t, "0.6", item.FeeRate.String())
	assert.Equal(t, "0.1", item.RoyaltyRate.String())

	require.NoError(t, e.registry.SetRoyaltyRate(alice, id, currency.MustRate("0.4")), "exactly the whole price")
}

func TestPaused(t *testing.T) {
	e := setup(t)
	defer e.teardown()

	id, err := e.registry.Authorize(fixtures.Alice.Address, "ipfs://p", 2, nativePrice, 0)
	require.NoError(t, err)

	require.NoError(t, e.access.Pause(fixtures.Operator.Address))

	_, err = e.registry.Authorize(fixtures.Alice.Address, "ipfs://q", 1, nativePrice, 0)
	assert.Equal(t, fault.Paused, err)
	assert.Equal(t, fault.Paused, e.registry.Mint(fixtures.Bob.Address, fixtures.Bob.Address, id, 1, registry.Payment{Value: 5}))
	assert.Equal(t, fault.Paused, e.registry.Burn(fixtures.Alice.Address, fixtures.Alice.Address, id, 1))
	assert.Equal(t, fault.Paused, e.registry.Transfer(fixtures.Alice.Address, fixtures.Alice.Address, fixtures.Bob.Address, id, 1))
	assert.Equal(t, fault.Paused, e.registry.SetURI(fixtures.Alice.Address, id, "x"))

	// queries still work
	n, err := e.registry.Balance(fixtures.Alice.Address, id)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), n)

	require.NoError(t, e.access.Unpause(fixtures.Operator.Address))
	require.NoError(t, e.registry.Burn(fixtures.Alice.Address, fixtures.Alice.Address, id, 1))
}

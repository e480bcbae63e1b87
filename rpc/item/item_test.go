// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/currency"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/fixtures"
	"github.com/promptnet/promptd/record"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/rpc/item"
	"github.com/promptnet/promptd/rpc/mocks"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestItemAuthorize(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	i := item.New(logger.New(fixtures.LogCategory), r)

	price := currency.Price{Kind: currency.Native, Amount: 1000}
	arg := item.AuthorizeArguments{
		Caller:    fixtures.Alice.Address,
		URI:       "ipfs://QmTest",
		Initial:   1,
		Price:     price,
		MaxSupply: 10,
	}

	r.EXPECT().Authorize(fixtures.Alice.Address, "ipfs://QmTest", uint64(1), price, uint64(10)).Return(uint64(7), nil).Times(1)

	var reply item.AuthorizeReply
	err := i.Authorize(&arg, &reply)
	assert.Nil(t, err, "wrong Authorize")
	assert.Equal(t, uint64(7), reply.ItemID, "wrong item id")
}

func TestItemAuthorizeMissingCaller(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	i := item.New(logger.New(fixtures.LogCategory), r)

	var reply item.AuthorizeReply
	err := i.Authorize(&item.AuthorizeArguments{URI: "x"}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestItemMint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	i := item.New(logger.New(fixtures.LogCategory), r)

	arg := item.MintArguments{
		Caller:   fixtures.Bob.Address,
		To:       fixtures.Bob.Address,
		ItemID:   1,
		Quantity: 2,
		Payment:  registry.Payment{Value: 2000},
	}

	r.EXPECT().Mint(arg.Caller, arg.To, arg.ItemID, arg.Quantity, arg.Payment).Return(nil).Times(1)

	var reply item.Reply
	err := i.Mint(&arg, &reply)
	assert.Nil(t, err, "wrong Mint")
	assert.True(t, reply.OK)

	r.EXPECT().Mint(arg.Caller, arg.To, arg.ItemID, arg.Quantity, arg.Payment).Return(fault.SupplyExceeded).Times(1)

	reply = item.Reply{}
	err = i.Mint(&arg, &reply)
	assert.Equal(t, fault.SupplyExceeded, err, "wrong error")
	assert.False(t, reply.OK)
}

func TestItemTransferAndBurn(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	i := item.New(logger.New(fixtures.LogCategory), r)

	alice := fixtures.Alice.Address
	bob := fixtures.Bob.Address

	gomock.InOrder(
		r.EXPECT().SetApprovalForAll(alice, bob, true).Return(nil),
		r.EXPECT().Transfer(bob, alice, bob, uint64(3), uint64(1)).Return(nil),
		r.EXPECT().Burn(bob, bob, uint64(3), uint64(1)).Return(nil),
	)

	var reply item.Reply
	assert.Nil(t, i.SetApproval(&item.ApprovalArguments{Caller: alice, Operator: bob, Approved: true}, &reply))
	assert.Nil(t, i.Transfer(&item.TransferArguments{Caller: bob, From: alice, To: bob, ItemID: 3, Quantity: 1}, &reply))
	assert.Nil(t, i.Burn(&item.BurnArguments{Caller: bob, Holder: bob, ItemID: 3, Quantity: 1}, &reply))
}

func TestItemUpdate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	i := item.New(logger.New(fixtures.LogCategory), r)

	alice := fixtures.Alice.Address
	uri := "ipfs://QmNew"
	fee := currency.MustRate("0.05")
	creator := fixtures.Carol.Address

	changes := registry.Changes{
		URI:     &uri,
		FeeRate: &fee,
		Creator: &creator,
	}
	r.EXPECT().Update(alice, uint64(1), changes).Return(nil).Times(1)

	var reply item.Reply
	err := i.Update(&item.UpdateArguments{
		Caller:  alice,
		ItemID:  1,
		URI:     &uri,
		FeeRate: &fee,
		Creator: &creator,
	}, &reply)
	assert.Nil(t, err, "wrong Update")
	assert.True(t, reply.OK)

	err = i.Update(&item.UpdateArguments{Caller: alice, ItemID: 1}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "nothing to change")
}

func TestItemUpdateRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	i := item.New(logger.New(fixtures.LogCategory), r)

	bob := fixtures.Bob.Address
	uri := "ipfs://QmNew"
	royalty := currency.MustRate("0.2")

	r.EXPECT().Update(bob, uint64(1), registry.Changes{URI: &uri, RoyaltyRate: &royalty}).Return(fault.Unauthorized).Times(1)

	var reply item.Reply
	err := i.Update(&item.UpdateArguments{Caller: bob, ItemID: 1, URI: &uri, RoyaltyRate: &royalty}, &reply)
	assert.Equal(t, fault.Unauthorized, err)
	assert.False(t, reply.OK)
}

func TestItemGet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	i := item.New(logger.New(fixtures.LogCategory), r)

	rec := &record.Item{
		ID:          2,
		Creator:     fixtures.Alice.Address,
		URI:         "ipfs://QmTest",
		Price:       currency.Price{Kind: currency.Native, Amount: 1},
		MaxSupply:   10,
		Supply:      4,
		FeeRate:     currency.DefaultRate,
		RoyaltyRate: currency.DefaultRate,
	}

	r.EXPECT().LastItemID().Return(uint64(5), nil).Times(2)
	r.EXPECT().Item(uint64(2)).Return(rec, nil).Times(1)

	var reply item.GetReply
	err := i.Get(&item.GetArguments{ItemID: 2}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(5), reply.LastID)
	assert.Equal(t, rec, reply.Item)

	reply = item.GetReply{}
	err = i.Get(&item.GetArguments{}, &reply)
	assert.Nil(t, err)
	assert.Nil(t, reply.Item, "only the last id")
}

func TestItemBalance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	i := item.New(logger.New(fixtures.LogCategory), r)

	alice := fixtures.Alice.Address
	market := fixtures.Registry

	r.EXPECT().Balance(alice, uint64(1)).Return(uint64(3), nil).Times(2)
	r.EXPECT().IsApprovedForAll(alice, market).Return(true, nil).Times(1)

	var reply item.BalanceReply
	assert.Nil(t, i.Balance(&item.BalanceArguments{Holder: alice, ItemID: 1}, &reply))
	assert.Equal(t, uint64(3), reply.Balance)
	assert.False(t, reply.Approved)

	reply = item.BalanceReply{}
	assert.Nil(t, i.Balance(&item.BalanceArguments{Holder: alice, ItemID: 1, Operator: market}, &reply))
	assert.True(t, reply.Approved)

	err := i.Balance(&item.BalanceArguments{Holder: account.Zero, ItemID: 1}, &reply)
	assert.Equal(t, fault.MissingParameters, err)
}

func TestItemHolders(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	i := item.New(logger.New(fixtures.LogCategory), r)

	holders := []registry.Holding{
		{Holder: fixtures.Alice.Address, Quantity: 1},
		{Holder: fixtures.Bob.Address, Quantity: 2},
		{Holder: fixtures.Carol.Address, Quantity: 3},
	}
	r.EXPECT().Holders(uint64(1)).Return(holders, nil).Times(2)

	var reply item.HoldersReply
	assert.Nil(t, i.Holders(&item.HoldersArguments{ItemID: 1, Count: 2}, &reply))
	assert.Equal(t, holders[:2], reply.Holders)
	assert.True(t, reply.More)

	reply = item.HoldersReply{}
	assert.Nil(t, i.Holders(&item.HoldersArguments{ItemID: 1, Count: 10}, &reply))
	assert.Equal(t, holders, reply.Holders)
	assert.False(t, reply.More)

	err := i.Holders(&item.HoldersArguments{ItemID: 1, Count: item.MaximumHolders + 1}, &reply)
	assert.Equal(t, fault.InvalidCount, err)
}

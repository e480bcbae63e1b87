// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/currency"
	"github.com/promptnet/promptd/escrow"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/fixtures"
	"github.com/promptnet/promptd/record"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/rpc/mocks"
	"github.com/promptnet/promptd/rpc/order"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestOrderCreate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	o := order.New(logger.New(fixtures.LogCategory), e)

	offer := escrow.Offer{
		ItemID:       1,
		AssetAddress: fixtures.Registry,
		TokenID:      1,
		Quantity:     10,
		Price:        currency.Price{Kind: currency.FungibleToken, Address: fixtures.Token, Amount: 200},
	}
	e.EXPECT().Create(fixtures.Alice.Address, offer).Return(uint64(1), nil).Times(1)

	var reply order.CreateReply
	err := o.Create(&order.CreateArguments{Caller: fixtures.Alice.Address, Offer: offer}, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, uint64(1), reply.OrderID)

	err = o.Create(&order.CreateArguments{Offer: offer}, &reply)
	assert.Equal(t, fault.MissingParameters, err)
}

func TestOrderSwap(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	o := order.New(logger.New(fixtures.LogCategory), e)

	bob := fixtures.Bob.Address
	payment := registry.Payment{Value: 100}

	gomock.InOrder(
		e.EXPECT().Swap(bob, uint64(4), payment).Return(nil),
		e.EXPECT().Swap(bob, uint64(4), payment).Return(fault.OrderAlreadySettled),
	)

	var reply order.Reply
	assert.Nil(t, o.Swap(&order.SwapArguments{Caller: bob, OrderID: 4, Payment: payment}, &reply))
	assert.True(t, reply.OK)

	reply = order.Reply{}
	err := o.Swap(&order.SwapArguments{Caller: bob, OrderID: 4, Payment: payment}, &reply)
	assert.Equal(t, fault.OrderAlreadySettled, err)
	assert.False(t, reply.OK)
}

func TestOrderSwapWithFiat(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	o := order.New(logger.New(fixtures.LogCategory), e)

	operator := fixtures.Operator.Address
	bob := fixtures.Bob.Address

	e.EXPECT().SwapWithFiat(operator, uint64(2), bob).Return(nil).Times(1)

	var reply order.Reply
	assert.Nil(t, o.SwapWithFiat(&order.SwapArguments{Caller: operator, OrderID: 2, Recipient: bob}, &reply))
	assert.True(t, reply.OK)

	err := o.SwapWithFiat(&order.SwapArguments{Caller: operator, OrderID: 2}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "recipient required")
}

func TestOrderCancel(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	o := order.New(logger.New(fixtures.LogCategory), e)

	e.EXPECT().Cancel(fixtures.Bob.Address, uint64(3)).Return(fault.Unauthorized).Times(1)

	var reply order.Reply
	err := o.Cancel(&order.CancelArguments{Caller: fixtures.Bob.Address, OrderID: 3}, &reply)
	assert.Equal(t, fault.Unauthorized, err)
}

func TestOrderUpdateRates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	o := order.New(logger.New(fixtures.LogCategory), e)

	alice := fixtures.Alice.Address
	fee := currency.MustRate("0.15")
	royalty := currency.MustRate("0.2")

	e.EXPECT().UpdateRates(alice, uint64(2), &fee, &royalty).Return(nil).Times(1)
	e.EXPECT().UpdateRates(alice, uint64(3), &fee, gomock.Nil()).Return(fault.InvalidRate).Times(1)

	var reply order.Reply
	err := o.UpdateRates(&order.RatesArguments{Caller: alice, OrderID: 2, FeeRate: &fee, RoyaltyRate: &royalty}, &reply)
	assert.Nil(t, err, "wrong UpdateRates")
	assert.True(t, reply.OK)

	reply = order.Reply{}
	err = o.UpdateRates(&order.RatesArguments{Caller: alice, OrderID: 3, FeeRate: &fee}, &reply)
	assert.Equal(t, fault.InvalidRate, err)
	assert.False(t, reply.OK)

	err = o.UpdateRates(&order.RatesArguments{Caller: alice, OrderID: 2}, &reply)
	assert.Equal(t, fault.MissingParameters, err)
}

func TestOrderGet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	o := order.New(logger.New(fixtures.LogCategory), e)

	rec := &record.Order{
		ID:        1,
		Maker:     fixtures.Alice.Address,
		Quantity:  1,
		Remaining: 0,
		Filled:    1,
		Ended:     true,
	}
	receipts := []*record.Receipt{
		{OrderID: 1, Sequence: 1, Buyer: fixtures.Bob.Address, Kind: currency.Native, Price: 100, Fee: 10, Royalty: 10, Proceeds: 80},
	}

	e.EXPECT().LastOrderID().Return(uint64(1), nil).Times(1)
	e.EXPECT().Order(uint64(1)).Return(rec, nil).Times(1)
	e.EXPECT().Receipts(uint64(1)).Return(receipts, nil).Times(1)

	var reply order.GetReply
	err := o.Get(&order.GetArguments{OrderID: 1, Receipts: true}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(1), reply.LastID)
	assert.Equal(t, rec, reply.Order)
	assert.Equal(t, receipts, reply.Receipts)
}

func TestOrderGetNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	o := order.New(logger.New(fixtures.LogCategory), e)

	e.EXPECT().LastOrderID().Return(uint64(1), nil).Times(1)
	e.EXPECT().Order(uint64(9)).Return(nil, fault.OrderNotFound).Times(1)

	var reply order.GetReply
	err := o.Get(&order.GetArguments{OrderID: 9, Receipts: true}, &reply)
	assert.Equal(t, fault.OrderNotFound, err)
}

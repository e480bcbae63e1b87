// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptnet/promptd/access"
	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/fixtures"
	"github.com/promptnet/promptd/storage"
)

const databaseFileName = "access-test.leveldb"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T) (*storage.DB, *access.Controller) {
	os.RemoveAll(databaseFileName)
	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	require.NoError(t, err)
	c := access.New(db)
	require.NoError(t, c.Initialise(fixtures.Operator.Address))
	return db, c
}

func teardown(db *storage.DB) {
	db.Close()
	os.RemoveAll(databaseFileName)
}

func TestInitialise(t *testing.T) {
	db, c := setup(t)
	defer teardown(db)

	operator, err := c.Operator()
	assert.NoError(t, err)
	assert.Equal(t, fixtures.Operator.Address, operator)

	err = c.Initialise(fixtures.Alice.Address)
	assert.Equal(t, fault.AlreadyInitialised, err)

	paused, err := c.Paused()
	assert.NoError(t, err)
	assert.False(t, paused, "default")
}

func TestNotInitialised(t *testing.T) {
	os.RemoveAll(databaseFileName)
	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	require.NoError(t, err)
	defer teardown(db)

	c := access.New(db)
	_, err = c.Operator()
	assert.Equal(t, fault.NotInitialised, err)

	err = c.Pause(fixtures.Operator.Address)
	assert.Equal(t, fault.NotInitialised, err)

	err = c.Initialise(account.Zero)
	assert.Equal(t, fault.InvalidAddress, err)
}

func TestPause(t *testing.T) {
	db, c := setup(t)
	defer teardown(db)

	err := c.Pause(fixtures.Alice.Address)
	assert.Equal(t, fault.Unauthorized, err)

	require.NoError(t, c.Pause(fixtures.Operator.Address))
	require.NoError(t, c.Pause(fixtures.Operator.Address), "pause twice")

	paused, err := c.Paused()
	assert.NoError(t, err)
	assert.True(t, paused)

	err = db.View(func(r storage.Reader) error {
		_, err := c.Running(r)
		return err
	})
	assert.Equal(t, fault.Paused, err)

	err = c.Unpause(fixtures.Bob.Address)
	assert.Equal(t, fault.Unauthorized, err)

	require.NoError(t, c.Unpause(fixtures.Operator.Address))
	paused, _ = c.Paused()
	assert.False(t, paused)

	err = db.View(func(r storage.Reader) error {
		s, err := c.Running(r)
		assert.True(t, s.IsOperator(fixtures.Operator.Address))
		return err
	})
	assert.NoError(t, err)
}

func TestOwnershipTransfer(t *testing.T) {
	db, c := setup(t)
	defer teardown(db)

	err := c.DeclareOwnership(fixtures.Alice.Address, fixtures.Alice.Address)
	assert.Equal(t, fault.Unauthorized, err, "only operator may declare")

	err = c.ClaimOwnership(fixtures.Alice.Address)
	assert.Equal(t, fault.Unauthorized, err, "nothing declared")

	require.NoError(t, c.DeclareOwnership(fixtures.Operator.Address, fixtures.Alice.Address))

	pending, found, err := c.Pending()
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, fixtures.Alice.Address, pending)

	err = c.ClaimOwnership(fixtures.Bob.Address)
	assert.Equal(t, fault.Unauthorized, err, "wrong claimant")

	operator, _ := c.Operator()
	assert.Equal(t, fixtures.Operator.Address, operator, "unchanged after failed claim")

	require.NoError(t, c.ClaimOwnership(fixtures.Alice.Address))

	operator, _ = c.Operator()
	assert.Equal(t, fixtures.Alice.Address, operator)

	_, found, _ = c.Pending()
	assert.False(t, found, "pending cleared")

	err = c.Pause(fixtures.Operator.Address)
	assert.Equal(t, fault.Unauthorized, err, "old operator")
}

func TestControlWhilePaused(t *testing.T) {
	db, c := setup(t)
	defer teardown(db)

	require.NoError(t, c.Pause(fixtures.Operator.Address))
	require.NoError(t, c.DeclareOwnership(fixtures.Operator.Address, fixtures.Bob.Address))
	require.NoError(t, c.ClaimOwnership(fixtures.Bob.Address))
	require.NoError(t, c.Unpause(fixtures.Bob.Address))

	err := c.DeclareOwnership(fixtures.Bob.Address, account.Zero)
	assert.Equal(t, fault.InvalidAddress, err)
}

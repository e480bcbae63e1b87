// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/background"
	"github.com/promptnet/promptd/disclosure"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/fixtures"
	"github.com/promptnet/promptd/identity"
)

// everybody holds every item
type everyone struct{}

func (everyone) Balance(account.Address, uint64) (uint64, error) {
	return 1, nil
}

// true if a secret sealed under key opens at the gate
func opens(t *testing.T, gate *disclosure.Gate, key [disclosure.KeySize]byte) bool {
	sealed, err := disclosure.Seal(key, 1, []byte("secret"))
	require.NoError(t, err)

	message := []byte("disclose")
	signature, err := identity.Sign(fixtures.Alice.Private, message)
	require.NoError(t, err)

	plaintext, err := gate.Decrypt(message, signature, 1, sealed)
	if nil != err {
		assert.Equal(t, fault.AccessDenied, err)
		return false
	}
	assert.Equal(t, "secret", string(plaintext))
	return true
}

func TestKeyWatcherReloads(t *testing.T) {
	dir, err := os.MkdirTemp("", "promptd-key")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	keyFile := filepath.Join(dir, "gate.key")
	require.NoError(t, disclosure.MakeKeyFile(keyFile))
	oldKey, err := disclosure.ReadKeyFile(keyFile)
	require.NoError(t, err)

	gate := disclosure.New(oldKey, identity.PersonalSign{}, everyone{})

	w, err := newKeyWatcher(logger.New(fixtures.LogCategory), keyFile, gate)
	require.NoError(t, err)

	p := background.Start(background.Processes{w}, nil)
	defer p.Stop()

	// replace the key file the way an operator would: write aside, rename over
	next := filepath.Join(dir, "next.key")
	require.NoError(t, disclosure.MakeKeyFile(next))
	newKey, err := disclosure.ReadKeyFile(next)
	require.NoError(t, err)
	require.NoError(t, os.Rename(next, keyFile))

	select {
	case <-w.reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("key file change not seen")
	}

	assert.True(t, opens(t, gate, newKey), "new key")
	assert.False(t, opens(t, gate, oldKey), "old key")

	// a broken key file keeps the running key
	require.NoError(t, os.WriteFile(keyFile, []byte("garbage\n"), 0600))
	w.reload()
	assert.True(t, opens(t, gate, newKey), "kept after bad file")
}

func TestKeyWatcherMissingDirectory(t *testing.T) {
	gate := disclosure.New([disclosure.KeySize]byte{1}, identity.PersonalSign{}, everyone{})
	_, err := newKeyWatcher(logger.New(fixtures.LogCategory), "/nonexistent/promptd/gate.key", gate)
	assert.Error(t, err)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package disclosure

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

const keyTag = "GATE:"

// MakeKeyFile - write a new random key, never overwrites
func MakeKeyFile(filename string) error {
	var key [KeySize]byte
	_, err := io.ReadFull(rand.Reader, key[:])
	if nil != err {
		return err
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(f, "%s%s\n", keyTag, hex.EncodeToString(key[:]))
	if nil != err {
		f.Close()
		os.Remove(filename)
		return err
	}
	return f.Close()
}

// ReadKeyFile - load a key written by MakeKeyFile
func ReadKeyFile(filename string) ([KeySize]byte, error) {
	var key [KeySize]byte

	data, err := ioutil.ReadFile(filename)
	if nil != err {
		return key, err
	}

	s := strings.TrimSpace(string(data))
	if !strings.HasPrefix(s, keyTag) {
		return key, fmt.Errorf("key file: %q missing %q prefix", filename, keyTag)
	}

	b, err := hex.DecodeString(strings.TrimPrefix(s, keyTag))
	if nil != err {
		return key, err
	}
	if KeySize != len(b) {
		return key, fmt.Errorf("key file: %q key length: %d expected: %d", filename, len(b), KeySize)
	}
	copy(key[:], b)
	return key, nil
}

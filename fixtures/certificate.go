// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
)

var (
	certOnce    sync.Once
	certificate []byte
	privateKey  []byte
)

// Certificate - a self signed PEM certificate and key for listener
// tests, generated once per test binary
func Certificate() (string, string) {
	certOnce.Do(func() {
		var err error
		validUntil := time.Now().Add(24 * time.Hour)
		certificate, privateKey, err = certgen.NewTLSCertPair("promptd test", validUntil, true, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
	})
	return string(certificate), string(privateKey)
}

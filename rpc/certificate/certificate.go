// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"encoding/hex"
	"os"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/fault"
)

// Fingerprint - SHA3-256 of the DER certificate
type Fingerprint [32]byte

// Get - verify a PEM certificate and key pair and return a TLS
// configuration for a listener
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, Fingerprint, error) {
	var fin Fingerprint

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = FingerprintOf(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - as Get but reading the PEM files named in the configuration
func Load(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, Fingerprint, error) {
	certificate, err := os.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, certificateFileName, err)
		return nil, Fingerprint{}, err
	}
	key, err := os.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, keyFileName, err)
		return nil, Fingerprint{}, err
	}
	return Get(log, name, string(certificate), string(key))
}

// FingerprintOf - compute the fingerprint of a DER certificate
//
// openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func FingerprintOf(certificate []byte) Fingerprint {
	return sha3.Sum256(certificate)
}

// String - fingerprint as hex
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// ParseFingerprint - convert the hex form back
func ParseFingerprint(s string) (Fingerprint, error) {
	var f Fingerprint
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if nil != err {
		return f, err
	}
	if len(f) != len(b) {
		return f, fault.InvalidFingerprint
	}
	copy(f[:], b)
	return f, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/promptnet/promptd/disclosure"
	"github.com/promptnet/promptd/fault"
)

const certificateLifetime = 10 * 365 * 24 * time.Hour

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if fileExists(certificateFileName) {
		return fault.CertificateExists
	}

	if fileExists(privateKeyFileName) {
		return fault.KeyFileExists
	}

	org := "promptd self signed cert for: " + name
	validUntil := time.Now().Add(certificateLifetime)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

// create the symmetric key the disclosure gate seals secrets with
func makeGateKey(keyFileName string) error {
	if fileExists(keyFileName) {
		return fault.KeyFileExists
	}
	return disclosure.MakeKeyFile(keyFileName)
}

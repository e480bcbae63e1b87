// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"crypto/x509"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/rpc/certificate"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a promptd
//
// the daemon uses a self signed certificate, so when a fingerprint is
// given it must match the certificate presented, otherwise any
// certificate is accepted
func NewClient(connect string, fingerprint *certificate.Fingerprint, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		MinVersion:         tls.VersionTLS12,
	}
	if nil != fingerprint {
		expected := *fingerprint
		tlsConfig.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if 0 == len(rawCerts) || expected != certificate.FingerprintOf(rawCerts[0]) {
				return fault.InvalidFingerprint
			}
			return nil
		}
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the promptd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// send a request, showing both halves when verbose
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.printJson(method+" request", arguments)
	err := c.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}
	c.printJson(method+" reply", reply)
	return nil
}

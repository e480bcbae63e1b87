// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/promptnet/promptd/rpc/secret"
)

// Decrypt - ask the gate to open a secret for the signer
func (c *Client) Decrypt(arguments *secret.DecryptArguments) (*secret.DecryptReply, error) {
	var reply secret.DecryptReply
	if err := c.call("Secret.Decrypt", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

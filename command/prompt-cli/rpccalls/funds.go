// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/promptnet/promptd/rpc/funds"
)

// Funds - call one of: Deposit, Approve, Withdraw, Balance
func (c *Client) Funds(method string, arguments *funds.Arguments) (*funds.Reply, error) {
	switch method {
	case "Deposit", "Approve", "Withdraw", "Balance":
	default:
		return nil, ErrUnknownMethod
	}
	var reply funds.Reply
	if err := c.call("Funds."+method, arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/promptnet/promptd/rpc/control"
)

// Control - call one of: Pause, Unpause, Declare, Claim, Status
func (c *Client) Control(method string, arguments *control.Arguments) (*control.Reply, error) {
	switch method {
	case "Pause", "Unpause", "Declare", "Claim", "Status":
	default:
		return nil, ErrUnknownMethod
	}
	var reply control.Reply
	if err := c.call("Control."+method, arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

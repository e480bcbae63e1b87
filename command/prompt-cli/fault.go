// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/promptnet/promptd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrRequiredAddress    = fault.InvalidError("address is required")
	ErrRequiredCiphertext = fault.InvalidError("one of ciphertext or file is required")
	ErrRequiredGateKey    = fault.InvalidError("gate key file is required")
	ErrRequiredID         = fault.InvalidError("id is required")
	ErrRequiredKey        = fault.InvalidError("key file is required")
	ErrRequiredMessage    = fault.InvalidError("message is required")
	ErrRequiredSecret     = fault.InvalidError("one of text or file is required")
	ErrRequiredURI        = fault.InvalidError("uri is required")
)

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/promptnet/promptd/fault"
)

// ErrUnknownMethod - method name not offered by the service
const ErrUnknownMethod = fault.InvalidError("unknown method")

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes happen inside DB.Update which is serialised; the batch
// is only written if the update function returns nil.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. item id      = big endian uint64 (8 bytes)
// 4. order id     = big endian uint64 (8 bytes)
// 5. holder       = account address (20 bytes)
// 6. currency     = token address (20 bytes), native value uses 0xeeee…ee
// 7. count        = big endian uint64 (8 bytes)
// 8. *others*     = byte values of various length
//
// Items:
//
//   I ++ item id               - registered item
//                                data: packed item record
//   B ++ item id ++ holder     - units held
//                                data: count
//   P ++ holder ++ operator    - approval for all items
//                                data: 0x01
//
// Orders:
//
//   O ++ order id              - listing
//                                data: packed order record
//   R ++ order id ++ seq       - fill receipt, seq is big endian uint64
//                                data: packed receipt record
//
// Funds:
//
//   F ++ holder ++ currency    - deposited balance
//                                data: count
//   W ++ holder ++ currency    - amount the marketplace may pull
//                                data: count
//
// Control:
//
//   C ++ name                  - operator, pending operator, paused flag
//   N ++ name                  - last issued item and order ids
//                                data: count
package storage

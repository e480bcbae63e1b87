// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AccessError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AccessDenied        = AccessError("access denied")
	AlreadyInitialised  = ExistsError("already initialised")
	AmountOverflow      = InvalidError("amount overflow")
	CertificateExists   = ExistsError("certificate file already exists")
	CorruptRecord       = ProcessError("corrupt record")
	DatabaseIsReadOnly  = ProcessError("database is read only")
	DatabaseVersion     = ProcessError("incompatible database version")
	InsufficientBalance = InvalidError("insufficient balance")
	InsufficientPayment = InvalidError("insufficient payment")
	InvalidAddress      = InvalidError("invalid address")
	InvalidCount        = InvalidError("invalid count")
	InvalidCurrency     = InvalidError("invalid currency")
	InvalidFingerprint  = InvalidError("invalid fingerprint")
	InvalidIPAddress    = InvalidError("invalid IP address")
	InvalidOrder        = InvalidError("invalid order")
	InvalidQuantity     = InvalidError("invalid quantity")
	InvalidRate         = InvalidError("invalid rate")
	InvalidSignature    = InvalidError("invalid signature")
	InvalidSupply       = InvalidError("invalid supply")
	InvalidURI          = InvalidError("invalid uri")
	ItemNotFound        = NotFoundError("item not found")
	KeyFileExists       = ExistsError("key file already exists")
	MissingParameters   = InvalidError("missing parameters")
	NotInitialised      = ProcessError("not initialised")
	OrderAlreadySettled = ProcessError("order already settled")
	OrderNotFound       = NotFoundError("order not found")
	Paused              = ProcessError("paused")
	RateLimiting        = ProcessError("rate limiting")
	StaleOrder          = ProcessError("stale order")
	SupplyExceeded      = InvalidError("supply exceeded")
	Unauthorized        = AccessError("unauthorized")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessError) Error() string   { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrAccess(e error) bool   { _, ok := e.(AccessError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

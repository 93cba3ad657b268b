// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type RejectionError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrCertificateFileExists    = ExistsError("certificate file already exists")
	ErrConfigurationNotATable   = InvalidError("configuration did not return a table")
	ErrDatabaseIsNotEmpty       = ExistsError("database is not empty")
	ErrEventFileTruncated       = ProcessError("event file is shorter than the saved offset")
	ErrFirstPlotMustCoverCanvas = InvalidError("first plot must cover the whole canvas")
	ErrIncompatibleDatabase     = ProcessError("database version is newer than this program")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidEvent             = InvalidError("invalid event")
	ErrInvalidIPAddress         = InvalidError("invalid IP address")
	ErrInvalidPrice             = InvalidError("invalid price")
	ErrInvalidPortNumber        = InvalidError("invalid port number")
	ErrInvalidPrivateKeyFile    = InvalidError("invalid private key file")
	ErrInvalidPublicKeyFile     = InvalidError("invalid public key file")
	ErrInvalidRectangle         = InvalidError("rectangle width and height must be positive")
	ErrInvalidState             = RejectionError("invalid state detected")
	ErrKeyFileExists            = ExistsError("key file already exists")
	ErrMissingOwner             = InvalidError("missing owner")
	ErrMissingParameters        = InvalidError("missing parameters")
	ErrNotAPlanId               = InvalidError("not a plan id")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrPlotExists               = ExistsError("plot transaction already recorded")
	ErrPlotNotFound             = NotFoundError("plot not found")
	ErrPlotNotForSale           = RejectionError("one of the plots is not for sale")
	ErrPlotOutOfOrder           = InvalidError("plot block number is out of order")
	ErrPlotOutsideCanvas        = InvalidError("plot lies outside the canvas")
	ErrRateLimiting             = ProcessError("rate limiting")
	ErrRecordTooLong            = RecordError("record field is too long")
	ErrRecordTruncated          = RecordError("record is truncated")
	ErrRectangleOverflow        = InvalidError("rectangle bounds overflow")
	ErrRectanglesDoNotOverlap   = InvalidError("rectangles do not overlap")
	ErrRegionTooLarge           = RejectionError("plots cannot be greater than 1000 pixels")
	ErrSnapshotCountMismatch    = RecordError("snapshot record count does not match header")
	ErrTooManyConnections       = ProcessError("too many connections")
	ErrTransactionInUse         = ProcessError("transaction already in use")
	ErrUnknownRecordVersion     = RecordError("unknown record version")
	ErrUnknownSnapshotVersion   = RecordError("unknown snapshot version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e RecordError) Error() string    { return string(e) }
func (e RejectionError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool    { _, ok := e.(RecordError); return ok }
func IsErrRejection(e error) bool { _, ok := e.(RejectionError); return ok }

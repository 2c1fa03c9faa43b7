// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
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

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBlackImbalance       = InvalidError("paths have different black link counts")
	ErrConfigurationFile    = InvalidError("configuration file is invalid")
	ErrConsecutiveRed       = InvalidError("consecutive red links")
	ErrInvalidIndex         = InvalidError("invalid index")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrNilComparison        = InvalidError("comparison function is nil")
	ErrRedRightLink         = InvalidError("red right link")
	ErrRedRoot              = InvalidError("root is red")
	ErrScriptNotFound       = NotFoundError("script file is not found")
	ErrSizeMismatch         = InvalidError("sub-tree size mismatch")
	ErrTreeOrder            = InvalidError("keys out of order")
	ErrTreeUnderflow        = ProcessError("tree underflow")
	ErrUnknownCommand       = InvalidError("unknown command")
	ErrWrongArgumentCount   = InvalidError("wrong argument count")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

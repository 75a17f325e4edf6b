// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised         = ExistsError("already initialised")
	CertificateFileExists      = ExistsError("certificate file exists")
	InvalidCount               = InvalidError("invalid count")
	InvalidIpAddress           = InvalidError("invalid IP Address")
	InvalidLoggerChannel       = InvalidError("invalid logger channel")
	InvalidPortNumber          = InvalidError("invalid port number")
	InvalidProtocol            = InvalidError("invalid protocol")
	InvalidProtocolCombination = InvalidError("invalid protocol combination")
	InvalidStructPointer       = InvalidError("invalid struct pointer")
	KeyFileExists              = ExistsError("key file exists")
	MethodIsEmpty              = InvalidError("method is empty")
	MethodIsNotString          = InvalidError("method is not string")
	MissingParameters          = InvalidError("missing parameters")
	MissingPortIp              = InvalidError("missing port ip")
	MissingPortProtocol        = InvalidError("missing port protocol")
	MissingPortSection         = NotFoundError("missing port section")
	MissingServerSection       = InvalidError("missing server section")
	MoreThanOnePeerPort        = InvalidError("more than one peer port")
	NotConnected               = NotFoundError("not connected")
	NotInitialised             = NotFoundError("not initialised")
	NullMethod                 = InvalidError("null method")
	ParamsUnparseable          = InvalidError("params unparseable")
	QueueIsFull                = ProcessError("queue is full")
	RateLimiting               = ProcessError("rate limiting")
	UnableToParseRequest       = InvalidError("unable to parse request")
	UnknownCommand             = NotFoundError("unknown command")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - detect invalid class errors
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - detect not found class errors
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - detect process class errors
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

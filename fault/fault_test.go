// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/tidechain/tidechaind/fault"
)

func TestErrorClasses(t *testing.T) {
	if !fault.IsErrExists(fault.AlreadyInitialised) {
		t.Errorf("AlreadyInitialised is not an exists error")
	}
	if !fault.IsErrInvalid(fault.UnableToParseRequest) {
		t.Errorf("UnableToParseRequest is not an invalid error")
	}
	if !fault.IsErrNotFound(fault.MissingPortSection) {
		t.Errorf("MissingPortSection is not a not found error")
	}
	if !fault.IsErrProcess(fault.RateLimiting) {
		t.Errorf("RateLimiting is not a process error")
	}
	if fault.IsErrInvalid(fault.RateLimiting) {
		t.Errorf("RateLimiting misclassified as invalid")
	}
}

func TestErrorMessages(t *testing.T) {
	items := map[error]string{
		fault.NullMethod:           "null method",
		fault.MethodIsNotString:    "method is not string",
		fault.MethodIsEmpty:        "method is empty",
		fault.ParamsUnparseable:    "params unparseable",
		fault.UnableToParseRequest: "unable to parse request",
	}
	for err, expected := range items {
		if err.Error() != expected {
			t.Errorf("actual: %q  expected: %q", err.Error(), expected)
		}
	}
}

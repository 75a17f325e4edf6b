// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/tidechain/tidechaind/rpc/listeners"
)

// authorized - HTTP Basic credential check against the port
//
// a port without configured credentials authorises everything;
// any structural defect in the header is unauthorised
func authorized(port *listeners.Port, header http.Header) bool {
	if "" == port.User || "" == port.Password {
		return true
	}

	authorization := header.Get("Authorization")
	if !strings.HasPrefix(authorization, "Basic ") {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(
		strings.TrimSpace(authorization[len("Basic "):]))
	if nil != err {
		return false
	}

	pair := string(decoded)
	colon := strings.IndexByte(pair, ':')
	if colon < 0 {
		return false
	}

	return pair[:colon] == port.User && pair[colon+1:] == port.Password
}

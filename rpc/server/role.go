// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net"

	"github.com/tidechain/tidechaind/rpc/listeners"
)

// Role - capability tier assigned to a request
//
// Determines whether forwarded identity headers are honoured,
// which resource ledger is charged and whether the request is
// rejected outright.
type Role int

// all capability tiers
const (
	RoleForbidden Role = iota
	RoleGuest
	RoleIdentified // trusted via secure gateway
	RoleAdmin
	RoleUnlimited
)

// String - role name for logging
func (r Role) String() string {
	switch r {
	case RoleForbidden:
		return "forbidden"
	case RoleGuest:
		return "guest"
	case RoleIdentified:
		return "identified"
	case RoleAdmin:
		return "admin"
	case RoleUnlimited:
		return "unlimited"
	default:
		return "*unknown*"
	}
}

// IsUnlimited - privileged roles bypass the abuse ledger
func (r Role) IsUnlimited() bool {
	return RoleAdmin == r || RoleUnlimited == r
}

// roleRequired - role requirement policy selected by the request id
func roleRequired(id string) Role {
	switch id {
	case "admin":
		return RoleAdmin
	default:
		return RoleGuest
	}
}

// RequestRole - resolve the capability tier of one request
//
// params is the first object of the "params" array, or an empty
// object when absent
func RequestRole(required Role, port *listeners.Port, params map[string]interface{}, remote net.IP, user string) Role {
	ipAllowed := port.IsAdminIP(remote)

	if "" != port.AdminUser {
		// password protected administration
		adminUser, _ := params["admin_user"].(string)
		adminPassword, _ := params["admin_password"].(string)
		if "" != adminUser || "" != adminPassword {
			if ipAllowed &&
				adminUser == port.AdminUser &&
				adminPassword == port.AdminPassword {
				return RoleAdmin
			}
			return RoleForbidden
		}
	} else if ipAllowed {
		return RoleAdmin
	}

	if nil != port.SecureGateway && port.SecureGateway.Equal(remote) {
		return RoleIdentified
	}

	if RoleAdmin == required {
		return RoleForbidden
	}

	return RoleGuest
}

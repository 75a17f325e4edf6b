// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidechain/tidechaind/rpc/listeners"
)

func adminPort() *listeners.Port {
	_, allowed, _ := net.ParseCIDR("10.0.0.0/8")
	return &listeners.Port{
		Name:          "admin",
		AdminIPs:      []*net.IPNet{allowed},
		AdminUser:     "root",
		AdminPassword: "secret",
		SecureGateway: net.ParseIP("172.16.0.1"),
	}
}

func TestRequestRoleAdminPassword(t *testing.T) {
	port := adminPort()

	params := map[string]interface{}{
		"admin_user":     "root",
		"admin_password": "secret",
	}

	role := RequestRole(RoleGuest, port, params, net.ParseIP("10.1.2.3"), "")
	assert.Equal(t, RoleAdmin, role, "wrong role")
}

func TestRequestRoleAdminPasswordOutsideAllowList(t *testing.T) {
	port := adminPort()

	params := map[string]interface{}{
		"admin_user":     "root",
		"admin_password": "secret",
	}

	// right password, wrong network
	role := RequestRole(RoleGuest, port, params, net.ParseIP("192.0.2.7"), "")
	assert.Equal(t, RoleForbidden, role, "wrong role")
}

func TestRequestRoleWrongAdminPassword(t *testing.T) {
	port := adminPort()

	params := map[string]interface{}{
		"admin_user":     "root",
		"admin_password": "guess",
	}

	role := RequestRole(RoleGuest, port, params, net.ParseIP("10.1.2.3"), "")
	assert.Equal(t, RoleForbidden, role, "wrong role")
}

func TestRequestRoleOpenAdminByIP(t *testing.T) {
	port := adminPort()
	port.AdminUser = ""
	port.AdminPassword = ""

	role := RequestRole(RoleGuest, port, map[string]interface{}{}, net.ParseIP("10.1.2.3"), "")
	assert.Equal(t, RoleAdmin, role, "wrong role")
}

func TestRequestRoleSecureGateway(t *testing.T) {
	port := adminPort()

	role := RequestRole(RoleGuest, port, map[string]interface{}{}, net.ParseIP("172.16.0.1"), "proxy")
	assert.Equal(t, RoleIdentified, role, "wrong role")
}

func TestRequestRoleGuest(t *testing.T) {
	port := adminPort()

	role := RequestRole(RoleGuest, port, map[string]interface{}{}, net.ParseIP("192.0.2.7"), "")
	assert.Equal(t, RoleGuest, role, "wrong role")
}

func TestRequestRoleAdminRequiredUnmet(t *testing.T) {
	port := adminPort()

	role := RequestRole(RoleAdmin, port, map[string]interface{}{}, net.ParseIP("192.0.2.7"), "")
	assert.Equal(t, RoleForbidden, role, "wrong role")
}

func TestRoleRequired(t *testing.T) {
	assert.Equal(t, RoleAdmin, roleRequired("admin"), "wrong role for admin id")
	assert.Equal(t, RoleGuest, roleRequired(""), "wrong role for empty id")
	assert.Equal(t, RoleGuest, roleRequired("42"), "wrong role for other id")
}

func TestAuthorizedNoCredentials(t *testing.T) {
	port := &listeners.Port{}
	assert.True(t, authorized(port, http.Header{}), "open port must authorise")
}

func TestAuthorizedRoundTrip(t *testing.T) {
	port := &listeners.Port{User: "user", Password: "pass"}

	header := http.Header{}
	assert.False(t, authorized(port, header), "missing header authorised")

	// base64("user:pass")
	header.Set("Authorization", "Basic dXNlcjpwYXNz")
	assert.True(t, authorized(port, header), "valid credentials refused")

	header.Set("Authorization", "Basic dXNlcjpwYXN6")
	assert.False(t, authorized(port, header), "wrong password authorised")

	header.Set("Authorization", "Bearer dXNlcjpwYXNz")
	assert.False(t, authorized(port, header), "wrong scheme authorised")

	header.Set("Authorization", "Basic not-base64!")
	assert.False(t, authorized(port, header), "undecodable header authorised")

	// base64("userpass"): no colon
	header.Set("Authorization", "Basic dXNlcnBhc3M=")
	assert.False(t, authorized(port, header), "colonless pair authorised")
}

func TestIsWebsocketUpgrade(t *testing.T) {
	r := &http.Request{Header: http.Header{}}
	assert.False(t, isWebsocketUpgrade(r), "bare request upgraded")

	r.Header.Set("Connection", "Upgrade")
	r.Header.Set("Upgrade", "websocket")
	assert.True(t, isWebsocketUpgrade(r), "upgrade not detected")

	// token list and mixed case as sent by some proxies
	r.Header.Set("Connection", "keep-alive, UPGRADE")
	r.Header.Set("Upgrade", "WebSocket")
	assert.True(t, isWebsocketUpgrade(r), "token list upgrade not detected")

	r.Header.Set("Upgrade", "h2c")
	assert.False(t, isWebsocketUpgrade(r), "non websocket upgrade accepted")

	r.Header.Del("Connection")
	r.Header.Set("Upgrade", "websocket")
	assert.False(t, isWebsocketUpgrade(r), "upgrade without connection token accepted")
}

func TestNormaliseParams(t *testing.T) {
	params, err := normaliseParams(map[string]interface{}{})
	assert.Nil(t, err, "absent params rejected")
	assert.Equal(t, map[string]interface{}{}, params, "wrong default params")

	params, err = normaliseParams(map[string]interface{}{
		"params": []interface{}{map[string]interface{}{"account": "a"}},
	})
	assert.Nil(t, err, "valid params rejected")
	assert.Equal(t, "a", params["account"], "wrong params content")

	_, err = normaliseParams(map[string]interface{}{"params": "x"})
	assert.NotNil(t, err, "non array params accepted")

	_, err = normaliseParams(map[string]interface{}{
		"params": []interface{}{map[string]interface{}{}, map[string]interface{}{}},
	})
	assert.NotNil(t, err, "two element params accepted")

	_, err = normaliseParams(map[string]interface{}{
		"params": []interface{}{"x"},
	})
	assert.NotNil(t, err, "non object element accepted")
}

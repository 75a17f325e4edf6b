// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/fault"
	"github.com/tidechain/tidechaind/rpc/fixtures"
	"github.com/tidechain/tidechaind/rpc/listeners"
)

func configurationFixture() *listeners.Configuration {
	return &listeners.Configuration{
		Server: listeners.ServerSection{
			Names: []string{"rpc", "peering"},
		},
		Ports: map[string]listeners.PortSection{
			"rpc": {
				IP:       "0.0.0.0",
				Port:     8545,
				Protocol: "http,https",
				User:     "user",
				Password: "pass",
			},
			"peering": {
				IP:       "10.0.0.1",
				Port:     30303,
				Protocol: "peer",
			},
		},
	}
}

func TestParseSetup(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	setup, err := listeners.ParseSetup(configurationFixture(), false, log)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, 2, len(setup.Ports), "wrong port count")

	assert.True(t, setup.Ports[0].Protocol.Has(listeners.HTTP), "missing http")
	assert.True(t, setup.Ports[0].Protocol.Has(listeners.HTTPS), "missing https")
	assert.True(t, setup.Ports[1].Protocol.Has(listeners.Peer), "missing peer")
}

func TestParseSetupClientEndpoint(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	setup, err := listeners.ParseSetup(configurationFixture(), false, log)
	assert.Nil(t, err, "parse error")

	// wildcard bind is rewritten to loopback
	assert.Equal(t, "127.0.0.1", setup.Client.IP, "wrong client ip")
	assert.Equal(t, uint16(8545), setup.Client.PortNumber, "wrong client port")
	assert.True(t, setup.Client.Secure, "client endpoint not secure")
	assert.Equal(t, "user", setup.Client.User, "wrong client user")
	assert.Equal(t, "pass", setup.Client.Password, "wrong client password")
	assert.Equal(t, "127.0.0.1:8545", setup.Client.Address(), "wrong client address")
}

func TestParseSetupOverlayEndpoint(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	setup, err := listeners.ParseSetup(configurationFixture(), false, log)
	assert.Nil(t, err, "parse error")

	assert.True(t, setup.Overlay.IsConfigured(), "overlay not configured")
	assert.Equal(t, "10.0.0.1", setup.Overlay.IP, "wrong overlay ip")
	assert.Equal(t, uint16(30303), setup.Overlay.PortNumber, "wrong overlay port")
}

func TestParseSetupStandaloneStripsPeer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	setup, err := listeners.ParseSetup(configurationFixture(), true, log)
	assert.Nil(t, err, "parse error")

	// the peer only port disappears entirely
	assert.Equal(t, 1, len(setup.Ports), "wrong port count")
	assert.Equal(t, "rpc", setup.Ports[0].Name, "wrong surviving port")
	assert.False(t, setup.Overlay.IsConfigured(), "overlay still configured")
}

func TestParseSetupTwoPeerPorts(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	cfg := configurationFixture()
	cfg.Server.Names = append(cfg.Server.Names, "peering2")
	cfg.Ports["peering2"] = listeners.PortSection{
		IP:       "10.0.0.2",
		Port:     30304,
		Protocol: "peer",
	}

	_, err := listeners.ParseSetup(cfg, false, log)
	assert.Equal(t, fault.MoreThanOnePeerPort, err, "wrong error")
}

func TestParseSetupMissingSection(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	cfg := configurationFixture()
	delete(cfg.Ports, "peering")

	_, err := listeners.ParseSetup(cfg, false, log)
	assert.Equal(t, fault.MissingPortSection, err, "wrong error")
}

func TestParseSetupMissingServer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	cfg := &listeners.Configuration{}
	_, err := listeners.ParseSetup(cfg, false, log)
	assert.Equal(t, fault.MissingServerSection, err, "wrong error")
}

func TestParseSetupInvalidPorts(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	items := []struct {
		name     string
		section  listeners.PortSection
		expected error
	}{
		{"no ip", listeners.PortSection{Port: 1234, Protocol: "http"}, fault.MissingPortIp},
		{"bad ip", listeners.PortSection{IP: "nonsense", Port: 1234, Protocol: "http"}, fault.InvalidIpAddress},
		{"no port", listeners.PortSection{IP: "127.0.0.1", Protocol: "http"}, fault.InvalidPortNumber},
		{"no protocol", listeners.PortSection{IP: "127.0.0.1", Port: 1234}, fault.MissingPortProtocol},
		{"bad protocol", listeners.PortSection{IP: "127.0.0.1", Port: 1234, Protocol: "gopher"}, fault.InvalidProtocol},
		{"peer with ws", listeners.PortSection{IP: "127.0.0.1", Port: 1234, Protocol: "peer,ws"}, fault.InvalidProtocolCombination},
		{"http with wss", listeners.PortSection{IP: "127.0.0.1", Port: 1234, Protocol: "http wss"}, fault.InvalidProtocolCombination},
	}

	for _, item := range items {
		cfg := &listeners.Configuration{
			Server: listeners.ServerSection{Names: []string{"bad"}},
			Ports:  map[string]listeners.PortSection{"bad": item.section},
		}
		_, err := listeners.ParseSetup(cfg, false, log)
		assert.Equal(t, item.expected, err, item.name)
	}
}

func TestParseSetupPeerWithClient(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	// only WebSocket mixes are fatal; peer may share a port with
	// the plain client protocols
	cfg := &listeners.Configuration{
		Server: listeners.ServerSection{Names: []string{"mixed"}},
		Ports: map[string]listeners.PortSection{
			"mixed": {
				IP:       "127.0.0.1",
				Port:     1234,
				Protocol: "peer,http",
			},
		},
	}

	setup, err := listeners.ParseSetup(cfg, false, log)
	assert.Nil(t, err, "parse error")
	assert.True(t, setup.Ports[0].Protocol.Has(listeners.Peer), "missing peer")
	assert.True(t, setup.Ports[0].Protocol.Has(listeners.HTTP), "missing http")
}

func TestParseSetupCommonSection(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	cfg := &listeners.Configuration{
		Server: listeners.ServerSection{
			Names: []string{"rpc"},
			Common: listeners.PortSection{
				IP:                 "127.0.0.1",
				MaximumConnections: 50,
			},
		},
		Ports: map[string]listeners.PortSection{
			"rpc": {
				Port:     8545,
				Protocol: "http",
			},
		},
	}

	setup, err := listeners.ParseSetup(cfg, false, log)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "127.0.0.1", setup.Ports[0].IP, "common ip not inherited")
	assert.Equal(t, uint64(50), setup.Ports[0].Limit, "common limit not inherited")
}

func TestPortAdminAllowList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	cfg := &listeners.Configuration{
		Server: listeners.ServerSection{Names: []string{"rpc"}},
		Ports: map[string]listeners.PortSection{
			"rpc": {
				IP:       "127.0.0.1",
				Port:     8545,
				Protocol: "http",
				Admin:    []string{"127.0.0.1", "10.1.0.0/16"},
			},
		},
	}

	setup, err := listeners.ParseSetup(cfg, false, log)
	assert.Nil(t, err, "parse error")

	p := setup.Ports[0]
	assert.True(t, p.IsAdminIP(parseIP(t, "127.0.0.1")), "loopback not admin")
	assert.True(t, p.IsAdminIP(parseIP(t, "10.1.200.7")), "cidr member not admin")
	assert.False(t, p.IsAdminIP(parseIP(t, "192.168.1.1")), "unexpected admin")
}

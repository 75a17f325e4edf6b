// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/fault"
)

// Client - loopback RPC endpoint for internal components
//
// derived from the first port offering a client RPC protocol
type Client struct {
	Secure        bool
	IP            string
	PortNumber    uint16
	User          string
	Password      string
	AdminUser     string
	AdminPassword string
}

// Address - host:port of the loopback endpoint
func (c Client) Address() string {
	return net.JoinHostPort(c.IP, strconv.Itoa(int(c.PortNumber)))
}

// Overlay - the endpoint advertised to peers
//
// a zero PortNumber is the "no overlay" sentinel
type Overlay struct {
	IP         string
	PortNumber uint16
}

// IsConfigured - false when no peer port exists
func (o Overlay) IsConfigured() bool {
	return 0 != o.PortNumber
}

// Setup - the validated ordered sequence of ports plus the two
// derived endpoint descriptors, read-only after construction
type Setup struct {
	Ports   []Port
	Client  Client
	Overlay Overlay
}

// ParseSetup - validate the configuration surface and produce a
// Setup or fail with a startup-abort error
func ParseSetup(cfg *Configuration, standalone bool, log *logger.L) (*Setup, error) {
	ports, err := parsePorts(cfg, standalone, log)
	if nil != err {
		return nil, err
	}

	setup := &Setup{
		Ports: ports,
	}
	setup.deriveClient()
	setup.deriveOverlay()

	return setup, nil
}

func parsePorts(cfg *Configuration, standalone bool, log *logger.L) ([]Port, error) {
	if 0 == len(cfg.Server.Names) {
		log.Error("required section [server] is missing")
		return nil, fault.MissingServerSection
	}

	ports := make([]Port, 0, len(cfg.Server.Names))
	for _, name := range cfg.Server.Names {
		section, ok := cfg.Ports[name]
		if !ok {
			log.Errorf("missing section: [%s]", name)
			return nil, fault.MissingPortSection
		}
		p, err := newPort(name, mergeSection(cfg.Server.Common, section), log)
		if nil != err {
			return nil, err
		}
		ports = append(ports, p)
	}

	if standalone {
		// remove the peer protocol and drop any port left with
		// an empty protocol set
		kept := ports[:0]
		for _, p := range ports {
			if p.Protocol.Has(Peer) {
				delete(p.Protocol, Peer)
				log.Infof("standalone: removed peer protocol from [%s]", p.Name)
			}
			if p.Protocol.IsEmpty() {
				log.Infof("standalone: dropped empty port [%s]", p.Name)
				continue
			}
			kept = append(kept, p)
		}
		return kept, nil
	}

	peers := 0
	for _, p := range ports {
		if p.Protocol.Has(Peer) {
			peers += 1
		}
	}
	if peers > 1 {
		log.Error("more than one peer protocol configured in [server]")
		return nil, fault.MoreThanOnePeerPort
	}
	if 0 == peers {
		log.Warn("no peer protocol configured")
	}

	return ports, nil
}

// fill out the client portion of the Setup
func (setup *Setup) deriveClient() {
	for i := range setup.Ports {
		p := &setup.Ports[i]
		if !p.Protocol.Client() {
			continue
		}
		setup.Client = Client{
			Secure:        p.Protocol.Has(HTTPS),
			IP:            p.IP,
			PortNumber:    p.PortNumber,
			User:          p.User,
			Password:      p.Password,
			AdminUser:     p.AdminUser,
			AdminPassword: p.AdminPassword,
		}
		// a wildcard bind is reachable over loopback
		if "0.0.0.0" == setup.Client.IP {
			setup.Client.IP = "127.0.0.1"
		}
		return
	}
}

// fill out the overlay portion of the Setup
func (setup *Setup) deriveOverlay() {
	for i := range setup.Ports {
		p := &setup.Ports[i]
		if p.Protocol.Has(Peer) {
			setup.Overlay = Overlay{
				IP:         p.IP,
				PortNumber: p.PortNumber,
			}
			return
		}
	}
	setup.Overlay = Overlay{}
}

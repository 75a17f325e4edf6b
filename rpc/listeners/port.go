// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - validated listener descriptions
//
// Converts the "server" configuration section and its named port
// sections into an immutable Setup consumed by the connection
// admission controller and the protocol handoff dispatcher.
package listeners

import (
	"net"
	"sort"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/fault"
)

// Protocol - one protocol a port can offer
type Protocol string

// all valid protocols
const (
	HTTP  Protocol = "http"
	HTTPS Protocol = "https"
	WS    Protocol = "ws"
	WSS   Protocol = "wss"
	Peer  Protocol = "peer"
)

// ProtocolSet - the set of protocols offered by one port
type ProtocolSet map[Protocol]struct{}

// ParseProtocolSet - split a comma/space separated protocol list
func ParseProtocolSet(s string) (ProtocolSet, error) {
	set := make(ProtocolSet)
	for _, item := range strings.FieldsFunc(s, func(r rune) bool {
		return ',' == r || ' ' == r || '\t' == r
	}) {
		switch p := Protocol(strings.ToLower(item)); p {
		case HTTP, HTTPS, WS, WSS, Peer:
			set[p] = struct{}{}
		default:
			return nil, fault.InvalidProtocol
		}
	}
	return set, nil
}

// Has - check a single protocol
func (set ProtocolSet) Has(p Protocol) bool {
	_, ok := set[p]
	return ok
}

// Websockets - true if either WebSocket protocol is offered
func (set ProtocolSet) Websockets() bool {
	return set.Has(WS) || set.Has(WSS)
}

// Client - true if either client RPC protocol is offered
func (set ProtocolSet) Client() bool {
	return set.Has(HTTP) || set.Has(HTTPS)
}

// Secure - true if a TLS wrapped protocol is offered
func (set ProtocolSet) Secure() bool {
	return set.Has(HTTPS) || set.Has(WSS) || set.Has(Peer)
}

// IsEmpty - check for the empty set
func (set ProtocolSet) IsEmpty() bool {
	return 0 == len(set)
}

// String - canonical comma separated representation
func (set ProtocolSet) String() string {
	items := make([]string, 0, len(set))
	for p := range set {
		items = append(items, string(p))
	}
	sort.Strings(items)
	return strings.Join(items, ",")
}

// PortSection - raw data of one port configuration section
//
// produced by the configuration reader, not yet validated
type PortSection struct {
	IP                 string   `gluamapper:"ip" json:"ip"`
	Port               int      `gluamapper:"port" json:"port"`
	Protocol           string   `gluamapper:"protocol" json:"protocol"`
	User               string   `gluamapper:"user" json:"user"`
	Password           string   `gluamapper:"password" json:"password"`
	Admin              []string `gluamapper:"admin" json:"admin"`
	AdminUser          string   `gluamapper:"admin_user" json:"admin_user"`
	AdminPassword      string   `gluamapper:"admin_password" json:"admin_password"`
	SecureGateway      string   `gluamapper:"secure_gateway" json:"secure_gateway"`
	TLSKey             string   `gluamapper:"tls_key" json:"tls_key"`
	TLSCertificate     string   `gluamapper:"tls_certificate" json:"tls_certificate"`
	TLSChain           string   `gluamapper:"tls_chain" json:"tls_chain"`
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
}

// ServerSection - the top level "server" section
type ServerSection struct {
	Names  []string    `gluamapper:"names" json:"names"`
	Common PortSection `gluamapper:"common" json:"common"`
}

// Configuration - the full listener configuration surface
type Configuration struct {
	Server ServerSection          `gluamapper:"server" json:"server"`
	Ports  map[string]PortSection `gluamapper:"ports" json:"ports"`
}

// Port - one validated listener description, immutable after
// Setup construction
type Port struct {
	Name           string
	IP             string
	PortNumber     uint16
	Protocol       ProtocolSet
	User           string
	Password       string
	AdminIPs       []*net.IPNet
	AdminUser      string
	AdminPassword  string
	SecureGateway  net.IP
	TLSKey         string
	TLSCertificate string
	TLSChain       string
	Limit          uint64
}

// Address - the host:port string the port binds
func (p *Port) Address() string {
	return net.JoinHostPort(p.IP, strconv.Itoa(int(p.PortNumber)))
}

// IsAdminIP - check an address against the administrator allow-list
func (p *Port) IsAdminIP(ip net.IP) bool {
	for _, n := range p.AdminIPs {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// overlay common section values with those of a specific port section
func mergeSection(common PortSection, section PortSection) PortSection {
	merged := common
	if "" != section.IP {
		merged.IP = section.IP
	}
	if 0 != section.Port {
		merged.Port = section.Port
	}
	if "" != section.Protocol {
		merged.Protocol = section.Protocol
	}
	if "" != section.User {
		merged.User = section.User
	}
	if "" != section.Password {
		merged.Password = section.Password
	}
	if len(section.Admin) > 0 {
		merged.Admin = section.Admin
	}
	if "" != section.AdminUser {
		merged.AdminUser = section.AdminUser
	}
	if "" != section.AdminPassword {
		merged.AdminPassword = section.AdminPassword
	}
	if "" != section.SecureGateway {
		merged.SecureGateway = section.SecureGateway
	}
	if "" != section.TLSKey {
		merged.TLSKey = section.TLSKey
	}
	if "" != section.TLSCertificate {
		merged.TLSCertificate = section.TLSCertificate
	}
	if "" != section.TLSChain {
		merged.TLSChain = section.TLSChain
	}
	if 0 != section.MaximumConnections {
		merged.MaximumConnections = section.MaximumConnections
	}
	return merged
}

// convert a merged section into a validated Port
func newPort(name string, section PortSection, log *logger.L) (Port, error) {
	p := Port{
		Name:           name,
		User:           section.User,
		Password:       section.Password,
		AdminUser:      section.AdminUser,
		AdminPassword:  section.AdminPassword,
		TLSKey:         section.TLSKey,
		TLSCertificate: section.TLSCertificate,
		TLSChain:       section.TLSChain,
		Limit:          section.MaximumConnections,
	}

	if "" == section.IP {
		log.Errorf("missing ip in [%s]", name)
		return p, fault.MissingPortIp
	}
	if nil == net.ParseIP(section.IP) {
		log.Errorf("invalid ip: %q in [%s]", section.IP, name)
		return p, fault.InvalidIpAddress
	}
	p.IP = section.IP

	if section.Port <= 0 || section.Port > 65535 {
		log.Errorf("invalid port: %d in [%s]", section.Port, name)
		return p, fault.InvalidPortNumber
	}
	p.PortNumber = uint16(section.Port)

	protocol, err := ParseProtocolSet(section.Protocol)
	if nil != err {
		log.Errorf("invalid protocol: %q in [%s]", section.Protocol, name)
		return p, err
	}
	if protocol.IsEmpty() {
		log.Errorf("missing protocol in [%s]", name)
		return p, fault.MissingPortProtocol
	}

	// a port cannot speak the WebSocket protocols alongside the
	// peer protocol or the plain client RPC protocols
	if protocol.Websockets() &&
		(protocol.Has(Peer) || protocol.Client()) {
		log.Errorf("invalid protocol combination: %q in [%s]", protocol, name)
		return p, fault.InvalidProtocolCombination
	}
	p.Protocol = protocol

	for _, item := range section.Admin {
		cidr := strings.TrimSpace(item)
		if !strings.ContainsRune(cidr, '/') {
			if nil != net.ParseIP(cidr) {
				if strings.ContainsRune(cidr, ':') {
					cidr += "/128"
				} else {
					cidr += "/32"
				}
			}
		}
		_, network, err := net.ParseCIDR(cidr)
		if nil != err {
			log.Errorf("invalid admin ip: %q in [%s]", item, name)
			return p, fault.InvalidIpAddress
		}
		p.AdminIPs = append(p.AdminIPs, network)
	}

	if "" != section.SecureGateway {
		gw := net.ParseIP(section.SecureGateway)
		if nil == gw {
			log.Errorf("invalid secure_gateway: %q in [%s]", section.SecureGateway, name)
			return p, fault.InvalidIpAddress
		}
		p.SecureGateway = gw
	}

	return p, nil
}

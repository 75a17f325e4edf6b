// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS listener material
//
// Builds a tls.Config from configured PEM files, or generates a
// self-signed pair when a secure port has no material configured.
package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

const selfSignedValidity = 10 * 365 * 24 * time.Hour

// Get - verify a PEM certificate/key pair and return its TLS
// configuration and SHA3-256 fingerprint
func Get(log *logger.L, name string, certificate []byte, key []byte) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair(certificate, key)
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// GetFromFiles - load the PEM pair from the configured paths,
// appending an optional chain file to the certificate
func GetFromFiles(log *logger.L, name string, certificateFile string, keyFile string, chainFile string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	certificatePEM, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s cannot read certificate: %q error: %s", name, certificateFile, err)
		return nil, fin, err
	}

	if "" != chainFile {
		chainPEM, err := ioutil.ReadFile(chainFile)
		if nil != err {
			log.Errorf("%s cannot read chain: %q error: %s", name, chainFile, err)
			return nil, fin, err
		}
		certificatePEM = append(certificatePEM, chainPEM...)
	}

	keyPEM, err := ioutil.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s cannot read key: %q error: %s", name, keyFile, err)
		return nil, fin, err
	}

	return Get(log, name, certificatePEM, keyPEM)
}

// SelfSigned - generate an in-memory self-signed pair for a port
// with no configured material
func SelfSigned(log *logger.L, name string, extraHosts []string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	org := "tidechaind self signed cert for: " + name
	validUntil := time.Now().Add(selfSignedValidity)
	certificatePEM, keyPEM, err := certgen.NewTLSCertPair(org, validUntil, false, extraHosts)
	if nil != err {
		log.Errorf("%s failed to generate self signed pair: %s", name, err)
		return nil, fin, err
	}

	return Get(log, name, certificatePEM, keyPEM)
}

// Fingerprint - compute the fingerprint of a DER certificate
//
// FreeBSD: openssl x509 -outform DER -in tidechaind-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

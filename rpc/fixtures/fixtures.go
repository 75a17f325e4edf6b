// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup for the rpc packages
package fixtures

import (
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/logger"
)

const (
	dir = "testing"

	// LogCategory - logger channel used by tests
	LogCategory = "testing"
)

var (
	// Certificate - self-signed PEM certificate for TLS tests
	Certificate []byte

	// Key - matching PEM private key
	Key []byte
)

func init() {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(
		"tidechaind test certificate",
		validUntil,
		false,
		[]string{"127.0.0.1"},
	)
	if nil != err {
		panic(fmt.Sprintf("generate test certificate: %s", err))
	}
	Certificate = cert
	Key = key
}

// SetupTestLogger - create a throwaway logging directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

// TeardownTestLogger - flush logs and remove the directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

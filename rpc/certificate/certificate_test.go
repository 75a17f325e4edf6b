// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/tidechain/tidechaind/rpc/certificate"
	"github.com/tidechain/tidechaind/rpc/fixtures"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	tlsConfiguration, fin, err := certificate.Get(log, "test", fixtures.Certificate, fixtures.Key)
	assert.Nil(t, err, "get error")
	assert.Equal(t, 1, len(tlsConfiguration.Certificates), "wrong certificate count")
	assert.NotEqual(t, [32]byte{}, fin, "zero fingerprint")
}

func TestGetInvalidPair(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	_, _, err := certificate.Get(log, "test", []byte("garbage"), []byte("garbage"))
	assert.NotNil(t, err, "no error for garbage pair")
}

func TestSelfSigned(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	tlsConfiguration, fin, err := certificate.SelfSigned(log, "rpc", []string{"127.0.0.1"})
	assert.Nil(t, err, "self signed error")
	assert.Equal(t, 1, len(tlsConfiguration.Certificates), "wrong certificate count")
	assert.NotEqual(t, [32]byte{}, fin, "zero fingerprint")
}

func TestFingerprintDiffers(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	log := logger.New(fixtures.LogCategory)

	_, first, err := certificate.SelfSigned(log, "one", []string{"127.0.0.1"})
	assert.Nil(t, err, "self signed error")
	_, second, err := certificate.SelfSigned(log, "two", []string{"127.0.0.1"})
	assert.Nil(t, err, "self signed error")

	assert.NotEqual(t, first, second, "distinct certificates share a fingerprint")
}

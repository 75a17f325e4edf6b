// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidechain/tidechaind/mode"
	"github.com/tidechain/tidechaind/rpc/fixtures"
)

func TestMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise(false)
	assert.Nil(t, err, "initialise failed")
	defer mode.Finalise()

	// a networked node starts by resynchronising
	assert.True(t, mode.Is(mode.Resynchronise), "wrong initial mode")
	assert.False(t, mode.IsStandalone(), "wrong standalone flag")

	err = mode.Initialise(false)
	assert.NotNil(t, err, "double initialise allowed")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "wrong mode after set")
	assert.True(t, mode.IsNot(mode.Stopped), "wrong IsNot")
	assert.Equal(t, "Normal", mode.String(), "wrong mode string")
}

func TestModeStandalone(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise(true)
	assert.Nil(t, err, "initialise failed")
	defer mode.Finalise()

	// no peers to resynchronise from
	assert.True(t, mode.Is(mode.Normal), "wrong initial mode")
	assert.True(t, mode.IsStandalone(), "wrong standalone flag")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/orderedmap/fault"
)

const logFile = "fault.log"

var logDirectory string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "fault-test")
	if nil != err {
		fmt.Printf("temporary directory error: %s\n", err)
		os.Exit(1)
	}
	logDirectory = dir

	logging := logger.Configuration{
		Directory: dir,
		File:      logFile,
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		fmt.Printf("logger setup error: %s\n", err)
		os.Exit(1)
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func logText(t *testing.T) string {
	data, err := ioutil.ReadFile(filepath.Join(logDirectory, logFile))
	require.NoError(t, err, "read log file")
	return string(data)
}

func TestInitialiseTwice(t *testing.T) {
	require.NoError(t, fault.Initialise())
	defer fault.Finalise()

	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second initialise")
}

func TestCriticalf(t *testing.T) {
	require.NoError(t, fault.Initialise())
	defer fault.Finalise()

	fault.Criticalf("read error: %s", fault.ErrTreeUnderflow)

	text := logText(t)
	assert.Contains(t, text, "read error: tree underflow")
	assert.Contains(t, text, "log_test.go", "caller position")
}

func TestPanicf(t *testing.T) {
	require.NoError(t, fault.Initialise())
	defer fault.Finalise()

	assert.PanicsWithValue(t, fault.AbortMessage, func() {
		fault.Panicf("unexpected panic: %v", "other")
	})

	text := logText(t)
	assert.Contains(t, text, "unexpected panic: other")
	assert.Contains(t, text, fault.AbortMessage, "abort line")
}

// without a channel the message goes to standard output
func TestPanicfUninitialised(t *testing.T) {
	assert.PanicsWithValue(t, fault.AbortMessage, func() {
		fault.Panicf("no channel")
	})
}

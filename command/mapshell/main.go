// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/fault"
	"github.com/bitmark-inc/orderedmap/util"
)

// logger channel names
const (
	mainLoggerPrefix  = "main"
	shellLoggerPrefix = "shell"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 1 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--check] [--config-file=FILE] [script]", program)
	}

	configurationFile := ""
	switch len(options["config-file"]) {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["check"]) > 0 {
		masterConfiguration.Check = true
	}
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Levels[mainLoggerPrefix] = "debug"
		masterConfiguration.Logging.Levels[shellLoggerPrefix] = "debug"
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New(mainLoggerPrefix)
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	var in io.Reader = os.Stdin
	if 1 == len(arguments) {
		fileName := arguments[0]
		if !util.EnsureFileExists(fileName) {
			log.Errorf("script: %q  error: %s", fileName, fault.ErrScriptNotFound)
			exitwithstatus.Message("%s: script: %q  error: %s", program, fileName, fault.ErrScriptNotFound)
		}
		f, err := os.Open(fileName)
		if nil != err {
			log.Errorf("open script: %q  error: %s", fileName, err)
			exitwithstatus.Message("%s: script: %q  error: %s", program, fileName, err)
		}
		defer f.Close()
		in = f
		log.Infof("script: %q", fileName)
	}

	s := newShell(newStore(), os.Stdout, logger.New(shellLoggerPrefix), masterConfiguration)
	errors, err := s.Run(in)
	if nil != err {
		fault.Criticalf("read error: %s", err)
		exitwithstatus.Message("%s: read error: %s", program, err)
	}

	log.Infof("errors: %d", errors)
	if errors > 0 {
		exitwithstatus.Message("%s: %d command(s) failed", program, errors)
	}
}

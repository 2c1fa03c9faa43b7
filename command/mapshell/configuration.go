// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/configuration"
	"github.com/bitmark-inc/orderedmap/util"
)

// basic defaults (directories and files are relative to the directory
// of the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "mapshell.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		mainLoggerPrefix:  "info",
		shellLoggerPrefix: "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - all settings read from the configuration file
type Configuration struct {
	Check     bool                 `gluamapper:"check" json:"check"`
	Echo      bool                 `gluamapper:"echo" json:"echo"`
	PrintData bool                 `gluamapper:"print_data" json:"print_data"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		Check:     false,
		Echo:      false,
		PrintData: true,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
// an empty file name gives the defaults with the log directory
// relative to the system temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()
	dataDirectory := os.TempDir()

	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(fileName)

		if err := configuration.ParseConfigurationFile(fileName, options); err != nil {
			return nil, err
		}
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(dataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

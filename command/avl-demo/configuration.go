// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultCount      = 0x20
	defaultMinimumKey = 0
	defaultMaximumKey = 127
	defaultSeed       = 1
	defaultOrder      = avl.InOrder

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-demo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	demoLoggerPrefix = "demo"
)

// to hold log levels
type LoglevelMap map[string]string

// a fresh map each time as the configuration file is merged into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// Configuration - settings for one run
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Count         int                  `gluamapper:"count" json:"count"`
	MinimumKey    int64                `gluamapper:"minimum_key" json:"minimum_key"`
	MaximumKey    int64                `gluamapper:"maximum_key" json:"maximum_key"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	Order         string               `gluamapper:"order" json:"order"`
	Check         bool                 `gluamapper:"check" json:"check"`
	Print         bool                 `gluamapper:"print" json:"print"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	traversal avl.Order // parsed from Order by validate
	logToFile bool      // only when read from a file
}

func newConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Count:         defaultCount,
		MinimumKey:    defaultMinimumKey,
		MaximumKey:    defaultMaximumKey,
		Seed:          defaultSeed,
		Order:         defaultOrder.String(),

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},

		traversal: defaultOrder,
	}
}

// will read and decode the configuration, an empty file name gives
// the defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := newConfiguration()
	if "" == configurationFileName {
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// the log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	options.logToFile = true
	return options, nil
}

// apply any command line options on top of the file values
func (c *Configuration) override(options map[string][]string) error {
	if n := len(options["count"]); n > 0 {
		count, err := strconv.Atoi(options["count"][n-1])
		if nil != err {
			return fmt.Errorf("%w: %s", fault.ErrInvalidCount, err)
		}
		c.Count = count
	}

	if n := len(options["seed"]); n > 0 {
		seed, err := strconv.ParseInt(options["seed"][n-1], 0, 64)
		if nil != err {
			return fmt.Errorf("seed: %s", err)
		}
		c.Seed = seed
	}

	if n := len(options["order"]); n > 0 {
		c.Order = options["order"][n-1]
	}

	if len(options["print"]) > 0 {
		c.Print = true
	}
	if len(options["check"]) > 0 {
		c.Check = true
	}
	return nil
}

// verify the values and parse the traversal order
func (c *Configuration) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidCount, c.Count)
	}
	// any ordered pair is usable, the key source spans the full int64 range
	if c.MinimumKey > c.MaximumKey {
		return fmt.Errorf("%w: minimum: %d  maximum: %d", fault.ErrInvalidKeyRange, c.MinimumKey, c.MaximumKey)
	}

	order, err := avl.ParseOrder(c.Order)
	if nil != err {
		return fmt.Errorf("%w: %q", err, c.Order)
	}
	c.traversal = order
	return nil
}

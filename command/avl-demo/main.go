// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "order", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s %s", program, usage)
	}

	// sub-commands that do not need any configuration
	if len(arguments) > 0 {
		if processSetupCommand(os.Stdout, program, arguments) {
			return
		}
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	err = masterConfiguration.override(options)
	if nil != err {
		exitwithstatus.Message("%s: invalid option  error: %s", program, err)
	}

	err = masterConfiguration.validate()
	if nil != err {
		exitwithstatus.Message("%s: invalid configuration  error: %s", program, err)
	}

	// logging only when a configuration file supplies the directory
	var log *logger.L
	if masterConfiguration.logToFile {
		if len(options["verbose"]) > 0 {
			masterConfiguration.Logging.Console = true
		}
		if err = logger.Initialise(masterConfiguration.Logging); nil != err {
			exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
		}
		defer logger.Finalise()

		if err = fault.Initialise(); nil != err {
			exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
		}
		defer fault.Finalise()

		log = logger.New(demoLoggerPrefix)
		defer log.Info("finished")
		log.Info("starting…")
		log.Infof("version: %s", version)
		log.Debugf("masterConfiguration: %v", masterConfiguration)
	}

	source := newRandomSource(masterConfiguration.Seed, masterConfiguration.MinimumKey, masterConfiguration.MaximumKey)

	err = run(os.Stdout, masterConfiguration, source, log)
	if nil != err {
		if nil != log {
			log.Criticalf("run failed with error: %s", err)
		}
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}

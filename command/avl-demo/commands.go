// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/exitwithstatus"
)

const usage = "[--help] [--verbose] [--version] [--config-file=FILE] [--count=N] [--seed=N] [--order=pre|in|post] [--print] [--check] [[command|help] arguments...]"

// setup command handler
//
// commands that need neither the configuration file nor a tree
// returns false when the main program should continue
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	case "help", "h", "?":
		printUsage(w, program)

	default:
		switch command {
		case "", " ":
			fmt.Fprintf(w, "error: missing command\n")
		default:
			fmt.Fprintf(w, "error: no such command: %v\n", command)
		}
		printUsage(w, program)
		exitwithstatus.Exit(1)
	}
	return true
}

func printUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s %s\n", program, usage)

	fmt.Fprintf(w, "supported commands:\n\n")
	fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
	fmt.Fprintf(w, "  version                    (v)      - display version string\n\n")

	fmt.Fprintf(w, "  start                      (run)    - just run the program, same as no arguments\n")
	fmt.Fprintf(w, "                                        for convenience when passing script arguments\n")
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "defaults: count: %d  keys: [%d, %d]  seed: %d  order: %s\n", defaultCount, defaultMinimumKey, defaultMaximumKey, defaultSeed, defaultOrder)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-demo - fill an AVL tree with pseudo random keys and print it
//
// With no options 32 keys in the range [0, 127] are generated from
// seed 1, inserted, printed in order, then the tree is destroyed.
// Duplicate keys are ignored so the output may hold fewer than count
// keys.
//
// An optional Lua configuration file (see avl-demo.conf.sample) sets
// the same values and enables a log file.  Command line options take
// precedence over the file.
package main

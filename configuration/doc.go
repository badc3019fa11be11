// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must
// return a table, which is mapped onto a struct by its "gluamapper"
// field tags, e.g.:
//
//   local M = {}
//   M.count = 32
//   M.order = "pre"
//   return M
package configuration

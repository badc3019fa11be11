// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

const testConfigurationFile = `
local M = {}
M.data_directory = "."
M.count = 10
M.minimum_key = -20
M.maximum_key = 20
M.seed = 99
M.order = "post"
M.logging = {
    file = "demo.log",
    levels = {
        DEFAULT = "info",
    },
}
return M
`

func writeConfiguration(t *testing.T, contents string) (string, string) {
	dir, err := ioutil.TempDir("", "avl-demo")
	require.NoError(t, err, "temp dir")

	fileName := filepath.Join(dir, "avl-demo.conf")
	err = ioutil.WriteFile(fileName, []byte(contents), 0600)
	require.NoError(t, err, "write configuration")
	return dir, fileName
}

func TestDefaultConfiguration(t *testing.T) {
	config, err := getConfiguration("")
	require.NoError(t, err)

	assert.Equal(t, defaultCount, config.Count, "count")
	assert.Equal(t, int64(defaultMinimumKey), config.MinimumKey, "minimum")
	assert.Equal(t, int64(defaultMaximumKey), config.MaximumKey, "maximum")
	assert.Equal(t, int64(defaultSeed), config.Seed, "seed")
	assert.Equal(t, "in", config.Order, "order")
	assert.False(t, config.logToFile, "no file means no log file")

	require.NoError(t, config.validate())
	assert.Equal(t, avl.InOrder, config.traversal)
}

func TestConfigurationFile(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfigurationFile)
	defer os.RemoveAll(dir)

	config, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, 10, config.Count, "count")
	assert.Equal(t, int64(-20), config.MinimumKey, "minimum")
	assert.Equal(t, int64(20), config.MaximumKey, "maximum")
	assert.Equal(t, int64(99), config.Seed, "seed")
	assert.True(t, config.logToFile, "log to file")

	assert.Equal(t, "demo.log", config.Logging.File, "log file")
	assert.Equal(t, defaultLogCount, config.Logging.Count, "default log count kept")
	assert.Equal(t, "info", config.Logging.Levels[logger.DefaultTag], "log level")

	logDirectory := filepath.Join(dir, defaultLogDirectory)
	assert.Equal(t, logDirectory, config.Logging.Directory, "log directory")
	info, err := os.Stat(logDirectory)
	require.NoError(t, err, "log directory not created")
	assert.True(t, info.IsDir())

	require.NoError(t, config.validate())
	assert.Equal(t, avl.PostOrder, config.traversal)

	// a later default configuration is unaffected by the file
	fresh := newConfiguration()
	assert.Equal(t, "critical", fresh.Logging.Levels[logger.DefaultTag], "defaults changed")
}

func TestConfigurationBadFiles(t *testing.T) {
	_, err := getConfiguration("/no/such/avl-demo.conf")
	assert.True(t, fault.IsErrNotFound(err), "missing file: %v", err)

	items := []string{
		"return { data_directory = \"\" }",
		"return { data_directory = \"/no/such/directory\" }",
		"return { logging = { file = \"sub/demo.log\" } }",
	}
	for i, contents := range items {
		dir, fileName := writeConfiguration(t, contents)
		_, err := getConfiguration(fileName)
		assert.Error(t, err, "%d: %s", i, contents)
		os.RemoveAll(dir)
	}
}

func TestOverride(t *testing.T) {
	config := newConfiguration()
	err := config.override(map[string][]string{
		"count": {"5", "7"},
		"seed":  {"0x10"},
		"order": {"Pre"},
		"print": {""},
		"check": {""},
	})
	require.NoError(t, err)

	assert.Equal(t, 7, config.Count, "last count wins")
	assert.Equal(t, int64(16), config.Seed, "seed")
	assert.True(t, config.Print, "print")
	assert.True(t, config.Check, "check")

	require.NoError(t, config.validate())
	assert.Equal(t, avl.PreOrder, config.traversal)

	err = config.override(map[string][]string{"count": {"many"}})
	assert.True(t, fault.IsErrInvalid(err), "bad count: %v", err)

	err = config.override(map[string][]string{"seed": {"x"}})
	assert.Error(t, err, "bad seed")
}

func TestValidate(t *testing.T) {
	config := newConfiguration()
	config.Count = -1
	err := config.validate()
	assert.True(t, errorIs(err, fault.ErrInvalidCount), "count: %v", err)

	config = newConfiguration()
	config.MinimumKey = 10
	config.MaximumKey = 9
	err = config.validate()
	assert.True(t, errorIs(err, fault.ErrInvalidKeyRange), "range: %v", err)

	config = newConfiguration()
	config.Order = "sideways"
	err = config.validate()
	assert.True(t, errorIs(err, fault.ErrInvalidTraversalOrder), "order: %v", err)

	config = newConfiguration()
	config.MinimumKey = 10
	config.MaximumKey = 10
	config.Count = 0
	assert.NoError(t, config.validate(), "single key range and zero count")
}

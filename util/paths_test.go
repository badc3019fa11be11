// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/data", "log", "/data/log"},
		{"/data", "./log/../log", "/data/log"},
		{"/data", "/var/log", "/var/log"},
		{"/data/", "/var//log/", "/var/log"},
	}

	for i, item := range items {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: directory: %q  path: %q", i, item.directory, item.path)
	}
}

func TestEnsureFileAndDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "file")
	missing := filepath.Join(dir, "missing")

	if err := ioutil.WriteFile(fileName, []byte("data"), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}

	assert.True(t, util.EnsureFileExists(fileName), "file")
	assert.True(t, util.EnsureFileExists(dir), "directory")
	assert.False(t, util.EnsureFileExists(missing), "missing")

	assert.NoError(t, util.EnsureDirectory(dir), "directory")
	assert.Error(t, util.EnsureDirectory(fileName), "file is not a directory")
	assert.Error(t, util.EnsureDirectory(missing), "missing")
}

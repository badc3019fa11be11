// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func errorIs(err error, target error) bool {
	return errors.Is(err, target)
}

func TestProcessSetupCommand(t *testing.T) {
	var out bytes.Buffer

	assert.False(t, processSetupCommand(&out, "avl-demo", []string{"run"}), "run must continue")
	assert.False(t, processSetupCommand(&out, "avl-demo", []string{"start", "extra"}), "start must continue")
	assert.Equal(t, 0, out.Len(), "run printed something")

	assert.True(t, processSetupCommand(&out, "avl-demo", []string{"version"}), "version")
	assert.Equal(t, version+"\n", out.String())

	out.Reset()
	assert.True(t, processSetupCommand(&out, "avl-demo", []string{"h"}), "help")
	assert.Contains(t, out.String(), "usage: avl-demo ")
	assert.Contains(t, out.String(), "--order=pre|in|post")
	assert.Contains(t, out.String(), "order: in")
}

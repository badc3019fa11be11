// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/avltree/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	for i := 0; i < 5; i += 1 {
		c1.Increment()
	}

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	if n := c1.Decrement(); 4 != n {
		t.Errorf("counter is not 4 after decrementing: %d", n)
	}

	for i := 0; i < 4; i += 1 {
		c1.Decrement()
	}

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}

	c1.Decrement()

	// check against underflow, i.e. twos complement -1
	if ^uint64(0) != c1.Uint64() {
		t.Errorf("counter did not underflow: %d", c1.Uint64())
	}
}

func TestReset(t *testing.T) {
	var c counter.Counter
	c.Increment()
	c.Increment()

	if previous := c.Reset(); 2 != previous {
		t.Errorf("reset returned: %d  expected: 2", previous)
	}
	if !c.IsZero() {
		t.Errorf("counter not zero after reset: %d", c.Uint64())
	}
}

// several goroutines incrementing must not lose counts
func TestConcurrentIncrement(t *testing.T) {
	const workers = 8
	const perWorker = 1000

	var c counter.Counter
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i += 1 {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if workers*perWorker != c.Uint64() {
		t.Errorf("counter: %d  expected: %d", c.Uint64(), workers*perWorker)
	}
}

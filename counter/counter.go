// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a 64 bit counter that is safe to update from
// several goroutines, used for the node allocator statistics
package counter

import (
	"sync/atomic"
)

// Counter - type to denote a counter that can be synchronously incremented or decremented
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == atomic.LoadUint64((*uint64)(ic))
}

// Reset - set back to zero, returns the previous value
func (ic *Counter) Reset() uint64 {
	return atomic.SwapUint64((*uint64)(ic), 0)
}

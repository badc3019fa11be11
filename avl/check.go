// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify key ordering, cached heights and balance of every node
//
// returns nil for a consistent tree otherwise the first problem found,
// which wraps one of fault.ErrKeyOrder, fault.ErrHeightMismatch or
// fault.ErrUnbalanced
func Check(root *Node) error {
	_, err := check(root, nil, nil)
	return err
}

// internal: consistency checker, low and high are the exclusive key
// bounds inherited from the ancestors (nil for unbounded)
func check(p *Node, low *int64, high *int64) (int, error) {
	if nil == p {
		return 0, nil
	}
	if (nil != low && p.key <= *low) || (nil != high && p.key >= *high) {
		return 0, fmt.Errorf("%w at key: %d", fault.ErrKeyOrder, p.key)
	}

	lh, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, err
	}
	rh, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, err
	}

	h := lh + 1
	if rh > lh {
		h = rh + 1
	}
	if h != p.height {
		return 0, fmt.Errorf("%w at key: %d  actual: %d  cached: %d", fault.ErrHeightMismatch, p.key, h, p.height)
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, fmt.Errorf("%w at key: %d  balance: %+d", fault.ErrUnbalanced, p.key, d)
	}
	return h, nil
}

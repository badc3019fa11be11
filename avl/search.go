// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific key, nil if not present
func Search(root *Node, key int64) *Node {
	if nil == root {
		return nil
	}

	switch {
	case key < root.key:
		return Search(root.left, key)
	case key > root.key:
		return Search(root.right, key)
	default:
		return root
	}
}

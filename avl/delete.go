// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific key from the tree
// returns the possibly updated root, unchanged if the key is absent
func Remove(root *Node, key int64) *Node {
	if nil == root { // key not in tree
		return nil
	}

	switch {
	case key < root.key:
		root.left = Remove(root.left, key)
	case key > root.key:
		root.right = Remove(root.right, key)
	default: // found: delete root
		if nil == root.left || nil == root.right {
			// splice out: the single child (if any) is already
			// balanced and takes the place of the removed node
			child := root.left
			if nil == child {
				child = root.right
			}
			freeNode(root) // return deleted node to pool
			return child
		}

		// two children: take over the in-order successor's
		// data, then remove the successor which has no left child
		successor := root.right.first()
		root.key = successor.key
		root.value = successor.value
		root.right = Remove(root.right, successor.key)
	}
	return rebalance(root)
}

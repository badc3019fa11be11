// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
// returns the possibly updated root
//
// if the key is already present the tree is not modified and the
// original value is kept
func Insert(root *Node, key int64, value interface{}) *Node {
	if nil == root { // insert new node
		return newNode(key, value)
	}

	switch {
	case key < root.key:
		root.left = Insert(root.left, key, value)
	case key > root.key:
		root.right = Insert(root.right, key, value)
	default:
		return root // duplicate
	}
	return rebalance(root)
}

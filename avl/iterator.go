// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func First(root *Node) *Node {
	return root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func Last(root *Node) *Node {
	return root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

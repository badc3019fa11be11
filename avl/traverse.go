// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
)

// Traverse - all keys of the tree as decimal text in the requested
// order, each key followed by a single space
//
// an empty tree (or an unknown order) gives an empty string
func Traverse(root *Node, order Order) string {
	keys := Keys(root, order)
	if 0 == len(keys) {
		return ""
	}

	// four bytes covers the common "NN " case without regrowth
	buffer := make([]byte, 0, 4*len(keys))
	for _, k := range keys {
		buffer = strconv.AppendInt(buffer, k, 10)
		buffer = append(buffer, ' ')
	}
	return string(buffer)
}

// Pre - pre-order text traversal
func Pre(root *Node) string {
	return Traverse(root, PreOrder)
}

// In - in-order text traversal, keys are in ascending order
func In(root *Node) string {
	return Traverse(root, InOrder)
}

// Post - post-order text traversal
func Post(root *Node) string {
	return Traverse(root, PostOrder)
}

// Keys - a new slice of all keys in the requested order
func Keys(root *Node, order Order) []int64 {
	switch order {
	case PreOrder, InOrder, PostOrder:
	default:
		return nil
	}
	return appendKeys(nil, root, order)
}

// internal: the slice is threaded through the recursion and each call
// returns the extended slice to its caller
func appendKeys(keys []int64, p *Node, order Order) []int64 {
	if nil == p {
		return keys
	}
	switch order {
	case PreOrder:
		keys = append(keys, p.key)
		keys = appendKeys(keys, p.left, order)
		keys = appendKeys(keys, p.right, order)
	case InOrder:
		keys = appendKeys(keys, p.left, order)
		keys = append(keys, p.key)
		keys = appendKeys(keys, p.right, order)
	case PostOrder:
		keys = appendKeys(keys, p.left, order)
		keys = appendKeys(keys, p.right, order)
		keys = append(keys, p.key)
	}
	return keys
}

// Count - number of nodes in the tree
func Count(root *Node) int {
	if nil == root {
		return 0
	}
	return 1 + Count(root.left) + Count(root.right)
}

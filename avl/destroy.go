// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Destroy - release every node of the tree back to the pool
//
// children are released before their parent; the values are not
// touched.  The root must not be used afterwards.
func Destroy(root *Node) {
	if nil == root {
		return
	}
	Destroy(root.left)
	Destroy(root.right)
	freeNode(root)
}

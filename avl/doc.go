// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree keyed by int64
//
// Note: a tree is not thread safe, so either access it only in a
//       single go routine or use mutex/rwmutex to restrict access.
//
// A tree is nothing more than a pointer to its root node, nil for an
// empty tree.  Every operation that can restructure the tree returns
// the new root, which the caller must store:
//
//   var root *avl.Node
//   root = avl.Insert(root, 5, data)
//   root = avl.Remove(root, 5)
//   avl.Destroy(root)
//
// Each node caches the height of its sub-tree and after any change
// below it the node is rebalanced by single or double rotations so
// that the heights of its two sub-trees never differ by more than one.
//
// Inserting a key that is already present leaves the tree and the
// stored value unchanged.  Values are opaque to the tree and are never
// examined or copied.
//
// Removed and destroyed nodes are returned to a shared pool and may be
// handed out again by a later insert, so a *Node must not be kept
// after its key has been removed.
package avl

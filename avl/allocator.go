// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// global data for allocator, shared by all trees
var (
	m          sync.Mutex      // to keep pool and counts in sync
	pool       *Node           // linked list of reclaimed nodes
	totalNodes counter.Counter // total nodes created
	freeNodes  counter.Counter // number of nodes in the pool
)

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key int64, value interface{}) *Node {
	m.Lock()
	defer m.Unlock()

	if nil == pool {
		if !freeNodes.IsZero() {
			fault.Panicf("avl: %s: empty list with free count: %d", fault.ErrNodePoolCorrupt, freeNodes.Uint64())
		}
		totalNodes.Increment()
		return &Node{
			key:    key,
			value:  value,
			height: 1,
		}
	}
	if freeNodes.IsZero() {
		fault.Panicf("avl: %s: non-empty list with zero free count", fault.ErrNodePoolCorrupt)
	}

	p := pool
	pool = p.right
	p.key = key
	p.value = value
	p.height = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	freeNodes.Decrement()
	return p
}

// reclaim a node and keep it in the pool
//
// the value reference is dropped so the caller's data is no longer
// reachable from the pool
func freeNode(node *Node) {
	m.Lock()
	node.left = nil
	node.right = pool // use as free list pointer
	node.key = 0
	node.value = nil
	node.height = 0
	pool = node
	freeNodes.Increment()
	m.Unlock()
}

// Statistics - total nodes ever allocated and nodes currently pooled
func Statistics() (total uint64, free uint64) {
	m.Lock()
	defer m.Unlock()
	return totalNodes.Uint64(), freeNodes.Uint64()
}

// ReleasePool - drop every pooled node so the garbage collector can
// reclaim them, returns the number released
func ReleasePool() uint64 {
	m.Lock()
	defer m.Unlock()

	for p := pool; nil != p; {
		next := p.right
		p.right = nil
		p = next
	}
	pool = nil
	return freeNodes.Reset()
}

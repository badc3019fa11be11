// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree, also the handle for the whole tree when
// it is the root
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree, free list link when pooled
	key    int64       // key part for ordering
	value  interface{} // value part for data storage
	height int         // height of this sub-tree, leaf = 1
}

// Key - read the key from a node item
func (p *Node) Key() int64 {
	if nil == p {
		return 0
	}
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	if nil == p {
		return nil
	}
	return p.value
}

// Height - height of the sub-tree rooted at this node, zero for nil
func (p *Node) Height() int {
	return height(p)
}

// Balance - height of left sub-tree minus height of right sub-tree
func (p *Node) Balance() int {
	return balanceFactor(p)
}

// Left - the left sub-tree or nil
func (p *Node) Left() *Node {
	if nil == p {
		return nil
	}
	return p.left
}

// Right - the right sub-tree or nil
func (p *Node) Right() *Node {
	if nil == p {
		return nil
	}
	return p.right
}

// GetChildrenByDepth - returns all nodes at a specific depth below p
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []*Node{p}
	}
	nodes := []*Node{}
	nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	return nodes
}

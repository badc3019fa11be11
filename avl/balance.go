// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, an absent sub-tree has height zero
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recalculate the cached height from the two sub-trees
func reheight(p *Node) {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = lh + 1
	} else {
		p.height = rh + 1
	}
}

// left height minus right height: +ve is left heavy, -ve is right heavy
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// single right rotation, the left child becomes the sub-tree root
//
//       p            p1
//      / \          /  \
//     p1  c   →    a    p
//    /  \              / \
//   a    b            b   c
func rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	// p is now below p1 so must be updated first
	reheight(p)
	reheight(p1)
	return p1
}

// single left rotation, the right child becomes the sub-tree root
//
//     p                p1
//    / \              /  \
//   a   p1     →     p    c
//      /  \         / \
//     b    c       a   b
func rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	reheight(p)
	reheight(p1)
	return p1
}

// rebalance: recompute height and restore the balance of the sub-tree
// rooted at p after one of its sub-trees changed height by at most one
// returns the (possibly new) sub-tree root
func rebalance(p *Node) *Node {
	reheight(p)

	switch balanceFactor(p) {
	case +2: // left branch too high
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)

	case -2: // right branch too high
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}

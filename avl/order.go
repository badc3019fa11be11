// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Order - sequence in which a traversal visits the nodes
type Order int

// the possible traversal orders
const (
	PreOrder  Order = iota // node, left, right
	InOrder   Order = iota // left, node, right
	PostOrder Order = iota // left, right, node
)

// String - short name of the order
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre"
	case InOrder:
		return "in"
	case PostOrder:
		return "post"
	default:
		return "unknown"
	}
}

// ParseOrder - convert a name like "in" or "post-order" to an Order
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "preorder", "pre-order":
		return PreOrder, nil
	case "in", "inorder", "in-order":
		return InOrder, nil
	case "post", "postorder", "post-order":
		return PostOrder, nil
	default:
		return InOrder, fault.ErrInvalidTraversalOrder
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree on
// stdout, returns the depth of the tree
func Print(tree *Node, printData bool) int {
	return Fprint(os.Stdout, tree, printData)
}

// Fprint - as Print but to any writer
func Fprint(w io.Writer, tree *Node, printData bool) int {
	return printTree(w, tree, "", rootBranch, printData)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%d → %v h:%d %+d\n", tree.key, tree.value, tree.height, balanceFactor(tree))
	} else {
		fmt.Fprintf(w, "%d\n", tree.key)
	}
	if nil != tree.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, leftBranch, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// build a tree from the source, write its traversal then destroy it
//
// log may be nil when no log file is configured
func run(w io.Writer, config *Configuration, source KeySource, log *logger.L) error {

	var root *avl.Node

	for i := 0; i < config.Count; i += 1 {
		key := source.Key()
		if nil != log {
			log.Debugf("insert: %d", key)
		}
		root = avl.Insert(root, key, nil)
	}
	defer avl.Destroy(root)

	if config.Check {
		if err := avl.Check(root); nil != err {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s\n", avl.Traverse(root, config.traversal))
	if nil != err {
		return err
	}

	if config.Print {
		depth := avl.Fprint(w, root, false)
		if nil != log {
			for i, n := range levelWidths(root) {
				log.Infof("level: %d  nodes: %d", i, n)
			}
			log.Infof("print depth: %d", depth)
		}
	}

	if nil != log {
		total, free := avl.Statistics()
		log.Infof("keys: %d  distinct: %d  height: %d  order: %s", config.Count, avl.Count(root), root.Height(), config.traversal)
		log.Infof("nodes allocated: %d  pooled: %d", total, free)
	}
	return nil
}

// number of nodes at each level, root first
func levelWidths(root *avl.Node) []int {
	h := root.Height()
	widths := make([]int, h)
	for i := 0; i < h; i += 1 {
		widths[i] = len(root.GetChildrenByDepth(uint(i)))
	}
	return widths
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

import (
	"fmt"
	"io"
)

// which link of the parent leads to a node
type branch int

const (
	root branch = iota
	left
	right
)

// the connector drawn before a node and the indent for each child
// side, indexed by the branch leading to the node
var (
	connector = [...]string{
		root:  "|------+ ",
		left:  "\\------+ ",
		right: "/------+ ",
	}
	indentRight = [...]string{root: "       ", left: "|      ", right: "       "}
	indentLeft  = [...]string{root: "       ", left: "       ", right: "|      "}
)

// holds the output settings for a single Print call
type printer struct {
	w         io.Writer
	printData bool
}

// Print - write an ASCII graphic representation of the tree, the
// right sub-tree above each node and the left below
//
// each line shows the key and the link colour (R or B), with printData
// it also shows the value, the sub-tree size and the black height
//
// returns the maximum depth of the tree
func (m *Map[K, V]) Print(w io.Writer, printData bool) int {
	p := printer{w: w, printData: printData}
	return printNode(&p, m.root, "", root)
}

// returns the depth of the sub-tree
func printNode[K any, V any](p *printer, h *node[K, V], prefix string, br branch) int {
	if nil == h {
		return 0
	}

	rightDepth := printNode(p, h.right, prefix+indentRight[br], right)

	colour := "B"
	if h.isRed() {
		colour = "R"
	}
	if p.printData {
		fmt.Fprintf(p.w, "%s%s%v → %v %s/[%d] bh:%d\n", prefix, connector[br], h.key, h.value, colour, h.size, blackHeight(h))
	} else {
		fmt.Fprintf(p.w, "%s%s%v %s\n", prefix, connector[br], h.key, colour)
	}

	leftDepth := printNode(p, h.left, prefix+indentLeft[br], left)
	if rightDepth > leftDepth {
		return 1 + rightDepth
	}
	return 1 + leftDepth
}

// number of black nodes from h down to a leaf, counted along the left
// spine since every path has the same count in a valid tree
func blackHeight[K any, V any](h *node[K, V]) int {
	n := 0
	for ; nil != h; h = h.left {
		if !h.isRed() {
			n += 1
		}
	}
	return n
}

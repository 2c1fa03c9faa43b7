// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

// nil links are black
func (p *node[K, V]) isRed() bool {
	return nil != p && red == p.color
}

// nodes in a sub-tree, zero for nil
func (p *node[K, V]) count() int {
	if nil == p {
		return 0
	}
	return p.size
}

func (p *node[K, V]) resize() {
	p.size = 1 + p.left.count() + p.right.count()
}

// make a right leaning link lean to the left
func rotateLeft[K any, V any](h *node[K, V]) *node[K, V] {
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = red
	h.resize()
	x.resize()
	return x
}

// make a left leaning link lean to the right
func rotateRight[K any, V any](h *node[K, V]) *node[K, V] {
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = red
	h.resize()
	x.resize()
	return x
}

// invert the colours of a node and its two children
// h must have two children
func flipColors[K any, V any](h *node[K, V]) {
	h.color = !h.color
	h.left.color = !h.left.color
	h.right.color = !h.right.color
}

// assuming h is red and both h.left and h.left.left are black, make
// h.left or one of its children red
func moveRedLeft[K any, V any](h *node[K, V]) *node[K, V] {
	flipColors(h)
	if h.right.left.isRed() {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flipColors(h)
	}
	return h
}

// assuming h is red and both h.right and h.right.left are black, make
// h.right or one of its children red
func moveRedRight[K any, V any](h *node[K, V]) *node[K, V] {
	flipColors(h)
	if h.left.left.isRed() {
		h = rotateRight(h)
		flipColors(h)
	}
	return h
}

// restore the left leaning invariants at h on the way back up
func balance[K any, V any](h *node[K, V]) *node[K, V] {
	if h.right.isRed() && !h.left.isRed() {
		h = rotateLeft(h)
	}
	if h.left.isRed() && h.left.left.isRed() {
		h = rotateRight(h)
	}
	if h.left.isRed() && h.right.isRed() {
		flipColors(h)
	}
	h.resize()
	return h
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Delete - removes a specific key from the map
// does nothing if the key is not present
func (m *Map[K, V]) Delete(key K) {
	if !m.Contains(key) {
		return
	}

	m.redRoot()
	m.root = m.delete(key, m.root)
	m.blackRoot()
}

// DeleteMin - removes the lowest key
// panics with fault.ErrTreeUnderflow if the map is empty
func (m *Map[K, V]) DeleteMin() {
	if m.IsEmpty() {
		panic(fault.ErrTreeUnderflow)
	}

	m.redRoot()
	root, p := deleteMin(m.root)
	m.root = root
	m.freeNode(p)
	m.blackRoot()
}

// DeleteMax - removes the highest key
// panics with fault.ErrTreeUnderflow if the map is empty
func (m *Map[K, V]) DeleteMax() {
	if m.IsEmpty() {
		panic(fault.ErrTreeUnderflow)
	}

	m.redRoot()
	root, p := deleteMax(m.root)
	m.root = root
	m.freeNode(p)
	m.blackRoot()
}

// root is made red when both its children are black
func (m *Map[K, V]) redRoot() {
	if !m.root.left.isRed() && !m.root.right.isRed() {
		m.root.color = red
	}
}

func (m *Map[K, V]) blackRoot() {
	if nil != m.root {
		m.root.color = black
	}
}

// remove the lowest node in the sub-tree h
// returns the new sub-tree root and the detached node
func deleteMin[K any, V any](h *node[K, V]) (*node[K, V], *node[K, V]) {
	if nil == h.left {
		// a left leaning node with no left child has no right child
		return nil, h
	}

	if !h.left.isRed() && !h.left.left.isRed() {
		h = moveRedLeft(h)
	}

	left, p := deleteMin(h.left)
	h.left = left
	return balance(h), p
}

// remove the highest node in the sub-tree h
// returns the new sub-tree root and the detached node
func deleteMax[K any, V any](h *node[K, V]) (*node[K, V], *node[K, V]) {
	if h.left.isRed() {
		h = rotateRight(h)
	}

	if nil == h.right {
		return nil, h
	}

	if !h.right.isRed() && !h.right.left.isRed() {
		h = moveRedRight(h)
	}

	right, p := deleteMax(h.right)
	h.right = right
	return balance(h), p
}

// internal delete routine, key must be present in the sub-tree h
func (m *Map[K, V]) delete(key K, h *node[K, V]) *node[K, V] {
	if m.compare(key, h.key) < 0 {
		if !h.left.isRed() && !h.left.left.isRed() {
			h = moveRedLeft(h)
		}
		h.left = m.delete(key, h.left)
		return balance(h)
	}

	if h.left.isRed() {
		h = rotateRight(h)
	}
	if 0 == m.compare(key, h.key) && nil == h.right {
		m.freeNode(h)
		return nil
	}
	if !h.right.isRed() && !h.right.left.isRed() {
		h = moveRedRight(h)
	}
	if 0 == m.compare(key, h.key) {
		// relink the successor into the position of h
		right, successor := deleteMin(h.right)
		successor.left = h.left
		successor.right = right
		successor.color = h.color
		m.freeNode(h)
		h = successor
	} else {
		h.right = m.delete(key, h.right)
	}
	return balance(h)
}

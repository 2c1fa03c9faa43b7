// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

// Put - insert a key/value pair, an existing key has its value
// overwritten
func (m *Map[K, V]) Put(key K, value V) {
	m.root = m.insert(key, value, m.root)
	m.root.color = black
}

// internal routine for insert
func (m *Map[K, V]) insert(key K, value V, h *node[K, V]) *node[K, V] {
	if nil == h { // insert new node
		return m.newNode(key, value)
	}

	switch c := m.compare(key, h.key); {
	case c < 0:
		h.left = m.insert(key, value, h.left)
	case c > 0:
		h.right = m.insert(key, value, h.right)
	default:
		h.value = value
		return h
	}

	return balance(h)
}

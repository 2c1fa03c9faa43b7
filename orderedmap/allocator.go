// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

// link colour, the colour of a node is the colour of the link from
// its parent
type color bool

const (
	red   color = true
	black color = false
)

// a node in the tree
type node[K any, V any] struct {
	left  *node[K, V] // left sub-tree
	right *node[K, V] // right sub-tree
	key   K           // key part for ordering
	value V           // value part for data storage
	color color       // colour of link from parent
	size  int         // nodes in this sub-tree including this one
}

// maximum number of reclaimed nodes kept for reuse
const maxPoolSize = 1024

// allocate a new red node, reuses reclaimed nodes if any are available
func (m *Map[K, V]) newNode(key K, value V) *node[K, V] {
	p := m.pool
	if nil == p {
		if 0 != m.free {
			panic("pool corrupt")
		}
		return &node[K, V]{
			key:   key,
			value: value,
			color: red,
			size:  1,
		}
	}
	m.pool = p.right
	m.free -= 1

	p.right = nil // ensure freelist pointer is cleared
	p.key = key
	p.value = value
	p.color = red
	p.size = 1
	return p
}

// reclaim a node and keep it in the pool
func (m *Map[K, V]) freeNode(p *node[K, V]) {
	var zeroKey K
	var zeroValue V
	p.left = nil
	p.key = zeroKey
	p.value = zeroValue
	p.size = 0

	if m.free >= maxPoolSize {
		p.right = nil
		return
	}
	p.right = m.pool // use as free list pointer
	m.pool = p
	m.free += 1
}

// Reclaimed - number of deleted nodes held for reuse
func (m *Map[K, V]) Reclaimed() int {
	return m.free
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

// Min - the lowest key
func (m *Map[K, V]) Min() (K, bool) {
	if m.IsEmpty() {
		var zero K
		return zero, false
	}
	return m.root.first().key, true
}

// Max - the highest key
func (m *Map[K, V]) Max() (K, bool) {
	if m.IsEmpty() {
		var zero K
		return zero, false
	}
	return m.root.last().key, true
}

// internal: lowest node in a non-empty sub-tree
func (p *node[K, V]) first() *node[K, V] {
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a non-empty sub-tree
func (p *node[K, V]) last() *node[K, V] {
	for nil != p.right {
		p = p.right
	}
	return p
}

// Keys - all keys in ascending order
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Size())
	m.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Ascend - call fn for each key/value from lowest to highest key
// until fn returns false
func (m *Map[K, V]) Ascend(fn func(key K, value V) bool) {
	ascend(m.root, fn)
}

// Descend - call fn for each key/value from highest to lowest key
// until fn returns false
func (m *Map[K, V]) Descend(fn func(key K, value V) bool) {
	descend(m.root, fn)
}

// returns false if the walk was stopped
func ascend[K any, V any](p *node[K, V], fn func(K, V) bool) bool {
	if nil == p {
		return true
	}
	if !ascend(p.left, fn) {
		return false
	}
	if !fn(p.key, p.value) {
		return false
	}
	return ascend(p.right, fn)
}

func descend[K any, V any](p *node[K, V], fn func(K, V) bool) bool {
	if nil == p {
		return true
	}
	if !descend(p.right, fn) {
		return false
	}
	if !fn(p.key, p.value) {
		return false
	}
	return descend(p.left, fn)
}

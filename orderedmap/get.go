// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

// Get - fetch the value stored for a key
func (m *Map[K, V]) Get(key K) (V, bool) {
	p := m.search(key)
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

// Contains - true if key is present
func (m *Map[K, V]) Contains(key K) bool {
	return nil != m.search(key)
}

func (m *Map[K, V]) search(key K) *node[K, V] {
	p := m.root
	for nil != p {
		switch c := m.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

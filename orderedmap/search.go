// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

// Select - the key/value at a zero-based position in key order
func (m *Map[K, V]) Select(index int) (K, V, bool) {
	if index < 0 || index >= m.Size() {
		var zeroKey K
		var zeroValue V
		return zeroKey, zeroValue, false
	}

	p := m.root
	for {
		nl := p.left.count()
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		default:
			return p.key, p.value, true
		}
	}
}

// Rank - zero-based position of a key in key order
//
// if the key is not present the result is the number of keys lower
// than it, i.e. the position it would occupy after a Put
func (m *Map[K, V]) Rank(key K) (int, bool) {
	index := 0
	p := m.root
	for nil != p {
		switch c := m.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			index += p.left.count() + 1
			p = p.right
		default:
			return index + p.left.count(), true
		}
	}
	return index, false
}

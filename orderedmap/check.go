// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Check - verify the tree structure
//
// returns nil or the first violation found of: key order, left
// leaning red links, consecutive red links, black balance, sub-tree
// sizes and a black root
func (m *Map[K, V]) Check() error {
	if m.root.isRed() {
		return fault.ErrRedRoot
	}
	_, err := m.check(m.root, nil, nil)
	return err
}

// internal: consistency checker, lo and hi are exclusive bounds
// returns the number of black links between p and the leaves
func (m *Map[K, V]) check(p *node[K, V], lo *K, hi *K) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != lo && m.compare(p.key, *lo) <= 0 {
		return 0, fault.ErrTreeOrder
	}
	if nil != hi && m.compare(p.key, *hi) >= 0 {
		return 0, fault.ErrTreeOrder
	}
	if p.right.isRed() {
		return 0, fault.ErrRedRightLink
	}
	if p.isRed() && p.left.isRed() {
		return 0, fault.ErrConsecutiveRed
	}
	if p.size != 1+p.left.count()+p.right.count() {
		return 0, fault.ErrSizeMismatch
	}

	lb, err := m.check(p.left, lo, &p.key)
	if nil != err {
		return 0, err
	}
	rb, err := m.check(p.right, &p.key, hi)
	if nil != err {
		return 0, err
	}
	if lb != rb {
		return 0, fault.ErrBlackImbalance
	}
	if p.isRed() {
		return lb, nil
	}
	return lb + 1, nil
}

// Height - number of nodes on the longest path from the root
func (m *Map[K, V]) Height() int {
	return height(m.root)
}

func height[K any, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/orderedmap/fault"
)

// Map - type to hold the root node of a tree
type Map[K any, V any] struct {
	root    *node[K, V]
	compare func(K, K) int
	pool    *node[K, V] // linked list of reclaimed nodes
	free    int         // number of nodes in the pool
}

// New - create an initially empty map using the natural order of K
//
// floating point NaN keys do not have a total order and must not be
// used as keys
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{
		compare: compareOrdered[K],
	}
}

// NewWithCompare - create an initially empty map ordered by compare
//
// compare(a, b) must return a negative value if a < b, zero if a == b
// and a positive value if a > b
func NewWithCompare[K any, V any](compare func(K, K) int) *Map[K, V] {
	if nil == compare {
		panic(fault.ErrNilComparison)
	}
	return &Map[K, V]{
		compare: compare,
	}
}

func compareOrdered[K constraints.Ordered](a K, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// IsEmpty - true if map contains no data
func (m *Map[K, V]) IsEmpty() bool {
	return nil == m.root
}

// Size - number of keys currently in the map
func (m *Map[K, V]) Size() int {
	return m.root.count()
}

// Clear - remove all keys
//
// the nodes are left to the garbage collector rather than being
// placed in the pool
func (m *Map[K, V]) Clear() {
	m.root = nil
}

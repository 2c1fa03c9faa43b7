// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedmap/fault"
)

// 1..7 inserted in order gives a perfect tree of black nodes
// rooted at 4
func perfectMap() *Map[int, int] {
	m := New[int, int]()
	for i := 1; i <= 7; i += 1 {
		m.Put(i, i)
	}
	return m
}

func TestCheckDetectsCorruption(t *testing.T) {
	tests := []struct {
		name     string
		corrupt  func(m *Map[int, int])
		expected error
	}{
		{
			name:     "red root",
			corrupt:  func(m *Map[int, int]) { m.root.color = red },
			expected: fault.ErrRedRoot,
		},
		{
			name:     "order",
			corrupt:  func(m *Map[int, int]) { m.root.left.key = 5 },
			expected: fault.ErrTreeOrder,
		},
		{
			name:     "red right link",
			corrupt:  func(m *Map[int, int]) { m.root.right.right.color = red },
			expected: fault.ErrRedRightLink,
		},
		{
			name: "consecutive red",
			corrupt: func(m *Map[int, int]) {
				m.root.left.color = red
				m.root.left.left.color = red
			},
			expected: fault.ErrConsecutiveRed,
		},
		{
			name:     "black balance",
			corrupt:  func(m *Map[int, int]) { m.root.left.left = nil; m.root.left.size = 2 },
			expected: fault.ErrBlackImbalance,
		},
		{
			name:     "size",
			corrupt:  func(m *Map[int, int]) { m.root.right.size = 4 },
			expected: fault.ErrSizeMismatch,
		},
	}

	for _, test := range tests {
		m := perfectMap()
		assert.NoError(t, m.Check(), "%s: before corruption", test.name)
		test.corrupt(m)
		assert.Equal(t, test.expected, m.Check(), test.name)
	}
}

// rotations must keep sub-tree sizes exact
func TestRotationSizes(t *testing.T) {
	m := perfectMap()

	h := rotateLeft(m.root)
	assert.Equal(t, 6, h.key)
	assert.Equal(t, 7, h.size)
	assert.Equal(t, 5, h.left.size)
	assert.Equal(t, red, h.left.color)

	h = rotateRight(h)
	assert.Equal(t, 4, h.key)
	assert.Equal(t, 7, h.size)
	assert.Equal(t, 3, h.right.size)
	assert.Equal(t, 3, h.left.size)
}

func TestPoolLimit(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < maxPoolSize+10; i += 1 {
		m.Put(i, i)
	}
	for !m.IsEmpty() {
		m.DeleteMin()
	}
	assert.Equal(t, maxPoolSize, m.Reclaimed(), "pool exceeded its limit")
	assert.Nil(t, m.pool.left, "reclaimed node kept a child")
}

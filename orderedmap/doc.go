// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package orderedmap - an ordered key/value map held in a left
// leaning red-black tree
//
// Note: an individual map is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The algorithm is the 2-3 tree variant of the left leaning
// red-black tree described by Robert Sedgewick.  Each node carries
// the size of its sub-tree so that indexing by position (Select) and
// position of a key (Rank) run in O(log n).
//
// Deleting a node with two children relinks its in-order successor
// into its place, keys and values are never copied between nodes.
package orderedmap

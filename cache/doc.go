// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache maintains expiring in-memory data pools
//
//  ***** Data Structure *****
//
//  Pool
//  |___ items     orderedmap: key                 → value, expiresAt
//  |___ expiry    orderedmap: (expiresAt, key)    → (nothing)
//
//  ***** Purpose *****
//
//  items:
//    ordered by key so that Keys is ascending without a sort
//
//  expiry:
//    ordered by expiry time so the cleaner only visits items that
//    have expired, Min is always the next item to expire
//
// A pool with a zero expiry duration never expires its items and
// keeps the expiry index empty.
package cache

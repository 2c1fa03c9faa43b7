// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/bitmark-inc/orderedmap/orderedmap"
)

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

// Store - the map operations used by the shell
type Store interface {
	Put(key string, value string)
	Get(key string) (string, bool)
	Contains(key string) bool
	Delete(key string)
	DeleteMin()
	DeleteMax()
	Min() (string, bool)
	Max() (string, bool)
	Keys() []string
	Size() int
	IsEmpty() bool
	Select(index int) (string, string, bool)
	Rank(key string) (int, bool)
	Height() int
	Check() error
	Print(w io.Writer, printData bool) int
	Clear()
}

// the map satisfies Store directly
var _ Store = (*orderedmap.Map[string, string])(nil)

func newStore() Store {
	return orderedmap.New[string, string]()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/orderedmap"
)

type item[V any] struct {
	object    V
	expiresAt time.Time // zero: never expires
}

// position of an item in the expiry index
type expiryKey struct {
	at  int64 // expiry time in Unix nanoseconds
	key string
}

func compareExpiry(a expiryKey, b expiryKey) int {
	switch {
	case a.at < b.at:
		return -1
	case a.at > b.at:
		return +1
	default:
		return strings.Compare(a.key, b.key)
	}
}

// Pool - a mutex protected set of items indexed by key
type Pool[V any] struct {
	sync.RWMutex
	name         string
	items        *orderedmap.Map[string, item[V]]
	expiry       *orderedmap.Map[expiryKey, struct{}]
	expiresAfter time.Duration
	log          *logger.L
	now          func() time.Time
}

// New - create an empty pool, log may be nil
func New[V any](name string, expiresAfter time.Duration, log *logger.L) *Pool[V] {
	return &Pool[V]{
		name:         name,
		items:        orderedmap.New[string, item[V]](),
		expiry:       orderedmap.NewWithCompare[expiryKey, struct{}](compareExpiry),
		expiresAfter: expiresAfter,
		log:          log,
		now:          time.Now,
	}
}

// SetClock - replace the time source used to stamp new items
func (p *Pool[V]) SetClock(now func() time.Time) {
	p.Lock()
	defer p.Unlock()

	p.now = now
}

// Name - the name given to New
func (p *Pool[V]) Name() string {
	return p.name
}

// Put - store a value, replacing any previous value and restarting
// its expiry time
func (p *Pool[V]) Put(key string, value V) {
	p.Lock()
	defer p.Unlock()

	if old, ok := p.items.Get(key); ok {
		p.unindex(key, old)
	}

	val := item[V]{object: value}
	if p.expiresAfter > 0 {
		val.expiresAt = p.now().Add(p.expiresAfter)
		p.expiry.Put(expiryKey{at: val.expiresAt.UnixNano(), key: key}, struct{}{})
	}
	p.items.Put(key, val)
}

// Get - fetch a value, items past their expiry time are not returned
// even if the cleaner has not removed them yet
func (p *Pool[V]) Get(key string) (V, bool) {
	p.RLock()
	defer p.RUnlock()

	val, ok := p.items.Get(key)
	if !ok || expired(val.expiresAt, p.now()) {
		var zero V
		return zero, false
	}
	return val.object, true
}

// Delete - remove a value, no action if the key is not present
func (p *Pool[V]) Delete(key string) {
	p.Lock()
	defer p.Unlock()

	if old, ok := p.items.Get(key); ok {
		p.unindex(key, old)
		p.items.Delete(key)
	}
}

// Size - number of stored items
func (p *Pool[V]) Size() int {
	p.RLock()
	defer p.RUnlock()

	return p.items.Size()
}

// Keys - all stored keys in ascending order
func (p *Pool[V]) Keys() []string {
	p.RLock()
	defer p.RUnlock()

	return p.items.Keys()
}

// Items - copy of all stored items
func (p *Pool[V]) Items() map[string]V {
	p.RLock()
	defer p.RUnlock()

	m := make(map[string]V, p.items.Size())
	p.items.Ascend(func(key string, val item[V]) bool {
		m[key] = val.object
		return true
	})
	return m
}

// Oldest - the key that will expire next
func (p *Pool[V]) Oldest() (string, bool) {
	p.RLock()
	defer p.RUnlock()

	k, ok := p.expiry.Min()
	if !ok {
		return "", false
	}
	return k.key, true
}

// Expire - remove all items whose expiry time is not after now
// returns the number of items removed
func (p *Pool[V]) Expire(now time.Time) int {
	p.Lock()
	defer p.Unlock()

	limit := now.UnixNano()
	n := 0
	for !p.expiry.IsEmpty() {
		k, _ := p.expiry.Min()
		if k.at > limit {
			break
		}
		p.expiry.DeleteMin()
		p.items.Delete(k.key)
		n += 1
	}
	if n > 0 && nil != p.log {
		p.log.Debugf("%s: expired: %d  remaining: %d", p.name, n, p.items.Size())
	}
	return n
}

// remove the expiry index entry of an item, lock must be held
func (p *Pool[V]) unindex(key string, val item[V]) {
	if val.expiresAt.IsZero() {
		return
	}
	p.expiry.Delete(expiryKey{at: val.expiresAt.UnixNano(), key: key})
}

func expired(expiresAt time.Time, now time.Time) bool {
	return !expiresAt.IsZero() && !now.Before(expiresAt)
}

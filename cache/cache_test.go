// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedmap/cache"
)

const logCategory = "testing"

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "cache-test")
	if nil != err {
		fmt.Printf("temporary directory error: %s\n", err)
		os.Exit(1)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		fmt.Printf("logger setup error: %s\n", err)
		os.Exit(1)
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

// a manually advanced clock
type clock struct {
	sync.Mutex
	t time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *clock) now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) time.Time {
	c.Lock()
	defer c.Unlock()
	c.t = c.t.Add(d)
	return c.t
}

func TestPool(t *testing.T) {
	p := cache.New[string]("test-b", 0, logger.New(logCategory))

	p.Put("key-one", "data-one")
	p.Put("key-two", "data-two")
	p.Put("key-remove-me", "to be deleted")
	p.Delete("key-remove-me")
	p.Put("key-three", "data-three")
	p.Put("key-one", "data-one")     // duplicate
	p.Put("key-three", "data-three") // duplicate
	p.Put("key-four", "data-four")
	p.Put("key-delete-this", "to be deleted")
	p.Put("key-five", "data-five")
	p.Delete("key-delete-this")
	p.Put("key-one", "data-one(NEW)") // duplicate
	p.Delete("key-never-added")

	expectedItems := map[string]string{
		"key-one":   "data-one(NEW)",
		"key-two":   "data-two",
		"key-three": "data-three",
		"key-four":  "data-four",
		"key-five":  "data-five",
	}

	assert.Equal(t, len(expectedItems), p.Size(), "size mismatch")
	assert.Equal(t, expectedItems, p.Items(), "items mismatch")
	assert.Equal(t, []string{"key-five", "key-four", "key-one", "key-three", "key-two"}, p.Keys(), "keys not ascending")

	value, ok := p.Get("key-one")
	assert.True(t, ok)
	assert.Equal(t, "data-one(NEW)", value)

	_, ok = p.Oldest()
	assert.False(t, ok, "non-expiring pool has an expiry index")
	assert.Equal(t, 0, p.Expire(time.Now().Add(1000*time.Hour)), "non-expiring pool expired items")
}

func TestExpiration(t *testing.T) {
	c := newClock()
	p := cache.New[int]("test-a", 3*time.Second, nil)
	p.SetClock(c.now)

	p.Put("a1", 1)
	c.advance(time.Second)
	p.Put("a2", 2)
	c.advance(time.Second)
	p.Put("a3", 3)

	oldest, ok := p.Oldest()
	assert.True(t, ok)
	assert.Equal(t, "a1", oldest)

	// refresh a1 so it becomes the newest
	p.Put("a1", 10)
	oldest, _ = p.Oldest()
	assert.Equal(t, "a2", oldest, "put did not restart expiry")

	// a2 expires at +4s
	now := c.advance(2 * time.Second)
	_, ok = p.Get("a2")
	assert.False(t, ok, "expired item visible before clean")
	assert.Equal(t, 3, p.Size(), "item removed before clean")

	assert.Equal(t, 1, p.Expire(now), "expire count")
	assert.Equal(t, []string{"a1", "a3"}, p.Keys())

	now = c.advance(time.Hour)
	assert.Equal(t, 2, p.Expire(now), "expire count")
	assert.Equal(t, 0, p.Size(), "items remain after expiry")
	_, ok = p.Oldest()
	assert.False(t, ok, "expiry index not empty")
}

func TestDeleteRemovesExpiry(t *testing.T) {
	c := newClock()
	p := cache.New[string]("test-d", time.Minute, nil)
	p.SetClock(c.now)

	p.Put("x", "one")
	p.Put("y", "two")
	p.Delete("x")

	oldest, ok := p.Oldest()
	assert.True(t, ok)
	assert.Equal(t, "y", oldest, "deleted key still indexed")
	assert.Equal(t, 1, p.Expire(c.advance(time.Hour)))
}

func TestCleaner(t *testing.T) {
	c := newClock()
	a := cache.New[int]("test-a", time.Second, nil)
	a.SetClock(c.now)
	b := cache.New[int]("test-b", 0, nil)

	for i := 0; i < 10; i += 1 {
		a.Put(fmt.Sprintf("a%02d", i), i)
		b.Put(fmt.Sprintf("b%02d", i), i)
	}

	cleaner := cache.NewCleaner(time.Minute, logger.New(logCategory), a, b)
	assert.Equal(t, 10, cleaner.Clean(c.advance(2*time.Second)), "clean count")
	assert.Equal(t, 0, a.Size())
	assert.Equal(t, 10, b.Size())
}

func TestStartCleaner(t *testing.T) {
	a := cache.New[int]("test-a", time.Millisecond, nil)
	a.Put("short", 1)

	bg := cache.StartCleaner(5*time.Millisecond, nil, a)
	defer bg.Stop()

	deadline := time.Now().Add(time.Second)
	for 0 != a.Size() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, 0, a.Size(), "cleaner did not run")
}

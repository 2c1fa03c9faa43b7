// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/background"
)

// Expirer - a pool that the cleaner can expire
type Expirer interface {
	Name() string
	Expire(now time.Time) int
}

// Cleaner - background process to expire items in a set of pools
type Cleaner struct {
	interval time.Duration
	pools    []Expirer
	log      *logger.L
}

// NewCleaner - create a cleaner, log may be nil
func NewCleaner(interval time.Duration, log *logger.L, pools ...Expirer) *Cleaner {
	return &Cleaner{
		interval: interval,
		pools:    pools,
		log:      log,
	}
}

// StartCleaner - run a cleaner in the background
// call Stop on the result to shut it down
func StartCleaner(interval time.Duration, log *logger.L, pools ...Expirer) *background.T {
	processes := background.Processes{
		NewCleaner(interval, log, pools...),
	}
	return background.Start(processes, nil)
}

// Run - background process loop
func (c *Cleaner) Run(args interface{}, shutdown <-chan struct{}) {
	if nil != c.log {
		c.log.Infof("starting cleaner for %d pools every %s", len(c.pools), c.interval)
	}
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			c.Clean(now)
		case <-shutdown:
			if nil != c.log {
				c.log.Info("cleaner stopped")
			}
			return
		}
	}
}

// Clean - expire every pool once
// returns the total number of items removed
func (c *Cleaner) Clean(now time.Time) int {
	total := 0
	for _, p := range c.pools {
		n := p.Expire(now)
		if n > 0 && nil != c.log {
			c.log.Debugf("pool: %s  expired: %d", p.Name(), n)
		}
		total += n
	}
	return total
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/orderedmap/background"
)

type printer struct {
	started chan struct{}
}

func (state *printer) Run(args interface{}, shutdown <-chan struct{}) {
	fmt.Printf("initialise: %v\n", args)
	close(state.started)
	<-shutdown
	fmt.Printf("finalise\n")
}

func Example() {
	proc := &printer{
		started: make(chan struct{}),
	}

	p := background.Start(background.Processes{proc}, "cleaner")
	<-proc.started
	p.Stop()

	// Output:
	// initialise: cleaner
	// finalise
}

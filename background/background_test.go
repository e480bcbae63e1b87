// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/promptnet/promptd/background"
)

// counts ticks until shutdown then records that it drained
type ticker struct {
	ticks   int64
	drained int32
	seen    interface{}
}

func (tk *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	tk.seen = args
	for {
		select {
		case <-shutdown:
			atomic.StoreInt32(&tk.drained, 1)
			return
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&tk.ticks, 1)
		}
	}
}

func TestStartAndStop(t *testing.T) {
	first := &ticker{}
	second := &ticker{}

	args := "shared"
	p := background.Start(background.Processes{first, second}, args)
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	for i, tk := range []*ticker{first, second} {
		assert.Equal(t, int32(1), atomic.LoadInt32(&tk.drained), "process %d did not drain", i)
		assert.NotZero(t, atomic.LoadInt64(&tk.ticks), "process %d never ran", i)
		assert.Equal(t, args, tk.seen, "process %d args", i)
	}

	// nothing runs after stop returns
	n := atomic.LoadInt64(&first.ticks)
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, n, atomic.LoadInt64(&first.ticks))
}

type once struct {
	runs int
}

func (o *once) Run(args interface{}, shutdown <-chan struct{}) {
	o.runs += 1
	<-shutdown
}

func TestStopTwice(t *testing.T) {
	o := &once{}
	p := background.Start(background.Processes{o}, nil)
	p.Stop()
	p.Stop()
	assert.Equal(t, 1, o.runs)
}

func TestStartEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}

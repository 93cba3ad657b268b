// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/plotd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "not zero at start")

	for i := 1; i <= 5; i += 1 {
		assert.Equal(t, uint64(i), c.Increment(), "wrong value after increment")
	}
	assert.Equal(t, uint64(5), c.Uint64(), "wrong value")

	for i := 4; i >= 0; i -= 1 {
		assert.Equal(t, uint64(i), c.Decrement(), "wrong value after decrement")
	}
	assert.True(t, c.IsZero(), "not zero at end")
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 20; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
				c.Decrement()
			}
			c.Increment()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(20), c.Uint64(), "lost updates")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - delay RPC calls to the limiter's rate
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/plotd/fault"
)

// Limit - wait until one call is allowed
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitN - wait until a call covering count items is allowed
//
// a count outside 1..maximumCount is charged as one call and
// returns ErrInvalidCount
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count < 1 || count > maximumCount {
		if err := wait(limiter, 1); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}
	return wait(limiter, count)
}

func wait(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

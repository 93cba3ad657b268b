// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for newly appended plots
//
// producers (the ingest follower) send without blocking; consumers
// (the publisher) obtain their own channel
package messagebus

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package plot - ownership records for the canvas
//
// Every confirmed sale produces one Record.  Records are never
// changed after they are created; the history of records only grows
// and a later record takes precedence over any earlier record it
// overlaps.
//
// A record has a compact binary form (Packed) used for storage and
// broadcast, and a JSON form used by the RPC layer and snapshots.
package plot

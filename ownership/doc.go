// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the append-only history of plot sales
//
// The history is kept in storage (one packed record per index, plus
// an owner index) and mirrored in memory so that Snapshot can hand
// a consistent copy to the purchase resolver without touching the
// database.
package ownership

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package purchase - work out what a buyer must pay for a plot
//
// Resolve takes the rectangle a buyer wants and the full ownership
// history (oldest first) and produces a Plan: the disjoint chunks
// that make up the request, the record each chunk is bought from,
// and the prices.  Resolve is a pure function; it neither keeps
// state nor modifies the history, so it may be called concurrently
// on a snapshot of the history.
//
// A request that cannot be satisfied is rejected with one of the
// fault.RejectionError values:
//
//	fault.ErrRegionTooLarge  - more than MaximumArea pixels requested
//	fault.ErrPlotNotForSale  - part of the request has a zero buyout price
//	fault.ErrInvalidState    - the history does not cover the request, or
//	                           the sweep produced overlapping pieces
package purchase

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package purchase

import (
	"math/big"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/rect"
)

// MaximumArea - largest number of pixels in a single purchase
const MaximumArea = 1000

// Resolve - compute the purchase plan for a request
//
// records are visited from the newest to the oldest; each one
// claims whatever part of the still unclaimed request it covers.
// Newer records shadow older ones so a pixel is always bought from
// its current owner.
func Resolve(request rect.Rect, history []plot.Record) (*Plan, error) {

	if !request.IsValid() {
		return nil, fault.ErrInvalidRectangle
	}
	if request.W > MaximumArea || request.H > MaximumArea || request.Area() > MaximumArea {
		return nil, fault.ErrRegionTooLarge
	}

	plan := &Plan{
		Request: request,
		Chunks:  []Chunk{},
	}
	plotPrice := new(big.Int)

	// unclaimed parts of the request, always pairwise disjoint
	working := []rect.Rect{request}

	for i := len(history) - 1; i >= 0 && len(working) > 0; i -= 1 {
		record := &history[i]

		for j := 0; j < len(working); {
			current := working[j]
			if !rect.Overlaps(current, record.Rect) {
				j += 1
				continue
			}

			overlap, err := rect.OverlapOf(current, record.Rect)
			if nil != err {
				return nil, fault.ErrInvalidState
			}

			if !record.IsForSale() {
				return nil, fault.ErrPlotNotForSale
			}

			cost := record.BuyoutPricePerPixelInWei.Big()
			cost.Mul(cost, new(big.Int).SetUint64(overlap.Area()))
			plotPrice.Add(plotPrice, cost)

			plan.Chunks = append(plan.Chunks, Chunk{
				Rect:  overlap,
				Index: i,
			})

			// the element at j is replaced by whatever is left of it;
			// the remaining pieces cannot overlap this record so they
			// are skipped naturally by the Overlaps test above
			working = replace(working, j, rect.Subtract(current, overlap))
			if rect.AnyOverlap(working) {
				return nil, fault.ErrInvalidState
			}
		}
	}

	if len(working) > 0 {
		return nil, fault.ErrInvalidState
	}

	fee := Fee(plotPrice)
	total := new(big.Int).Add(plotPrice, fee)

	// all three are non-negative by construction
	plan.PlotPrice, _ = plot.PriceFromBig(plotPrice)
	plan.FeePrice, _ = plot.PriceFromBig(fee)
	plan.PurchasePrice, _ = plot.PriceFromBig(total)

	return plan, nil
}

// replace - a new slice with the element at j removed and pieces
// added at the end
func replace(working []rect.Rect, j int, pieces []rect.Rect) []rect.Rect {
	result := make([]rect.Rect, 0, len(working)-1+len(pieces))
	result = append(result, working[:j]...)
	result = append(result, working[j+1:]...)
	return append(result, pieces...)
}

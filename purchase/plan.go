// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package purchase

import (
	"encoding/json"
	"math/big"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/rect"
)

// Chunk - part of the request bought from a single record
type Chunk struct {
	Rect  rect.Rect
	Index int // position of the source record in the history
}

// Plan - the result of a successful Resolve
type Plan struct {
	Request       rect.Rect
	Chunks        []Chunk
	PlotPrice     plot.Price
	FeePrice      plot.Price
	PurchasePrice plot.Price
}

// Payment - the total owed to one seller
type Payment struct {
	Owner  string     `json:"owner"`
	Amount plot.Price `json:"amount"`
}

// the wire form keeps chunks and their indices as parallel arrays
type planJSON struct {
	Request                     rect.Rect   `json:"request"`
	ChunksToPurchase            []rect.Rect `json:"chunksToPurchase"`
	ChunksToPurchaseAreaIndices []int       `json:"chunksToPurchaseAreaIndices"`
	PlotPrice                   plot.Price  `json:"plotPrice"`
	FeePrice                    plot.Price  `json:"feePrice"`
	PurchasePrice               plot.Price  `json:"purchasePrice"`
}

// MarshalJSON - convert to parallel arrays
func (plan *Plan) MarshalJSON() ([]byte, error) {
	j := planJSON{
		Request:                     plan.Request,
		ChunksToPurchase:            make([]rect.Rect, len(plan.Chunks)),
		ChunksToPurchaseAreaIndices: make([]int, len(plan.Chunks)),
		PlotPrice:                   plan.PlotPrice,
		FeePrice:                    plan.FeePrice,
		PurchasePrice:               plan.PurchasePrice,
	}
	for i, c := range plan.Chunks {
		j.ChunksToPurchase[i] = c.Rect
		j.ChunksToPurchaseAreaIndices[i] = c.Index
	}
	return json.Marshal(j)
}

// UnmarshalJSON - convert from parallel arrays
func (plan *Plan) UnmarshalJSON(s []byte) error {
	var j planJSON
	err := json.Unmarshal(s, &j)
	if nil != err {
		return err
	}
	if len(j.ChunksToPurchase) != len(j.ChunksToPurchaseAreaIndices) {
		return fault.ErrInvalidCount
	}

	plan.Request = j.Request
	plan.Chunks = make([]Chunk, len(j.ChunksToPurchase))
	for i, r := range j.ChunksToPurchase {
		plan.Chunks[i] = Chunk{
			Rect:  r,
			Index: j.ChunksToPurchaseAreaIndices[i],
		}
	}
	plan.PlotPrice = j.PlotPrice
	plan.FeePrice = j.FeePrice
	plan.PurchasePrice = j.PurchasePrice
	return nil
}

// Payments - amount owed to each seller
//
// history must be the same history the plan was resolved against.
// Owners appear in the order their first chunk was found; the
// amounts add up to the plot price.
func (plan *Plan) Payments(history []plot.Record) ([]Payment, error) {
	totals := make(map[string]*big.Int)
	order := []string{}

	for _, c := range plan.Chunks {
		if c.Index < 0 || c.Index >= len(history) {
			return nil, fault.ErrPlotNotFound
		}
		record := &history[c.Index]

		amount := record.BuyoutPricePerPixelInWei.Big()
		amount.Mul(amount, new(big.Int).SetUint64(c.Rect.Area()))

		total, ok := totals[record.Owner]
		if !ok {
			total = new(big.Int)
			totals[record.Owner] = total
			order = append(order, record.Owner)
		}
		total.Add(total, amount)
	}

	payments := make([]Payment, len(order))
	for i, owner := range order {
		amount, err := plot.PriceFromBig(totals[owner])
		if nil != err {
			return nil, err
		}
		payments[i] = Payment{
			Owner:  owner,
			Amount: amount,
		}
	}
	return payments, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plots

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/ownership"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/purchase"
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/rpc/ratelimit"
)

// Plots
// -----

const (
	MaximumOwnedCount = 100
	rateLimitPlots    = 200
	rateBurstPlots    = 100
)

// Plots - type for the RPC
type Plots struct {
	Log     *logger.L
	Limiter *rate.Limiter
	History ownership.History
}

// New - create the RPC service
func New(log *logger.L, history ownership.History) *Plots {
	return &Plots{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitPlots, rateBurstPlots),
		History: history,
	}
}

// Resolve a purchase
// ------------------

// ResolveArguments - the rectangle to buy
type ResolveArguments struct {
	Rect rect.Rect `json:"rect"`
}

// ResolveReply - either a plan or the reason for rejection
type ResolveReply struct {
	Valid         bool               `json:"valid"`
	Error         string             `json:"error,omitempty"`
	HistoryLength int                `json:"historyLength"`
	Id            *purchase.PlanId   `json:"id,omitempty"`
	Plan          *purchase.Plan     `json:"plan,omitempty"`
	Payments      []purchase.Payment `json:"payments,omitempty"`
}

// Resolve - compute the chunks and price of a purchase
func (plots *Plots) Resolve(arguments *ResolveArguments, reply *ResolveReply) error {

	if err := ratelimit.Limit(plots.Limiter); nil != err {
		return err
	}

	plots.Log.Infof("Plots.Resolve: %s", arguments.Rect)

	result, err := Quote(plots.History, arguments.Rect)
	if nil != err {
		return err
	}
	*reply = *result

	return nil
}

// Quote - resolve against a snapshot of the history
//
// a rejection is returned as an invalid reply rather than an error
func Quote(history ownership.History, request rect.Rect) (*ResolveReply, error) {
	records := history.Snapshot()

	plan, err := purchase.Resolve(request, records)
	if fault.IsErrRejection(err) {
		return &ResolveReply{
			Valid:         false,
			Error:         err.Error(),
			HistoryLength: len(records),
		}, nil
	}
	if nil != err {
		return nil, err
	}

	payments, err := plan.Payments(records)
	if nil != err {
		return nil, err
	}

	id := plan.Id()
	return &ResolveReply{
		Valid:         true,
		HistoryLength: len(records),
		Id:            &id,
		Plan:          plan,
		Payments:      payments,
	}, nil
}

// Get a single plot
// -----------------

// GetArguments - history index
type GetArguments struct {
	N uint64 `json:"n,string"`
}

// GetReply - the sale record
type GetReply struct {
	N      uint64       `json:"n,string"`
	Record *plot.Record `json:"record"`
}

// Get - fetch one record from the history
func (plots *Plots) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(plots.Limiter); nil != err {
		return err
	}

	record, err := plots.History.Get(arguments.N)
	if nil != err {
		return err
	}

	reply.N = arguments.N
	reply.Record = record

	return nil
}

// Count of plots
// --------------

// CountArguments - empty
type CountArguments struct{}

// CountReply - number of records and the canvas they cover
type CountReply struct {
	Count  uint64    `json:"count,string"`
	Canvas rect.Rect `json:"canvas"`
}

// Count - size of the history
func (plots *Plots) Count(arguments *CountArguments, reply *CountReply) error {

	if err := ratelimit.Limit(plots.Limiter); nil != err {
		return err
	}

	reply.Count = plots.History.Count()
	reply.Canvas = plots.History.Canvas()

	return nil
}

// Owner plots
// -----------

// OwnedArguments - owner and page
type OwnedArguments struct {
	Owner string `json:"owner"`
	Start uint64 `json:"start,string"` // first history index
	Count int    `json:"count"`        // number of records
}

// OwnedReply - page of plots
type OwnedReply struct {
	Next  uint64            `json:"next,string"` // Start value for the next call
	Plots []ownership.Owned `json:"plots"`
}

// Owned - list plots bought by an owner
func (plots *Plots) Owned(arguments *OwnedArguments, reply *OwnedReply) error {

	if err := ratelimit.LimitN(plots.Limiter, arguments.Count, MaximumOwnedCount); nil != err {
		return err
	}

	if "" == arguments.Owner {
		return fault.ErrMissingOwner
	}

	plots.Log.Infof("Plots.Owned: %+v", arguments)

	owned, err := plots.History.ListPlotsFor(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Plots = owned

	// if no record were found then Next is zero
	// otherwise the next possible number
	if 0 == len(owned) {
		reply.Next = 0
	} else {
		reply.Next = owned[len(owned)-1].N + 1
	}
	return nil
}

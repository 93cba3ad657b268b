// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/counter"
	"github.com/bitmark-inc/plotd/ownership"
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   string
	History ownership.History
	counter *counter.Counter
}

// New - create the RPC service
func New(log *logger.L, history ownership.History, start time.Time, version string, chain string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chain,
		History: history,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string    `json:"chain"`
	Canvas  rect.Rect `json:"canvas"`
	Plots   uint64    `json:"plots,string"`
	RPCs    uint64    `json:"rpcs"`
	Version string    `json:"version"`
	Uptime  string    `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Canvas = node.History.Canvas()
	reply.Plots = node.History.Count()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

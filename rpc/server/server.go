// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/counter"
	"github.com/bitmark-inc/plotd/ownership"
	"github.com/bitmark-inc/plotd/rpc/node"
	"github.com/bitmark-inc/plotd/rpc/plots"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, history ownership.History, version string, chain string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(plots.New(log, history))
	_ = server.Register(node.New(log, history, start, version, chain, rpcCount))

	return server
}

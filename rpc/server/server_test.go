// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/chain"
	"github.com/bitmark-inc/plotd/counter"
	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/rpc/fixtures"
	"github.com/bitmark-inc/plotd/rpc/mocks"
	"github.com/bitmark-inc/plotd/rpc/node"
	"github.com/bitmark-inc/plotd/rpc/plots"
	"github.com/bitmark-inc/plotd/rpc/server"
)

// following tests make sure proper methods are registered to server

func connect(t *testing.T, h *mocks.MockHistory) *rpc.Client {
	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), h, "1.0", chain.Local, &c)

	clientConn, serverConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return jsonrpc.NewClient(clientConn)
}

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	canvas, _ := rect.New(0, 0, 100, 100)
	h := mocks.NewMockHistory(ctl)
	h.EXPECT().Canvas().Return(canvas).Times(1)
	h.EXPECT().Count().Return(uint64(1)).Times(1)

	client := connect(t, h)
	defer client.Close()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Local, reply.Chain, "wrong chain")
	assert.Equal(t, canvas, reply.Canvas, "wrong canvas")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}

func TestPlotsResolve(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	canvas, _ := rect.New(0, 0, 100, 100)
	records := []plot.Record{
		{
			Rect:                     canvas,
			Owner:                    "genesis",
			BuyoutPricePerPixelInWei: plot.PriceFromUint64(100),
		},
	}
	h := mocks.NewMockHistory(ctl)
	h.EXPECT().Snapshot().Return(records).Times(1)

	client := connect(t, h)
	defer client.Close()

	request, _ := rect.New(25, 40, 12, 4)

	var reply plots.ResolveReply
	err := client.Call("Plots.Resolve", &plots.ResolveArguments{Rect: request}, &reply)
	assert.Nil(t, err, "wrong Plots.Resolve")
	assert.True(t, reply.Valid, "not valid")
	assert.Equal(t, "4800", reply.Plan.PlotPrice.String(), "wrong plot price")
	assert.Equal(t, "48", reply.Plan.FeePrice.String(), "wrong fee")
	assert.Equal(t, "4848", reply.Plan.PurchasePrice.String(), "wrong purchase price")
	assert.Equal(t, 1, len(reply.Plan.Chunks), "wrong chunk count")
	assert.Equal(t, request, reply.Plan.Chunks[0].Rect, "wrong chunk")
	assert.Equal(t, reply.Plan.Id(), *reply.Id, "id changed in transit")
}

func TestPlotsOwned(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHistory(ctl)

	client := connect(t, h)
	defer client.Close()

	var reply plots.OwnedReply
	err := client.Call("Plots.Owned", &plots.OwnedArguments{Owner: "x", Count: 0}, &reply)
	assert.NotNil(t, err, "wrong Plots.Owned")
	assert.Equal(t, fault.ErrInvalidCount.Error(), err.Error(), "wrong reply")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/rpc/plots"
)

// Quote - resolve a purchase of a region
func (client *Client) Quote(request rect.Rect) (*plots.ResolveReply, error) {

	args := plots.ResolveArguments{
		Rect: request,
	}

	client.printJson("Quote Request", args)

	reply := &plots.ResolveReply{}
	err := client.client.Call("Plots.Resolve", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Quote Reply", reply)

	return reply, nil
}

// GetPlot - fetch one history record
func (client *Client) GetPlot(n uint64) (*plots.GetReply, error) {

	args := plots.GetArguments{
		N: n,
	}

	client.printJson("Plot Request", args)

	reply := &plots.GetReply{}
	err := client.client.Call("Plots.Get", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Plot Reply", reply)

	return reply, nil
}

// Count - number of history records
func (client *Client) Count() (*plots.CountReply, error) {

	reply := &plots.CountReply{}
	err := client.client.Call("Plots.Count", plots.CountArguments{}, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Count Reply", reply)

	return reply, nil
}

// OwnedData - data for an ownership request
type OwnedData struct {
	Owner string
	Start uint64
	Count int
}

// GetOwned - obtain list of owned plots
func (client *Client) GetOwned(ownedConfig *OwnedData) (*plots.OwnedReply, error) {

	ownedArgs := plots.OwnedArguments{
		Owner: ownedConfig.Owner,
		Start: ownedConfig.Start,
		Count: ownedConfig.Count,
	}

	client.printJson("Owned Request", ownedArgs)

	reply := &plots.OwnedReply{}
	err := client.client.Call("Plots.Owned", ownedArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Owned Reply", reply)

	return reply, nil
}

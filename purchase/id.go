// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package purchase

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/util"
)

// PlanId - digest of a plan so that two parties can confirm they
// computed the same chunks and prices
type PlanId [48]byte

// Id - SHA3-384 over the packed plan
func (plan *Plan) Id() PlanId {
	digest := sha3.New384()
	digest.Write(plan.pack())
	var id PlanId
	copy(id[:], digest.Sum([]byte{}))
	return id
}

// pack - request, each chunk with its index, then the three prices
func (plan *Plan) pack() []byte {
	buffer := packRect(nil, plan.Request)
	buffer = append(buffer, util.ToVarint64(uint64(len(plan.Chunks)))...)
	for _, c := range plan.Chunks {
		buffer = packRect(buffer, c.Rect)
		buffer = append(buffer, util.ToVarint64(uint64(c.Index))...)
	}
	buffer = util.AppendBytes(buffer, plan.PlotPrice.Big().Bytes())
	buffer = util.AppendBytes(buffer, plan.FeePrice.Big().Bytes())
	return util.AppendBytes(buffer, plan.PurchasePrice.Big().Bytes())
}

func packRect(buffer []byte, r rect.Rect) []byte {
	buffer = append(buffer, util.ToSignedVarint64(int64(r.X))...)
	buffer = append(buffer, util.ToSignedVarint64(int64(r.Y))...)
	buffer = append(buffer, util.ToSignedVarint64(int64(r.W))...)
	return append(buffer, util.ToSignedVarint64(int64(r.H))...)
}

// String - base58 for the fmt package (%s)
func (id PlanId) String() string {
	return base58.Encode(id[:])
}

// GoString - for the fmt package (%#v)
func (id PlanId) GoString() string {
	return "<planid:" + base58.Encode(id[:]) + ">"
}

// MarshalText - convert plan id to base58 text
func (id PlanId) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(id[:])), nil
}

// UnmarshalText - convert base58 text into a plan id
func (id *PlanId) UnmarshalText(s []byte) error {
	buffer, err := base58.Decode(string(s))
	if nil != err {
		return fault.ErrNotAPlanId
	}
	if len(id) != len(buffer) {
		return fault.ErrNotAPlanId
	}
	copy(id[:], buffer)
	return nil
}

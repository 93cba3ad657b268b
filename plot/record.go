// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/bitmark-inc/plotd/rect"
)

// limits on the variable length fields
const (
	maxOwnerLength   = 256
	maxWebsiteLength = 2048
	maxIPFSLength    = 128
	maxTxHashLength  = 128
	maxPriceLength   = 64
)

// Record - one sale of a rectangular plot
type Record struct {
	Rect                     rect.Rect `json:"rect"`
	Owner                    string    `json:"owner"`
	BuyoutPricePerPixelInWei Price     `json:"buyoutPricePerPixelInWei"`
	Website                  string    `json:"website,omitempty"`
	IPFSHash                 string    `json:"ipfsHash,omitempty"`
	BlockNumber              uint64    `json:"blockNumber"`
	TxHash                   string    `json:"txHash,omitempty"`
}

// IsForSale - false when the owner set a zero buyout price
func (record *Record) IsForSale() bool {
	return !record.BuyoutPricePerPixelInWei.IsZero()
}

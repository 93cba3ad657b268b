// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package purchase

import (
	"math/big"
)

// the fee is feeRate/feeScale percent of the plot price
const (
	feeRate  = 1000
	feeScale = 1000 * 100
)

// Fee - the marketplace fee on a plot price, rounded down
func Fee(plotPrice *big.Int) *big.Int {
	fee := new(big.Int).Mul(plotPrice, big.NewInt(feeRate))
	return fee.Quo(fee, big.NewInt(feeScale))
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plot

import (
	"encoding/json"
	"math/big"

	"github.com/bitmark-inc/plotd/fault"
)

// Price - a non-negative amount of wei
//
// the zero value is zero wei; a Price is immutable so it can be
// copied freely, all arithmetic produces new values
type Price struct {
	value *big.Int
}

// NewPrice - parse a base 10 string
func NewPrice(s string) (Price, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return Price{}, fault.ErrInvalidPrice
	}
	return Price{value: v}, nil
}

// PriceFromUint64 - for constants and tests
func PriceFromUint64(n uint64) Price {
	return Price{value: new(big.Int).SetUint64(n)}
}

// PriceFromBig - takes a copy of a non-negative value
func PriceFromBig(b *big.Int) (Price, error) {
	if nil == b {
		return Price{}, nil
	}
	if b.Sign() < 0 {
		return Price{}, fault.ErrInvalidPrice
	}
	return Price{value: new(big.Int).Set(b)}, nil
}

// Big - a copy of the value for arithmetic
func (p Price) Big() *big.Int {
	if nil == p.value {
		return new(big.Int)
	}
	return new(big.Int).Set(p.value)
}

// IsZero - a zero buyout price means the plot is not for sale
func (p Price) IsZero() bool {
	return nil == p.value || 0 == p.value.Sign()
}

// Cmp - compare two prices in the manner of big.Int.Cmp
func (p Price) Cmp(q Price) int {
	return p.Big().Cmp(q.Big())
}

// String - base 10
func (p Price) String() string {
	if nil == p.value {
		return "0"
	}
	return p.value.String()
}

// MarshalText - base 10
func (p Price) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - base 10
func (p *Price) UnmarshalText(s []byte) error {
	n, err := NewPrice(string(s))
	if nil != err {
		return err
	}
	*p = n
	return nil
}

// MarshalJSON - prices are strings so no precision is lost in clients
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON - accepts a base 10 string
func (p *Price) UnmarshalJSON(s []byte) error {
	var str string
	err := json.Unmarshal(s, &str)
	if nil != err {
		return fault.ErrInvalidPrice
	}
	return p.UnmarshalText([]byte(str))
}

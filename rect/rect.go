// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rect

import (
	"encoding/json"
	"fmt"
	"math"
	"math/bits"

	"github.com/bitmark-inc/plotd/fault"
)

// Rect - a rectangle with positive width and height
type Rect struct {
	X  int `json:"x"`
	Y  int `json:"y"`
	W  int `json:"w"`
	H  int `json:"h"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// New - create a rectangle from its origin and size
func New(x int, y int, w int, h int) (Rect, error) {
	if w <= 0 || h <= 0 {
		return Rect{}, fault.ErrInvalidRectangle
	}
	if x > math.MaxInt-w || y > math.MaxInt-h {
		return Rect{}, fault.ErrRectangleOverflow
	}
	return build(x, y, w, h), nil
}

// build - internal constructor, caller guarantees positive size
func build(x int, y int, w int, h int) Rect {
	return Rect{
		X:  x,
		Y:  y,
		W:  w,
		H:  h,
		X2: x + w,
		Y2: y + h,
	}
}

// Area - number of pixels covered, saturates at math.MaxUint64
func (r Rect) Area() uint64 {
	hi, lo := bits.Mul64(uint64(r.W), uint64(r.H))
	if 0 != hi {
		return math.MaxUint64
	}
	return lo
}

// IsValid - true if size is positive and the bounds agree with it
func (r Rect) IsValid() bool {
	return r.W > 0 && r.H > 0 && r.X2 == r.X+r.W && r.Y2 == r.Y+r.H
}

// String - for logging and the command line
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// the JSON form carries x2/y2 for clients, but they are never trusted
type rectJSON struct {
	X  int `json:"x"`
	Y  int `json:"y"`
	W  int `json:"w"`
	H  int `json:"h"`
	X2 int `json:"x2,omitempty"`
	Y2 int `json:"y2,omitempty"`
}

// UnmarshalJSON - decode and recompute the derived bounds
func (r *Rect) UnmarshalJSON(s []byte) error {
	var j rectJSON
	err := json.Unmarshal(s, &j)
	if nil != err {
		return err
	}
	n, err := New(j.X, j.Y, j.W, j.H)
	if nil != err {
		return err
	}
	*r = n
	return nil
}

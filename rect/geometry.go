// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rect

import (
	"github.com/bitmark-inc/plotd/fault"
)

// Overlaps - true if the two rectangles share at least one pixel
func Overlaps(a Rect, b Rect) bool {
	return a.X < b.X2 && b.X < a.X2 && a.Y < b.Y2 && b.Y < a.Y2
}

// OverlapOf - the largest rectangle contained in both a and b
func OverlapOf(a Rect, b Rect) (Rect, error) {
	if !Overlaps(a, b) {
		return Rect{}, fault.ErrRectanglesDoNotOverlap
	}

	x := maxInt(a.X, b.X)
	y := maxInt(a.Y, b.Y)
	x2 := minInt(a.X2, b.X2)
	y2 := minInt(a.Y2, b.Y2)

	return build(x, y, x2-x, y2-y), nil
}

// Contains - true if inner lies completely inside outer
func Contains(outer Rect, inner Rect) bool {
	return outer.X <= inner.X && outer.Y <= inner.Y && inner.X2 <= outer.X2 && inner.Y2 <= outer.Y2
}

// Subtract - the pieces of base that remain after removing hole
//
// hole must lie inside base (as produced by OverlapOf).  The result
// is in the fixed order: top and bottom strips spanning the full
// width of base, then left and right strips limited to the rows of
// the hole.  Empty pieces are omitted, so subtracting base from
// itself gives an empty list.
func Subtract(base Rect, hole Rect) []Rect {
	pieces := []Rect{}

	// top
	if hole.Y > base.Y {
		pieces = append(pieces, build(base.X, base.Y, base.W, hole.Y-base.Y))
	}

	// bottom
	if hole.Y2 < base.Y2 {
		pieces = append(pieces, build(base.X, hole.Y2, base.W, base.Y2-hole.Y2))
	}

	// left
	if hole.X > base.X {
		pieces = append(pieces, build(base.X, hole.Y, hole.X-base.X, hole.H))
	}

	// right
	if hole.X2 < base.X2 {
		pieces = append(pieces, build(hole.X2, hole.Y, base.X2-hole.X2, hole.H))
	}

	return pieces
}

// AnyOverlap - true if any two rectangles in the list overlap
func AnyOverlap(rects []Rect) bool {
	for i := 0; i < len(rects); i += 1 {
		for j := i + 1; j < len(rects); j += 1 {
			if Overlaps(rects[i], rects[j]) {
				return true
			}
		}
	}
	return false
}

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a int, b int) int {
	if a < b {
		return a
	}
	return b
}

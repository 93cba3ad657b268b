// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rect - axis aligned integer rectangles on the canvas
//
// A rectangle covers the half-open region [X, X2) × [Y, Y2) so that
// two rectangles which only share an edge do not overlap.  X2 and Y2
// are always derived from X+W and Y+H and are recomputed whenever a
// rectangle is built or decoded.
package rect

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package plots - RPC calls to query the canvas and quote purchases
//
// every call is rate limited, a purchase that cannot be made is
// reported in the reply, not as an RPC error
package plots

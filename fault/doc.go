// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// and classes of error so that callers can decide how to report
// them, e.g. a RejectionError is a reason to decline a purchase
// and is returned to clients as data
package fault

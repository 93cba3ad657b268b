// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil - ZeroMQ helpers for CURVE encrypted servers
//
// key files hold one tagged hex key, e.g.
//
//	PUBLIC:6b1c...
//	PRIVATE:8f03...
package zmqutil

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS listeners for the RPC and HTTPS servers
package listeners

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/util"
)

const minConnectionCount = 1

// Listener - a set of listening sockets
type Listener interface {
	Serve() error
	Close() error
}

// canonicalise all listen addresses
func parseListenAddress(addresses []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addresses))
	for i, listen := range addresses {
		canonical, err := util.CanonicalIPandPort(listen)
		if nil != err {
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, err
		}
		parsed[i] = canonical
	}
	return parsed, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/counter"
	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/ownership"
	"github.com/bitmark-inc/plotd/rpc/certificate"
	"github.com/bitmark-inc/plotd/rpc/handler"
	"github.com/bitmark-inc/plotd/rpc/listeners"
	"github.com/bitmark-inc/plotd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connections on the TLS JSON-RPC listener
var connectionCountRPC counter.Counter

// Initialise - start the RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, history ownership.History, version string, chain string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, history, version, chain, &connectionCountRPC),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}

	httpsListener, err := newHTTPS(httpsConfiguration, history, version, chain)
	if nil != err {
		return err
	}

	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if nil != httpsListener {
		err = httpsListener.Serve()
		if nil != err {
			_ = rpcListener.Close()
			globalData.listeners = nil
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// create the HTTPS listener, nil if disabled
func newHTTPS(configuration *listeners.HTTPSConfiguration, history ownership.History, version string, chain string) (listeners.Listener, error) {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Load(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	s := server.Create(log, history, version, chain, &connectionCountRPC)
	hdlr := handler.New(log, s, history, time.Now(), version, chain, configuration.MaximumConnections)

	return listeners.NewHTTPS(configuration, log, tlsConfig, hdlr)
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		_ = l.Close()
	}
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

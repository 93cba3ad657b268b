// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ingest - follow the file of sale events written by the
// chain watcher and append each sale to the ownership history
package ingest

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/background"
	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/ownership"
	"github.com/bitmark-inc/plotd/storage"
)

// default fallback rescan period
const defaultPollInterval = 30 * time.Second

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	EventFile    string `gluamapper:"event_file" json:"event_file"`
	PollInterval int    `gluamapper:"poll_interval" json:"poll_interval"` // seconds
}

// globals for background process
type ingestData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	flw follower

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData ingestData

// Initialise - start following the event file
//
// an empty event file name disables ingestion
func Initialise(configuration *Configuration, history ownership.History) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("ingest")
	globalData.log.Info("starting…")

	if "" == configuration.EventFile {
		globalData.log.Info("no event file: ingest disabled")
		return nil
	}

	fileName, err := filepath.Abs(configuration.EventFile)
	if nil != err {
		return err
	}

	interval := defaultPollInterval
	if configuration.PollInterval > 0 {
		interval = time.Duration(configuration.PollInterval) * time.Second
	}

	globalData.flw.initialise(globalData.log, fileName, history, NewBookmark(storage.Pool.Counters), interval)

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.flw,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

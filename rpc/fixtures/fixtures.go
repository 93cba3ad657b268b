// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for the rpc package tests
package fixtures

import (
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

// LogCategory - logger tag used by tests
const LogCategory = "testing"

var (
	logDirectory string

	certificateOnce sync.Once
	certificate     string
	key             string
)

// SetupTestLogger - log to a temporary directory
func SetupTestLogger() {
	directory, err := os.MkdirTemp("", "plotd-rpc-")
	if nil != err {
		panic(err)
	}
	logDirectory = directory

	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	if "" != logDirectory {
		os.RemoveAll(logDirectory)
		logDirectory = ""
	}
}

// Certificate - PEM certificate for 127.0.0.1 and ::1
func Certificate() string {
	generate()
	return certificate
}

// Key - PEM private key matching Certificate
func Key() string {
	generate()
	return key
}

func generate() {
	certificateOnce.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		c, k, err := certgen.NewTLSCertPair("plotd test certificate", validUntil, false, []string{"127.0.0.1", "::1"})
		if nil != err {
			panic(err)
		}
		certificate = string(c)
		key = string(k)
	})
}

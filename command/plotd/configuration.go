// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/chain"
	"github.com/bitmark-inc/plotd/configuration"
	"github.com/bitmark-inc/plotd/ingest"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/publish"
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/rpc/listeners"
	"github.com/bitmark-inc/plotd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublishPublicKeyFile  = "publish.public"
	defaultPublishPrivateKeyFile = "publish.private"
	defaultKeyFile               = "rpc.key"
	defaultCertificateFile       = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "" // chosen from the chain name

	defaultLogDirectory = "log"
	defaultLogFile      = "plotd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultCanvasWidth  = 1000
	defaultCanvasHeight = 1000

	defaultSeedOwner = "0x0000000000000000000000000000000000000000"
	defaultSeedPrice = "10000000000000" // wei per pixel
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// CanvasType - size of the canvas, the origin is always 0,0
type CanvasType struct {
	Width  int `gluamapper:"width" json:"width"`
	Height int `gluamapper:"height" json:"height"`
}

// SeedType - the record that covers the canvas when the database is empty
type SeedType struct {
	Owner       string `gluamapper:"owner" json:"owner"`
	BuyoutPrice string `gluamapper:"buyout_price" json:"buyout_price"`
}

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Canvas        CanvasType   `gluamapper:"canvas" json:"canvas"`
	Seed          SeedType     `gluamapper:"seed" json:"seed"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Ingest     ingest.Configuration         `gluamapper:"ingest" json:"ingest"`
	ClientRPC  listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC   listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Publishing publish.Configuration        `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Live,

		Canvas: CanvasType{
			Width:  defaultCanvasWidth,
			Height: defaultCanvasHeight,
		},

		Seed: SeedType{
			Owner:       defaultSeedOwner,
			BuyoutPrice: defaultSeedPrice,
		},

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublishPublicKeyFile,
			PrivateKey: defaultPublishPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	// if database was not set
	if defaultDatabase == options.Database.Name {
		options.Database.Name = chain.DatabaseName(options.Chain)
	}

	if _, err := options.CanvasRect(); nil != err {
		return nil, fmt.Errorf("canvas: %d x %d error: %s", options.Canvas.Width, options.Canvas.Height, err)
	}
	if _, err := plot.NewPrice(options.Seed.BuyoutPrice); nil != err {
		return nil, fmt.Errorf("seed buyout price: %q error: %s", options.Seed.BuyoutPrice, err)
	}
	if "" == options.Seed.Owner {
		return nil, fmt.Errorf("seed owner cannot be blank")
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Ingest.EventFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// CanvasRect - the canvas as a rectangle at the origin
func (options *Configuration) CanvasRect() (rect.Rect, error) {
	return rect.New(0, 0, options.Canvas.Width, options.Canvas.Height)
}

// SeedPrice - the decoded genesis buyout price
func (options *Configuration) SeedPrice() (plot.Price, error) {
	return plot.NewPrice(options.Seed.BuyoutPrice)
}

// settings that are accepted but probably not intended
func (options *Configuration) warnings() []string {
	var w []string
	if price, err := options.SeedPrice(); nil == err && price.IsZero() {
		w = append(w, "seed buyout_price is 0: the initial canvas is not for sale")
	}
	return w
}

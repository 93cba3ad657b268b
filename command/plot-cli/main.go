// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

const defaultConnect = "127.0.0.1:2130"

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "plot-cli"
	app.Usage = "query a plotd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " plotd RPC `HOST:PORT`",
			EnvVar: "PLOTD_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "quote",
			Usage:     "resolve the purchase of a region",
			ArgsUsage: "\n   (* = required)",
			HideHelp:  true, // -h is the height
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "x",
					Value: 0,
					Usage: "*left edge `X`",
				},
				cli.IntFlag{
					Name:  "y",
					Value: 0,
					Usage: "*top edge `Y`",
				},
				cli.IntFlag{
					Name:  "w",
					Value: 0,
					Usage: "*width `W`",
				},
				cli.IntFlag{
					Name:  "h",
					Value: 0,
					Usage: "*height `H`",
				},
			},
			Action: runQuote,
		},
		{
			Name:      "plot",
			Usage:     "show one record of the ownership history",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "n",
					Value: 0,
					Usage: "*history index `N`",
				},
			},
			Action: runPlot,
		},
		{
			Name:   "count",
			Usage:  "number of records in the ownership history",
			Action: runCount,
		},
		{
			Name:      "owned",
			Usage:     "list plots owned",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner address `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `N`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:   "info",
			Usage:  "display plotd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display plot-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		connect := c.GlobalString("connect")
		if "" == connect {
			return ErrMissingConnect
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

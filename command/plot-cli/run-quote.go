// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/plotd/command/plot-cli/rpccalls"
	"github.com/bitmark-inc/plotd/rect"
)

func runQuote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	request, err := rect.New(c.Int("x"), c.Int("y"), c.Int("w"), c.Int("h"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "region: %s\n", request)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Quote(request)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

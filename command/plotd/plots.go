// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/ownership"
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/rpc/plots"
	"github.com/bitmark-inc/plotd/snapshot"
)

// write all plots to a snapshot file
func savePlots(history ownership.History, filename string) (int, error) {
	if nil == history {
		return 0, fault.ErrNotInitialised
	}

	fd, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		return 0, err
	}

	records := history.Snapshot()
	err = snapshot.Write(fd, history.Canvas(), records)
	if nil != err {
		fd.Close()
		os.Remove(filename)
		return 0, err
	}
	return len(records), fd.Close()
}

// restore plots from a snapshot file
//
// each record is appended so every ownership check is applied again
func loadPlots(history ownership.History, filename string) (int, error) {
	if nil == history {
		return 0, fault.ErrNotInitialised
	}
	if 0 != history.Count() {
		return 0, fault.ErrDatabaseIsNotEmpty
	}

	fd, err := os.Open(filename)
	if nil != err {
		return 0, err
	}
	defer fd.Close()

	header, records, err := snapshot.Read(fd)
	if nil != err {
		return 0, err
	}

	if header.Canvas != history.Canvas() {
		return 0, fmt.Errorf("snapshot canvas: %s does not match: %s", header.Canvas, history.Canvas())
	}

	for i := range records {
		_, err := history.Append(&records[i])
		if nil != err {
			return i, fmt.Errorf("plot: %d  error: %s  (%d plots were loaded, delete the database before loading again)", i, err, i)
		}
	}
	return len(records), nil
}

func resolvePlots(history ownership.History, request rect.Rect) (*plots.ResolveReply, error) {
	if nil == history {
		return nil, fault.ErrNotInitialised
	}
	return plots.Quote(history, request)
}

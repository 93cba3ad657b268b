// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package snapshot - export and import of the ownership history
//
// A snapshot is a zstd compressed stream of JSON lines: a header
// line followed by one plot record per line, oldest first.
package snapshot

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/rect"
)

// Version - current snapshot format
const Version = 1

// longest JSON line accepted when reading
const maximumLineLength = 64 * 1024

// Header - first line of a snapshot
type Header struct {
	Version int       `json:"version"`
	Count   uint64    `json:"count"`
	Canvas  rect.Rect `json:"canvas"`
}

// Write - compress the records to w
func Write(w io.Writer, canvas rect.Rect, records []plot.Record) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if nil != err {
		return err
	}

	buffered := bufio.NewWriterSize(enc, 128*1024)
	encoder := json.NewEncoder(buffered)

	header := Header{
		Version: Version,
		Count:   uint64(len(records)),
		Canvas:  canvas,
	}
	err = encoder.Encode(header)
	if nil != err {
		enc.Close()
		return err
	}

	for i := range records {
		err = encoder.Encode(&records[i])
		if nil != err {
			enc.Close()
			return err
		}
	}

	err = buffered.Flush()
	if nil != err {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Read - decompress a snapshot
//
// the number of records must agree with the header
func Read(r io.Reader) (*Header, []plot.Record, error) {
	dec, err := zstd.NewReader(r)
	if nil != err {
		return nil, nil, err
	}
	defer dec.Close()

	scanner := bufio.NewScanner(dec)
	scanner.Buffer(make([]byte, 4096), maximumLineLength)

	if !scanner.Scan() {
		if nil != scanner.Err() {
			return nil, nil, scanner.Err()
		}
		return nil, nil, fault.ErrSnapshotCountMismatch
	}

	var header Header
	err = json.Unmarshal(scanner.Bytes(), &header)
	if nil != err {
		return nil, nil, err
	}
	if Version != header.Version {
		return nil, nil, fault.ErrUnknownSnapshotVersion
	}

	records := make([]plot.Record, 0, header.Count)
	for scanner.Scan() {
		if uint64(len(records)) >= header.Count {
			return nil, nil, fault.ErrSnapshotCountMismatch
		}
		var record plot.Record
		err = json.Unmarshal(scanner.Bytes(), &record)
		if nil != err {
			return nil, nil, err
		}
		records = append(records, record)
	}
	if nil != scanner.Err() {
		return nil, nil, scanner.Err()
	}
	if uint64(len(records)) != header.Count {
		return nil, nil, fault.ErrSnapshotCountMismatch
	}

	return &header, records, nil
}

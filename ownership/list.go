// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/plot"
)

// Owned - a plot bought by an owner
//
// a later sale may have covered some or all of it
type Owned struct {
	N      uint64      `json:"n,string"`
	Record plot.Record `json:"record"`
}

// ListPlotsFor - fetch a list of plots for an owner
//
// starting at history index start, at most count items
func (h *history) ListPlotsFor(owner string, start uint64, count int) ([]Owned, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	prefix := ownerPrefix(owner)
	cursor := h.ownerIndex.NewFetchCursor().Seek(append(prefix, indexKey(start)...))

	// owner ⧺ index → nothing
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	result := make([]Owned, 0, len(items))

loop:
	for _, item := range items {
		split := len(item.Key) - uint64ByteSize
		if split <= 0 {
			logger.Panicf("split cannot be <= 0: %d", split)
		}
		if !bytes.Equal(prefix, item.Key[:split]) {
			break loop
		}

		n := binary.BigEndian.Uint64(item.Key[split:])
		record, err := h.Get(n)
		if nil != err {
			return nil, err
		}
		result = append(result, Owned{
			N:      n,
			Record: *record,
		})
	}

	return result, nil
}

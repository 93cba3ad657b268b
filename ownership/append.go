// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"
	"strings"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/storage"
	"github.com/bitmark-inc/plotd/util"
)

// Append - validate and store a new record
//
// returns the index of the record in the history
func (h *history) Append(record *plot.Record) (uint64, error) {
	return h.AppendWith(record, nil)
}

// AppendWith - as Append, extra writes are committed atomically
// with the record
func (h *history) AppendWith(record *plot.Record, extra Extra) (uint64, error) {
	h.Lock()
	defer h.Unlock()

	return h.appendLocked(record, extra)
}

// caller must hold the write lock
func (h *history) appendLocked(record *plot.Record, extra Extra) (uint64, error) {

	n := uint64(len(h.records))

	if "" == record.Owner {
		return 0, fault.ErrMissingOwner
	}
	if !record.Rect.IsValid() {
		return 0, fault.ErrInvalidRectangle
	}
	if 0 == n && record.Rect != h.canvas {
		return 0, fault.ErrFirstPlotMustCoverCanvas
	}
	if !rect.Contains(h.canvas, record.Rect) {
		return 0, fault.ErrPlotOutsideCanvas
	}
	if n > 0 && record.BlockNumber < h.records[n-1].BlockNumber {
		return 0, fault.ErrPlotOutOfOrder
	}

	var txKey []byte
	if "" != record.TxHash {
		txKey = []byte(strings.ToLower(record.TxHash))
		if h.txIndex.Has(txKey) {
			return 0, fault.ErrPlotExists
		}
	}

	packed, err := record.Pack()
	if nil != err {
		return 0, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	trx.Put(h.plots, indexKey(n), packed)
	trx.Put(h.ownerIndex, ownerKey(record.Owner, n), []byte{})
	if nil != txKey {
		trx.Put(h.txIndex, txKey, indexKey(n))
	}
	if nil != extra {
		extra(trx)
	}

	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	h.records = append(h.records, *record)

	h.log.Infof("plot: %d  %s  owner: %s  block: %d", n, record.Rect, record.Owner, record.BlockNumber)

	return n, nil
}

// Seed - append the canvas covering record to an empty history
//
// does nothing if the history already has records
func (h *history) Seed(owner string, price plot.Price) error {
	h.Lock()
	defer h.Unlock()

	if 0 != len(h.records) {
		return nil
	}
	_, err := h.appendLocked(&plot.Record{
		Rect:                     h.canvas,
		Owner:                    owner,
		BuyoutPricePerPixelInWei: price,
	}, nil)
	return err
}

// Seed - seed the default history
func Seed(owner string, price plot.Price) error {
	globalData.RLock()
	h := globalData.history
	globalData.RUnlock()

	if nil == h {
		return fault.ErrNotInitialised
	}
	return h.Seed(owner, price)
}

func indexKey(n uint64) []byte {
	key := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(key, n)
	return key
}

// owner ⧺ index, the owner is length prefixed so no owner's keys
// can be a prefix of another's
func ownerKey(owner string, n uint64) []byte {
	return append(ownerPrefix(owner), indexKey(n)...)
}

func ownerPrefix(owner string) []byte {
	return util.AppendBytes(nil, []byte(owner))
}

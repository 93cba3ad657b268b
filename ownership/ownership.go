// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/storage"
)

const uint64ByteSize = 8

// History - interface for the ownership history
type History interface {
	Append(*plot.Record) (uint64, error)
	AppendWith(*plot.Record, Extra) (uint64, error)
	Canvas() rect.Rect
	Count() uint64
	Get(uint64) (*plot.Record, error)
	ListPlotsFor(string, uint64, int) ([]Owned, error)
	Seed(string, plot.Price) error
	Snapshot() []plot.Record
}

// Extra - further writes committed in the same transaction as an
// appended record
type Extra func(storage.Transaction)

type history struct {
	sync.RWMutex

	log *logger.L

	plots      *storage.PoolHandle
	ownerIndex *storage.PoolHandle
	txIndex    *storage.PoolHandle
	canvas     rect.Rect

	// in memory copy of the plots pool, index order
	records []plot.Record
}

// globals for the default history
var globalData struct {
	sync.RWMutex
	history     *history
	initialised bool
}

// Initialise - load the history from storage
func Initialise(plots *storage.PoolHandle, ownerIndex *storage.PoolHandle, txIndex *storage.PoolHandle, canvas rect.Rect) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	h, err := newHistory(plots, ownerIndex, txIndex, canvas)
	if nil != err {
		return err
	}

	globalData.history = h
	globalData.initialised = true
	return nil
}

// Finalise - drop the default history
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.history.log.Info("shutting down…")
	globalData.history.log.Flush()

	globalData.history = nil
	globalData.initialised = false
	return nil
}

// Get - return the default history
func Get() History {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == globalData.history {
		return nil
	}
	return globalData.history
}

// New - create a history over its storage pools
func New(plots *storage.PoolHandle, ownerIndex *storage.PoolHandle, txIndex *storage.PoolHandle, canvas rect.Rect) (History, error) {
	return newHistory(plots, ownerIndex, txIndex, canvas)
}

func newHistory(plots *storage.PoolHandle, ownerIndex *storage.PoolHandle, txIndex *storage.PoolHandle, canvas rect.Rect) (*history, error) {
	if !canvas.IsValid() {
		return nil, fault.ErrInvalidRectangle
	}

	h := &history{
		log:        logger.New("ownership"),
		plots:      plots,
		ownerIndex: ownerIndex,
		txIndex:    txIndex,
		canvas:     canvas,
		records:    []plot.Record{},
	}

	err := plots.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if uint64ByteSize != len(key) {
			logger.Panicf("ownership: plots key: %x has wrong length", key)
		}
		n := binary.BigEndian.Uint64(key)
		if n != uint64(len(h.records)) {
			logger.Panicf("ownership: plots index: %d expected: %d", n, len(h.records))
		}
		record, _, err := plot.Packed(value).Unpack()
		if nil != err {
			logger.Panicf("ownership: plot: %d unpack error: %s", n, err)
		}
		h.records = append(h.records, *record)
		return nil
	})
	if nil != err {
		return nil, err
	}

	if len(h.records) > 0 && h.records[0].Rect != canvas {
		h.log.Criticalf("stored canvas: %s  configured canvas: %s", h.records[0].Rect, canvas)
		return nil, fault.ErrFirstPlotMustCoverCanvas
	}

	h.log.Infof("loaded: %d plots", len(h.records))
	return h, nil
}

// Canvas - the area covered by the first record
func (h *history) Canvas() rect.Rect {
	return h.canvas
}

// Count - number of records in the history
func (h *history) Count() uint64 {
	h.RLock()
	defer h.RUnlock()
	return uint64(len(h.records))
}

// Get - fetch a record by index
func (h *history) Get(n uint64) (*plot.Record, error) {
	h.RLock()
	defer h.RUnlock()

	if n >= uint64(len(h.records)) {
		return nil, fault.ErrPlotNotFound
	}
	record := h.records[n]
	return &record, nil
}

// Snapshot - copy of the history, oldest first
func (h *history) Snapshot() []plot.Record {
	h.RLock()
	defer h.RUnlock()

	records := make([]plot.Record, len(h.records))
	copy(records, h.records)
	return records
}

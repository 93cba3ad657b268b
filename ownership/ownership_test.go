// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/ownership"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/storage"
)

var canvas = rect.Rect{X: 0, Y: 0, W: 250, H: 250, X2: 250, Y2: 250}

func setup(t *testing.T) (string, func()) {
	directory, err := os.MkdirTemp("", "plotd-ownership-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}

	_ = logger.Initialise(logger.Configuration{
		Directory: directory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	database := filepath.Join(directory, "plotd.leveldb")
	err = storage.Initialise(database, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	return database, func() {
		storage.Finalise()
		logger.Finalise()
		os.RemoveAll(directory)
	}
}

func newHistory(t *testing.T) ownership.History {
	h, err := ownership.New(storage.Pool.Plots, storage.Pool.OwnerIndex, storage.Pool.TxIndex, canvas)
	if nil != err {
		t.Fatalf("ownership.New error: %s", err)
	}
	return h
}

func makeRecord(t *testing.T, owner string, block uint64, x int, y int, w int, h int) *plot.Record {
	r, err := rect.New(x, y, w, h)
	if nil != err {
		t.Fatalf("rect error: %s", err)
	}
	return &plot.Record{
		Rect:                     r,
		Owner:                    owner,
		BuyoutPricePerPixelInWei: plot.PriceFromUint64(100),
		BlockNumber:              block,
	}
}

func TestAppendValidation(t *testing.T) {
	_, teardown := setup(t)
	defer teardown()

	h := newHistory(t)

	_, err := h.Append(makeRecord(t, "buyer", 1, 0, 0, 10, 10))
	assert.Equal(t, fault.ErrFirstPlotMustCoverCanvas, err, "first plot not canvas")

	_, err = h.Append(makeRecord(t, "", 1, 0, 0, 250, 250))
	assert.Equal(t, fault.ErrMissingOwner, err, "missing owner")

	n, err := h.Append(makeRecord(t, "genesis", 5, 0, 0, 250, 250))
	assert.Nil(t, err, "genesis error")
	assert.Equal(t, uint64(0), n, "genesis index")

	_, err = h.Append(makeRecord(t, "buyer", 6, 245, 245, 10, 10))
	assert.Equal(t, fault.ErrPlotOutsideCanvas, err, "outside canvas")

	_, err = h.Append(makeRecord(t, "buyer", 4, 0, 0, 10, 10))
	assert.Equal(t, fault.ErrPlotOutOfOrder, err, "out of order")

	n, err = h.Append(makeRecord(t, "buyer", 5, 0, 0, 10, 10))
	assert.Nil(t, err, "same block error")
	assert.Equal(t, uint64(1), n, "second index")

	assert.Equal(t, uint64(2), h.Count(), "wrong count")
}

func TestDuplicateTransaction(t *testing.T) {
	_, teardown := setup(t)
	defer teardown()

	h := newHistory(t)
	err := h.Seed("genesis", plot.PriceFromUint64(1))
	assert.Nil(t, err, "seed error")

	sale := makeRecord(t, "buyer", 5, 0, 0, 10, 10)
	sale.TxHash = "0xabc"

	n, err := h.Append(sale)
	assert.Nil(t, err, "first append error")
	assert.Equal(t, uint64(1), n, "first index")

	_, err = h.Append(sale)
	assert.Equal(t, fault.ErrPlotExists, err, "same transaction stored twice")

	upper := *sale
	upper.TxHash = "0xABC"
	_, err = h.Append(&upper)
	assert.Equal(t, fault.ErrPlotExists, err, "hash case not ignored")

	// still rejected after a restart
	reloaded := newHistory(t)
	_, err = reloaded.Append(sale)
	assert.Equal(t, fault.ErrPlotExists, err, "index lost on reload")
	assert.Equal(t, uint64(2), reloaded.Count(), "wrong count")

	// records without a hash are not indexed
	_, err = reloaded.Append(makeRecord(t, "buyer", 6, 0, 0, 5, 5))
	assert.Nil(t, err, "unhashed append error")
	_, err = reloaded.Append(makeRecord(t, "buyer", 6, 0, 0, 5, 5))
	assert.Nil(t, err, "second unhashed append error")
	assert.Equal(t, uint64(4), reloaded.Count(), "wrong count")
}

func TestAppendWithExtra(t *testing.T) {
	_, teardown := setup(t)
	defer teardown()

	h := newHistory(t)
	err := h.Seed("genesis", plot.PriceFromUint64(1))
	assert.Nil(t, err, "seed error")

	key := []byte("extra")
	_, err = h.AppendWith(makeRecord(t, "buyer", 1, 0, 0, 10, 10), func(trx storage.Transaction) {
		trx.PutN(storage.Pool.Counters, key, 42)
	})
	assert.Nil(t, err, "append error")

	n, found := storage.Pool.Counters.GetN(key)
	assert.True(t, found, "extra write missing")
	assert.Equal(t, uint64(42), n, "wrong extra value")

	// a rejected record does not run the extra writes
	_, err = h.AppendWith(makeRecord(t, "buyer", 0, 0, 0, 10, 10), func(trx storage.Transaction) {
		trx.PutN(storage.Pool.Counters, key, 99)
	})
	assert.Equal(t, fault.ErrPlotOutOfOrder, err, "wrong error")

	n, _ = storage.Pool.Counters.GetN(key)
	assert.Equal(t, uint64(42), n, "extra written for rejected record")
}

func TestReload(t *testing.T) {
	_, teardown := setup(t)
	defer teardown()

	h := newHistory(t)
	err := h.Seed("genesis", plot.PriceFromUint64(1000))
	assert.Nil(t, err, "seed error")
	err = h.Seed("other", plot.PriceFromUint64(1))
	assert.Nil(t, err, "second seed error")

	_, err = h.Append(makeRecord(t, "alice", 10, 10, 10, 20, 20))
	assert.Nil(t, err, "append error")

	reloaded := newHistory(t)
	assert.Equal(t, uint64(2), reloaded.Count(), "wrong count after reload")

	genesis, err := reloaded.Get(0)
	assert.Nil(t, err, "get error")
	assert.Equal(t, "genesis", genesis.Owner, "second seed replaced genesis")
	assert.Equal(t, canvas, genesis.Rect, "wrong genesis rect")
	assert.Equal(t, "1000", genesis.BuyoutPricePerPixelInWei.String(), "wrong genesis price")

	_, err = reloaded.Get(2)
	assert.Equal(t, fault.ErrPlotNotFound, err, "missing plot")

	// a different canvas does not match the stored genesis
	_, err = ownership.New(storage.Pool.Plots, storage.Pool.OwnerIndex, storage.Pool.TxIndex, rect.Rect{X: 0, Y: 0, W: 100, H: 100, X2: 100, Y2: 100})
	assert.Equal(t, fault.ErrFirstPlotMustCoverCanvas, err, "canvas mismatch")
}

func TestSnapshotIsACopy(t *testing.T) {
	_, teardown := setup(t)
	defer teardown()

	h := newHistory(t)
	err := h.Seed("genesis", plot.PriceFromUint64(1))
	assert.Nil(t, err, "seed error")

	snapshot := h.Snapshot()
	assert.Equal(t, 1, len(snapshot), "wrong snapshot length")

	snapshot[0].Owner = "changed"
	_, err = h.Append(makeRecord(t, "alice", 1, 0, 0, 5, 5))
	assert.Nil(t, err, "append error")

	assert.Equal(t, 1, len(snapshot), "snapshot grew")
	record, _ := h.Get(0)
	assert.Equal(t, "genesis", record.Owner, "history modified through snapshot")
}

func TestListPlotsFor(t *testing.T) {
	_, teardown := setup(t)
	defer teardown()

	h := newHistory(t)
	err := h.Seed("genesis", plot.PriceFromUint64(1))
	assert.Nil(t, err, "seed error")

	owners := []string{"alice", "bob", "alice", "al", "alice", "bob"}
	for i, owner := range owners {
		_, err := h.Append(makeRecord(t, owner, uint64(i), i*10, i*10, 5, 5))
		assert.Nil(t, err, "%d: append error", i)
	}

	list, err := h.ListPlotsFor("alice", 0, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 3, len(list), "wrong alice count")
	assert.Equal(t, uint64(1), list[0].N, "wrong first index")
	assert.Equal(t, uint64(3), list[1].N, "wrong second index")
	assert.Equal(t, uint64(5), list[2].N, "wrong third index")
	assert.Equal(t, "alice", list[2].Record.Owner, "wrong owner")

	list, err = h.ListPlotsFor("alice", 2, 1)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1, len(list), "wrong page count")
	assert.Equal(t, uint64(3), list[0].N, "wrong page index")

	// "al" is a prefix of "alice" but must not see her plots
	list, err = h.ListPlotsFor("al", 0, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1, len(list), "wrong al count")
	assert.Equal(t, uint64(4), list[0].N, "wrong al index")

	list, err = h.ListPlotsFor("nobody", 0, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 0, len(list), "nobody has plots")

	_, err = h.ListPlotsFor("alice", 0, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestDefaultHistory(t *testing.T) {
	_, teardown := setup(t)
	defer teardown()

	err := ownership.Seed("genesis", plot.PriceFromUint64(1))
	assert.Equal(t, fault.ErrNotInitialised, err, "seed before initialise")

	err = ownership.Initialise(storage.Pool.Plots, storage.Pool.OwnerIndex, storage.Pool.TxIndex, canvas)
	assert.Nil(t, err, "initialise error")
	defer ownership.Finalise()

	err = ownership.Initialise(storage.Pool.Plots, storage.Pool.OwnerIndex, storage.Pool.TxIndex, canvas)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	err = ownership.Seed("genesis", plot.PriceFromUint64(1))
	assert.Nil(t, err, "seed error")
	assert.Equal(t, uint64(1), ownership.Get().Count(), "wrong count")
}

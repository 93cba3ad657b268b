// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ingest

import (
	"github.com/bitmark-inc/plotd/storage"
)

// counter key holding the byte offset of the next unread event
var offsetKey = []byte("ingest-offset")

// Bookmark - persistent position in the event file
type Bookmark interface {
	Offset() uint64
	SetOffset(uint64) error
	Stage(storage.Transaction, uint64)
}

type counterBookmark struct {
	pool *storage.PoolHandle
}

// NewBookmark - a bookmark kept in a counters pool
func NewBookmark(pool *storage.PoolHandle) Bookmark {
	return &counterBookmark{
		pool: pool,
	}
}

func (b *counterBookmark) Offset() uint64 {
	n, _ := b.pool.GetN(offsetKey)
	return n
}

func (b *counterBookmark) SetOffset(offset uint64) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	b.Stage(trx, offset)
	return trx.Commit()
}

// Stage - add the offset to an open transaction
func (b *counterBookmark) Stage(trx storage.Transaction, offset uint64) {
	trx.PutN(b.pool, offsetKey, offset)
}

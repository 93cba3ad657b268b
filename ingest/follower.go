// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ingest

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/messagebus"
	"github.com/bitmark-inc/plotd/ownership"
	"github.com/bitmark-inc/plotd/storage"
)

const readBufferSize = 65536

type follower struct {
	log      *logger.L
	fileName string
	history  ownership.History
	bookmark Bookmark
	interval time.Duration
}

func (f *follower) initialise(log *logger.L, fileName string, history ownership.History, bookmark Bookmark, interval time.Duration) {
	f.log = log
	f.fileName = fileName
	f.history = history
	f.bookmark = bookmark
	f.interval = interval
}

// Run - wait for the event file to change then process new lines
func (f *follower) Run(args interface{}, shutdown <-chan struct{}) {

	log := f.log

	log.Info("starting…")

	// nil channels block forever so the ticker still works
	// if a watcher cannot be created
	var events chan fsnotify.Event
	var watchErrors chan error

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
	} else {
		defer watcher.Close()

		// watch the directory so that a file created later is seen
		directory := filepath.Dir(f.fileName)
		err = watcher.Add(directory)
		if nil != err {
			log.Errorf("watch: %q  error: %s", directory, err)
		} else {
			events = watcher.Events
			watchErrors = watcher.Errors
		}
	}

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.process()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-events:
			if !ok {
				events = nil
				continue loop
			}
			if filepath.Clean(event.Name) != f.fileName {
				continue loop
			}
			log.Debugf("event: %s", event)
			if 0 != event.Op&(fsnotify.Write|fsnotify.Create) {
				f.process()
			}
			if 0 != event.Op&(fsnotify.Remove|fsnotify.Rename) {
				log.Warnf("event file: %q removed", f.fileName)
			}

		case err, ok := <-watchErrors:
			if !ok {
				watchErrors = nil
				continue loop
			}
			log.Errorf("watcher error: %s", err)

		case <-ticker.C:
			f.process()
		}
	}

	log.Info("stopped")
}

func (f *follower) process() {
	n, err := f.scan()
	if nil != err {
		f.log.Errorf("scan: %q  error: %s", f.fileName, err)
	}
	if n > 0 {
		f.log.Infof("appended: %d  total: %d", n, f.history.Count())
	}
}

// scan - read complete lines after the saved offset
//
// returns the number of records appended, a trailing line without a
// newline is left for the next scan
func (f *follower) scan() (int, error) {

	file, err := os.Open(f.fileName)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if nil != err {
		return 0, err
	}
	defer file.Close()

	info, err := file.Stat()
	if nil != err {
		return 0, err
	}

	offset := f.bookmark.Offset()
	size := uint64(info.Size())
	if size < offset {
		return 0, fault.ErrEventFileTruncated
	}
	if size == offset {
		return 0, nil
	}

	_, err = file.Seek(int64(offset), io.SeekStart)
	if nil != err {
		return 0, err
	}

	reader := bufio.NewReaderSize(file, readBufferSize)
	appended := 0

loop:
	for {
		line, err := reader.ReadBytes('\n')
		if io.EOF == err {
			break loop
		}
		if nil != err {
			return appended, err
		}

		start := offset
		offset += uint64(len(line))

		// an appended record carries the new offset in its own
		// transaction, anything skipped moves the offset alone
		if f.apply(start, offset, bytes.TrimSpace(line)) {
			appended += 1
			continue loop
		}

		err = f.bookmark.SetOffset(offset)
		if nil != err {
			return appended, err
		}
	}

	return appended, nil
}

// apply - append a single event, false if it was skipped
func (f *follower) apply(offset uint64, next uint64, line []byte) bool {
	if 0 == len(line) {
		return false
	}

	record, err := ParseEvent(line)
	if nil != err {
		f.log.Warnf("offset: %d  invalid event: %s", offset, err)
		return false
	}

	n, err := f.history.AppendWith(record, func(trx storage.Transaction) {
		f.bookmark.Stage(trx, next)
	})
	if nil != err {
		f.log.Warnf("offset: %d  block: %d  rejected: %s", offset, record.BlockNumber, err)
		return false
	}

	packed, err := record.Pack()
	if nil != err {
		f.log.Errorf("plot: %d  pack error: %s", n, err)
		return true
	}
	messagebus.Bus.Broadcast.Send("plot", packed)

	return true
}

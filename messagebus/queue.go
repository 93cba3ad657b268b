// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// default size of a listener's channel
const defaultQueueSize = 1000

// Message - a command with its packed parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - every listener receives every message sent after
// it started listening
type BroadcastQueue struct {
	sync.Mutex
	listeners []chan Message
	dropped   uint64
}

// Bus - the set of queues
var Bus struct {
	Broadcast *BroadcastQueue
}

func init() {
	Bus.Broadcast = &BroadcastQueue{}
}

// Send - queue a message for all listeners
//
// a listener whose channel is full misses the message; nothing is
// queued while there are no listeners
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	queue.Lock()
	defer queue.Unlock()

	m := Message{
		Command:    command,
		Parameters: parameters,
	}
	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
			queue.dropped += 1
		}
	}
}

// Chan - a new listener channel
//
// size zero gives the default queue size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - close all listener channels
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, listener := range queue.listeners {
		close(listener)
	}
	queue.listeners = nil
}

// Dropped - number of messages not delivered because a listener was full
func (queue *BroadcastQueue) Dropped() uint64 {
	queue.Lock()
	defer queue.Unlock()
	return queue.dropped
}

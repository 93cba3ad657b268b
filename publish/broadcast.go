// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/plotd/messagebus"
	"github.com/bitmark-inc/plotd/zmqutil"
)

const (
	heartbeatInterval = 60 * time.Second
	zapDomain         = "plotd-publish"
)

// sent when there is nothing else to publish
const commandHeartbeat = "heartbeat"

type broadcaster struct {
	log      *logger.L
	chain    string
	socket4  *zmq.Socket
	socket6  *zmq.Socket
	queue    <-chan messagebus.Message
	sequence uint64
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string, chain string, queue <-chan messagebus.Message) error {

	brdc.log = log
	brdc.chain = chain
	brdc.queue = queue

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	brdc.socket4 = socket4
	brdc.socket6 = socket6

	return nil
}

// Run - wait for plots and send them to subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

loop:
	for {
		log.Debug("waiting…")

		select {
		case <-shutdown:
			break loop

		case <-heartbeat.C:
			err := brdc.send(commandHeartbeat, [][]byte{sequenceBytes(brdc.sequence)})
			if nil != err {
				log.Errorf("heartbeat error: %s", err)
			}

		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Debugf("sending: %s", item.Command)

			err := brdc.send(item.Command, item.Parameters)
			if nil != err {
				log.Errorf("publish error: %s", err)
				continue loop
			}
			brdc.sequence += 1
		}
	}

	log.Info("shutting down…")
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send the chain name, command and parameters as one multipart message
func (brdc *broadcaster) send(command string, parameters [][]byte) error {
	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		_, err := socket.Send(brdc.chain, zmq.SNDMORE|zmq.DONTWAIT)
		if nil != err {
			return err
		}
		flags := zmq.DONTWAIT
		if len(parameters) > 0 {
			flags |= zmq.SNDMORE
		}
		_, err = socket.Send(command, flags)
		if nil != err {
			return err
		}
		last := len(parameters) - 1
		for i, p := range parameters {
			flags := zmq.DONTWAIT
			if i < last {
				flags |= zmq.SNDMORE
			}
			_, err = socket.SendBytes(p, flags)
			if nil != err {
				return err
			}
		}
	}
	return nil
}

func sequenceBytes(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

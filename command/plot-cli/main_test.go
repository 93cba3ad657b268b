// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/chain"
	"github.com/bitmark-inc/plotd/counter"
	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/rpc/fixtures"
	"github.com/bitmark-inc/plotd/rpc/mocks"
	"github.com/bitmark-inc/plotd/rpc/server"
)

func TestArgumentErrors(t *testing.T) {
	items := []struct {
		arguments []string
		err       error
	}{
		{[]string{"plot-cli", "--connect", "", "count"}, ErrMissingConnect},
		{[]string{"plot-cli", "quote", "-x", "1", "-y", "1", "-w", "0", "-h", "3"}, fault.ErrInvalidRectangle},
		{[]string{"plot-cli", "owned"}, fault.ErrMissingOwner},
		{[]string{"plot-cli", "owned", "-o", "alice", "-c", "0"}, fault.ErrInvalidCount},
	}

	for i, item := range items {
		w := &bytes.Buffer{}
		e := &bytes.Buffer{}
		err := newApp(w, e).Run(item.arguments)
		assert.Equal(t, item.err, err, "%d: %v", i, item.arguments)
	}
}

func TestVersion(t *testing.T) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	err := newApp(w, e).Run([]string{"plot-cli", "version"})
	assert.Nil(t, err, "version error")
	assert.Equal(t, version+"\n", w.String(), "version output")
}

func TestCountCommand(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	canvas, _ := rect.New(0, 0, 640, 480)
	h := mocks.NewMockHistory(ctl)
	h.EXPECT().Count().Return(uint64(12)).Times(1)
	h.EXPECT().Canvas().Return(canvas).Times(1)

	keyPair, err := tls.X509KeyPair([]byte(fixtures.Certificate()), []byte(fixtures.Key()))
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}
	l, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{Certificates: []tls.Certificate{keyPair}})
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	defer l.Close()

	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), h, "1.0", chain.Local, &c)
	go func() {
		conn, err := l.Accept()
		if nil != err {
			return
		}
		s.ServeCodec(jsonrpc.NewServerCodec(conn))
	}()

	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	err = newApp(w, e).Run([]string{"plot-cli", "--connect", l.Addr().String(), "count"})
	assert.Nil(t, err, "count error")

	var reply struct {
		Count  string    `json:"count"`
		Canvas rect.Rect `json:"canvas"`
	}
	err = json.Unmarshal(w.Bytes(), &reply)
	assert.Nil(t, err, "output is not JSON: %q", w.String())
	assert.Equal(t, "12", reply.Count, "count")
	assert.Equal(t, canvas, reply.Canvas, "canvas")
}

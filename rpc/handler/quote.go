// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/rpc/plots"
	"github.com/bitmark-inc/plotd/rpc/ratelimit"
)

const (
	quoteIdleTimeout  = 5 * time.Minute
	quoteWriteTimeout = 10 * time.Second
)

// Quote - websocket where each text message is a rectangle and each
// reply is the purchase plan for it against the current history
func (h *handler) Quote(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if nil != err {
		h.log.Debugf("quote upgrade error: %s", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(quoteReadLimit)

	h.log.Debugf("quote connection from: %q", r.RemoteAddr)

loop:
	for {
		_ = conn.SetReadDeadline(time.Now().Add(quoteIdleTimeout))
		messageType, message, err := conn.ReadMessage()
		if nil != err {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debugf("quote read error: %s", err)
			}
			break loop
		}
		if websocket.TextMessage != messageType {
			continue loop
		}

		reply := h.quote(message)

		_ = conn.SetWriteDeadline(time.Now().Add(quoteWriteTimeout))
		err = conn.WriteJSON(reply)
		if nil != err {
			h.log.Debugf("quote write error: %s", err)
			break loop
		}
	}
}

// quote - resolve a single message, errors become invalid replies
func (h *handler) quote(message []byte) *plots.ResolveReply {
	if err := ratelimit.Limit(h.limiter); nil != err {
		return &plots.ResolveReply{Error: err.Error()}
	}

	var request rect.Rect
	err := json.Unmarshal(message, &request)
	if nil != err {
		return &plots.ResolveReply{Error: err.Error()}
	}

	reply, err := plots.Quote(h.history, request)
	if nil != err {
		return &plots.ResolveReply{Error: err.Error()}
	}
	return reply
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTP end points of the HTTPS listener
package handler

import (
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/plotd/counter"
	"github.com/bitmark-inc/plotd/messagebus"
	"github.com/bitmark-inc/plotd/ownership"
	"github.com/bitmark-inc/plotd/rect"
)

const (
	rateLimitQuote = 100
	rateBurstQuote = 50
	quoteReadLimit = 4096
)

// Handler - the HTTP end points
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Quote(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	history            ownership.History
	start              time.Time
	version            string
	chain              string
	allow              map[string][]*net.IPNet
	maximumConnections uint64
	count              counter.Counter
	limiter            *rate.Limiter
	upgrader           websocket.Upgrader
}

// New - create the HTTP handlers
func New(log *logger.L, server *rpc.Server, history ownership.History, start time.Time, version string, chain string, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		history:            history,
		start:              start,
		version:            version,
		chain:              chain,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
		limiter:            rate.NewLimiter(rateLimitQuote, rateBurstQuote),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  quoteReadLimit,
			WriteBufferSize: 16384,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// SetAllow - per end point access control lists
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		sendInternalServerError(w)
		return
	}
}

// Details - to allow a GET for the same response as the Node.Info RPC
// with some extra data (restricted by the "details" allow list)
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.isAllowed("details", r) {
		h.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	type theReply struct {
		Chain             string    `json:"chain"`
		Canvas            rect.Rect `json:"canvas"`
		Plots             uint64    `json:"plots,string"`
		Connections       uint64    `json:"connections"`
		DroppedBroadcasts uint64    `json:"droppedBroadcasts"`
		Version           string    `json:"version"`
		Uptime            string    `json:"uptime"`
	}

	reply := theReply{
		Chain:             h.chain,
		Canvas:            h.history.Canvas(),
		Plots:             h.history.Count(),
		Connections:       h.count.Uint64(),
		DroppedBroadcasts: messagebus.Bus.Broadcast.Dropped(),
		Version:           h.version,
		Uptime:            time.Since(h.start).String(),
	}

	sendReply(w, reply)
}

// enter - count a connection, false if there are too many
func (h *handler) enter() bool {
	if h.count.Increment() > h.maximumConnections {
		h.count.Decrement()
		return false
	}
	return true
}

// isAllowed - check the remote address against an allow list
func (h *handler) isAllowed(name string, r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, network := range h.allow[name] {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

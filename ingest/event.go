// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ingest

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/plot"
)

// the only event type currently written by the watcher
const plotSoldEvent = "PlotSold"

const eventSchemaText = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "PlotSold",
  "type": "object",
  "required": ["event", "blockNumber", "owner", "rect", "buyoutPricePerPixelInWei"],
  "properties": {
    "event": { "const": "PlotSold" },
    "blockNumber": { "type": "integer", "minimum": 0 },
    "txHash": { "type": "string", "pattern": "^0x[0-9a-fA-F]*$", "maxLength": 128 },
    "owner": { "type": "string", "minLength": 1, "maxLength": 256 },
    "rect": {
      "type": "object",
      "required": ["x", "y", "w", "h"],
      "properties": {
        "x": { "type": "integer", "minimum": 0 },
        "y": { "type": "integer", "minimum": 0 },
        "w": { "type": "integer", "minimum": 1 },
        "h": { "type": "integer", "minimum": 1 }
      }
    },
    "buyoutPricePerPixelInWei": { "type": "string", "pattern": "^[0-9]{1,64}$" },
    "website": { "type": "string", "maxLength": 2048 },
    "ipfsHash": { "type": "string", "maxLength": 128 }
  }
}`

var eventSchema = jsonschema.MustCompileString("plot-sold.schema.json", eventSchemaText)

type event struct {
	Event string `json:"event"`
	plot.Record
}

// ParseEvent - validate one line of the event file and convert it to a record
func ParseEvent(line []byte) (*plot.Record, error) {
	var v interface{}
	err := json.Unmarshal(line, &v)
	if nil != err {
		return nil, err
	}

	err = eventSchema.Validate(v)
	if nil != err {
		return nil, err
	}

	var e event
	err = json.Unmarshal(line, &e)
	if nil != err {
		return nil, err
	}
	if plotSoldEvent != e.Event {
		return nil, fault.ErrInvalidEvent
	}

	return &e.Record, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package purchase_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/purchase"
)

func layeredPlan(t *testing.T) (*purchase.Plan, []plot.Record) {
	history := []plot.Record{
		makeRecord(t, "first", 10, 0, 0, 10, 10),
		makeRecord(t, "second", 20, 5, 5, 10, 10),
	}
	plan, err := purchase.Resolve(mustRect(t, 0, 0, 10, 10), history)
	if nil != err {
		t.Fatalf("resolve error: %s", err)
	}
	return plan, history
}

func TestPlanJSON(t *testing.T) {
	plan, _ := layeredPlan(t)

	buffer, err := json.Marshal(plan)
	assert.Nil(t, err, "marshal error")

	var fields map[string]interface{}
	err = json.Unmarshal(buffer, &fields)
	assert.Nil(t, err, "unmarshal to map error")
	assert.Equal(t, "1250", fields["plotPrice"], "wrong plotPrice")
	assert.Equal(t, "12", fields["feePrice"], "wrong feePrice")
	assert.Equal(t, "1262", fields["purchasePrice"], "wrong purchasePrice")
	assert.Equal(t, []interface{}{1.0, 0.0, 0.0}, fields["chunksToPurchaseAreaIndices"], "wrong indices")
	assert.Equal(t, 3, len(fields["chunksToPurchase"].([]interface{})), "wrong chunk count")

	var decoded purchase.Plan
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, plan.Request, decoded.Request, "wrong request")
	assert.Equal(t, plan.Chunks, decoded.Chunks, "wrong chunks")
	assert.Equal(t, plan.Id(), decoded.Id(), "id changed by round trip")

	err = json.Unmarshal([]byte(`{"chunksToPurchase":[],"chunksToPurchaseAreaIndices":[1]}`), &decoded)
	assert.Equal(t, fault.ErrInvalidCount, err, "mismatched arrays accepted")
}

func TestPlanId(t *testing.T) {
	plan, history := layeredPlan(t)

	again, err := purchase.Resolve(plan.Request, history)
	assert.Nil(t, err, "resolve error")
	assert.Equal(t, plan.Id(), again.Id(), "same inputs gave different ids")

	history[1].BuyoutPricePerPixelInWei = plot.PriceFromUint64(21)
	changed, err := purchase.Resolve(plan.Request, history)
	assert.Nil(t, err, "resolve error")
	assert.NotEqual(t, plan.Id(), changed.Id(), "different prices gave the same id")

	id := plan.Id()
	text, err := id.MarshalText()
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, id.String(), string(text), "text and string differ")
	assert.Equal(t, "<planid:"+id.String()+">", fmt.Sprintf("%#v", id), "wrong GoString")

	var decoded purchase.PlanId
	err = decoded.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, id, decoded, "wrong id")

	err = decoded.UnmarshalText([]byte("abc"))
	assert.Equal(t, fault.ErrNotAPlanId, err, "short id accepted")
	err = decoded.UnmarshalText([]byte("0OIl"))
	assert.Equal(t, fault.ErrNotAPlanId, err, "invalid base58 accepted")
}

func TestPaymentsInvalidIndex(t *testing.T) {
	plan, history := layeredPlan(t)

	_, err := plan.Payments(history[:1])
	assert.Equal(t, fault.ErrPlotNotFound, err, "wrong error")
}

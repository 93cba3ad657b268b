// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plot_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/rect"
)

func makeRecord(t *testing.T) *plot.Record {
	r, err := rect.New(25, 40, 12, 4)
	if nil != err {
		t.Fatalf("rect error: %s", err)
	}
	price, err := plot.NewPrice("123456789012345678901234567890")
	if nil != err {
		t.Fatalf("price error: %s", err)
	}
	return &plot.Record{
		Rect:                     r,
		Owner:                    "0x627306090abab3a6e1400e9345bc60c78a8bef57",
		BuyoutPricePerPixelInWei: price,
		Website:                  "https://example.com/gallery",
		IPFSHash:                 "QmT78zSuBmuS4z925WZfrqQ1qHaJ56DQaTfyMUF7F8ff5o",
		BlockNumber:              4567890,
		TxHash:                   "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060",
	}
}

func assertSameRecord(t *testing.T, expected *plot.Record, actual *plot.Record) {
	assert.Equal(t, expected.Rect, actual.Rect, "wrong rect")
	assert.Equal(t, expected.Owner, actual.Owner, "wrong owner")
	assert.Equal(t, expected.BuyoutPricePerPixelInWei.String(), actual.BuyoutPricePerPixelInWei.String(), "wrong price")
	assert.Equal(t, expected.Website, actual.Website, "wrong website")
	assert.Equal(t, expected.IPFSHash, actual.IPFSHash, "wrong ipfs hash")
	assert.Equal(t, expected.BlockNumber, actual.BlockNumber, "wrong block number")
	assert.Equal(t, expected.TxHash, actual.TxHash, "wrong tx hash")
}

func TestPackUnpack(t *testing.T) {
	record := makeRecord(t)

	packed, err := record.Pack()
	assert.Nil(t, err, "pack error")

	unpacked, n, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(packed), n, "wrong length consumed")
	assertSameRecord(t, record, unpacked)

	// zero price and empty optional fields
	record.BuyoutPricePerPixelInWei = plot.Price{}
	record.Website = ""
	record.IPFSHash = ""
	record.TxHash = ""
	packed, err = record.Pack()
	assert.Nil(t, err, "pack error")
	unpacked, _, err = packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assertSameRecord(t, record, unpacked)
	assert.False(t, unpacked.IsForSale(), "zero price is for sale")
}

func TestUnpackTruncated(t *testing.T) {
	packed, err := makeRecord(t).Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	for i := 0; i < len(packed); i += 1 {
		_, _, err := packed[:i].Unpack()
		if nil == err {
			t.Errorf("%d: truncated record unpacked", i)
		}
	}
}

func TestUnpackConcatenated(t *testing.T) {
	first := makeRecord(t)
	second := makeRecord(t)
	second.Owner = "second"
	second.BlockNumber += 1

	p1, _ := first.Pack()
	p2, _ := second.Pack()
	joined := append(append(plot.Packed{}, p1...), p2...)

	r1, n, err := joined.Unpack()
	assert.Nil(t, err, "first unpack error")
	assertSameRecord(t, first, r1)

	r2, m, err := joined[n:].Unpack()
	assert.Nil(t, err, "second unpack error")
	assertSameRecord(t, second, r2)
	assert.Equal(t, len(joined), n+m, "wrong total length")
}

func TestPackInvalid(t *testing.T) {
	record := makeRecord(t)
	record.Owner = ""
	_, err := record.Pack()
	assert.Equal(t, fault.ErrMissingOwner, err, "missing owner")

	record = makeRecord(t)
	record.Rect = rect.Rect{X: 1, Y: 1, W: 0, H: 1}
	_, err = record.Pack()
	assert.Equal(t, fault.ErrInvalidRectangle, err, "zero width")

	record = makeRecord(t)
	record.Website = strings.Repeat("w", 4096)
	_, err = record.Pack()
	assert.Equal(t, fault.ErrRecordTooLong, err, "long website")

	_, _, err = plot.Packed{0x07}.Unpack()
	assert.Equal(t, fault.ErrUnknownRecordVersion, err, "wrong version")
}

func TestPrice(t *testing.T) {
	p, err := plot.NewPrice("1000000000000000000000")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "1000000000000000000000", p.String(), "wrong string")
	assert.False(t, p.IsZero(), "non-zero is zero")

	// arithmetic on the copy leaves the price unchanged
	b := p.Big()
	b.SetInt64(5)
	assert.Equal(t, "1000000000000000000000", p.String(), "price was modified")

	var zero plot.Price
	assert.True(t, zero.IsZero(), "zero value")
	assert.Equal(t, "0", zero.String(), "zero string")
	assert.Equal(t, 1, p.Cmp(zero), "compare")

	invalid := []string{"", "-1", "1.5", "0x10", "ten"}
	for i, s := range invalid {
		_, err := plot.NewPrice(s)
		assert.Equal(t, fault.ErrInvalidPrice, err, "%d: %q accepted", i, s)
	}
}

func TestRecordJSON(t *testing.T) {
	record := makeRecord(t)

	buffer, err := json.Marshal(record)
	assert.Nil(t, err, "marshal error")
	assert.Contains(t, string(buffer), `"buyoutPricePerPixelInWei":"123456789012345678901234567890"`, "price not a string")

	var decoded plot.Record
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assertSameRecord(t, record, &decoded)

	err = json.Unmarshal([]byte(`{"rect":{"x":0,"y":0,"w":1,"h":1},"owner":"a","buyoutPricePerPixelInWei":10}`), &decoded)
	assert.Equal(t, fault.ErrInvalidPrice, err, "numeric price accepted")
}

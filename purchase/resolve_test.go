// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package purchase_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/plot"
	"github.com/bitmark-inc/plotd/purchase"
	"github.com/bitmark-inc/plotd/rect"
)

const (
	canvasWidth  = 250
	canvasHeight = 250
)

func mustRect(t *testing.T, x int, y int, w int, h int) rect.Rect {
	r, err := rect.New(x, y, w, h)
	if nil != err {
		t.Fatalf("rect.New(%d, %d, %d, %d) error: %s", x, y, w, h, err)
	}
	return r
}

func makeRecord(t *testing.T, owner string, price uint64, x int, y int, w int, h int) plot.Record {
	return plot.Record{
		Rect:                     mustRect(t, x, y, w, h),
		Owner:                    owner,
		BuyoutPricePerPixelInWei: plot.PriceFromUint64(price),
	}
}

func TestSingleRecord(t *testing.T) {
	history := []plot.Record{
		makeRecord(t, "genesis", 100, 0, 0, canvasWidth, canvasHeight),
	}
	request := mustRect(t, 25, 40, 12, 4)

	plan, err := purchase.Resolve(request, history)
	assert.Nil(t, err, "resolve error")

	assert.Equal(t, []purchase.Chunk{{Rect: request, Index: 0}}, plan.Chunks, "wrong chunks")
	assert.Equal(t, "4800", plan.PlotPrice.String(), "wrong plot price")
	assert.Equal(t, "48", plan.FeePrice.String(), "wrong fee price")
	assert.Equal(t, "4848", plan.PurchasePrice.String(), "wrong purchase price")
}

func TestLayeredRecords(t *testing.T) {
	history := []plot.Record{
		makeRecord(t, "first", 10, 0, 0, 10, 10),
		makeRecord(t, "second", 20, 5, 5, 10, 10),
	}
	request := mustRect(t, 0, 0, 10, 10)

	plan, err := purchase.Resolve(request, history)
	assert.Nil(t, err, "resolve error")

	expected := []purchase.Chunk{
		{Rect: mustRect(t, 5, 5, 5, 5), Index: 1},
		{Rect: mustRect(t, 0, 0, 10, 5), Index: 0},
		{Rect: mustRect(t, 0, 5, 5, 5), Index: 0},
	}
	assert.Equal(t, expected, plan.Chunks, "wrong chunks")
	assert.Equal(t, "1250", plan.PlotPrice.String(), "wrong plot price")
	assert.Equal(t, "12", plan.FeePrice.String(), "wrong fee price")
	assert.Equal(t, "1262", plan.PurchasePrice.String(), "wrong purchase price")

	payments, err := plan.Payments(history)
	assert.Nil(t, err, "payments error")
	assert.Equal(t, 2, len(payments), "wrong payment count")
	assert.Equal(t, "second", payments[0].Owner, "wrong first payee")
	assert.Equal(t, "500", payments[0].Amount.String(), "wrong first amount")
	assert.Equal(t, "first", payments[1].Owner, "wrong second payee")
	assert.Equal(t, "750", payments[1].Amount.String(), "wrong second amount")
}

func TestRegionTooLarge(t *testing.T) {
	history := []plot.Record{
		makeRecord(t, "genesis", 100, 0, 0, canvasWidth, canvasHeight),
	}

	_, err := purchase.Resolve(mustRect(t, 0, 0, 40, 25), history)
	assert.Nil(t, err, "exactly the maximum area rejected")

	_, err = purchase.Resolve(mustRect(t, 0, 0, 1001, 1), history)
	assert.Equal(t, fault.ErrRegionTooLarge, err, "wrong error")

	_, err = purchase.Resolve(mustRect(t, 0, 0, 32, 32), history)
	assert.Equal(t, fault.ErrRegionTooLarge, err, "wrong error")

	// area is checked before the history is consulted
	_, err = purchase.Resolve(mustRect(t, 0, 0, 100, 100), nil)
	assert.Equal(t, fault.ErrRegionTooLarge, err, "wrong error")

	// sizes whose product wraps a 64 bit integer
	_, err = purchase.Resolve(mustRect(t, 0, 0, 1<<32, 1<<32), history)
	assert.Equal(t, fault.ErrRegionTooLarge, err, "wrapped area accepted")

	_, err = purchase.Resolve(mustRect(t, 0, 0, 1<<62, 4), history)
	assert.Equal(t, fault.ErrRegionTooLarge, err, "wrapped area accepted")

	_, err = purchase.Resolve(mustRect(t, 0, 0, 1, 1001), history)
	assert.Equal(t, fault.ErrRegionTooLarge, err, "wrong error")
}

func TestPlotNotForSale(t *testing.T) {
	history := []plot.Record{
		makeRecord(t, "genesis", 100, 0, 0, canvasWidth, canvasHeight),
		makeRecord(t, "keeper", 0, 50, 50, 10, 10),
	}

	_, err := purchase.Resolve(mustRect(t, 45, 45, 10, 10), history)
	assert.Equal(t, fault.ErrPlotNotForSale, err, "partial overlap")

	_, err = purchase.Resolve(mustRect(t, 52, 52, 2, 2), history)
	assert.Equal(t, fault.ErrPlotNotForSale, err, "inside")

	plan, err := purchase.Resolve(mustRect(t, 60, 50, 10, 10), history)
	assert.Nil(t, err, "adjacent plot rejected")
	assert.Equal(t, "10000", plan.PlotPrice.String(), "wrong plot price")

	// a newer record on top makes the area available again
	history = append(history, makeRecord(t, "buyer", 7, 50, 50, 10, 10))
	plan, err = purchase.Resolve(mustRect(t, 52, 52, 2, 2), history)
	assert.Nil(t, err, "shadowed plot still rejected")
	assert.Equal(t, "28", plan.PlotPrice.String(), "wrong plot price")
}

func TestInvalidState(t *testing.T) {
	_, err := purchase.Resolve(mustRect(t, 0, 0, 2, 2), nil)
	assert.Equal(t, fault.ErrInvalidState, err, "empty history")

	history := []plot.Record{
		makeRecord(t, "small", 5, 0, 0, 10, 10),
	}
	_, err = purchase.Resolve(mustRect(t, 5, 5, 10, 10), history)
	assert.Equal(t, fault.ErrInvalidState, err, "request not covered")

	_, err = purchase.Resolve(mustRect(t, 20, 20, 1, 1), history)
	assert.Equal(t, fault.ErrInvalidState, err, "request outside history")
}

func TestInvalidRequest(t *testing.T) {
	history := []plot.Record{
		makeRecord(t, "genesis", 100, 0, 0, canvasWidth, canvasHeight),
	}
	_, err := purchase.Resolve(rect.Rect{X: 1, Y: 1, W: 0, H: 3, X2: 1, Y2: 4}, history)
	assert.Equal(t, fault.ErrInvalidRectangle, err, "zero width")
}

func TestHistoryUnchanged(t *testing.T) {
	history := []plot.Record{
		makeRecord(t, "first", 10, 0, 0, 10, 10),
		makeRecord(t, "second", 20, 5, 5, 10, 10),
	}
	before := make([]plot.Record, len(history))
	copy(before, history)

	_, err := purchase.Resolve(mustRect(t, 0, 0, 10, 10), history)
	assert.Nil(t, err, "resolve error")

	for i := range history {
		assert.Equal(t, before[i].Rect, history[i].Rect, "%d: rect changed", i)
		assert.Equal(t, before[i].BuyoutPricePerPixelInWei.String(), history[i].BuyoutPricePerPixelInWei.String(), "%d: price changed", i)
	}
}

func TestLargePrices(t *testing.T) {
	price, err := plot.NewPrice("340282366920938463463374607431768211457")
	if nil != err {
		t.Fatalf("price error: %s", err)
	}
	history := []plot.Record{
		{
			Rect:                     mustRect(t, 0, 0, canvasWidth, canvasHeight),
			Owner:                    "whale",
			BuyoutPricePerPixelInWei: price,
		},
	}

	plan, err := purchase.Resolve(mustRect(t, 0, 0, 10, 100), history)
	assert.Nil(t, err, "resolve error")

	expected := price.Big()
	expected.Mul(expected, big.NewInt(1000))
	assert.Equal(t, expected.String(), plan.PlotPrice.String(), "wrong plot price")

	fee := new(big.Int).Quo(expected, big.NewInt(100))
	assert.Equal(t, fee.String(), plan.FeePrice.String(), "wrong fee price")
	assert.Equal(t, new(big.Int).Add(expected, fee).String(), plan.PurchasePrice.String(), "wrong purchase price")
}

func TestFee(t *testing.T) {
	items := []struct {
		plot int64
		fee  int64
	}{
		{0, 0},
		{1, 0},
		{99, 0},
		{100, 1},
		{199, 1},
		{1250, 12},
		{4800, 48},
		{1000000, 10000},
	}
	for i, item := range items {
		fee := purchase.Fee(big.NewInt(item.plot))
		assert.Equal(t, item.fee, fee.Int64(), "%d: fee on %d", i, item.plot)
	}
}

// build a random history: canvas covering genesis then smaller plots
func randomHistory(t *testing.T, r *rand.Rand, count int) []plot.Record {
	history := []plot.Record{
		makeRecord(t, "genesis", uint64(1+r.Intn(50)), 0, 0, canvasWidth, canvasHeight),
	}
	for i := 1; i < count; i += 1 {
		w := 1 + r.Intn(40)
		h := 1 + r.Intn(40)
		x := r.Intn(canvasWidth - w + 1)
		y := r.Intn(canvasHeight - h + 1)
		owner := string(rune('a' + r.Intn(6)))
		history = append(history, makeRecord(t, owner, uint64(1+r.Intn(1000)), x, y, w, h))
	}
	return history
}

func randomRequest(t *testing.T, r *rand.Rand) rect.Rect {
	w := 1 + r.Intn(40)
	h := 1 + r.Intn(purchase.MaximumArea/w)
	if h > 40 {
		h = 40
	}
	x := r.Intn(canvasWidth - w + 1)
	y := r.Intn(canvasHeight - h + 1)
	return mustRect(t, x, y, w, h)
}

// newest record containing the pixel, by brute force
func ownerOf(history []plot.Record, x int, y int) int {
	pixel := rect.Rect{X: x, Y: y, W: 1, H: 1, X2: x + 1, Y2: y + 1}
	for i := len(history) - 1; i >= 0; i -= 1 {
		if rect.Contains(history[i].Rect, pixel) {
			return i
		}
	}
	return -1
}

func TestRandomHistories(t *testing.T) {
	r := rand.New(rand.NewSource(20200101))

	for round := 0; round < 200; round += 1 {
		history := randomHistory(t, r, 1+r.Intn(30))
		request := randomRequest(t, r)

		plan, err := purchase.Resolve(request, history)
		if nil != err {
			t.Fatalf("%d: resolve %s error: %s", round, request, err)
		}

		rects := make([]rect.Rect, len(plan.Chunks))
		area := uint64(0)
		for i, c := range plan.Chunks {
			rects[i] = c.Rect
			area += c.Rect.Area()

			if !rect.Contains(request, c.Rect) {
				t.Errorf("%d: chunk %s outside request %s", round, c.Rect, request)
			}
			if !rect.Contains(history[c.Index].Rect, c.Rect) {
				t.Errorf("%d: chunk %s outside record %d", round, c.Rect, c.Index)
			}
			for k := c.Index + 1; k < len(history); k += 1 {
				if rect.Overlaps(history[k].Rect, c.Rect) {
					t.Errorf("%d: chunk %s from %d shadowed by newer record %d", round, c.Rect, c.Index, k)
				}
			}
		}
		if rect.AnyOverlap(rects) {
			t.Errorf("%d: chunks overlap", round)
		}
		if request.Area() != area {
			t.Errorf("%d: chunk area: %d  request area: %d", round, area, request.Area())
		}

		// pixel by pixel price must agree with the plan
		expected := new(big.Int)
		for y := request.Y; y < request.Y2; y += 1 {
			for x := request.X; x < request.X2; x += 1 {
				n := ownerOf(history, x, y)
				expected.Add(expected, history[n].BuyoutPricePerPixelInWei.Big())
			}
		}
		if expected.String() != plan.PlotPrice.String() {
			t.Errorf("%d: plot price: %s  expected: %s", round, plan.PlotPrice, expected)
		}

		// payments account for the whole plot price
		payments, err := plan.Payments(history)
		if nil != err {
			t.Fatalf("%d: payments error: %s", round, err)
		}
		sum := new(big.Int)
		for _, p := range payments {
			sum.Add(sum, p.Amount.Big())
		}
		if sum.String() != plan.PlotPrice.String() {
			t.Errorf("%d: payments: %s  plot price: %s", round, sum, plan.PlotPrice)
		}
	}
}

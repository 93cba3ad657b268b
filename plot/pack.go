// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plot

import (
	"math/big"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/rect"
	"github.com/bitmark-inc/plotd/util"
)

// Packed - binary form of a record
type Packed []byte

// current packed layout
const recordVersion = 1

// Pack - turn a record into bytes
//
// Varint64(version) followed by the rectangle as signed varints
// (x, y, w, h), the block number, then the length prefixed fields:
// owner, price (big endian magnitude), website, ipfs hash, tx hash
func (record *Record) Pack() (Packed, error) {
	if !record.Rect.IsValid() {
		return nil, fault.ErrInvalidRectangle
	}
	if "" == record.Owner {
		return nil, fault.ErrMissingOwner
	}

	price := record.BuyoutPricePerPixelInWei.Big().Bytes()

	if len(record.Owner) > maxOwnerLength ||
		len(record.Website) > maxWebsiteLength ||
		len(record.IPFSHash) > maxIPFSLength ||
		len(record.TxHash) > maxTxHashLength ||
		len(price) > maxPriceLength {
		return nil, fault.ErrRecordTooLong
	}

	buffer := util.ToVarint64(recordVersion)
	buffer = append(buffer, util.ToSignedVarint64(int64(record.Rect.X))...)
	buffer = append(buffer, util.ToSignedVarint64(int64(record.Rect.Y))...)
	buffer = append(buffer, util.ToSignedVarint64(int64(record.Rect.W))...)
	buffer = append(buffer, util.ToSignedVarint64(int64(record.Rect.H))...)
	buffer = append(buffer, util.ToVarint64(record.BlockNumber)...)
	buffer = util.AppendBytes(buffer, []byte(record.Owner))
	buffer = util.AppendBytes(buffer, price)
	buffer = util.AppendBytes(buffer, []byte(record.Website))
	buffer = util.AppendBytes(buffer, []byte(record.IPFSHash))
	buffer = util.AppendBytes(buffer, []byte(record.TxHash))

	return buffer, nil
}

// Unpack - turn bytes back into a record
//
// returns the number of bytes consumed so records can be
// concatenated
func (packed Packed) Unpack() (*Record, int, error) {

	version, n := util.FromVarint64(packed)
	if 0 == n {
		return nil, 0, fault.ErrRecordTruncated
	}
	if recordVersion != version {
		return nil, 0, fault.ErrUnknownRecordVersion
	}

	var coordinates [4]int
	for i := range coordinates {
		v, count := util.FromSignedVarint64(packed[n:])
		if 0 == count {
			return nil, 0, fault.ErrRecordTruncated
		}
		coordinates[i] = int(v)
		n += count
	}
	r, err := rect.New(coordinates[0], coordinates[1], coordinates[2], coordinates[3])
	if nil != err {
		return nil, 0, err
	}

	blockNumber, count := util.FromVarint64(packed[n:])
	if 0 == count {
		return nil, 0, fault.ErrRecordTruncated
	}
	n += count

	fields := []struct {
		maximum int
		data    []byte
	}{
		{maximum: maxOwnerLength},
		{maximum: maxPriceLength},
		{maximum: maxWebsiteLength},
		{maximum: maxIPFSLength},
		{maximum: maxTxHashLength},
	}
	for i := range fields {
		data, count := util.FetchBytes(packed[n:], fields[i].maximum)
		if 0 == count {
			return nil, 0, fault.ErrRecordTruncated
		}
		fields[i].data = data
		n += count
	}

	owner := string(fields[0].data)
	if "" == owner {
		return nil, 0, fault.ErrMissingOwner
	}

	record := &Record{
		Rect:                     r,
		Owner:                    owner,
		BuyoutPricePerPixelInWei: Price{value: new(big.Int).SetBytes(fields[1].data)},
		Website:                  string(fields[2].data),
		IPFSHash:                 string(fields[3].data),
		BlockNumber:              blockNumber,
		TxHash:                   string(fields[4].data),
	}
	return record, n, nil
}

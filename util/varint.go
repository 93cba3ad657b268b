// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, least significant group first, the top bit
// of each byte set if more follow; the ninth byte carries a full
// eight bits so the encoding never exceeds Varint64MaximumBytes
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count := 0; count < len(buffer); count += 1 {
		b := uint64(buffer[count])
		if count == Varint64MaximumBytes-1 {
			return result | b<<shift, count + 1
		}
		result |= (b & 0x7f) << shift
		if 0 == b&0x80 {
			return result, count + 1
		}
		shift += 7
	}
	return 0, 0
}

// ToSignedVarint64 - zig-zag encode so small negative values stay short
func ToSignedVarint64(value int64) []byte {
	return ToVarint64(uint64(value<<1) ^ uint64(value>>63))
}

// FromSignedVarint64 - reverse of ToSignedVarint64
func FromSignedVarint64(buffer []byte) (int64, int) {
	u, n := FromVarint64(buffer)
	return int64(u>>1) ^ -int64(u&1), n
}

// ClippedVarint64 - return a positive clipped value as an int
// any value outside the range minimum..maximum is an error
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, count := FromVarint64(buffer)
	if 0 == count {
		return 0, 0
	}
	if value > uint64(maximum) || value < uint64(minimum) {
		return 0, 0
	}
	return int(value), count
}

// AppendBytes - append a Varint64 length followed by the data
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// FetchBytes - read a length prefixed byte slice written by AppendBytes
//
// the result is a copy; returns nil, 0 if the buffer is truncated or
// the length exceeds maximum
func FetchBytes(buffer []byte, maximum int) ([]byte, int) {
	length, n := FromVarint64(buffer)
	if 0 == n || length > uint64(maximum) || uint64(len(buffer)-n) < length {
		return nil, 0
	}
	data := make([]byte, length)
	copy(data, buffer[n:])
	return data, n + int(length)
}

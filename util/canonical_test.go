// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/bitmark-inc/plotd/fault"
	"github.com/bitmark-inc/plotd/util"
)

func TestCanonical(t *testing.T) {

	testData := []struct {
		in  string
		out string
	}{
		{"127.0.0.1:2150", "127.0.0.1:2150"},
		{" 127.0.0.1:1 ", "127.0.0.1:1"},
		{"127.0.0.1:65535", "127.0.0.1:65535"},
		{"*:2150", "0.0.0.0:2150"},
		{"[::1]:2150", "[::1]:2150"},
		{"[0:0::0:0]:2150", "[::]:2150"},
	}

	for i, d := range testData {
		c, err := util.CanonicalIPandPort(d.in)
		if nil != err {
			t.Errorf("failed on:[%d] %q  err = %v", i, d.in, err)
			continue
		}
		if d.out != c {
			t.Errorf("converted:[%d]: %q  to: %q  expected: %q", i, d.in, c, d.out)
		}
	}
}

func TestCanonicalInvalid(t *testing.T) {

	testData := []struct {
		in  string
		err error
	}{
		{"127.1:2150", fault.ErrInvalidIPAddress},
		{"256.0.0.0:2150", fault.ErrInvalidIPAddress},
		{"[]:2150", fault.ErrInvalidIPAddress},
		{"[1ffff::]:2150", fault.ErrInvalidIPAddress},
		{"127.0.0.1", fault.ErrInvalidIPAddress},
		{"127.0.0.1:0", fault.ErrInvalidPortNumber},
		{"127.0.0.1:65536", fault.ErrInvalidPortNumber},
		{"127.0.0.1:http", fault.ErrInvalidPortNumber},
	}

	for i, d := range testData {
		c, err := util.CanonicalIPandPort(d.in)
		if d.err != err {
			t.Errorf("failed on:[%d] %q  result: %q  err = %v", i, d.in, c, err)
		}
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindPools(t *testing.T) {
	var good struct {
		A *PoolHandle `prefix:"A"`
		Z *PoolHandle `prefix:"Z"`
	}
	err := bindPools(&good, nil)
	assert.Nil(t, err, "bind error")
	assert.Equal(t, byte('A'), good.A.prefix, "prefix")
	assert.Equal(t, []byte{'B'}, good.A.limit, "limit")
	assert.Equal(t, []byte{'['}, good.Z.limit, "limit")
	assert.Nil(t, good.Z.dataAccess, "access")
}

func TestBindPoolsErrors(t *testing.T) {
	var missing struct {
		A *PoolHandle
	}
	assert.NotNil(t, bindPools(&missing, nil), "missing prefix")

	var long struct {
		A *PoolHandle `prefix:"AB"`
	}
	assert.NotNil(t, bindPools(&long, nil), "long prefix")

	var duplicate struct {
		A *PoolHandle `prefix:"A"`
		B *PoolHandle `prefix:"A"`
	}
	assert.NotNil(t, bindPools(&duplicate, nil), "duplicate prefix")
}

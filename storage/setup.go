// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/plotd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Plots      *PoolHandle `prefix:"P"`
	OwnerIndex *PoolHandle `prefix:"O"`
	TxIndex    *PoolHandle `prefix:"T"`
	Counters   *PoolHandle `prefix:"N"`
	TestData   *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion uint32 = 0x100

// holds the database handle
var poolData struct {
	sync.RWMutex
	db     *leveldb.DB
	access Access
	trx    Transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.ErrAlreadyInitialised
	}

	db, err := openDB(database, readOnly)
	if nil != err {
		return err
	}

	access := newDA(db, new(leveldb.Batch), newCache())
	err = bindPools(&Pool, access)
	if nil != err {
		db.Close()
		Pool = pools{}
		return err
	}

	poolData.db = db
	poolData.access = access
	poolData.trx = newTransaction(access)
	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		poolData.db.Close()
	}
	poolData.db = nil
	poolData.access = nil
	poolData.trx = nil
	Pool = pools{}
}

// give every *PoolHandle field of the struct its own key prefix
// from the one character "prefix" tag
func bindPools(target interface{}, access Access) error {
	value := reflect.ValueOf(target).Elem()
	structType := value.Type()

	seen := make(map[byte]string)
	for i := 0; i < structType.NumField(); i += 1 {
		field := structType.Field(i)

		tag := field.Tag.Get("prefix")
		if 1 != len(tag) {
			return fmt.Errorf("pool: %s has invalid prefix: %q", field.Name, tag)
		}
		prefix := tag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s has the same prefix as: %s", field.Name, other)
		}
		seen[prefix] = field.Name

		var limit []byte
		if prefix < 0xff {
			limit = []byte{prefix + 1}
		}

		value.Field(i).Set(reflect.ValueOf(&PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}))
	}
	return nil
}

// open the database and check or set its version
func openDB(name string, readOnly bool) (*leveldb.DB, error) {
	db, err := leveldb.OpenFile(name, &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return nil, err
	}

	version, err := readVersion(db)
	switch {
	case nil != err:
		// fall through to close
	case version > currentDBVersion:
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		err = fault.ErrIncompatibleDatabase
	case 0 == version && !readOnly:
		// new database
		err = writeVersion(db, currentDBVersion)
	}
	if nil != err {
		db.Close()
		return nil, err
	}
	return db, nil
}

// zero if the database has no version
func readVersion(db *leveldb.DB) (uint32, error) {
	value, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	}
	if nil != err {
		return 0, err
	}
	if 4 != len(value) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(value))
	}
	return binary.BigEndian.Uint32(value), nil
}

func writeVersion(db *leveldb.DB, version uint32) error {
	value := make([]byte, 4)
	binary.BigEndian.PutUint32(value, version)
	return db.Put(versionKey, value, nil)
}

// NewDBTransaction - start the single write transaction
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	trx := poolData.trx
	poolData.RUnlock()

	if nil == trx {
		return nil, fault.ErrNotInitialised
	}
	err := trx.Begin()
	if nil != err {
		return nil, err
	}
	return trx, nil
}

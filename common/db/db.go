// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 数据库操作的接口和后端实现
package db

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFoundInDb error
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// ErrUnknownBackend error
var ErrUnknownBackend = errors.New("ErrUnknownBackend")

//KV 读写接口，执行器看到的状态数据库
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

//KVDB 带列表查询的本地数据库接口
type KVDB interface {
	KV
	List(prefix []byte, count int32, direction int32) ([][]byte, error)
}

//DB 数据库后端
type DB interface {
	KV
	IteratorDB
	Delete(key []byte) error
	NewBatch(sync bool) Batch
	Stats() map[string]string
	Close()
}

//IteratorDB 迭代
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

//Batch 批量写，Write 要么全部成功要么全部失败
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 迭代器
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Key() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//const
const (
	GoLevelDBBackendStr  = "leveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "badger"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var (
	backends   = map[string]dbCreator{}
	backendsMu sync.Mutex
)

func registerDBCreator(backend string, creator dbCreator, force bool) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 按后端名字创建数据库
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	backendsMu.Lock()
	creator, ok := backends[backend]
	backendsMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, backend)
	}
	db, err := creator(name, dir, cache)
	if err != nil {
		dblog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, err
	}
	return db, nil
}

// CopyBytes copy
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}

// prefixEnd 前缀的上界(不含)，nil 表示没有上界
func prefixEnd(prefix []byte) []byte {
	end := CopyBytes(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

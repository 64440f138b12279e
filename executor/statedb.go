// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	"github.com/33cn/tournament/common/db"
	"github.com/33cn/tournament/types"
)

// StateDB 单个交易使用的状态数据库。
// 读穿透到后端，写只进入内存，Flush 时一次性写入 batch。
type StateDB struct {
	backend db.KV
	cache   map[string][]byte
	txcache map[string][]byte
	dirty   map[string]bool
	keys    []string
	intx    bool
}

// NewStateDB new state db
func NewStateDB(backend db.KV) *StateDB {
	return &StateDB{
		backend: backend,
		cache:   make(map[string][]byte),
		dirty:   make(map[string]bool),
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 事务中的修改进入 cache
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
		s.dirty[k] = true
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return notFoundIfNil(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return notFoundIfNil(value)
	}
	value, err := s.backend.Get(key)
	if err == db.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	//get 的值可以写入cache，因为没有对系统的值做修改
	s.cache[skey] = value
	return value, nil
}

func notFoundIfNil(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// GetSetKeys  get state db set keys
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// Set set key value to state db, value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	value = types.CopyBytes(value)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
		s.dirty[skey] = true
	}
	return nil
}

// KVList 所有修改过的 kv，按 key 排序
func (s *StateDB) KVList() []*types.KeyValue {
	keys := make([]string, 0, len(s.dirty))
	for k := range s.dirty {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kvs := make([]*types.KeyValue, 0, len(keys))
	for _, k := range keys {
		kvs = append(kvs, &types.KeyValue{Key: []byte(k), Value: s.cache[k]})
	}
	return kvs
}

// Flush 把修改写入 batch
func (s *StateDB) Flush(batch db.Batch) {
	for _, kv := range s.KVList() {
		setBatch(batch, kv)
	}
}

func setBatch(batch db.Batch, kv *types.KeyValue) {
	if kv.Value == nil {
		batch.Delete(kv.Key)
		return
	}
	batch.Set(kv.Key, kv.Value)
}

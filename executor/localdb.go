// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/tournament/common/db"
	"github.com/33cn/tournament/types"
)

//LocalDB 本地数据库，不加入状态。
//ExecLocal 只读，需要写的 kv 通过 LocalDBSet 返回，由执行器统一落盘
type LocalDB struct {
	backend db.DB
	cache   map[string][]byte
	list    *db.ListHelper
}

//NewLocalDB 创建一个新的LocalDB
func NewLocalDB(backend db.DB) *LocalDB {
	return &LocalDB{
		backend: backend,
		cache:   make(map[string][]byte),
		list:    db.NewListHelper(backend),
	}
}

//Get 获取key
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if value, ok := l.cache[skey]; ok {
		if value == nil {
			return nil, types.ErrNotFound
		}
		return value, nil
	}
	value, err := l.backend.Get(key)
	if err == db.ErrNotFoundInDb {
		l.cache[skey] = nil
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	l.cache[skey] = value
	return value, nil
}

//Set 只修改内存，同一个交易中后续的 Get 可以看到
func (l *LocalDB) Set(key []byte, value []byte) error {
	l.cache[string(key)] = types.CopyBytes(value)
	return nil
}

//List 从后端按前缀查询
func (l *LocalDB) List(prefix []byte, count int32, direction int32) ([][]byte, error) {
	values, err := l.list.List(prefix, count, direction)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}

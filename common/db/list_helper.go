// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	log "github.com/inconshreveable/log15"
)

var dblog = log.New("module", "db")

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//ListHelper 在 IteratorDB 上做前缀查询
type ListHelper struct {
	db IteratorDB
}

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//PrefixScan 前缀下的所有值，按 key 升序
func (db *ListHelper) PrefixScan(prefix []byte) ([][]byte, error) {
	return db.List(prefix, 0, ListASC)
}

//List 按方向取前缀下最多 count 个值，count <= 0 表示不限
func (db *ListHelper) List(prefix []byte, count int32, direction int32) (values [][]byte, err error) {
	it := db.db.Iterator(prefix, direction == ListDESC)
	defer it.Close()

	var i int32
	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			dblog.Error("List it.Value()", "error", it.Error())
			return nil, it.Error()
		}
		values = append(values, value)
		i++
		if count > 0 && i >= count {
			break
		}
	}
	return values, it.Error()
}

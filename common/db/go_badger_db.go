// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"path"

	"github.com/dgraph-io/badger"
	"github.com/dgraph-io/badger/options"
)

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// badger 内部日志转到 log15
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, v ...interface{}) {
	dblog.Error(fmt.Sprintf(format, v...), "backend", "badger")
}

func (badgerLogger) Warningf(format string, v ...interface{}) {
	dblog.Warn(fmt.Sprintf(format, v...), "backend", "badger")
}

func (badgerLogger) Infof(format string, v ...interface{}) {
	dblog.Debug(fmt.Sprintf(format, v...), "backend", "badger")
}

func (badgerLogger) Debugf(format string, v ...interface{}) {
	dblog.Debug(fmt.Sprintf(format, v...), "backend", "badger")
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = badgerLogger{}
	if cache <= 128 {
		opts.ValueLogLoadingMode = options.FileIO
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		dblog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		dblog.Error("Set", "error", err)
	}
	return err
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		dblog.Error("Delete", "error", err)
	}
	return err
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		dblog.Error("Close", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsm":  fmt.Sprint(lsm),
		"badger.vlog": fmt.Sprint(vlog),
	}
}

//Iterator 迭代器，持有一个只读事务直到 Close
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{it: it, txn: txn, prefix: CopyBytes(prefix), reverse: reverse}
}

type goBadgerDBIt struct {
	it      *badger.Iterator
	txn     *badger.Txn
	prefix  []byte
	reverse bool
	err     error
}

func (dbit *goBadgerDBIt) Rewind() bool {
	if dbit.reverse {
		end := prefixEnd(dbit.prefix)
		if end == nil {
			dbit.it.Rewind()
		} else {
			dbit.it.Seek(end)
			// 反向 Seek 定位到 <= end 的最大 key，end 本身不属于前缀
			if dbit.it.Valid() && !dbit.it.ValidForPrefix(dbit.prefix) {
				dbit.it.Next()
			}
		}
	} else {
		dbit.it.Seek(dbit.prefix)
	}
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Next() bool {
	dbit.it.Next()
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Valid() bool {
	return dbit.it.ValidForPrefix(dbit.prefix)
}

func (dbit *goBadgerDBIt) Key() []byte {
	return dbit.it.Item().KeyCopy(nil)
}

func (dbit *goBadgerDBIt) ValueCopy() []byte {
	value, err := dbit.it.Item().ValueCopy(nil)
	if err != nil {
		dbit.err = err
	}
	return value
}

func (dbit *goBadgerDBIt) Error() error {
	return dbit.err
}

func (dbit *goBadgerDBIt) Close() {
	dbit.it.Close()
	dbit.txn.Discard()
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

// 缓存所有写操作，Write 时在一个事务里提交
type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, kv{CopyBytes(key), CopyBytes(value)})
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, kv{CopyBytes(key), nil})
	mBatch.size++
}

func (mBatch *goBadgerDBBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range mBatch.writes {
			var err error
			if kv.v == nil {
				err = txn.Delete(kv.k)
			} else {
				err = txn.Set(kv.k, kv.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		dblog.Error("Write", "error", err)
	}
	return err
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.writes = mBatch.writes[:0]
	mBatch.size = 0
}

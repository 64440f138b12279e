// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDBs(t *testing.T) map[string]DB {
	dir := t.TempDir()
	dbs := make(map[string]DB)
	for _, backend := range []string{MemDBBackendStr, GoLevelDBBackendStr, GoBadgerDBBackendStr} {
		db, err := NewDB(backend, backend, dir, 16)
		require.NoError(t, err, backend)
		t.Cleanup(db.Close)
		dbs[backend] = db
	}
	return dbs
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "pegasus", t.TempDir(), 16)
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestGetSetDelete(t *testing.T) {
	for name, db := range newTestDBs(t) {
		_, err := db.Get([]byte("missing"))
		require.Equal(t, ErrNotFoundInDb, err, name)

		require.NoError(t, db.Set([]byte("k1"), []byte("v1")), name)
		v, err := db.Get([]byte("k1"))
		require.NoError(t, err, name)
		require.Equal(t, []byte("v1"), v, name)

		require.NoError(t, db.Delete([]byte("k1")), name)
		_, err = db.Get([]byte("k1"))
		require.Equal(t, ErrNotFoundInDb, err, name)

		require.NotNil(t, db.Stats(), name)
	}
}

func TestBatch(t *testing.T) {
	for name, db := range newTestDBs(t) {
		require.NoError(t, db.Set([]byte("old"), []byte("x")), name)

		batch := db.NewBatch(true)
		batch.Set([]byte("b1"), []byte("1"))
		batch.Set([]byte("b2"), []byte("22"))
		batch.Delete([]byte("old"))
		require.Equal(t, 4, batch.ValueSize(), name)

		// nothing visible before Write
		_, err := db.Get([]byte("b1"))
		require.Equal(t, ErrNotFoundInDb, err, name)

		require.NoError(t, batch.Write(), name)
		v, err := db.Get([]byte("b2"))
		require.NoError(t, err, name)
		require.Equal(t, []byte("22"), v, name)
		_, err = db.Get([]byte("old"))
		require.Equal(t, ErrNotFoundInDb, err, name)

		batch.Reset()
		require.Equal(t, 0, batch.ValueSize(), name)
	}
}

func TestList(t *testing.T) {
	for name, db := range newTestDBs(t) {
		for _, k := range []string{"aaaaaa/1", "my", "my_", "my_key/1", "my_key/2", "my_key/3", "zzzzzz/1"} {
			require.NoError(t, db.Set([]byte(k), []byte(k)), name)
		}
		require.NoError(t, db.Set([]byte{0xff}, []byte("0xff")), name)

		it := NewListHelper(db)
		list, err := it.PrefixScan([]byte("my"))
		require.NoError(t, err, name)
		require.Equal(t, [][]byte{[]byte("my"), []byte("my_"), []byte("my_key/1"), []byte("my_key/2"), []byte("my_key/3")}, list, name)

		list, err = it.List([]byte("my_key/"), 2, ListASC)
		require.NoError(t, err, name)
		require.Equal(t, [][]byte{[]byte("my_key/1"), []byte("my_key/2")}, list, name)

		list, err = it.List([]byte("my"), 0, ListDESC)
		require.NoError(t, err, name)
		require.Equal(t, [][]byte{[]byte("my_key/3"), []byte("my_key/2"), []byte("my_key/1"), []byte("my_"), []byte("my")}, list, name)

		list, err = it.List([]byte{0xff}, 0, ListDESC)
		require.NoError(t, err, name)
		require.Equal(t, [][]byte{[]byte("0xff")}, list, name)

		list, err = it.List([]byte("none"), 10, ListASC)
		require.NoError(t, err, name)
		require.Empty(t, list, name)
	}
}

func TestPrefixEnd(t *testing.T) {
	require.Equal(t, []byte("mz"), prefixEnd([]byte("my")))
	require.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xff}))
	require.Nil(t, prefixEnd([]byte{0xff, 0xff}))
	require.Nil(t, prefixEnd(nil))
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"testing"

	dbm "github.com/33cn/tournament/common/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVCreator(t *testing.T) {
	db, err := dbm.NewDB("test", dbm.MemDBBackendStr, "", 16)
	require.Nil(t, err)
	defer db.Close()

	creator := NewKVCreator(db)
	creator.Add([]byte("a"), []byte("1"))
	creator.AddKV([]byte("b"), []byte("2"))
	creator.Del([]byte("c"))
	kvs := creator.KVList()
	assert.Equal(t, 3, len(kvs))
	assert.Nil(t, kvs[2].Value)

	v, err := db.Get([]byte("a"))
	require.Nil(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = db.Get([]byte("b"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
}

func TestTimeIndexStr(t *testing.T) {
	assert.Equal(t, "000000000001000002", TimeIndexStr(1, 2))
	assert.True(t, TimeIndexStr(2, 0) > TimeIndexStr(1, 999999))
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"path/filepath"
	"testing"

	"github.com/33cn/tournament/common"
	"github.com/33cn/tournament/common/address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenaddress(t *testing.T) {
	addr, priv := Genaddress()
	assert.Nil(t, address.CheckAddress(addr))
	assert.Equal(t, addr, PrivKeyAddress(priv))

	priv2, err := PrivKeyFromHex(common.ToHex(priv.Bytes()))
	require.Nil(t, err)
	assert.True(t, priv.Equals(priv2))

	_, err = PrivKeyFromHex("0x1234")
	assert.NotNil(t, err)
}

func TestCreateTxWithExecer(t *testing.T) {
	addr, priv := Genaddress()
	tx := CreateTxWithExecer(priv, "tournament", map[string]int{"ty": 1})
	assert.True(t, tx.CheckSign())
	assert.Equal(t, addr, tx.From())

	unsigned := CreateTxWithExecer(nil, "tournament", map[string]int{"ty": 1})
	assert.False(t, unsigned.CheckSign())
}

func TestWriteStringToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "keys", "key.txt")
	n, err := WriteStringToFile(file, " abc\n")
	require.Nil(t, err)
	assert.Equal(t, 5, n)
	s, err := ReadTrimmedFile(file)
	require.Nil(t, err)
	assert.Equal(t, "abc", s)

	_, err = ReadFile(filepath.Join(t.TempDir(), "none"))
	assert.NotNil(t, err)
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 255}))

	b, err := FromHex("0x0102ff")
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	b, err = FromHex("102ff")
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	_, err = FromHex("0xzz")
	assert.NotNil(t, err)
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	a := []byte{1, 2}
	c := CopyBytes(a)
	c[0] = 3
	assert.Equal(t, byte(1), a[0])
}

func TestHash(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Bytes2Hex(Sha256(nil)))
	sum := Sha2Sum([]byte("abc"))
	assert.Equal(t, 32, len(sum))
	h160 := Rimp160AfterSha256([]byte("abc"))
	assert.Equal(t, 20, len(h160))
	assert.NotEqual(t, Rimp160AfterSha256([]byte("abd")), h160)
}

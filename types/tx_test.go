// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/tournament/common/address"
	"github.com/33cn/tournament/common/crypto"
	"github.com/33cn/tournament/common/crypto/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genKey(t testing.TB) crypto.PrivKey {
	cr, err := crypto.New(secp256k1.NameSecp256k1)
	require.Nil(t, err)
	priv, err := cr.GenKey()
	require.Nil(t, err)
	return priv
}

func TestSignTx(t *testing.T) {
	priv := genKey(t)
	tx := CreateTx("coins", &ReqString{Data: "hello"})
	assert.False(t, tx.CheckSign())
	assert.Equal(t, "", tx.From())

	hash := tx.Hash()
	tx.Sign(secp256k1.TypeSecp256k1, priv)
	assert.True(t, tx.CheckSign())
	//签名不影响交易哈希
	assert.Equal(t, hash, tx.Hash())
	assert.Equal(t, address.PubKeyToAddress(priv.PubKey().Bytes()).String(), tx.From())

	var payload ReqString
	require.Nil(t, Decode(tx.Payload, &payload))
	assert.Equal(t, "hello", payload.Data)
}

func TestSignTxTampered(t *testing.T) {
	priv := genKey(t)
	tx := CreateTx("coins", &ReqString{Data: "hello"})
	tx.Sign(secp256k1.TypeSecp256k1, priv)

	tx.Payload = Encode(&ReqString{Data: "world"})
	assert.False(t, tx.CheckSign())

	tx = CreateTx("coins", &ReqString{Data: "hello"})
	tx.Sign(secp256k1.TypeSecp256k1, priv)
	tx.Signature.Ty = 100
	assert.False(t, tx.CheckSign())

	tx = CreateTx("coins", &ReqString{Data: "hello"})
	tx.Sign(secp256k1.TypeSecp256k1, priv)
	tx.Signature.Pubkey = genKey(t).PubKey().Bytes()
	assert.False(t, tx.CheckSign())
}

func TestCreateTxNonce(t *testing.T) {
	tx1 := CreateTx("coins", &ReqString{Data: "hello"})
	tx2 := CreateTx("coins", &ReqString{Data: "hello"})
	assert.NotEqual(t, tx1.Hash(), tx2.Hash())
	assert.True(t, tx1.Nonce >= 0)
}

func BenchmarkTxHash(b *testing.B) {
	tx := CreateTx("coins", &ReqString{Data: "hello"})
	tx.Sign(secp256k1.TypeSecp256k1, genKey(b))
	for i := 0; i < b.N; i++ {
		tx.Hash()
	}
}

func TestSignData(t *testing.T) {
	priv := genKey(t)
	data := []byte("consent")
	sign := SignData(secp256k1.TypeSecp256k1, priv, data)
	assert.True(t, CheckSign(data, sign))
	assert.False(t, CheckSign([]byte("other"), sign))
	assert.False(t, CheckSign(data, nil))
	assert.Equal(t, address.PubKeyToAddress(priv.PubKey().Bytes()).String(), sign.Address())

	var empty *Signature
	assert.Equal(t, "", empty.Address())
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"

	"github.com/33cn/tournament/common"
	"github.com/33cn/tournament/common/address"
	"github.com/33cn/tournament/common/crypto"
	// 默认的签名算法
	_ "github.com/33cn/tournament/common/crypto/secp256k1"
)

//Signature 交易签名
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    []byte `json:"pubkey"`
	Signature []byte `json:"signature"`
}

//Transaction 交易，Payload 是执行器自己定义的 action
type Transaction struct {
	Execer    string          `json:"execer"`
	Payload   json.RawMessage `json:"payload"`
	Nonce     int64           `json:"nonce"`
	Signature *Signature      `json:"signature,omitempty"`
}

//CreateTx 构造一个未签名交易，nonce 随机
func CreateTx(execer string, action interface{}) *Transaction {
	return &Transaction{
		Execer:  execer,
		Payload: Encode(action),
		Nonce:   randNonce(),
	}
}

func randNonce() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return int64(binary.BigEndian.Uint64(b[:]) >> 1)
}

//Hash 交易的hash不包含签名
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Sha256(Encode(&copytx))
}

//Sign 交易签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	tx.Signature = SignData(ty, priv, Encode(tx))
}

//SignData 对任意数据签名
func SignData(ty int32, priv crypto.PrivKey, data []byte) *Signature {
	return &Signature{
		Ty:        ty,
		Pubkey:    priv.PubKey().Bytes(),
		Signature: priv.Sign(data).Bytes(),
	}
}

//CheckSign 检查签名
func (tx *Transaction) CheckSign() bool {
	if tx.Signature == nil {
		return false
	}
	copytx := *tx
	copytx.Signature = nil
	data := Encode(&copytx)
	return CheckSign(data, tx.Signature)
}

//CheckSign 检查数据的签名
func CheckSign(data []byte, sign *Signature) bool {
	if sign == nil {
		return false
	}
	c, err := crypto.New(crypto.GetName(sign.Ty))
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(sign.Pubkey)
	if err != nil {
		return false
	}
	signbytes, err := c.SignatureFromBytes(sign.Signature)
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, signbytes)
}

//Address 签名公钥对应的地址
func (sign *Signature) Address() string {
	if sign == nil {
		return ""
	}
	return address.PubKeyToAddress(sign.Pubkey).String()
}

//From 交易from地址
func (tx *Transaction) From() string {
	return tx.Signature.Address()
}

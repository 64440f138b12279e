// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util 测试和命令行共用的工具函数
package util

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/33cn/tournament/common"
	"github.com/33cn/tournament/common/address"
	"github.com/33cn/tournament/common/crypto"
	"github.com/33cn/tournament/common/crypto/secp256k1"
	"github.com/33cn/tournament/types"
	"github.com/pkg/errors"
)

//Genaddress : generate a address
func Genaddress() (string, crypto.PrivKey) {
	cr, err := crypto.New(secp256k1.NameSecp256k1)
	if err != nil {
		panic(err)
	}
	privto, err := cr.GenKey()
	if err != nil {
		panic(err)
	}
	addrto := address.PubKeyToAddress(privto.PubKey().Bytes())
	return addrto.String(), privto
}

//PrivKeyFromHex hex 私钥
func PrivKeyFromHex(key string) (crypto.PrivKey, error) {
	data, err := common.FromHex(key)
	if err != nil {
		return nil, errors.Wrap(err, "decode private key")
	}
	cr, err := crypto.New(secp256k1.NameSecp256k1)
	if err != nil {
		return nil, err
	}
	return cr.PrivKeyFromBytes(data)
}

//PrivKeyAddress 私钥对应的地址
func PrivKeyAddress(priv crypto.PrivKey) string {
	return address.PubKeyToAddress(priv.PubKey().Bytes()).String()
}

// CreateTxWithExecer ： 构造并签名一个交易
func CreateTxWithExecer(priv crypto.PrivKey, execer string, action interface{}) *types.Transaction {
	tx := types.CreateTx(execer, action)
	if priv != nil {
		tx.Sign(secp256k1.TypeSecp256k1, priv)
	}
	return tx
}

// JSONPrint : print in json format
func JSONPrint(t *testing.T, input interface{}) {
	data, err := json.MarshalIndent(input, "", "\t")
	if err != nil {
		if t != nil {
			t.Error(err)
		}
		return
	}
	if t == nil {
		fmt.Println(string(data))
	} else {
		t.Log(string(data))
	}
}

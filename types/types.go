// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 执行引擎和各执行器共用的数据结构
package types

import (
	"encoding/json"
)

//KeyValue 状态数据库中的一条记录，Value 为 nil 表示删除
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value,omitempty"`
}

//ReceiptLog 执行日志
type ReceiptLog struct {
	Ty  int32           `json:"ty"`
	Log json.RawMessage `json:"log"`
}

//Receipt 交易执行的结果：状态修改和日志
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

//LocalDBSet 本地数据库(索引)的修改
type LocalDBSet struct {
	KV []*KeyValue `json:"kv"`
}

//Account 代币账户，只有 Owner 可以授权转出
type Account struct {
	Addr    string `json:"addr"`
	Owner   string `json:"owner"`
	Balance int64  `json:"balance"`
}

//GetBalance get balance
func (acc *Account) GetBalance() int64 {
	if acc == nil {
		return 0
	}
	return acc.Balance
}

//ReceiptAccountTransfer 转账前后的账户
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

//ReqString 单个字符串请求
type ReqString struct {
	Data string `json:"data"`
}

//ReqAddrs 地址列表请求
type ReqAddrs struct {
	Addrs []string `json:"addrs"`
}

//Message 查询结果
type Message interface{}

//ReplyAccounts 账户列表
type ReplyAccounts struct {
	Accounts []*Account `json:"accounts"`
}

//Encode 编码，失败说明结构有问题，直接 panic
func Encode(data interface{}) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Decode 解码
func Decode(data []byte, msg interface{}) error {
	if len(data) == 0 {
		return ErrDecode
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return ErrDecode
	}
	return nil
}

//MergeReceipt 合并两个收据，kv 和日志按顺序追加
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 == nil {
		return receipt1
	}
	if receipt1 == nil {
		return receipt2
	}
	receipt1.KV = append(receipt1.KV, receipt2.KV...)
	receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	return receipt1
}

//CheckAmount 检查金额范围
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

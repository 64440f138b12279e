// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types commands中结构体定义
package types

// AccountResult defines account result command
type AccountResult struct {
	Addr    string `json:"addr"`
	Owner   string `json:"owner"`
	Balance string `json:"balance"`
}

// KeyResult 生成的私钥和地址
type KeyResult struct {
	Privkey string `json:"privkey"`
	Addr    string `json:"addr"`
}

// ReceiptLogResult 解码后的回执日志
type ReceiptLogResult struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyName"`
	Log    interface{} `json:"log"`
	RawLog string      `json:"rawLog,omitempty"`
}

// ReceiptResult 交易执行结果
type ReceiptResult struct {
	Ty   int32               `json:"ty"`
	Logs []*ReceiptLogResult `json:"logs"`
}

// TxResult defines txresult command
type TxResult struct {
	Hash       string         `json:"hash"`
	Execer     string         `json:"execer"`
	ActionName string         `json:"actionName"`
	From       string         `json:"from"`
	Blocktime  int64          `json:"blocktime,omitempty"`
	Receipt    *ReceiptResult `json:"receipt"`
}

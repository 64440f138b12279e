// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"

	"github.com/33cn/tournament/common"
)

// 定义key值
var (
	TxAddrHash   = []byte(LocalPrefix + "TxAddrHash:")
	AddrTxsCount = []byte(LocalPrefix + "AddrTxsCount:")
)

//CalcTxKey 保存已执行交易的 key，同时用于防止重放
func CalcTxKey(hash []byte) []byte {
	return []byte(TxHashPrefix + common.Bytes2Hex(hash))
}

//CalcTxAddrHashKey 用于存储地址相关的hash列表，key=TxAddrHash:addr:timeindex
func CalcTxAddrHashKey(addr string, timeindex string) []byte {
	return append(CopyBytes(TxAddrHash), []byte(fmt.Sprintf("%s:%s", addr, timeindex))...)
}

//CalcAddrTxsCountKey 存储地址参与的交易数量
func CalcAddrTxsCountKey(addr string) []byte {
	return append(CopyBytes(AddrTxsCount), []byte(addr)...)
}

//CopyBytes copy
func CopyBytes(b []byte) []byte {
	return common.CopyBytes(b)
}

//TxResult 已执行的交易
type TxResult struct {
	Hash       string       `json:"hash"`
	Tx         *Transaction `json:"tx"`
	Receipt    *Receipt     `json:"receipt"`
	Blocktime  int64        `json:"blocktime"`
	ActionName string       `json:"actionName"`
}

//ReplyTxInfo 地址索引中的交易信息
type ReplyTxInfo struct {
	Hash       string `json:"hash"`
	Execer     string `json:"execer"`
	ActionName string `json:"actionName"`
	Blocktime  int64  `json:"blocktime"`
}

//ReplyTxInfos 交易信息列表
type ReplyTxInfos struct {
	TxInfos []*ReplyTxInfo `json:"txInfos"`
}

//ReqAddr 按地址查询交易
type ReqAddr struct {
	Addr      string `json:"addr"`
	Count     int32  `json:"count"`
	Direction int32  `json:"direction"`
}

//Int64 计数
type Int64 struct {
	Data int64 `json:"data"`
}

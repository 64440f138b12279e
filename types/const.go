// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin            int64 = 1e8
	MaxCoin         int64 = 1e17
	TokenPrecision  int64 = 1e8
	MaxTokenBalance int64 = 900 * 1e8 * TokenPrecision
)

// 交易执行结果
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// 账户相关日志类型
const (
	TyLogErr             = 1
	TyLogFee             = 2
	TyLogTransfer        = 3
	TyLogGenesisTransfer = 4
	TyLogAccountCreate   = 5
)

// 本地数据库的 key 前缀
const (
	// LocalPrefix 本地索引，不进入状态
	LocalPrefix = "LODB-"
	// TxHashPrefix 已执行交易的哈希
	TxHashPrefix = "TX-"
)

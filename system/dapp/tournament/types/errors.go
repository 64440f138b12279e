// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrWinnerNotFound 还没有开奖
	ErrWinnerNotFound = errors.New("ErrWinnerNotFound")
	// ErrEmptyContestantList 参赛者为空
	ErrEmptyContestantList = errors.New("ErrEmptyContestantList")
	// ErrAlreadyClaimed 奖金已经领取
	ErrAlreadyClaimed = errors.New("ErrAlreadyClaimed")
	// ErrAlreadyInitialized 比赛或者金库已经存在
	ErrAlreadyInitialized = errors.New("ErrAlreadyInitialized")
	// ErrStorageExhausted 参赛者超过容量
	ErrStorageExhausted = errors.New("ErrStorageExhausted")
	// ErrUnauthorized 签名者没有权限
	ErrUnauthorized = errors.New("ErrUnauthorized")
	// ErrTransferFailure 代币转账失败
	ErrTransferFailure = errors.New("ErrTransferFailure")
	// ErrAlreadyDrawn 已经开奖
	ErrAlreadyDrawn = errors.New("ErrAlreadyDrawn")
	// ErrTournamentNotFound 比赛不存在
	ErrTournamentNotFound = errors.New("ErrTournamentNotFound")
	// ErrVaultNotFound 金库不存在
	ErrVaultNotFound = errors.New("ErrVaultNotFound")
	// ErrInvalidAddress 地址格式错误
	ErrInvalidAddress = errors.New("ErrInvalidAddress")
)

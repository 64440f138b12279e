// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

var (
	//TournamentX 执行器名字
	TournamentX = "tournament"
)

// action 类型
const (
	TournamentActionInit  = 1
	TournamentActionAdd   = 2
	TournamentActionDraw  = 3
	TournamentActionClaim = 4
)

// 回执日志类型
const (
	TyLogTournamentInit  = 901
	TyLogTournamentAdd   = 902
	TyLogTournamentDraw  = 903
	TyLogTournamentClaim = 904
)

// 比赛状态，只能向前
const (
	TournamentStatusCreated = int32(iota + 1)
	TournamentStatusContestantsOpen
	TournamentStatusDrawn
	TournamentStatusClaimed
)

// 派生地址的种子
const (
	SeedTournament = "nft"
	SeedVault      = "vault"
	SeedWinner     = "win"
	SeedVaultToken = "vault-token"
)

// DefaultMaxContestants 每个比赛最多的参赛者
const DefaultMaxContestants = 10

// NoWinner 开奖之前的 winner
const NoWinner = ""

var statusName = map[int32]string{
	TournamentStatusCreated:         "created",
	TournamentStatusContestantsOpen: "open",
	TournamentStatusDrawn:           "drawn",
	TournamentStatusClaimed:         "claimed",
}

//StatusName 状态的名字
func StatusName(status int32) string {
	if name, ok := statusName[status]; ok {
		return name
	}
	return "unknown"
}

//StatusFromName 名字对应的状态，不存在返回 0
func StatusFromName(name string) int32 {
	for status, n := range statusName {
		if n == name {
			return status
		}
	}
	return 0
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types tournament 执行器的数据结构和 action 定义
package types

import (
	"reflect"

	"github.com/33cn/tournament/common/address"
	"github.com/33cn/tournament/types"
)

var (
	actionName = map[string]int32{
		"Init":  TournamentActionInit,
		"Add":   TournamentActionAdd,
		"Draw":  TournamentActionDraw,
		"Claim": TournamentActionClaim,
	}
	logmap = map[int32]*types.LogInfo{
		TyLogTournamentInit:  {Ty: reflect.TypeOf(ReceiptTournament{}), Name: "LogTournamentInit"},
		TyLogTournamentAdd:   {Ty: reflect.TypeOf(ReceiptTournament{}), Name: "LogTournamentAdd"},
		TyLogTournamentDraw:  {Ty: reflect.TypeOf(ReceiptTournament{}), Name: "LogTournamentDraw"},
		TyLogTournamentClaim: {Ty: reflect.TypeOf(ReceiptTournament{}), Name: "LogTournamentClaim"},
	}
)

func init() {
	types.RegistorExecutor(TournamentX, NewType())
}

//Contestant 参赛者，Id 从 1 开始连续递增
type Contestant struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
}

//Tournament 比赛，每个 creator 一个
type Tournament struct {
	Creator      string         `json:"creator"`
	Proof        *address.Proof `json:"proof"`
	Contestants  []*Contestant  `json:"contestants"`
	Winner       string         `json:"winner"`
	Claimed      bool           `json:"claimed"`
	PrizeAmount  int64          `json:"prizeAmount"`
	VaultAddress string         `json:"vaultAddress"`
	Capacity     int32          `json:"capacity"`
	Drawn        bool           `json:"drawn"`
	Status       int32          `json:"status"`
	CreateTime   int64          `json:"createTime"`
	DrawTime     int64          `json:"drawTime,omitempty"`
	ClaimTime    int64          `json:"claimTime,omitempty"`
}

//Address 比赛的派生地址
func (t *Tournament) Address() string {
	if t == nil || t.Proof == nil {
		return ""
	}
	return t.Proof.Address()
}

//GetContestants 参赛者地址，按加入顺序
func (t *Tournament) GetContestants() []string {
	if t == nil {
		return nil
	}
	addrs := make([]string, 0, len(t.Contestants))
	for _, c := range t.Contestants {
		addrs = append(addrs, c.Address)
	}
	return addrs
}

//Vault 金库，Proof 作为金库代币账户的转出授权
type Vault struct {
	Owner string         `json:"owner"`
	Proof *address.Proof `json:"proof"`
}

//Address 金库的派生地址
func (v *Vault) Address() string {
	if v == nil || v.Proof == nil {
		return ""
	}
	return v.Proof.Address()
}

//WinnerRecord 领奖记录，第一次领奖时创建
type WinnerRecord struct {
	Winner string         `json:"winner"`
	Proof  *address.Proof `json:"proof"`
	Claims int64          `json:"claims"`
}

//ReceiptTournament 比赛状态变化的日志
type ReceiptTournament struct {
	Creator    string `json:"creator"`
	Tournament string `json:"tournament"`
	PrevStatus int32  `json:"prevStatus"`
	Status     int32  `json:"status"`
	Winner     string `json:"winner,omitempty"`
	Count      int32  `json:"count"`
}

//ReqTournaments 按状态查询比赛
type ReqTournaments struct {
	Status    int32 `json:"status"`
	Count     int32 `json:"count"`
	Direction int32 `json:"direction"`
}

//ReplyTournaments 比赛列表
type ReplyTournaments struct {
	Tournaments []*Tournament `json:"tournaments"`
}

//TournamentType 执行器类型
type TournamentType struct {
	types.ExecTypeBase
}

//NewType new
func NewType() *TournamentType {
	c := &TournamentType{}
	c.SetChild(c)
	return c
}

//GetName 执行器名字
func (t *TournamentType) GetName() string {
	return TournamentX
}

//GetPayload action
func (t *TournamentType) GetPayload() types.Message {
	return &TournamentAction{}
}

//GetTypeMap action 名字
func (t *TournamentType) GetTypeMap() map[string]int32 {
	return actionName
}

//GetLogMap 日志
func (t *TournamentType) GetLogMap() map[int32]*types.LogInfo {
	return logmap
}

//TournamentAddress creator 的比赛地址
func TournamentAddress(creator string) (*address.Proof, error) {
	return address.DeriveFor(TournamentX, SeedTournament, creator)
}

//VaultAddress user 的金库地址
func VaultAddress(user string) (*address.Proof, error) {
	return address.DeriveFor(TournamentX, SeedVault, user)
}

//WinnerAddress winner 的领奖记录地址
func WinnerAddress(winner string) (*address.Proof, error) {
	return address.DeriveFor(TournamentX, SeedWinner, winner)
}

//VaultTokenAddress 金库的代币账户地址，owner 是金库地址
func VaultTokenAddress(vault string) (*address.Proof, error) {
	return address.DeriveFor(TournamentX, SeedVaultToken, vault)
}

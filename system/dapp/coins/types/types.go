// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的 action 定义
package types

import (
	"github.com/33cn/tournament/types"
)

//action 类型
const (
	CoinsActionTransfer = 1
	CoinsActionGenesis  = 2
	CoinsActionOpen     = 3
)

var (
	//CoinsX 执行器名字
	CoinsX     = "coins"
	actionName = map[string]int32{
		"Transfer": CoinsActionTransfer,
		"Genesis":  CoinsActionGenesis,
		"Open":     CoinsActionOpen,
	}
)

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

//CoinsAction coins 交易的 payload
type CoinsAction struct {
	Ty       int32          `json:"ty"`
	Transfer *CoinsTransfer `json:"transfer,omitempty"`
	Genesis  *CoinsGenesis  `json:"genesis,omitempty"`
	Open     *CoinsOpen     `json:"open,omitempty"`
}

//GetTy action ty
func (a *CoinsAction) GetTy() int32 {
	return a.Ty
}

//GetLockAddrs 会修改的账户
func (a *CoinsAction) GetLockAddrs() []string {
	switch {
	case a.Transfer != nil:
		return []string{a.Transfer.From, a.Transfer.To}
	case a.Genesis != nil:
		return []string{a.Genesis.To}
	case a.Open != nil:
		return []string{a.Open.Addr, a.Open.Owner}
	}
	return nil
}

//CoinsTransfer 从 From 账户转到 To 账户，签名者必须是 From 账户的 owner
type CoinsTransfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

//CoinsGenesis 发行，只有配置的 minter 可以签名
type CoinsGenesis struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

//CoinsOpen 开户。Owner 为空时是签名者，Addr 为空时是 Owner 的默认账户地址。
//Addr 只能是 Owner 本身或者 Owner 的默认账户地址
type CoinsOpen struct {
	Addr  string `json:"addr,omitempty"`
	Owner string `json:"owner,omitempty"`
}

//CoinsType coins 执行器类型
type CoinsType struct {
	types.ExecTypeBase
}

//NewType new
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

//GetName 执行器名字
func (c *CoinsType) GetName() string {
	return CoinsX
}

//GetPayload action
func (c *CoinsType) GetPayload() types.Message {
	return &CoinsAction{}
}

//GetLogMap 回执日志都是 types 中的账户日志
func (c *CoinsType) GetLogMap() map[int32]*types.LogInfo {
	return nil
}

//GetTypeMap action 名字
func (c *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}

//NewTransfer 构造转账 action
func NewTransfer(from, to string, amount int64) *CoinsAction {
	return &CoinsAction{Ty: CoinsActionTransfer, Transfer: &CoinsTransfer{From: from, To: to, Amount: amount}}
}

//NewGenesis 构造发行 action
func NewGenesis(to string, amount int64) *CoinsAction {
	return &CoinsAction{Ty: CoinsActionGenesis, Genesis: &CoinsGenesis{To: to, Amount: amount}}
}

//NewOpen 构造开户 action
func NewOpen(addr, owner string) *CoinsAction {
	return &CoinsAction{Ty: CoinsActionOpen, Open: &CoinsOpen{Addr: addr, Owner: owner}}
}

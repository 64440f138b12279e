// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/tournament/account"
	"github.com/33cn/tournament/common/address"
	"github.com/33cn/tournament/common/crypto"
	"github.com/33cn/tournament/common/crypto/secp256k1"
	"github.com/33cn/tournament/types"
)

//TournamentAction tournament 交易的 payload
type TournamentAction struct {
	Ty    int32            `json:"ty"`
	Init  *TournamentInit  `json:"init,omitempty"`
	Add   *TournamentAdd   `json:"add,omitempty"`
	Draw  *TournamentDraw  `json:"draw,omitempty"`
	Claim *TournamentClaim `json:"claim,omitempty"`
}

//GetTy action ty
func (a *TournamentAction) GetTy() int32 {
	return a.Ty
}

//GetLockAddrs 会修改的地址，同一个比赛的交易串行执行
func (a *TournamentAction) GetLockAddrs() []string {
	switch {
	case a.Init != nil:
		return []string{a.Init.Creator, a.Init.User}
	case a.Add != nil:
		return []string{a.Add.Tournament}
	case a.Draw != nil:
		return []string{a.Draw.Tournament, a.Draw.Vault, a.Draw.VaultTokenAccount, a.Draw.UserTokenAccount}
	case a.Claim != nil:
		return []string{a.Claim.Tournament, a.Claim.Vault, a.Claim.WinnerRecord,
			a.Claim.VaultTokenAccount, a.Claim.UserTokenAccount, a.Claim.WinnerTokenAccount}
	}
	return nil
}

//TournamentInit 创建比赛和金库，签名者是 creator。
//Creator 为空时是签名者。User 不是签名者时，UserSign 是 user 对 Consent 的签名
type TournamentInit struct {
	Creator     string           `json:"creator,omitempty"`
	User        string           `json:"user"`
	PrizeAmount int64            `json:"prizeAmount"`
	UserSign    *types.Signature `json:"userSign,omitempty"`
}

//Consent user 同意开设金库时签名的数据，creator 必须是确定的地址
func (i *TournamentInit) Consent(creator string) []byte {
	consent := &TournamentInit{Creator: creator, User: i.User, PrizeAmount: i.PrizeAmount}
	return append([]byte(TournamentX+"-init:"), types.Encode(consent)...)
}

//SignUser user 签名同意
func (i *TournamentInit) SignUser(priv crypto.PrivKey) {
	i.UserSign = types.SignData(secp256k1.TypeSecp256k1, priv, i.Consent(i.Creator))
}

//CheckUser 签名者或者 UserSign 代表 user 同意
func (i *TournamentInit) CheckUser(creator, from string) bool {
	if i.User == from {
		return true
	}
	if i.UserSign.Address() != i.User {
		return false
	}
	return types.CheckSign(i.Consent(creator), i.UserSign)
}

//TournamentAdd 追加参赛者，只有 creator 可以签名
type TournamentAdd struct {
	Tournament  string   `json:"tournament"`
	Contestants []string `json:"contestants"`
}

//TournamentDraw 开奖，签名者是金库的 owner，奖金从 UserTokenAccount 转入金库
type TournamentDraw struct {
	Tournament        string `json:"tournament"`
	Vault             string `json:"vault"`
	VaultTokenAccount string `json:"vaultTokenAccount"`
	UserTokenAccount  string `json:"userTokenAccount"`
}

//TournamentClaim 领奖，签名者是 winner。WinnerRecord 和 UserTokenAccount 可以为空
type TournamentClaim struct {
	Tournament         string `json:"tournament"`
	Vault              string `json:"vault"`
	WinnerRecord       string `json:"winnerRecord,omitempty"`
	VaultTokenAccount  string `json:"vaultTokenAccount"`
	UserTokenAccount   string `json:"userTokenAccount,omitempty"`
	WinnerTokenAccount string `json:"winnerTokenAccount"`
}

//NewInit 构造创建比赛的 action
func NewInit(creator, user string, prizeAmount int64) *TournamentAction {
	return &TournamentAction{
		Ty:   TournamentActionInit,
		Init: &TournamentInit{Creator: creator, User: user, PrizeAmount: prizeAmount},
	}
}

//NewInitWithConsent 构造 creator 创建、user 已签名同意的 action
func NewInitWithConsent(creator string, user crypto.PrivKey, prizeAmount int64) *TournamentAction {
	action := NewInit(creator, address.PubKeyToAddress(user.PubKey().Bytes()).String(), prizeAmount)
	action.Init.SignUser(user)
	return action
}

//NewAdd 构造追加参赛者的 action，creator 用来计算比赛地址
func NewAdd(creator string, contestants []string) (*TournamentAction, error) {
	t, err := TournamentAddress(creator)
	if err != nil {
		return nil, err
	}
	return &TournamentAction{
		Ty:  TournamentActionAdd,
		Add: &TournamentAdd{Tournament: t.Address(), Contestants: contestants},
	}, nil
}

//NewDraw 构造开奖的 action，所有账户地址由 creator 和 user 计算
func NewDraw(symbol, creator, user string) (*TournamentAction, error) {
	t, err := TournamentAddress(creator)
	if err != nil {
		return nil, err
	}
	v, err := VaultAddress(user)
	if err != nil {
		return nil, err
	}
	vt, err := VaultTokenAddress(v.Address())
	if err != nil {
		return nil, err
	}
	ut, err := account.AssociatedAddress(symbol, user)
	if err != nil {
		return nil, err
	}
	return &TournamentAction{
		Ty: TournamentActionDraw,
		Draw: &TournamentDraw{
			Tournament:        t.Address(),
			Vault:             v.Address(),
			VaultTokenAccount: vt.Address(),
			UserTokenAccount:  ut,
		},
	}, nil
}

//NewClaim 构造领奖的 action，winner 是签名者
func NewClaim(symbol, creator, user, winner string) (*TournamentAction, error) {
	t, err := TournamentAddress(creator)
	if err != nil {
		return nil, err
	}
	v, err := VaultAddress(user)
	if err != nil {
		return nil, err
	}
	vt, err := VaultTokenAddress(v.Address())
	if err != nil {
		return nil, err
	}
	w, err := WinnerAddress(winner)
	if err != nil {
		return nil, err
	}
	wt, err := account.AssociatedAddress(symbol, winner)
	if err != nil {
		return nil, err
	}
	return &TournamentAction{
		Ty: TournamentActionClaim,
		Claim: &TournamentClaim{
			Tournament:         t.Address(),
			Vault:              v.Address(),
			WinnerRecord:       w.Address(),
			VaultTokenAccount:  vt.Address(),
			WinnerTokenAccount: wt,
		},
	}, nil
}

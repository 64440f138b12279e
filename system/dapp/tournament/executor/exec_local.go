// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	tty "github.com/33cn/tournament/system/dapp/tournament/types"
	"github.com/33cn/tournament/types"
)

// 根据回执中的状态变化维护 creator 的状态索引
func (t *Tournament) execLocal(receipt *types.Receipt) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt == nil {
		return set, nil
	}
	for _, item := range receipt.Logs {
		switch item.Ty {
		case tty.TyLogTournamentInit, tty.TyLogTournamentAdd, tty.TyLogTournamentDraw, tty.TyLogTournamentClaim:
		default:
			continue
		}
		var r tty.ReceiptTournament
		if err := types.Decode(item.Log, &r); err != nil {
			return nil, err
		}
		if r.PrevStatus == r.Status {
			continue
		}
		if r.PrevStatus != 0 {
			set.KV = append(set.KV, &types.KeyValue{Key: calcStatusKey(r.PrevStatus, r.Creator)})
		}
		set.KV = append(set.KV, &types.KeyValue{Key: calcStatusKey(r.Status, r.Creator), Value: types.Encode(&r)})
	}
	for _, kv := range set.KV {
		if err := t.GetLocalDB().Set(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	return set, nil
}

//ExecLocal_Init 索引新的比赛
func (t *Tournament) ExecLocal_Init(payload *tty.TournamentInit, tx *types.Transaction, receipt *types.Receipt, index int) (*types.LocalDBSet, error) {
	return t.execLocal(receipt)
}

//ExecLocal_Add 第一次追加参赛者时状态变化
func (t *Tournament) ExecLocal_Add(payload *tty.TournamentAdd, tx *types.Transaction, receipt *types.Receipt, index int) (*types.LocalDBSet, error) {
	return t.execLocal(receipt)
}

//ExecLocal_Draw 开奖
func (t *Tournament) ExecLocal_Draw(payload *tty.TournamentDraw, tx *types.Transaction, receipt *types.Receipt, index int) (*types.LocalDBSet, error) {
	return t.execLocal(receipt)
}

//ExecLocal_Claim 领奖
func (t *Tournament) ExecLocal_Claim(payload *tty.TournamentClaim, tx *types.Transaction, receipt *types.Receipt, index int) (*types.LocalDBSet, error) {
	return t.execLocal(receipt)
}

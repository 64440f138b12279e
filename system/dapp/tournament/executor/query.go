// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	tty "github.com/33cn/tournament/system/dapp/tournament/types"
	"github.com/33cn/tournament/types"
)

//Query_GetTournament 按 creator 查询比赛
func (t *Tournament) Query_GetTournament(in *types.ReqString) (types.Message, error) {
	proof, err := tty.TournamentAddress(in.Data)
	if err != nil {
		return nil, tty.ErrInvalidAddress
	}
	return getTournament(t.GetStateDB(), proof.Address())
}

//Query_GetVault 按 owner 查询金库
func (t *Tournament) Query_GetVault(in *types.ReqString) (types.Message, error) {
	proof, err := tty.VaultAddress(in.Data)
	if err != nil {
		return nil, tty.ErrInvalidAddress
	}
	return getVault(t.GetStateDB(), proof.Address())
}

//Query_GetWinnerRecord 按 winner 查询领奖记录
func (t *Tournament) Query_GetWinnerRecord(in *types.ReqString) (types.Message, error) {
	proof, err := tty.WinnerAddress(in.Data)
	if err != nil {
		return nil, tty.ErrInvalidAddress
	}
	return getWinnerRecord(t.GetStateDB(), proof.Address())
}

//Query_ListTournaments 按状态列出比赛
func (t *Tournament) Query_ListTournaments(in *tty.ReqTournaments) (types.Message, error) {
	if tty.StatusName(in.Status) == "unknown" {
		return nil, types.ErrNotFound
	}
	values, err := t.GetLocalDB().List(calcStatusPrefix(in.Status), in.Count, in.Direction)
	if err != nil {
		return nil, err
	}
	var reply tty.ReplyTournaments
	for _, value := range values {
		var r tty.ReceiptTournament
		if err := types.Decode(value, &r); err != nil {
			return nil, err
		}
		tour, err := getTournament(t.GetStateDB(), r.Tournament)
		if err != nil {
			tlog.Error("ListTournaments", "tournament", r.Tournament, "err", err)
			return nil, err
		}
		reply.Tournaments = append(reply.Tournaments, tour)
	}
	return &reply, nil
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	tty "github.com/33cn/tournament/system/dapp/tournament/types"
	"github.com/33cn/tournament/types"
)

//Exec_Init 创建比赛
func (t *Tournament) Exec_Init(payload *tty.TournamentInit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(t, tx, index)
	return action.init(payload)
}

//Exec_Add 追加参赛者
func (t *Tournament) Exec_Add(payload *tty.TournamentAdd, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(t, tx, index)
	return action.add(payload)
}

//Exec_Draw 开奖
func (t *Tournament) Exec_Draw(payload *tty.TournamentDraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(t, tx, index)
	return action.draw(payload)
}

//Exec_Claim 领奖
func (t *Tournament) Exec_Claim(payload *tty.TournamentClaim, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(t, tx, index)
	return action.claim(payload)
}

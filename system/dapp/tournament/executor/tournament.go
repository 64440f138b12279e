// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
tournament 执行器，管理比赛奖金的托管和开奖

Init  -> 创建比赛和金库，以及金库的代币账户
Add   -> 追加参赛者
Draw  -> 开奖，奖金转入金库
Claim -> winner 从金库领奖
*/

import (
	drivers "github.com/33cn/tournament/system/dapp"
	tty "github.com/33cn/tournament/system/dapp/tournament/types"
	"github.com/33cn/tournament/types"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "execs.tournament")
var driverName = tty.TournamentX

func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Tournament{}))
	drivers.Register(driverName, newTournament)
}

//GetName 执行器名字
func GetName() string {
	return newTournament().GetName()
}

//Tournament 执行器
type Tournament struct {
	drivers.DriverBase
}

func newTournament() drivers.Driver {
	t := &Tournament{}
	t.SetChild(t)
	t.SetExecutorType(types.LoadExecutorType(driverName))
	return t
}

//GetDriverName 驱动名字
func (t *Tournament) GetDriverName() string {
	return driverName
}

func (t *Tournament) capacity() int32 {
	n := t.GetConfig().Exec.Tournament.MaxContestants
	if n <= 0 {
		return tty.DefaultMaxContestants
	}
	return n
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是代币账户的执行器。

主要提供三种操作：
Open     -> 开户
Transfer -> 转移资产
Genesis  -> 发行
*/

import (
	drivers "github.com/33cn/tournament/system/dapp"
	cty "github.com/33cn/tournament/system/dapp/coins/types"
	"github.com/33cn/tournament/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")
var driverName = cty.CoinsX

func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Coins{}))
	drivers.Register(driverName, newCoins)
}

//GetName 执行器名字
func GetName() string {
	return newCoins().GetName()
}

//Coins 执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

//GetDriverName 驱动名字
func (c *Coins) GetDriverName() string {
	return driverName
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testnode 提供一个通用的测试节点，用于单元测试和集成测试。
package testnode

import (
	"github.com/33cn/tournament/account"
	"github.com/33cn/tournament/common/crypto"
	dbm "github.com/33cn/tournament/common/db"
	"github.com/33cn/tournament/executor"
	cty "github.com/33cn/tournament/system/dapp/coins/types"
	"github.com/33cn/tournament/types"
	"github.com/33cn/tournament/util"
	log "github.com/inconshreveable/log15"

	// 注册 coins 执行器
	_ "github.com/33cn/tournament/system/dapp/coins/executor"
)

var chainlog = log.New("module", "testnode")

//TournamentMock 内存数据库上的执行器
type TournamentMock struct {
	cfg       *types.Config
	db        dbm.DB
	exec      *executor.Executor
	minter    string
	minterKey crypto.PrivKey
}

//GetDefaultConfig 测试用的默认配置
func GetDefaultConfig() *types.Config {
	cfg := types.DefaultConfig()
	cfg.Store.Driver = dbm.MemDBBackendStr
	cfg.Metrics.EnableMetrics = false
	return cfg
}

//New 使用默认配置
func New() *TournamentMock {
	return NewWithConfig(GetDefaultConfig())
}

//NewWithConfig 创建测试节点，cfg.Exec.Minter 会被替换成随机生成的地址
func NewWithConfig(cfg *types.Config) *TournamentMock {
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		panic(err)
	}
	mock := &TournamentMock{cfg: cfg, db: db}
	mock.minter, mock.minterKey = util.Genaddress()
	cfg.Exec.Minter = mock.minter
	mock.exec = executor.New(cfg, db)
	chainlog.Debug("NewWithConfig", "driver", cfg.Store.Driver, "minter", mock.minter)
	return mock
}

//Close 关闭数据库
func (mock *TournamentMock) Close() {
	mock.db.Close()
}

//GetExec 执行器
func (mock *TournamentMock) GetExec() *executor.Executor {
	return mock.exec
}

//GetDB 数据库
func (mock *TournamentMock) GetDB() dbm.DB {
	return mock.db
}

//GetConfig 配置
func (mock *TournamentMock) GetConfig() *types.Config {
	return mock.cfg
}

//Exec 签名并执行
func (mock *TournamentMock) Exec(priv crypto.PrivKey, execer string, action interface{}) (*types.Receipt, error) {
	tx := util.CreateTxWithExecer(priv, execer, action)
	return mock.exec.Execute(tx)
}

//OpenAccount 为私钥对应的地址开一个默认代币账户
func (mock *TournamentMock) OpenAccount(priv crypto.PrivKey) (string, error) {
	owner := util.PrivKeyAddress(priv)
	addr, err := account.AssociatedAddress(mock.cfg.Exec.Symbol, owner)
	if err != nil {
		return "", err
	}
	_, err = mock.Exec(priv, cty.CoinsX, cty.NewOpen(addr, owner))
	if err != nil {
		return "", err
	}
	return addr, nil
}

//Fund 由 minter 发行到 addr
func (mock *TournamentMock) Fund(addr string, amount int64) error {
	_, err := mock.Exec(mock.minterKey, cty.CoinsX, cty.NewGenesis(addr, amount))
	return err
}

//NewFundedAccount 生成一个新地址，开户并发行 amount
func (mock *TournamentMock) NewFundedAccount(amount int64) (string, string, crypto.PrivKey, error) {
	owner, priv := util.Genaddress()
	addr, err := mock.OpenAccount(priv)
	if err != nil {
		return "", "", nil, err
	}
	if amount > 0 {
		if err := mock.Fund(addr, amount); err != nil {
			return "", "", nil, err
		}
	}
	return owner, addr, priv, nil
}

//Balance 账户余额
func (mock *TournamentMock) Balance(addr string) (int64, error) {
	msg, err := mock.exec.Query(cty.CoinsX, "GetBalance", types.Encode(&types.ReqAddrs{Addrs: []string{addr}}))
	if err != nil {
		return 0, err
	}
	return msg.(*types.ReplyAccounts).Accounts[0].Balance, nil
}

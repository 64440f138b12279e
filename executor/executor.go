// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 执行交易：检查签名、加锁、调用驱动、原子写入状态和本地索引
package executor

import (
	"sync/atomic"
	"time"

	dbm "github.com/33cn/tournament/common/db"
	"github.com/33cn/tournament/metrics"
	drivers "github.com/33cn/tournament/system/dapp"
	"github.com/33cn/tournament/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

//Executor 交易执行器，可以被多个 goroutine 同时使用
type Executor struct {
	db      dbm.DB
	cfg     *types.Config
	locks   *stripeLocks
	metrics *metrics.ExecMetrics
	seq     int64
}

//New 创建执行器，db 由调用者负责关闭
func New(cfg *types.Config, db dbm.DB) *Executor {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	return &Executor{
		db:      db,
		cfg:     cfg,
		locks:   newStripeLocks(int(cfg.Exec.LockStripes)),
		metrics: metrics.NewExecMetrics(cfg.Metrics),
	}
}

//Metrics 执行统计
func (exec *Executor) Metrics() *metrics.ExecMetrics {
	return exec.metrics
}

//Execute 执行一个签名交易，失败时不修改任何数据
func (exec *Executor) Execute(tx *types.Transaction) (receipt *types.Receipt, err error) {
	if tx == nil {
		return nil, types.ErrEmpty
	}
	start := time.Now()
	actionName := "unknown"
	defer func() {
		exec.metrics.Observe(tx.Execer, actionName, err, time.Since(start))
		if err != nil {
			elog.Debug("Execute", "execer", tx.Execer, "action", actionName, "err", err)
		}
	}()
	if !tx.CheckSign() {
		return nil, types.ErrSign
	}
	driver, err := drivers.LoadDriverAllow(tx, 0, exec.cfg)
	if err != nil {
		return nil, err
	}
	actionName = driver.GetActionName(tx)
	if err := driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}

	unlock := exec.locks.Lock(exec.lockKeys(tx, driver))
	defer unlock()

	txkey := types.CalcTxKey(tx.Hash())
	_, err = exec.db.Get(txkey)
	if err == nil {
		return nil, types.ErrTxDup
	}
	if err != dbm.ErrNotFoundInDb {
		return nil, err
	}

	statedb := NewStateDB(exec.db)
	localdb := NewLocalDB(exec.db)
	blocktime := types.Now().Unix()
	driver.SetStateDB(statedb)
	driver.SetLocalDB(localdb)
	driver.SetEnv(blocktime)

	statedb.Begin()
	receipt, err = driver.Exec(tx, 0)
	if err != nil {
		statedb.Rollback()
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	statedb.Commit()

	detail := &txDetail{
		tx:         tx,
		receipt:    receipt,
		blocktime:  blocktime,
		timeindex:  drivers.TimeIndexStr(blocktime, atomic.AddInt64(&exec.seq, 1)%1000000),
		actionName: actionName,
	}
	localkvs, err := exec.execLocal(driver, detail)
	if err != nil {
		return nil, err
	}

	batch := exec.db.NewBatch(true)
	statedb.Flush(batch)
	for _, kv := range localkvs {
		setBatch(batch, kv)
	}
	if err := batch.Write(); err != nil {
		elog.Error("Execute batch write", "err", err)
		return nil, err
	}
	return receipt, nil
}

func (exec *Executor) lockKeys(tx *types.Transaction, driver drivers.Driver) []string {
	keys := []string{tx.From()}
	if ety := driver.GetExecutorType(); ety != nil {
		keys = append(keys, ety.GetLockAddrs(tx)...)
	}
	return keys
}

func (exec *Executor) execLocal(driver drivers.Driver, detail *txDetail) ([]*types.KeyValue, error) {
	var kvs []*types.KeyValue
	if exec.cfg.Exec.EnableLocalIndex {
		set, err := driver.ExecLocal(detail.tx, detail.receipt, 0)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, set.KV...)
	}
	for _, name := range pluginNames() {
		p := globalPlugins[name]
		if !p.CheckEnable(exec) {
			continue
		}
		pkvs, err := p.ExecLocal(exec, detail)
		if err != nil {
			elog.Error("execLocal plugin", "name", name, "err", err)
			return nil, err
		}
		kvs = append(kvs, pkvs...)
	}
	return kvs, nil
}

//Query 调用执行器的 Query_ 方法，只读
func (exec *Executor) Query(execer, funcName string, params []byte) (types.Message, error) {
	driver, err := drivers.LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	driver.SetConfig(exec.cfg)
	driver.SetStateDB(NewStateDB(exec.db))
	driver.SetLocalDB(NewLocalDB(exec.db))
	driver.SetEnv(types.Now().Unix())
	return driver.Query(funcName, params)
}

//GetTx 查询已执行的交易
func (exec *Executor) GetTx(hash []byte) (*types.TxResult, error) {
	value, err := exec.db.Get(types.CalcTxKey(hash))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var txresult types.TxResult
	if err := types.Decode(value, &txresult); err != nil {
		return nil, err
	}
	return &txresult, nil
}

//GetTxsByAddr 按时间顺序查询地址发起的交易
func (exec *Executor) GetTxsByAddr(req *types.ReqAddr) (*types.ReplyTxInfos, error) {
	localdb := NewLocalDB(exec.db)
	prefix := types.CalcTxAddrHashKey(req.Addr, "")
	values, err := localdb.List(prefix, req.Count, req.Direction)
	if err != nil {
		return nil, err
	}
	var reply types.ReplyTxInfos
	for _, value := range values {
		var info types.ReplyTxInfo
		if err := types.Decode(value, &info); err != nil {
			return nil, err
		}
		reply.TxInfos = append(reply.TxInfos, &info)
	}
	return &reply, nil
}

//GetAddrTxsCount 地址发起的交易数量
func (exec *Executor) GetAddrTxsCount(addr string) (int64, error) {
	value, err := exec.db.Get(types.CalcAddrTxsCountKey(addr))
	if err == dbm.ErrNotFoundInDb {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var count types.Int64
	if err := types.Decode(value, &count); err != nil {
		return 0, err
	}
	return count.Data, nil
}

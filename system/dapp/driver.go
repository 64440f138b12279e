// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动的接口和公共实现
package dapp

import (
	"reflect"

	"github.com/33cn/tournament/account"
	dbm "github.com/33cn/tournament/common/db"
	"github.com/33cn/tournament/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

//Driver 执行器驱动，每个交易都会创建一个新的实例
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	SetConfig(*types.Config)
	GetConfig() *types.Config
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	Allow(tx *types.Transaction, index int) error
	GetActionName(tx *types.Transaction) string
	SetEnv(blocktime int64)
	GetBlockTime() int64
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.Receipt, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetPayloadValue() types.Message
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

//DriverBase 驱动的公共实现，Exec_ ExecLocal_ Query_ 方法通过反射调用
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	cfg          *types.Config
	blocktime    int64
	child        Driver
	childValue   reflect.Value
	ety          types.ExecutorType
}

//GetPayloadValue action 的空结构体
func (d *DriverBase) GetPayloadValue() types.Message {
	if d.ety == nil {
		return nil
	}
	return d.ety.GetPayload()
}

//GetExecutorType 执行器类型
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

//GetFuncMap 执行器的方法表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	if d.ety == nil {
		return nil
	}
	return d.ety.GetExecFuncMap()
}

//SetEnv 设置执行时间
func (d *DriverBase) SetEnv(blocktime int64) {
	d.blocktime = blocktime
}

//GetBlockTime 执行时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

//SetExecutorType set
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

//SetChild 设置具体的驱动
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
}

//GetName 执行器名字
func (d *DriverBase) GetName() string {
	return d.child.GetDriverName()
}

//GetActionName 交易的 action 名字
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	if d.ety == nil {
		return "unknown"
	}
	return d.ety.ActionName(tx)
}

//SetConfig 设置配置
func (d *DriverBase) SetConfig(cfg *types.Config) {
	d.cfg = cfg
}

//GetConfig 配置，没有设置时返回默认配置
func (d *DriverBase) GetConfig() *types.Config {
	if d.cfg == nil {
		d.cfg = types.DefaultConfig()
	}
	return d.cfg
}

//ExecLocal 调用子类的 ExecLocal_ 方法，没有实现时返回空集合
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.Receipt, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	lset, err := d.callLocal("ExecLocal_", tx, receipt, index)
	if err != nil {
		blog.Debug("call ExecLocal", "tx.Execer", tx.Execer, "err", err)
		return &set, nil
	}
	//merge
	if lset != nil && lset.KV != nil {
		set.KV = append(set.KV, lset.KV...)
	}
	return &set, nil
}

func (d *DriverBase) callLocal(prefix string, tx *types.Transaction, receipt *types.Receipt, index int) (set *types.LocalDBSet, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call localexec error", "prefix", prefix, "tx.exec", tx.Execer, "info", r)
			err = types.ErrActionNotSupport
			set = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	//call action
	funcname := prefix + name
	funcmap := d.child.GetFuncMap()
	if _, ok := funcmap[funcname]; !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.LocalDBSet); ok {
			set = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return set, err
}

//Exec 根据 action 调用子类的 Exec_ 方法
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", tx.Execer, "info", r)
			err = types.ErrActionNotSupport
			receipt = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcmap := d.child.GetFuncMap()
	funcname := "Exec_" + name
	if _, ok := funcmap[funcname]; !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	//参数1
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.Receipt); ok {
			receipt = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	//参数2
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return receipt, err
}

//CheckTx 交易必须签名，并且 payload 可以解码
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if d.ety == nil {
		return types.ErrActionNotSupport
	}
	_, _, err := d.ety.DecodePayloadValue(tx)
	return err
}

//SetStateDB 设置状态数据库，代币账户也使用这个数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount == nil {
		acc, err := account.NewAccountDB(d.GetConfig().Exec.Symbol, db)
		if err != nil {
			panic(err) //配置已经检查过
		}
		d.coinsaccount = acc
		return
	}
	d.coinsaccount.SetDB(db)
}

//GetCoinsAccount 代币账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.coinsaccount
}

//GetStateDB 状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//SetLocalDB 本地数据库
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

//GetLocalDB 本地数据库
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

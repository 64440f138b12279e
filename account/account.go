// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 代币账户的资产操作

	1. load from db
	2. save to db
	3. KVSet
	4. Transfer，必须由账户的 owner 授权
	5. Genesis 发行
*/
package account

import (
	"strings"

	"github.com/33cn/tournament/common/address"
	dbm "github.com/33cn/tournament/common/db"
	"github.com/33cn/tournament/types"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	symbol           string
}

//NewAccountDB 创建某个符号的代币账户数据库，符号中不能有 "-"
func NewAccountDB(symbol string, db dbm.KV) (*DB, error) {
	if symbol == "" || strings.ContainsRune(symbol, '-') {
		return nil, types.ErrSymbolNameNotAllow
	}
	acc := &DB{
		accountKeyPerfix: []byte(SymbolPrefix(symbol)),
		symbol:           symbol,
	}
	acc.SetDB(db)
	return acc, nil
}

//SymbolPrefix 账户 key 的前缀
func SymbolPrefix(symbol string) string {
	return "mavl-token-" + symbol + "-"
}

//SetDB set db
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

//GetSymbol 代币符号
func (acc *DB) GetSymbol() string {
	return acc.symbol
}

//LoadAccount 读取账户，不存在返回 ErrAccountNotExist
func (acc *DB) LoadAccount(addr string) (*types.Account, error) {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return nil, types.ErrAccountNotExist
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1, nil
}

//CreateAccount 在 addr 上开一个 owner 所有的空账户
func (acc *DB) CreateAccount(addr, owner string) (*types.Receipt, error) {
	if err := address.CheckAddress(addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	if err := address.CheckAddress(owner); err != nil {
		return nil, types.ErrInvalidAddress
	}
	if _, err := acc.LoadAccount(addr); err == nil {
		return nil, types.ErrAccountExist
	}
	acc1 := &types.Account{Addr: addr, Owner: owner}
	acc.SaveAccount(acc1)
	log1 := &types.ReceiptLog{
		Ty:  types.TyLogAccountCreate,
		Log: types.Encode(acc1),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{log1},
	}, nil
}

//CheckTransfer 只检查不修改
func (acc *DB) CheckTransfer(from, to string, auth Authority, amount int64) error {
	_, _, err := acc.checkTransfer(from, to, auth, amount)
	return err
}

func (acc *DB) checkTransfer(from, to string, auth Authority, amount int64) (*types.Account, *types.Account, error) {
	if !types.CheckAmount(amount) {
		return nil, nil, types.ErrAmount
	}
	if from == to {
		return nil, nil, types.ErrSendSameToRecv
	}
	accFrom, err := acc.LoadAccount(from)
	if err != nil {
		return nil, nil, err
	}
	accTo, err := acc.LoadAccount(to)
	if err != nil {
		return nil, nil, err
	}
	if err := checkAuthority(accFrom, auth); err != nil {
		return nil, nil, err
	}
	if accFrom.GetBalance()-amount < 0 {
		return nil, nil, types.ErrNoBalance
	}
	if _, err := safeAdd(accTo.GetBalance(), amount); err != nil {
		return nil, nil, err
	}
	return accFrom, accTo, nil
}

//Transfer 从 from 转 amount 到 to，auth 必须是 from 账户的 owner
func (acc *DB) Transfer(from, to string, auth Authority, amount int64) (*types.Receipt, error) {
	accFrom, accTo, err := acc.checkTransfer(from, to, auth, amount)
	if err != nil {
		alog.Debug("Transfer", "from", from, "to", to, "amount", amount, "err", err)
		return nil, err
	}
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance = accFrom.GetBalance() - amount
	accTo.Balance = accTo.GetBalance() + amount

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo types.Message) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

//SaveAccount 保存账户
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].Key, set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

//GetKVSet 账户对应的 kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

//AccountKey 账户在状态数据库中的 key
func (acc *DB) AccountKey(address string) (key []byte) {
	key = make([]byte, 0, len(acc.accountKeyPerfix)+len(address))
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

//GetBalance 查询余额，账户不存在时返回 ErrAccountNotExist
func (acc *DB) GetBalance(addr string) (*types.Account, error) {
	if err := address.CheckAddress(addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	return acc.LoadAccount(addr)
}

func safeAdd(balance, amount int64) (int64, error) {
	if balance+amount < amount || balance+amount > types.MaxTokenBalance {
		return balance, types.ErrAmount
	}
	return balance + amount, nil
}

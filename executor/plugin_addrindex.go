// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/tournament/common"
	dbm "github.com/33cn/tournament/common/db"
	"github.com/33cn/tournament/types"
)

func init() {
	RegisterPlugin("addrindex", &addrindexPlugin{})
}

//交易发起地址的索引
type addrindexPlugin struct{}

func (p *addrindexPlugin) CheckEnable(executor *Executor) bool {
	return executor.cfg.Exec.EnableLocalIndex
}

func (p *addrindexPlugin) ExecLocal(executor *Executor, data *txDetail) ([]*types.KeyValue, error) {
	from := data.tx.From()
	txinfo := &types.ReplyTxInfo{
		Hash:       common.ToHex(data.tx.Hash()),
		Execer:     data.tx.Execer,
		ActionName: data.actionName,
		Blocktime:  data.blocktime,
	}
	var kvs []*types.KeyValue
	kvs = append(kvs, &types.KeyValue{Key: types.CalcTxAddrHashKey(from, data.timeindex), Value: types.Encode(txinfo)})
	kv, err := updateAddrTxsCount(executor.db, from, 1)
	if err != nil {
		return nil, err
	}
	kvs = append(kvs, kv)
	return kvs, nil
}

func updateAddrTxsCount(db dbm.KV, addr string, amount int64) (*types.KeyValue, error) {
	txscount := &types.Int64{}
	key := types.CalcAddrTxsCountKey(addr)
	count, err := db.Get(key)
	if err != nil && err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	if len(count) > 0 {
		if err := types.Decode(count, txscount); err != nil {
			return nil, err
		}
	}
	txscount.Data += amount
	return &types.KeyValue{Key: key, Value: types.Encode(txscount)}, nil
}

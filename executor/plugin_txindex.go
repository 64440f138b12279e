// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/tournament/common"
	"github.com/33cn/tournament/types"
)

func init() {
	RegisterPlugin("txindex", &txindexPlugin{})
}

//保存已执行的交易，这个 key 同时用于防止重放，总是开启
type txindexPlugin struct{}

func (p *txindexPlugin) CheckEnable(executor *Executor) bool {
	return true
}

func (p *txindexPlugin) ExecLocal(executor *Executor, data *txDetail) ([]*types.KeyValue, error) {
	hash := data.tx.Hash()
	txresult := &types.TxResult{
		Hash:       common.ToHex(hash),
		Tx:         data.tx,
		Receipt:    data.receipt,
		Blocktime:  data.blocktime,
		ActionName: data.actionName,
	}
	return []*types.KeyValue{{Key: types.CalcTxKey(hash), Value: types.Encode(txresult)}}, nil
}

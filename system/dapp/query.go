// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"

	"github.com/33cn/tournament/types"
)

// Query 调用子类的 Query_ 方法，params 是 json 编码的参数
func (d *DriverBase) Query(funcname string, params []byte) (msg types.Message, err error) {
	funcmap := d.child.GetFuncMap()
	funcname = "Query_" + funcname
	if _, ok := funcmap[funcname]; !ok {
		blog.Error(funcname+" funcname not find", "func", funcname)
		return nil, types.ErrQueryNotSupport
	}
	ty := funcmap[funcname].Type
	if ty.NumIn() != 2 {
		blog.Error(funcname+" err num in param", "num", ty.NumIn())
		return nil, types.ErrQueryNotSupport
	}
	paramin := ty.In(1)
	if paramin.Kind() != reflect.Ptr {
		blog.Error(funcname + "  param is not pointer")
		return nil, types.ErrQueryNotSupport
	}
	p := reflect.New(ty.In(1).Elem())
	queryin := p.Interface()
	if err := types.Decode(params, queryin); err != nil {
		return nil, err
	}
	return types.CallQueryFunc(d.childValue, funcmap[funcname], queryin)
}

// Query_GetBalance 查询代币余额，所有执行器都支持
func (d *DriverBase) Query_GetBalance(in *types.ReqAddrs) (types.Message, error) {
	var accs []*types.Account
	for _, addr := range in.Addrs {
		acc, err := d.GetCoinsAccount().GetBalance(addr)
		if err != nil {
			return nil, err
		}
		accs = append(accs, acc)
	}
	return &types.ReplyAccounts{Accounts: accs}, nil
}

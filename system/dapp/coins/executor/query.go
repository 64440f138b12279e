// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/tournament/account"
	"github.com/33cn/tournament/types"
)

//Query_GetAddrReciver 地址累计收到的代币
func (c *Coins) Query_GetAddrReciver(in *types.ReqString) (types.Message, error) {
	reciver, err := getAddrReciver(c.GetLocalDB(), in.Data)
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: reciver}, nil
}

//Query_GetAssociatedAddress owner 的默认账户地址
func (c *Coins) Query_GetAssociatedAddress(in *types.ReqString) (types.Message, error) {
	addr, err := account.AssociatedAddress(c.GetCoinsAccount().GetSymbol(), in.Data)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	return &types.ReqString{Data: addr}, nil
}

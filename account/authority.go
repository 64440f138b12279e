// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/tournament/common/address"
	"github.com/33cn/tournament/types"
)

// Authority 授权转出的身份，Address 必须等于账户的 owner。
// 交易签名者用 Signer，执行器派生地址用 *address.Proof。
type Authority interface {
	Address() string
	Verify() error
}

var _ Authority = (*address.Proof)(nil)

// Signer 已经通过签名检查的交易发起者
type Signer string

//Address 地址
func (s Signer) Address() string {
	return string(s)
}

//Verify 签名已经在执行器中检查过
func (s Signer) Verify() error {
	return address.CheckAddress(string(s))
}

func checkAuthority(acc *types.Account, auth Authority) error {
	if auth == nil {
		return types.ErrAuthority
	}
	if err := auth.Verify(); err != nil {
		alog.Debug("checkAuthority", "addr", auth.Address(), "err", err)
		return types.ErrAuthority
	}
	if auth.Address() != acc.Owner {
		return types.ErrAuthority
	}
	return nil
}

//AssociatedAddress owner 在某个代币下的默认账户地址
func AssociatedAddress(symbol, owner string) (string, error) {
	p, err := address.DeriveFor("token", symbol, owner)
	if err != nil {
		return "", err
	}
	return p.Address(), nil
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/tournament/account"
	cty "github.com/33cn/tournament/system/dapp/coins/types"
	"github.com/33cn/tournament/types"
)

//Exec_Transfer 签名者必须是 from 账户的 owner
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	from := tx.From()
	return c.GetCoinsAccount().Transfer(transfer.From, transfer.To, account.Signer(from), transfer.Amount)
}

//Exec_Genesis 只有 minter 可以发行
func (c *Coins) Exec_Genesis(genesis *cty.CoinsGenesis, tx *types.Transaction, index int) (*types.Receipt, error) {
	minter := c.GetConfig().Exec.Minter
	if minter == "" || tx.From() != minter {
		clog.Error("Exec_Genesis", "from", tx.From(), "minter", minter)
		return nil, types.ErrAuthority
	}
	return c.GetCoinsAccount().GenesisInit(genesis.To, genesis.Amount)
}

//Exec_Open 开户，owner 必须是签名者，账户只能开在 owner 或者它的关联地址上。
//派生地址的账户由各自的执行器创建
func (c *Coins) Exec_Open(open *cty.CoinsOpen, tx *types.Transaction, index int) (*types.Receipt, error) {
	owner := open.Owner
	if owner == "" {
		owner = tx.From()
	}
	if owner != tx.From() {
		clog.Error("Exec_Open", "from", tx.From(), "owner", owner)
		return nil, types.ErrAuthority
	}
	assoc, err := account.AssociatedAddress(c.GetCoinsAccount().GetSymbol(), owner)
	if err != nil {
		return nil, types.ErrInvalidAddress
	}
	addr := open.Addr
	if addr == "" {
		addr = assoc
	}
	if addr != assoc && addr != owner {
		return nil, types.ErrInvalidAddress
	}
	return c.GetCoinsAccount().CreateAccount(addr, owner)
}

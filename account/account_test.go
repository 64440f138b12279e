// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/tournament/common/address"
	dbm "github.com/33cn/tournament/common/db"
	"github.com/33cn/tournament/types"
	"github.com/33cn/tournament/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccountDB(t *testing.T) *DB {
	db, err := dbm.NewDB("test", dbm.MemDBBackendStr, "", 16)
	require.Nil(t, err)
	t.Cleanup(db.Close)
	acc, err := NewAccountDB("prize", db)
	require.Nil(t, err)
	return acc
}

func newFundedAccount(t *testing.T, acc *DB, amount int64) string {
	addr, _ := util.Genaddress()
	_, err := acc.CreateAccount(addr, addr)
	require.Nil(t, err)
	if amount > 0 {
		_, err = acc.GenesisInit(addr, amount)
		require.Nil(t, err)
	}
	return addr
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("a-b", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
	_, err = NewAccountDB("", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)

	acc := newTestAccountDB(t)
	assert.Equal(t, "prize", acc.GetSymbol())
	assert.Equal(t, "mavl-token-prize-addr", string(acc.AccountKey("addr")))
}

func TestCreateAccount(t *testing.T) {
	acc := newTestAccountDB(t)
	addr, _ := util.Genaddress()
	owner, _ := util.Genaddress()

	_, err := acc.LoadAccount(addr)
	assert.Equal(t, types.ErrAccountNotExist, err)

	receipt, err := acc.CreateAccount(addr, owner)
	require.Nil(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, 1, len(receipt.KV))
	assert.Equal(t, int32(types.TyLogAccountCreate), receipt.Logs[0].Ty)

	acc1, err := acc.LoadAccount(addr)
	require.Nil(t, err)
	assert.Equal(t, owner, acc1.Owner)
	assert.Equal(t, int64(0), acc1.Balance)

	_, err = acc.CreateAccount(addr, owner)
	assert.Equal(t, types.ErrAccountExist, err)
	_, err = acc.CreateAccount("bad", owner)
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = acc.CreateAccount(owner, "bad")
	assert.Equal(t, types.ErrInvalidAddress, err)
}

func TestGenesisInit(t *testing.T) {
	acc := newTestAccountDB(t)
	addr := newFundedAccount(t, acc, 0)

	receipt, err := acc.GenesisInit(addr, 100*types.Coin)
	require.Nil(t, err)
	assert.Equal(t, int32(types.TyLogGenesisTransfer), receipt.Logs[0].Ty)
	var r types.ReceiptAccountTransfer
	require.Nil(t, types.Decode(receipt.Logs[0].Log, &r))
	assert.Equal(t, int64(0), r.Prev.Balance)
	assert.Equal(t, 100*types.Coin, r.Current.Balance)

	_, err = acc.GenesisInit(addr, 0)
	assert.Equal(t, types.ErrAmount, err)
	none, _ := util.Genaddress()
	_, err = acc.GenesisInit(none, 1)
	assert.Equal(t, types.ErrAccountNotExist, err)
}

func TestTransfer(t *testing.T) {
	acc := newTestAccountDB(t)
	from := newFundedAccount(t, acc, 10)
	to := newFundedAccount(t, acc, 0)

	receipt, err := acc.Transfer(from, to, Signer(from), 4)
	require.Nil(t, err)
	assert.Equal(t, 2, len(receipt.KV))
	assert.Equal(t, 2, len(receipt.Logs))

	accFrom, err := acc.LoadAccount(from)
	require.Nil(t, err)
	accTo, err := acc.LoadAccount(to)
	require.Nil(t, err)
	assert.Equal(t, int64(6), accFrom.Balance)
	assert.Equal(t, int64(4), accTo.Balance)
}

func TestTransferFail(t *testing.T) {
	acc := newTestAccountDB(t)
	from := newFundedAccount(t, acc, 10)
	to := newFundedAccount(t, acc, 0)
	none, _ := util.Genaddress()

	cases := []struct {
		name   string
		from   string
		to     string
		auth   Authority
		amount int64
		err    error
	}{
		{"zero amount", from, to, Signer(from), 0, types.ErrAmount},
		{"same account", from, from, Signer(from), 1, types.ErrSendSameToRecv},
		{"no balance", from, to, Signer(from), 11, types.ErrNoBalance},
		{"not owner", from, to, Signer(to), 1, types.ErrAuthority},
		{"nil authority", from, to, nil, 1, types.ErrAuthority},
		{"bad authority", from, to, Signer("bad"), 1, types.ErrAuthority},
		{"from not exist", none, to, Signer(none), 1, types.ErrAccountNotExist},
		{"to not exist", from, none, Signer(from), 1, types.ErrAccountNotExist},
	}
	for _, c := range cases {
		err := acc.CheckTransfer(c.from, c.to, c.auth, c.amount)
		assert.Equal(t, c.err, err, c.name)
		_, err = acc.Transfer(c.from, c.to, c.auth, c.amount)
		assert.Equal(t, c.err, err, c.name)
	}

	accFrom, err := acc.LoadAccount(from)
	require.Nil(t, err)
	assert.Equal(t, int64(10), accFrom.Balance)
}

func TestTransferByProof(t *testing.T) {
	acc := newTestAccountDB(t)
	user, _ := util.Genaddress()
	proof, err := address.DeriveFor("tournament", "vault", user)
	require.Nil(t, err)

	vault := proof.Address()
	_, err = acc.CreateAccount(vault, vault)
	require.Nil(t, err)
	_, err = acc.GenesisInit(vault, 5)
	require.Nil(t, err)
	to := newFundedAccount(t, acc, 0)

	//篡改过的 proof 不能授权
	bad := *proof
	bad.Bump++
	_, err = acc.Transfer(vault, to, &bad, 5)
	assert.Equal(t, types.ErrAuthority, err)

	_, err = acc.Transfer(vault, to, proof, 5)
	require.Nil(t, err)
	accTo, err := acc.LoadAccount(to)
	require.Nil(t, err)
	assert.Equal(t, int64(5), accTo.Balance)
}

func TestAssociatedAddress(t *testing.T) {
	owner, _ := util.Genaddress()
	a1, err := AssociatedAddress("prize", owner)
	require.Nil(t, err)
	a2, err := AssociatedAddress("prize", owner)
	require.Nil(t, err)
	assert.Equal(t, a1, a2)
	assert.Nil(t, address.CheckAddress(a1))

	a3, err := AssociatedAddress("other", owner)
	require.Nil(t, err)
	assert.NotEqual(t, a1, a3)

	_, err = AssociatedAddress("prize", "bad")
	assert.NotNil(t, err)
}

func TestGetBalance(t *testing.T) {
	acc := newTestAccountDB(t)
	addr := newFundedAccount(t, acc, 7)
	acc1, err := acc.GetBalance(addr)
	require.Nil(t, err)
	assert.Equal(t, int64(7), acc1.Balance)

	_, err = acc.GetBalance("bad")
	assert.Equal(t, types.ErrInvalidAddress, err)
}

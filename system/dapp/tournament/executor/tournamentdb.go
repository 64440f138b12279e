// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/tournament/account"
	"github.com/33cn/tournament/common/address"
	dbm "github.com/33cn/tournament/common/db"
	"github.com/33cn/tournament/system/dapp"
	tty "github.com/33cn/tournament/system/dapp/tournament/types"
	"github.com/33cn/tournament/types"
	"github.com/pkg/errors"
)

type action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	index        int
	capacity     int32
}

func newAction(t *Tournament, tx *types.Transaction, index int) *action {
	return &action{t.GetCoinsAccount(), t.GetStateDB(), tx.Hash(), tx.From(),
		t.GetBlockTime(), index, t.capacity()}
}

func getTournament(db dbm.KV, addr string) (*tty.Tournament, error) {
	value, err := db.Get(calcTournamentKey(addr))
	if err == types.ErrNotFound {
		return nil, tty.ErrTournamentNotFound
	}
	if err != nil {
		return nil, err
	}
	var t tty.Tournament
	if err := types.Decode(value, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func getVault(db dbm.KV, addr string) (*tty.Vault, error) {
	value, err := db.Get(calcVaultKey(addr))
	if err == types.ErrNotFound {
		return nil, tty.ErrVaultNotFound
	}
	if err != nil {
		return nil, err
	}
	var v tty.Vault
	if err := types.Decode(value, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func getWinnerRecord(db dbm.KV, addr string) (*tty.WinnerRecord, error) {
	value, err := db.Get(calcWinnerKey(addr))
	if err != nil {
		return nil, err
	}
	var w tty.WinnerRecord
	if err := types.Decode(value, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func exist(db dbm.KV, key []byte) (bool, error) {
	_, err := db.Get(key)
	if err == types.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (a *action) saveTournament(kvc *dapp.KVCreator, t *tty.Tournament) {
	kvc.Add(calcTournamentKey(t.Address()), types.Encode(t))
}

func (a *action) receipt(kvc *dapp.KVCreator, ty int32, t *tty.Tournament, prev int32) *types.Receipt {
	r := &tty.ReceiptTournament{
		Creator:    t.Creator,
		Tournament: t.Address(),
		PrevStatus: prev,
		Status:     t.Status,
		Winner:     t.Winner,
		Count:      int32(len(t.Contestants)),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kvc.KVList(),
		Logs: []*types.ReceiptLog{{Ty: ty, Log: types.Encode(r)}},
	}
}

func transferFailure(err error) error {
	return errors.Wrap(tty.ErrTransferFailure, err.Error())
}

// checkTokenOwner 代币账户必须存在并且属于 owner
func (a *action) checkTokenOwner(addr, owner string) error {
	acc, err := a.coinsAccount.LoadAccount(addr)
	if err != nil {
		return transferFailure(err)
	}
	if acc.Owner != owner {
		tlog.Error("checkTokenOwner", "addr", addr, "owner", acc.Owner, "expect", owner)
		return tty.ErrUnauthorized
	}
	return nil
}

func (a *action) init(payload *tty.TournamentInit) (*types.Receipt, error) {
	creator := payload.Creator
	if creator == "" {
		creator = a.fromaddr
	}
	if creator != a.fromaddr {
		return nil, tty.ErrUnauthorized
	}
	if err := address.CheckAddress(payload.User); err != nil {
		return nil, tty.ErrInvalidAddress
	}
	if !types.CheckAmount(payload.PrizeAmount) {
		return nil, types.ErrAmount
	}
	if !payload.CheckUser(creator, a.fromaddr) {
		tlog.Error("init user consent", "creator", creator, "user", payload.User, "signer", payload.UserSign.Address())
		return nil, tty.ErrUnauthorized
	}
	tproof, err := tty.TournamentAddress(creator)
	if err != nil {
		return nil, tty.ErrInvalidAddress
	}
	vproof, err := tty.VaultAddress(payload.User)
	if err != nil {
		return nil, tty.ErrInvalidAddress
	}
	for _, key := range [][]byte{calcTournamentKey(tproof.Address()), calcVaultKey(vproof.Address())} {
		found, err := exist(a.db, key)
		if err != nil {
			return nil, err
		}
		if found {
			tlog.Error("init", "creator", creator, "user", payload.User, "err", tty.ErrAlreadyInitialized)
			return nil, tty.ErrAlreadyInitialized
		}
	}
	vtproof, err := tty.VaultTokenAddress(vproof.Address())
	if err != nil {
		return nil, err
	}
	receipt, err := a.coinsAccount.CreateAccount(vtproof.Address(), vproof.Address())
	if err == types.ErrAccountExist {
		return nil, tty.ErrAlreadyInitialized
	}
	if err != nil {
		return nil, err
	}

	vault := &tty.Vault{Owner: payload.User, Proof: vproof}
	t := &tty.Tournament{
		Creator:      creator,
		Proof:        tproof,
		Contestants:  []*tty.Contestant{},
		Winner:       tty.NoWinner,
		PrizeAmount:  payload.PrizeAmount,
		VaultAddress: vproof.Address(),
		Capacity:     a.capacity,
		Status:       tty.TournamentStatusCreated,
		CreateTime:   a.blocktime,
	}
	kvc := dapp.NewKVCreator(a.db)
	kvc.Add(calcVaultKey(vault.Address()), types.Encode(vault))
	a.saveTournament(kvc, t)
	tlog.Debug("init", "tournament", t.Address(), "vault", vault.Address(), "prize", t.PrizeAmount)
	return types.MergeReceipt(receipt, a.receipt(kvc, tty.TyLogTournamentInit, t, 0)), nil
}

func (a *action) add(payload *tty.TournamentAdd) (*types.Receipt, error) {
	t, err := getTournament(a.db, payload.Tournament)
	if err != nil {
		return nil, err
	}
	if t.Creator != a.fromaddr {
		return nil, tty.ErrUnauthorized
	}
	if t.Drawn {
		return nil, tty.ErrAlreadyDrawn
	}
	if len(payload.Contestants) == 0 {
		return nil, tty.ErrEmptyContestantList
	}
	for _, addr := range payload.Contestants {
		if err := address.CheckAddress(addr); err != nil {
			return nil, errors.Wrap(tty.ErrInvalidAddress, addr)
		}
	}
	if len(t.Contestants)+len(payload.Contestants) > int(t.Capacity) {
		tlog.Error("add", "tournament", payload.Tournament, "count", len(t.Contestants),
			"add", len(payload.Contestants), "capacity", t.Capacity)
		return nil, tty.ErrStorageExhausted
	}
	for _, addr := range payload.Contestants {
		t.Contestants = append(t.Contestants, &tty.Contestant{
			ID:      int64(len(t.Contestants)) + 1,
			Address: addr,
		})
	}
	prev := t.Status
	t.Status = tty.TournamentStatusContestantsOpen
	kvc := dapp.NewKVCreator(a.db)
	a.saveTournament(kvc, t)
	return a.receipt(kvc, tty.TyLogTournamentAdd, t, prev), nil
}

func (a *action) draw(payload *tty.TournamentDraw) (*types.Receipt, error) {
	t, err := getTournament(a.db, payload.Tournament)
	if err != nil {
		return nil, err
	}
	if payload.Vault != t.VaultAddress {
		return nil, tty.ErrUnauthorized
	}
	vault, err := getVault(a.db, payload.Vault)
	if err != nil {
		return nil, err
	}
	if vault.Owner != a.fromaddr {
		return nil, tty.ErrUnauthorized
	}
	if t.Drawn {
		return nil, tty.ErrAlreadyDrawn
	}
	winner, err := selectWinner(a.fromaddr, t.Contestants)
	if err != nil {
		return nil, err
	}
	vtproof, err := tty.VaultTokenAddress(vault.Address())
	if err != nil {
		return nil, err
	}
	if payload.VaultTokenAccount != vtproof.Address() {
		return nil, tty.ErrUnauthorized
	}
	if err := a.checkTokenOwner(payload.VaultTokenAccount, vault.Address()); err != nil {
		return nil, err
	}
	receipt, err := a.coinsAccount.Transfer(payload.UserTokenAccount, payload.VaultTokenAccount,
		account.Signer(a.fromaddr), t.PrizeAmount)
	if err != nil {
		tlog.Error("draw transfer", "from", payload.UserTokenAccount, "amount", t.PrizeAmount, "err", err)
		return nil, transferFailure(err)
	}

	prev := t.Status
	t.Winner = winner.Address
	t.Drawn = true
	t.Status = tty.TournamentStatusDrawn
	t.DrawTime = a.blocktime
	kvc := dapp.NewKVCreator(a.db)
	a.saveTournament(kvc, t)
	tlog.Debug("draw", "tournament", t.Address(), "winner", t.Winner, "id", winner.ID)
	return types.MergeReceipt(receipt, a.receipt(kvc, tty.TyLogTournamentDraw, t, prev)), nil
}

func (a *action) claim(payload *tty.TournamentClaim) (*types.Receipt, error) {
	t, err := getTournament(a.db, payload.Tournament)
	if err != nil {
		return nil, err
	}
	if t.Winner == tty.NoWinner {
		return nil, tty.ErrWinnerNotFound
	}
	if t.Claimed {
		return nil, tty.ErrAlreadyClaimed
	}
	if t.Winner != a.fromaddr {
		return nil, tty.ErrUnauthorized
	}
	if payload.Vault != t.VaultAddress {
		return nil, tty.ErrUnauthorized
	}
	vault, err := getVault(a.db, payload.Vault)
	if err != nil {
		return nil, err
	}
	wproof, err := tty.WinnerAddress(a.fromaddr)
	if err != nil {
		return nil, err
	}
	if payload.WinnerRecord != "" && payload.WinnerRecord != wproof.Address() {
		return nil, tty.ErrUnauthorized
	}
	vtproof, err := tty.VaultTokenAddress(vault.Address())
	if err != nil {
		return nil, err
	}
	if payload.VaultTokenAccount != vtproof.Address() {
		return nil, tty.ErrUnauthorized
	}
	if err := a.checkTokenOwner(payload.WinnerTokenAccount, a.fromaddr); err != nil {
		return nil, err
	}
	if payload.UserTokenAccount != "" {
		if err := a.checkTokenOwner(payload.UserTokenAccount, a.fromaddr); err != nil {
			return nil, err
		}
	}
	receipt, err := a.coinsAccount.Transfer(payload.VaultTokenAccount, payload.WinnerTokenAccount,
		vault.Proof, t.PrizeAmount)
	if err != nil {
		tlog.Error("claim transfer", "to", payload.WinnerTokenAccount, "amount", t.PrizeAmount, "err", err)
		return nil, transferFailure(err)
	}

	prev := t.Status
	t.Claimed = true
	t.Status = tty.TournamentStatusClaimed
	t.ClaimTime = a.blocktime
	kvc := dapp.NewKVCreator(a.db)
	a.saveTournament(kvc, t)

	record, err := getWinnerRecord(a.db, wproof.Address())
	if err == types.ErrNotFound {
		record = &tty.WinnerRecord{Winner: a.fromaddr, Proof: wproof}
	} else if err != nil {
		return nil, err
	}
	record.Claims++
	kvc.Add(calcWinnerKey(wproof.Address()), types.Encode(record))
	return types.MergeReceipt(receipt, a.receipt(kvc, tty.TyLogTournamentClaim, t, prev)), nil
}

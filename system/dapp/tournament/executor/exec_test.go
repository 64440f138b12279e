// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"
	"testing"

	"github.com/33cn/tournament/common/crypto"
	cty "github.com/33cn/tournament/system/dapp/coins/types"
	tty "github.com/33cn/tournament/system/dapp/tournament/types"
	"github.com/33cn/tournament/types"
	"github.com/33cn/tournament/util"
	"github.com/33cn/tournament/util/testnode"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type player struct {
	addr  string
	token string
	priv  crypto.PrivKey
}

type tournamentEnv struct {
	t       *testing.T
	mock    *testnode.TournamentMock
	creator *player
	user    *player
}

func newPlayer(t *testing.T, mock *testnode.TournamentMock, amount int64) *player {
	addr, token, priv, err := mock.NewFundedAccount(amount)
	require.Nil(t, err)
	return &player{addr: addr, token: token, priv: priv}
}

func newTournamentEnv(t *testing.T, cfg *types.Config) *tournamentEnv {
	if cfg == nil {
		cfg = testnode.GetDefaultConfig()
	}
	mock := testnode.NewWithConfig(cfg)
	t.Cleanup(mock.Close)
	return &tournamentEnv{
		t:       t,
		mock:    mock,
		creator: newPlayer(t, mock, 0),
		user:    newPlayer(t, mock, 100),
	}
}

func (env *tournamentEnv) symbol() string {
	return env.mock.GetConfig().Exec.Symbol
}

func (env *tournamentEnv) exec(p *player, action *tty.TournamentAction) error {
	_, err := env.mock.Exec(p.priv, tty.TournamentX, action)
	return err
}

func (env *tournamentEnv) init(prize int64) error {
	return env.exec(env.creator, tty.NewInitWithConsent(env.creator.addr, env.user.priv, prize))
}

func (env *tournamentEnv) add(p *player, addrs ...string) error {
	action, err := tty.NewAdd(env.creator.addr, addrs)
	require.Nil(env.t, err)
	return env.exec(p, action)
}

func (env *tournamentEnv) draw(p *player) error {
	action, err := tty.NewDraw(env.symbol(), env.creator.addr, p.addr)
	require.Nil(env.t, err)
	return env.exec(p, action)
}

func (env *tournamentEnv) claim(p *player) error {
	action, err := tty.NewClaim(env.symbol(), env.creator.addr, env.user.addr, p.addr)
	require.Nil(env.t, err)
	return env.exec(p, action)
}

func (env *tournamentEnv) tournament() *tty.Tournament {
	msg, err := env.mock.GetExec().Query(tty.TournamentX, "GetTournament", types.Encode(&types.ReqString{Data: env.creator.addr}))
	require.Nil(env.t, err)
	return msg.(*tty.Tournament)
}

func (env *tournamentEnv) vaultToken() string {
	v, err := tty.VaultAddress(env.user.addr)
	require.Nil(env.t, err)
	vt, err := tty.VaultTokenAddress(v.Address())
	require.Nil(env.t, err)
	return vt.Address()
}

func (env *tournamentEnv) balance(addr string) int64 {
	b, err := env.mock.Balance(addr)
	require.Nil(env.t, err)
	return b
}

func (env *tournamentEnv) contestants(n int) []*player {
	var ps []*player
	for i := 0; i < n; i++ {
		ps = append(ps, newPlayer(env.t, env.mock, 0))
	}
	return ps
}

func addrs(ps []*player) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.addr)
	}
	return out
}

func expectWinner(t *testing.T, caller string, ps []*player) *player {
	digest, err := drawDigest(caller)
	require.Nil(t, err)
	return ps[selectIndex(digest, len(ps))]
}

func TestInit(t *testing.T) {
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.init(5))

	tour := env.tournament()
	assert.Equal(t, int64(5), tour.PrizeAmount)
	assert.False(t, tour.Claimed)
	assert.False(t, tour.Drawn)
	assert.Equal(t, tty.NoWinner, tour.Winner)
	assert.Equal(t, env.creator.addr, tour.Creator)
	assert.Equal(t, tty.TournamentStatusCreated, tour.Status)
	assert.Equal(t, int32(tty.DefaultMaxContestants), tour.Capacity)
	assert.Empty(t, tour.Contestants)
	require.Nil(t, tour.Proof.Verify())

	msg, err := env.mock.GetExec().Query(tty.TournamentX, "GetVault", types.Encode(&types.ReqString{Data: env.user.addr}))
	require.Nil(t, err)
	vault := msg.(*tty.Vault)
	assert.Equal(t, env.user.addr, vault.Owner)
	assert.Equal(t, tour.VaultAddress, vault.Address())
	require.Nil(t, vault.Proof.Verify())
	assert.Equal(t, int64(0), env.balance(env.vaultToken()))

	err = env.init(5)
	assert.Equal(t, tty.ErrAlreadyInitialized, err)

	// 另一个 creator 使用同一个金库
	other := newPlayer(t, env.mock, 0)
	_, err = env.mock.Exec(other.priv, tty.TournamentX, tty.NewInitWithConsent(other.addr, env.user.priv, 5))
	assert.Equal(t, tty.ErrAlreadyInitialized, err)
}

func TestInitSignedByUser(t *testing.T) {
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.exec(env.user, tty.NewInit("", env.user.addr, 5)))

	msg, err := env.mock.GetExec().Query(tty.TournamentX, "GetTournament", types.Encode(&types.ReqString{Data: env.user.addr}))
	require.Nil(t, err)
	tour := msg.(*tty.Tournament)
	assert.Equal(t, env.user.addr, tour.Creator)
	v, err := tty.VaultAddress(env.user.addr)
	require.Nil(t, err)
	assert.Equal(t, v.Address(), tour.VaultAddress)
}

func TestInitUserConsent(t *testing.T) {
	env := newTournamentEnv(t, nil)
	stranger := newPlayer(t, env.mock, 0)

	noConsent := tty.NewInit(stranger.addr, env.user.addr, 1)
	wrongKey := tty.NewInit(stranger.addr, env.user.addr, 1)
	wrongKey.Init.SignUser(stranger.priv)
	tampered := tty.NewInitWithConsent(stranger.addr, env.user.priv, 1)
	tampered.Init.PrizeAmount = 2
	otherCreator := tty.NewInitWithConsent(env.creator.addr, env.user.priv, 1)
	otherCreator.Init.Creator = stranger.addr

	tests := []struct {
		name   string
		action *tty.TournamentAction
	}{
		{"no consent", noConsent},
		{"signed by another key", wrongKey},
		{"prize changed after consent", tampered},
		{"consent for another creator", otherCreator},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, tty.ErrUnauthorized, env.exec(stranger, test.action))
		})
	}

	//陌生人不能占用 user 的金库
	_, err := env.mock.GetExec().Query(tty.TournamentX, "GetVault", types.Encode(&types.ReqString{Data: env.user.addr}))
	assert.Equal(t, tty.ErrVaultNotFound, err)
	require.Nil(t, env.init(5))
}

func TestInitVaultTokenNotOpenable(t *testing.T) {
	env := newTournamentEnv(t, nil)
	stranger := newPlayer(t, env.mock, 0)
	vt := env.vaultToken()

	//派生的金库代币账户不能被别人提前开户
	_, err := env.mock.Exec(stranger.priv, cty.CoinsX, cty.NewOpen(vt, vt))
	assert.Equal(t, types.ErrAuthority, err)
	_, err = env.mock.Exec(stranger.priv, cty.CoinsX, cty.NewOpen(vt, stranger.addr))
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = env.mock.Exec(stranger.priv, cty.CoinsX, cty.NewOpen(vt, ""))
	assert.Equal(t, types.ErrInvalidAddress, err)

	require.Nil(t, env.init(5))
	assert.Equal(t, int64(0), env.balance(vt))
}

func TestInitFail(t *testing.T) {
	env := newTournamentEnv(t, nil)
	other := newPlayer(t, env.mock, 0)
	tests := []struct {
		name   string
		action *tty.TournamentAction
		err    error
	}{
		{"creator not signer", tty.NewInit(other.addr, env.user.addr, 5), tty.ErrUnauthorized},
		{"zero prize", tty.NewInitWithConsent(env.creator.addr, env.user.priv, 0), types.ErrAmount},
		{"negative prize", tty.NewInit("", env.user.addr, -1), types.ErrAmount},
		{"bad user", tty.NewInit("", "not-an-address", 5), tty.ErrInvalidAddress},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := env.exec(env.creator, test.action)
			assert.Equal(t, test.err, err)
		})
	}
	_, err := env.mock.GetExec().Query(tty.TournamentX, "GetTournament", types.Encode(&types.ReqString{Data: env.creator.addr}))
	assert.Equal(t, tty.ErrTournamentNotFound, err)
}

func TestAddContestants(t *testing.T) {
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.init(5))
	ps := env.contestants(3)

	require.Nil(t, env.add(env.creator, ps[0].addr, ps[1].addr))
	require.Nil(t, env.add(env.creator, ps[2].addr))

	tour := env.tournament()
	require.Len(t, tour.Contestants, 3)
	for i, c := range tour.Contestants {
		assert.Equal(t, int64(i+1), c.ID)
		assert.Equal(t, ps[i].addr, c.Address)
	}
	assert.Equal(t, tty.TournamentStatusContestantsOpen, tour.Status)

	// 不去重
	require.Nil(t, env.add(env.creator, ps[0].addr))
	assert.Equal(t, []string{ps[0].addr, ps[1].addr, ps[2].addr, ps[0].addr}, env.tournament().GetContestants())
}

func TestAddContestantsFail(t *testing.T) {
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.init(5))
	ps := env.contestants(1)

	assert.Equal(t, tty.ErrUnauthorized, env.add(env.user, ps[0].addr))
	assert.Equal(t, tty.ErrEmptyContestantList, env.add(env.creator))

	err := env.add(env.creator, ps[0].addr, "bad")
	assert.Equal(t, tty.ErrInvalidAddress, errors.Cause(err))
	assert.Empty(t, env.tournament().Contestants)

	other := newPlayer(t, env.mock, 0)
	action, err := tty.NewAdd(other.addr, []string{ps[0].addr})
	require.Nil(t, err)
	assert.Equal(t, tty.ErrTournamentNotFound, env.exec(other, action))
}

func TestAddContestantsCapacity(t *testing.T) {
	cfg := testnode.GetDefaultConfig()
	cfg.Exec.Tournament.MaxContestants = 3
	env := newTournamentEnv(t, cfg)
	require.Nil(t, env.init(5))
	ps := env.contestants(4)

	require.Nil(t, env.add(env.creator, ps[0].addr, ps[1].addr))
	assert.Equal(t, tty.ErrStorageExhausted, env.add(env.creator, ps[2].addr, ps[3].addr))
	assert.Equal(t, []string{ps[0].addr, ps[1].addr}, env.tournament().GetContestants())

	require.Nil(t, env.add(env.creator, ps[2].addr))
	assert.Equal(t, tty.ErrStorageExhausted, env.add(env.creator, ps[3].addr))
	assert.Equal(t, int32(3), env.tournament().Capacity)
}

func TestSelectIndex(t *testing.T) {
	digest := make([]byte, 32)
	digest[0] = 7
	assert.Equal(t, 1, selectIndex(digest, 3))
	assert.Equal(t, 0, selectIndex(digest, 1))
	assert.Equal(t, 7, selectIndex(digest, 10))

	for i := 0; i < 256; i++ {
		digest[0] = byte(i)
		for n := 1; n <= 20; n++ {
			index := selectIndex(digest, n)
			assert.True(t, index >= 0 && index < n)
		}
	}
}

func TestSelectWinnerDeterministic(t *testing.T) {
	caller, _ := util.Genaddress()
	var roster []*tty.Contestant
	for i := 0; i < 5; i++ {
		addr, _ := util.Genaddress()
		roster = append(roster, &tty.Contestant{ID: int64(i + 1), Address: addr})
	}
	w1, err := selectWinner(caller, roster)
	require.Nil(t, err)
	w2, err := selectWinner(caller, roster)
	require.Nil(t, err)
	assert.Equal(t, w1, w2)

	_, err = selectWinner(caller, nil)
	assert.Equal(t, tty.ErrEmptyContestantList, err)
	_, err = selectWinner("bad", roster)
	assert.Equal(t, tty.ErrInvalidAddress, err)
}

func TestDrawAndClaim(t *testing.T) {
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.init(5))
	ps := env.contestants(3)
	require.Nil(t, env.add(env.creator, addrs(ps)...))
	winner := expectWinner(t, env.user.addr, ps)

	require.Nil(t, env.draw(env.user))
	tour := env.tournament()
	assert.Equal(t, winner.addr, tour.Winner)
	assert.True(t, tour.Drawn)
	assert.False(t, tour.Claimed)
	assert.Equal(t, tty.TournamentStatusDrawn, tour.Status)
	assert.Equal(t, int64(95), env.balance(env.user.token))
	assert.Equal(t, int64(5), env.balance(env.vaultToken()))

	// 只能开奖一次
	assert.Equal(t, tty.ErrAlreadyDrawn, env.draw(env.user))
	assert.Equal(t, int64(95), env.balance(env.user.token))
	assert.Equal(t, winner.addr, env.tournament().Winner)
	assert.Equal(t, tty.ErrAlreadyDrawn, env.add(env.creator, ps[0].addr))

	for _, p := range ps {
		if p != winner {
			assert.Equal(t, tty.ErrUnauthorized, env.claim(p))
		}
	}
	assert.Equal(t, int64(5), env.balance(env.vaultToken()))

	require.Nil(t, env.claim(winner))
	tour = env.tournament()
	assert.True(t, tour.Claimed)
	assert.Equal(t, tty.TournamentStatusClaimed, tour.Status)
	assert.Equal(t, int64(0), env.balance(env.vaultToken()))
	assert.Equal(t, int64(5), env.balance(winner.token))

	msg, err := env.mock.GetExec().Query(tty.TournamentX, "GetWinnerRecord", types.Encode(&types.ReqString{Data: winner.addr}))
	require.Nil(t, err)
	record := msg.(*tty.WinnerRecord)
	assert.Equal(t, winner.addr, record.Winner)
	assert.Equal(t, int64(1), record.Claims)

	assert.Equal(t, tty.ErrAlreadyClaimed, env.claim(winner))
	assert.Equal(t, int64(5), env.balance(winner.token))
}

func TestDrawEmptyRoster(t *testing.T) {
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.init(5))

	assert.Equal(t, tty.ErrEmptyContestantList, env.draw(env.user))
	tour := env.tournament()
	assert.Equal(t, tty.NoWinner, tour.Winner)
	assert.False(t, tour.Drawn)
	assert.Equal(t, int64(100), env.balance(env.user.token))
	assert.Equal(t, int64(0), env.balance(env.vaultToken()))

	assert.Equal(t, tty.ErrWinnerNotFound, env.claim(env.user))
}

func TestDrawUnauthorized(t *testing.T) {
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.init(5))
	ps := env.contestants(2)
	require.Nil(t, env.add(env.creator, addrs(ps)...))

	// 签名者不是金库的 owner
	stranger := newPlayer(t, env.mock, 100)
	action, err := tty.NewDraw(env.symbol(), env.creator.addr, env.user.addr)
	require.Nil(t, err)
	action.Draw.UserTokenAccount = stranger.token
	assert.Equal(t, tty.ErrUnauthorized, env.exec(stranger, action))

	// 金库代币账户不是金库的
	action, err = tty.NewDraw(env.symbol(), env.creator.addr, env.user.addr)
	require.Nil(t, err)
	action.Draw.VaultTokenAccount = stranger.token
	assert.Equal(t, tty.ErrUnauthorized, env.exec(env.user, action))

	// 从别人的代币账户转出
	action, err = tty.NewDraw(env.symbol(), env.creator.addr, env.user.addr)
	require.Nil(t, err)
	action.Draw.UserTokenAccount = stranger.token
	err = env.exec(env.user, action)
	assert.Equal(t, tty.ErrTransferFailure, errors.Cause(err))

	assert.False(t, env.tournament().Drawn)
	assert.Equal(t, int64(100), env.balance(stranger.token))
	assert.Equal(t, int64(100), env.balance(env.user.token))
}

func TestDrawTransferFailure(t *testing.T) {
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.init(500))
	ps := env.contestants(2)
	require.Nil(t, env.add(env.creator, addrs(ps)...))

	err := env.draw(env.user)
	assert.Equal(t, tty.ErrTransferFailure, errors.Cause(err))
	assert.Contains(t, err.Error(), types.ErrNoBalance.Error())

	tour := env.tournament()
	assert.False(t, tour.Drawn)
	assert.Equal(t, tty.NoWinner, tour.Winner)
	assert.Equal(t, tty.TournamentStatusContestantsOpen, tour.Status)
	assert.Equal(t, int64(100), env.balance(env.user.token))

	require.Nil(t, env.mock.Fund(env.user.token, 400))
	require.Nil(t, env.draw(env.user))
	assert.Equal(t, int64(0), env.balance(env.user.token))
	assert.Equal(t, int64(500), env.balance(env.vaultToken()))
}

func TestClaimChecks(t *testing.T) {
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.init(5))
	ps := env.contestants(1)
	require.Nil(t, env.add(env.creator, ps[0].addr))
	require.Nil(t, env.draw(env.user))
	winner := ps[0]

	// 领奖记录地址必须是 winner 的
	action, err := tty.NewClaim(env.symbol(), env.creator.addr, env.user.addr, winner.addr)
	require.Nil(t, err)
	action.Claim.WinnerRecord = env.user.addr
	assert.Equal(t, tty.ErrUnauthorized, env.exec(winner, action))

	// 奖金只能转到 winner 自己的账户
	action, err = tty.NewClaim(env.symbol(), env.creator.addr, env.user.addr, winner.addr)
	require.Nil(t, err)
	action.Claim.WinnerTokenAccount = env.user.token
	assert.Equal(t, tty.ErrUnauthorized, env.exec(winner, action))

	action, err = tty.NewClaim(env.symbol(), env.creator.addr, env.user.addr, winner.addr)
	require.Nil(t, err)
	action.Claim.UserTokenAccount = env.user.token
	assert.Equal(t, tty.ErrUnauthorized, env.exec(winner, action))

	action, err = tty.NewClaim(env.symbol(), env.creator.addr, env.user.addr, winner.addr)
	require.Nil(t, err)
	action.Claim.Vault = env.user.addr
	assert.Equal(t, tty.ErrUnauthorized, env.exec(winner, action))

	assert.False(t, env.tournament().Claimed)
	assert.Equal(t, int64(5), env.balance(env.vaultToken()))

	action, err = tty.NewClaim(env.symbol(), env.creator.addr, env.user.addr, winner.addr)
	require.Nil(t, err)
	action.Claim.UserTokenAccount = winner.token
	require.Nil(t, env.exec(winner, action))
	assert.Equal(t, int64(5), env.balance(winner.token))
}

func TestWinnerRecordClaims(t *testing.T) {
	env := newTournamentEnv(t, nil)
	winner := newPlayer(t, env.mock, 0)

	for i := 0; i < 2; i++ {
		env.creator = newPlayer(t, env.mock, 0)
		env.user = newPlayer(t, env.mock, 10)
		require.Nil(t, env.init(5))
		require.Nil(t, env.add(env.creator, winner.addr))
		require.Nil(t, env.draw(env.user))
		require.Nil(t, env.claim(winner))
	}
	msg, err := env.mock.GetExec().Query(tty.TournamentX, "GetWinnerRecord", types.Encode(&types.ReqString{Data: winner.addr}))
	require.Nil(t, err)
	assert.Equal(t, int64(2), msg.(*tty.WinnerRecord).Claims)
	assert.Equal(t, int64(10), env.balance(winner.token))
}

func TestDrawReplay(t *testing.T) {
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.init(5))
	ps := env.contestants(2)
	require.Nil(t, env.add(env.creator, addrs(ps)...))

	action, err := tty.NewDraw(env.symbol(), env.creator.addr, env.user.addr)
	require.Nil(t, err)
	tx := util.CreateTxWithExecer(env.user.priv, tty.TournamentX, action)
	_, err = env.mock.GetExec().Execute(tx)
	require.Nil(t, err)
	_, err = env.mock.GetExec().Execute(tx)
	assert.Equal(t, types.ErrTxDup, err)
	assert.Equal(t, int64(95), env.balance(env.user.token))
}

func TestDrawConcurrent(t *testing.T) {
	defer goleak.VerifyNone(t)
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.init(5))
	ps := env.contestants(3)
	require.Nil(t, env.add(env.creator, addrs(ps)...))

	action, err := tty.NewDraw(env.symbol(), env.creator.addr, env.user.addr)
	require.Nil(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok, drawn int
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := env.exec(env.user, action)
			mu.Lock()
			defer mu.Unlock()
			switch err {
			case nil:
				ok++
			case tty.ErrAlreadyDrawn:
				drawn++
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, ok)
	assert.Equal(t, 9, drawn)
	assert.Equal(t, int64(95), env.balance(env.user.token))
	assert.Equal(t, int64(5), env.balance(env.vaultToken()))
}

func TestListTournaments(t *testing.T) {
	env := newTournamentEnv(t, nil)
	creator1, user1 := env.creator, env.user
	require.Nil(t, env.init(5))
	ps := env.contestants(2)
	require.Nil(t, env.add(env.creator, addrs(ps)...))

	env.creator = newPlayer(t, env.mock, 0)
	env.user = newPlayer(t, env.mock, 10)
	require.Nil(t, env.init(5))

	list := func(status int32) ([]*tty.Tournament, error) {
		msg, err := env.mock.GetExec().Query(tty.TournamentX, "ListTournaments",
			types.Encode(&tty.ReqTournaments{Status: status}))
		if err != nil {
			return nil, err
		}
		return msg.(*tty.ReplyTournaments).Tournaments, nil
	}

	created, err := list(tty.TournamentStatusCreated)
	require.Nil(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, env.creator.addr, created[0].Creator)

	open, err := list(tty.TournamentStatusContestantsOpen)
	require.Nil(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, creator1.addr, open[0].Creator)

	env.creator, env.user = creator1, user1
	require.Nil(t, env.draw(env.user))
	_, err = list(tty.TournamentStatusContestantsOpen)
	assert.Equal(t, types.ErrNotFound, err)
	drawn, err := list(tty.TournamentStatusDrawn)
	require.Nil(t, err)
	require.Len(t, drawn, 1)
	assert.Equal(t, creator1.addr, drawn[0].Creator)

	_, err = list(99)
	assert.Equal(t, types.ErrNotFound, err)
}

func TestDecodeLog(t *testing.T) {
	env := newTournamentEnv(t, nil)
	receipt, err := env.mock.Exec(env.creator.priv, tty.TournamentX, tty.NewInitWithConsent(env.creator.addr, env.user.priv, 5))
	require.Nil(t, err)
	ety := types.LoadExecutorType(tty.TournamentX)
	var found bool
	for _, l := range receipt.Logs {
		name, msg, err := ety.DecodeLog(l.Ty, l.Log)
		require.Nil(t, err)
		if l.Ty == tty.TyLogTournamentInit {
			found = true
			assert.Equal(t, "LogTournamentInit", name)
			r := msg.(*tty.ReceiptTournament)
			assert.Equal(t, env.creator.addr, r.Creator)
			assert.Equal(t, tty.TournamentStatusCreated, r.Status)
		}
	}
	assert.True(t, found)
}

type failingKV struct {
	err error
}

func (kv failingKV) Get(key []byte) ([]byte, error) {
	return nil, kv.err
}

func (kv failingKV) Set(key []byte, value []byte) error {
	return kv.err
}

func TestLoadBackendError(t *testing.T) {
	ioErr := errors.New("disk failure")
	broken := failingKV{err: ioErr}
	_, err := getTournament(broken, "addr")
	assert.Equal(t, ioErr, err)
	_, err = getVault(broken, "addr")
	assert.Equal(t, ioErr, err)
	_, err = getWinnerRecord(broken, "addr")
	assert.Equal(t, ioErr, err)
	_, err = exist(broken, []byte("key"))
	assert.Equal(t, ioErr, err)

	user, _ := util.Genaddress()
	a := &action{db: broken, fromaddr: user}
	_, err = a.init(&tty.TournamentInit{User: user, PrizeAmount: 5})
	assert.Equal(t, ioErr, err)

	missing := failingKV{err: types.ErrNotFound}
	_, err = getTournament(missing, "addr")
	assert.Equal(t, tty.ErrTournamentNotFound, err)
	_, err = getVault(missing, "addr")
	assert.Equal(t, tty.ErrVaultNotFound, err)
	_, err = getWinnerRecord(missing, "addr")
	assert.Equal(t, types.ErrNotFound, err)
	found, err := exist(missing, []byte("key"))
	assert.Nil(t, err)
	assert.False(t, found)
}

func TestClaimCorruptWinnerRecord(t *testing.T) {
	env := newTournamentEnv(t, nil)
	require.Nil(t, env.init(5))
	ps := env.contestants(1)
	require.Nil(t, env.add(env.creator, ps[0].addr))
	require.Nil(t, env.draw(env.user))
	winner := ps[0]

	wproof, err := tty.WinnerAddress(winner.addr)
	require.Nil(t, err)
	require.Nil(t, env.mock.GetDB().Set(calcWinnerKey(wproof.Address()), []byte("not a record")))

	assert.NotNil(t, env.claim(winner))
	assert.False(t, env.tournament().Claimed)
	assert.Equal(t, int64(5), env.balance(env.vaultToken()))
	assert.Equal(t, int64(0), env.balance(winner.token))

	_, err = env.mock.GetExec().Query(tty.TournamentX, "GetWinnerRecord", types.Encode(&types.ReqString{Data: winner.addr}))
	assert.NotNil(t, err)
	assert.NotEqual(t, types.ErrNotFound, err)
}

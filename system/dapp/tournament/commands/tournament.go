// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands tournament 执行器命令
package commands

import (
	"fmt"

	commandtypes "github.com/33cn/tournament/system/dapp/commands/types"
	tty "github.com/33cn/tournament/system/dapp/tournament/types"
	"github.com/33cn/tournament/types"
	"github.com/33cn/tournament/util"
	"github.com/spf13/cobra"
)

// TournamentCmd tournament 命令
func TournamentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Tournament prize escrow",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InitCmd(),
		AddCmd(),
		DrawCmd(),
		ClaimCmd(),
		ShowCmd(),
		VaultCmd(),
		WinnerCmd(),
		ListCmd(),
	)
	return cmd
}

func addKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "hex private key of the signer")
	cmd.MarkFlagRequired("key")
}

func signerAddress(cmd *cobra.Command) (string, error) {
	key, _ := cmd.Flags().GetString("key")
	priv, err := util.PrivKeyFromHex(key)
	if err != nil {
		return "", err
	}
	return util.PrivKeyAddress(priv), nil
}

func symbol(cmd *cobra.Command) (string, error) {
	confPath, _ := cmd.Flags().GetString("conf")
	cfg, err := types.InitCfg(confPath)
	if err != nil {
		return "", err
	}
	return cfg.Exec.Symbol, nil
}

// InitCmd 创建比赛
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a tournament signed by the creator, and the vault of the user",
		Run:   initTournament,
	}
	addKeyFlag(cmd)
	cmd.Flags().StringP("user", "u", "", "vault owner who stakes the prize, default the signer")
	cmd.Flags().StringP("userkey", "s", "", "hex private key of the user, signs the consent when the user is not the signer")
	cmd.Flags().StringP("prize", "p", "", "prize amount")
	cmd.MarkFlagRequired("prize")
	return cmd
}

func initTournament(cmd *cobra.Command, args []string) {
	user, _ := cmd.Flags().GetString("user")
	userKey, _ := cmd.Flags().GetString("userkey")
	prize, err := commandtypes.GetAmountValue(cmd, "prize")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	creator, err := signerAddress(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	if userKey == "" {
		if user == "" {
			user = creator
		}
		commandtypes.SendTx(cmd, tty.TournamentX, tty.NewInit(creator, user, prize))
		return
	}
	priv, err := util.PrivKeyFromHex(userKey)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	if user != "" && user != util.PrivKeyAddress(priv) {
		fmt.Fprintln(cmd.ErrOrStderr(), "userkey does not match user", user)
		return
	}
	commandtypes.SendTx(cmd, tty.TournamentX, tty.NewInitWithConsent(creator, priv, prize))
}

// AddCmd 追加参赛者
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append contestants, signed by the creator",
		Run:   addContestants,
	}
	addKeyFlag(cmd)
	cmd.Flags().StringSliceP("contestants", "c", nil, "contestant addresses, comma separated")
	cmd.MarkFlagRequired("contestants")
	return cmd
}

func addContestants(cmd *cobra.Command, args []string) {
	contestants, _ := cmd.Flags().GetStringSlice("contestants")
	creator, err := signerAddress(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	action, err := tty.NewAdd(creator, contestants)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	commandtypes.SendTx(cmd, tty.TournamentX, action)
}

// DrawCmd 开奖
func DrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw the winner and escrow the prize, signed by the vault owner",
		Run:   draw,
	}
	addKeyFlag(cmd)
	cmd.Flags().StringP("creator", "r", "", "tournament creator")
	cmd.MarkFlagRequired("creator")
	cmd.Flags().StringP("from", "f", "", "token account paying the prize, default the signer's associated address")
	return cmd
}

func draw(cmd *cobra.Command, args []string) {
	creator, _ := cmd.Flags().GetString("creator")
	from, _ := cmd.Flags().GetString("from")
	user, err := signerAddress(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	sym, err := symbol(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	action, err := tty.NewDraw(sym, creator, user)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	if from != "" {
		action.Draw.UserTokenAccount = from
	}
	commandtypes.SendTx(cmd, tty.TournamentX, action)
}

// ClaimCmd 领奖
func ClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim the prize, signed by the winner",
		Run:   claim,
	}
	addKeyFlag(cmd)
	cmd.Flags().StringP("creator", "r", "", "tournament creator")
	cmd.MarkFlagRequired("creator")
	cmd.Flags().StringP("user", "u", "", "vault owner")
	cmd.MarkFlagRequired("user")
	cmd.Flags().StringP("to", "t", "", "token account receiving the prize, default the signer's associated address")
	return cmd
}

func claim(cmd *cobra.Command, args []string) {
	creator, _ := cmd.Flags().GetString("creator")
	user, _ := cmd.Flags().GetString("user")
	to, _ := cmd.Flags().GetString("to")
	winner, err := signerAddress(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	sym, err := symbol(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	action, err := tty.NewClaim(sym, creator, user, winner)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	if to != "" {
		action.Claim.WinnerTokenAccount = to
	}
	commandtypes.SendTx(cmd, tty.TournamentX, action)
}

// TournamentResult 比赛的显示格式
type TournamentResult struct {
	Address      string            `json:"address"`
	Creator      string            `json:"creator"`
	Status       string            `json:"status"`
	PrizeAmount  string            `json:"prizeAmount"`
	Capacity     int32             `json:"capacity"`
	Contestants  []*tty.Contestant `json:"contestants"`
	Winner       string            `json:"winner,omitempty"`
	Claimed      bool              `json:"claimed"`
	VaultAddress string            `json:"vaultAddress"`
	VaultBalance string            `json:"vaultBalance"`
	CreateTime   int64             `json:"createTime"`
	DrawTime     int64             `json:"drawTime,omitempty"`
	ClaimTime    int64             `json:"claimTime,omitempty"`
}

func decodeTournament(ctx *commandtypes.Context, t *tty.Tournament) *TournamentResult {
	res := &TournamentResult{
		Address:      t.Address(),
		Creator:      t.Creator,
		Status:       tty.StatusName(t.Status),
		PrizeAmount:  commandtypes.FormatAmountValue2Display(t.PrizeAmount),
		Capacity:     t.Capacity,
		Contestants:  t.Contestants,
		Winner:       t.Winner,
		Claimed:      t.Claimed,
		VaultAddress: t.VaultAddress,
		CreateTime:   t.CreateTime,
		DrawTime:     t.DrawTime,
		ClaimTime:    t.ClaimTime,
	}
	vt, err := tty.VaultTokenAddress(t.VaultAddress)
	if err != nil {
		return res
	}
	msg, err := ctx.Exec.Query(tty.TournamentX, "GetBalance", types.Encode(&types.ReqAddrs{Addrs: []string{vt.Address()}}))
	if err == nil {
		res.VaultBalance = commandtypes.FormatAmountValue2Display(msg.(*types.ReplyAccounts).Accounts[0].Balance)
	}
	return res
}

// ShowCmd 查询比赛
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the tournament of a creator",
		Run:   show,
	}
	cmd.Flags().StringP("creator", "r", "", "tournament creator")
	cmd.MarkFlagRequired("creator")
	return cmd
}

func show(cmd *cobra.Command, args []string) {
	creator, _ := cmd.Flags().GetString("creator")
	commandtypes.Run(cmd, func(ctx *commandtypes.Context) (interface{}, error) {
		msg, err := ctx.Exec.Query(tty.TournamentX, "GetTournament", types.Encode(&types.ReqString{Data: creator}))
		if err != nil {
			return nil, err
		}
		return decodeTournament(ctx, msg.(*tty.Tournament)), nil
	})
}

// VaultCmd 查询金库
func VaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Show the vault of a user",
		Run:   vault,
	}
	cmd.Flags().StringP("user", "u", "", "vault owner")
	cmd.MarkFlagRequired("user")
	return cmd
}

func vault(cmd *cobra.Command, args []string) {
	user, _ := cmd.Flags().GetString("user")
	commandtypes.Query(cmd, tty.TournamentX, "GetVault", &types.ReqString{Data: user})
}

// WinnerCmd 查询领奖记录
func WinnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "winner",
		Short: "Show the claim record of a winner",
		Run:   winner,
	}
	cmd.Flags().StringP("addr", "a", "", "winner address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func winner(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	commandtypes.Query(cmd, tty.TournamentX, "GetWinnerRecord", &types.ReqString{Data: addr})
}

// ListCmd 按状态列出比赛
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tournaments by status",
		Run:   list,
	}
	cmd.Flags().StringP("status", "s", "open", "status: created, open, drawn, claimed")
	cmd.Flags().Int32P("count", "c", 10, "maximum return number of tournaments")
	cmd.Flags().Int32P("direction", "d", 0, "0: descending by creator, 1: ascending")
	return cmd
}

func list(cmd *cobra.Command, args []string) {
	status, _ := cmd.Flags().GetString("status")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	req := &tty.ReqTournaments{Status: tty.StatusFromName(status), Count: count, Direction: direction}
	commandtypes.Run(cmd, func(ctx *commandtypes.Context) (interface{}, error) {
		msg, err := ctx.Exec.Query(tty.TournamentX, "ListTournaments", types.Encode(req))
		if err != nil {
			return nil, err
		}
		var res []*TournamentResult
		for _, t := range msg.(*tty.ReplyTournaments).Tournaments {
			res = append(res, decodeTournament(ctx, t))
		}
		return res, nil
	})
}

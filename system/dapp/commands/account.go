// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/33cn/tournament/account"
	commandtypes "github.com/33cn/tournament/system/dapp/commands/types"
	cty "github.com/33cn/tournament/system/dapp/coins/types"
	"github.com/33cn/tournament/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Token account management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		OpenAccountCmd(),
		GenesisCmd(),
		TransferCmd(),
		GetBalanceCmd(),
		AssociatedAddressCmd(),
	)

	return cmd
}

// OpenAccountCmd 开户
func OpenAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a token account owned by the signer",
		Run:   openAccount,
	}
	addKeyFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "account address, default the owner's associated address")
	cmd.Flags().StringP("owner", "o", "", "account owner, default the signer")
	return cmd
}

func openAccount(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	owner, _ := cmd.Flags().GetString("owner")
	commandtypes.SendTx(cmd, cty.CoinsX, cty.NewOpen(addr, owner))
}

// GenesisCmd 发行
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Mint tokens to an account, signed by the minter",
		Run:   genesis,
	}
	addKeyFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "token account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "m", "", "amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func genesis(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	commandtypes.SendTx(cmd, cty.CoinsX, cty.NewGenesis(to, amount))
}

// TransferCmd 转账
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer tokens between accounts",
		Run:   transfer,
	}
	addKeyFlag(cmd)
	cmd.Flags().StringP("from", "f", "", "from token account, default the signer's associated address")
	cmd.Flags().StringP("to", "t", "", "to token account")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "m", "", "amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	if from == "" {
		signer, err := signerAddress(cmd)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return
		}
		from, err = associatedAddress(cmd, signer)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return
		}
	}
	commandtypes.SendTx(cmd, cty.CoinsX, cty.NewTransfer(from, to, amount))
}

// GetBalanceCmd get balance of an execer
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a token account",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "token account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	commandtypes.Run(cmd, func(ctx *commandtypes.Context) (interface{}, error) {
		msg, err := ctx.Exec.Query(cty.CoinsX, "GetBalance", types.Encode(&types.ReqAddrs{Addrs: []string{addr}}))
		if err != nil {
			return nil, err
		}
		return commandtypes.DecodeAccount(msg.(*types.ReplyAccounts).Accounts[0]), nil
	})
}

// AssociatedAddressCmd owner 的默认代币账户地址
func AssociatedAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assoc",
		Short: "Get the associated token account address of an owner",
		Run:   assoc,
	}
	cmd.Flags().StringP("owner", "o", "", "owner address")
	cmd.MarkFlagRequired("owner")
	return cmd
}

func assoc(cmd *cobra.Command, args []string) {
	owner, _ := cmd.Flags().GetString("owner")
	addr, err := associatedAddress(cmd, owner)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	commandtypes.PrintJSON(cmd, &types.ReqString{Data: addr})
}

func associatedAddress(cmd *cobra.Command, owner string) (string, error) {
	confPath, _ := cmd.Flags().GetString("conf")
	cfg, err := types.InitCfg(confPath)
	if err != nil {
		return "", err
	}
	return account.AssociatedAddress(cfg.Exec.Symbol, owner)
}

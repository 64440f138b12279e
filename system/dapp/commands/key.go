// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/33cn/tournament/common"
	commandtypes "github.com/33cn/tournament/system/dapp/commands/types"
	"github.com/33cn/tournament/util"
	"github.com/spf13/cobra"
)

// KeyCmd 私钥相关命令
func KeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Private key tools",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		NewKeyCmd(),
		KeyAddrCmd(),
	)
	return cmd
}

// NewKeyCmd 生成私钥
func NewKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new secp256k1 private key",
		Run:   newKey,
	}
	return cmd
}

func newKey(cmd *cobra.Command, args []string) {
	addr, priv := util.Genaddress()
	commandtypes.PrintJSON(cmd, &commandtypes.KeyResult{Privkey: common.ToHex(priv.Bytes()), Addr: addr})
}

// KeyAddrCmd 私钥对应的地址
func KeyAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Get address of a private key",
		Run:   keyAddr,
	}
	addKeyFlag(cmd)
	return cmd
}

func keyAddr(cmd *cobra.Command, args []string) {
	addr, err := signerAddress(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	key, _ := cmd.Flags().GetString("key")
	commandtypes.PrintJSON(cmd, &commandtypes.KeyResult{Privkey: key, Addr: addr})
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

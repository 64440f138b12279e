// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 命令行入口，所有命令直接在本地数据库上执行交易
package cli

import (
	"fmt"
	"os"

	"github.com/33cn/tournament/common/log"
	"github.com/33cn/tournament/system/dapp/commands"
	"github.com/spf13/cobra"

	// 注册系统执行器
	_ "github.com/33cn/tournament/system"
)

//NewRootCmd 根命令，cmds 为各个 dapp 的命令
func NewRootCmd(name string, cmds ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   name + "-cli",
		Short: name + " client tools",
	}
	rootCmd.PersistentFlags().String("conf", "", "config file, built-in defaults and TOURNAMENT_* env when empty")
	rootCmd.AddCommand(
		commands.KeyCmd(),
		commands.AccountCmd(),
		commands.TxCmd(),
		commands.VersionCmd(),
	)
	rootCmd.AddCommand(cmds...)
	return rootCmd
}

//Run :
func Run(name string, cmds ...*cobra.Command) {
	log.SetLogLevel("error")
	rootCmd := NewRootCmd(name, cmds...)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

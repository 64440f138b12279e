// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/tournament/common"
	commandtypes "github.com/33cn/tournament/system/dapp/commands/types"
	"github.com/33cn/tournament/types"
	"github.com/spf13/cobra"
)

// TxCmd transaction command
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		QueryTxCmd(),
		QueryTxByAddrCmd(),
		QueryTxCountCmd(),
	)

	return cmd
}

// QueryTxByAddrCmd get tx by address
func QueryTxByAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query_addr",
		Short: "Query transaction by account address",
		Run:   queryTxByAddr,
	}
	addQueryTxByAddrFlags(cmd)
	return cmd
}

func addQueryTxByAddrFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")

	cmd.Flags().Int32P("count", "c", 10, "maximum return number of transactions")
	cmd.Flags().Int32P("direction", "d", 0, "query direction (0: latest first, 1: oldest first)")
}

func queryTxByAddr(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	params := &types.ReqAddr{
		Addr:      addr,
		Count:     count,
		Direction: direction,
	}
	commandtypes.Run(cmd, func(ctx *commandtypes.Context) (interface{}, error) {
		return ctx.Exec.GetTxsByAddr(params)
	})
}

// QueryTxCountCmd get tx count of address
func QueryTxCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Query transaction count of account address",
		Run:   queryTxCount,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func queryTxCount(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	commandtypes.Run(cmd, func(ctx *commandtypes.Context) (interface{}, error) {
		count, err := ctx.Exec.GetAddrTxsCount(addr)
		if err != nil {
			return nil, err
		}
		return &types.Int64{Data: count}, nil
	})
}

// QueryTxCmd  query tx by hash
func QueryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query transaction by hash",
		Run:   queryTx,
	}
	addQueryTxFlags(cmd)
	return cmd
}

func addQueryTxFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
}

func queryTx(cmd *cobra.Command, args []string) {
	hash, _ := cmd.Flags().GetString("hash")
	commandtypes.Run(cmd, func(ctx *commandtypes.Context) (interface{}, error) {
		data, err := common.FromHex(hash)
		if err != nil || len(data) != 32 {
			return nil, types.ErrNotFound
		}
		res, err := ctx.Exec.GetTx(data)
		if err != nil {
			return nil, err
		}
		return parseQueryTxRes(res), nil
	})
}

func parseQueryTxRes(res *types.TxResult) *commandtypes.TxResult {
	result := &commandtypes.TxResult{
		Hash:       res.Hash,
		Execer:     res.Tx.Execer,
		ActionName: res.ActionName,
		From:       res.Tx.From(),
		Blocktime:  res.Blocktime,
	}
	if ety := types.LoadExecutorType(res.Tx.Execer); ety != nil {
		result.Receipt = commandtypes.DecodeReceipt(ety, res.Receipt)
	}
	return result
}

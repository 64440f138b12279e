// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"fmt"

	"github.com/33cn/tournament/common"
	dbm "github.com/33cn/tournament/common/db"
	clog "github.com/33cn/tournament/common/log"
	"github.com/33cn/tournament/executor"
	"github.com/33cn/tournament/types"
	"github.com/33cn/tournament/util"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var clilog = clog.New("module", "cli")

// Context 命令执行时打开的本地数据库和执行器
type Context struct {
	Cfg  *types.Config
	DB   dbm.DB
	Exec *executor.Executor
}

// NewContext 读取 --conf 指定的配置，打开数据库
func NewContext(cmd *cobra.Command) (*Context, error) {
	confPath, _ := cmd.Flags().GetString("conf")
	cfg, err := types.InitCfg(confPath)
	if err != nil {
		return nil, err
	}
	clog.SetFileLog(&cfg.Log)
	if cfg.Store.DbPath != "" && cfg.Store.Driver != dbm.MemDBBackendStr {
		if err := util.MakeDir(cfg.Store.DbPath); err != nil {
			return nil, errors.Wrapf(err, "make dir %s", cfg.Store.DbPath)
		}
	}
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return nil, errors.Wrapf(err, "open %s db", cfg.Store.Driver)
	}
	exec := executor.New(cfg, db)
	if err := exec.Metrics().Register(prometheus.NewRegistry()); err != nil {
		db.Close()
		return nil, err
	}
	return &Context{Cfg: cfg, DB: db, Exec: exec}, nil
}

// Close 关闭数据库和日志文件
func (c *Context) Close() {
	for _, s := range c.Exec.Metrics().Snapshot() {
		clilog.Debug("exec stat", "name", s.Name, "count", s.Count, "mean", s.Mean, "max", s.Max)
	}
	c.DB.Close()
	clog.Close()
}

// Run 打开 Context 执行 f，错误输出到 stderr
func Run(cmd *cobra.Command, f func(ctx *Context) (interface{}, error)) {
	ctx, err := NewContext(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	defer ctx.Close()
	res, err := f(ctx)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	PrintJSON(cmd, res)
}

// PrintJSON 格式化输出
func PrintJSON(cmd *cobra.Command, res interface{}) {
	data, err := json.MarshalIndent(res, "", "    ")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}

// SendTx 用 --key 签名 action 并执行
func SendTx(cmd *cobra.Command, execer string, action interface{}) {
	key, _ := cmd.Flags().GetString("key")
	priv, err := util.PrivKeyFromHex(key)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	tx := util.CreateTxWithExecer(priv, execer, action)
	Run(cmd, func(ctx *Context) (interface{}, error) {
		receipt, err := ctx.Exec.Execute(tx)
		if err != nil {
			return nil, err
		}
		ety := types.LoadExecutorType(execer)
		return &TxResult{
			Hash:       common.ToHex(tx.Hash()),
			Execer:     execer,
			ActionName: ety.ActionName(tx),
			From:       tx.From(),
			Receipt:    DecodeReceipt(ety, receipt),
		}, nil
	})
}

// Query 调用执行器的查询函数
func Query(cmd *cobra.Command, execer, funcName string, req interface{}) {
	Run(cmd, func(ctx *Context) (interface{}, error) {
		return ctx.Exec.Query(execer, funcName, types.Encode(req))
	})
}

// DecodeReceipt 按执行器类型解码回执日志
func DecodeReceipt(ety types.ExecutorType, receipt *types.Receipt) *ReceiptResult {
	if receipt == nil {
		return nil
	}
	result := &ReceiptResult{Ty: receipt.Ty}
	for _, l := range receipt.Logs {
		item := &ReceiptLogResult{Ty: l.Ty}
		name, msg, err := ety.DecodeLog(l.Ty, l.Log)
		if err != nil {
			item.TyName = "unknownLog"
			item.RawLog = common.ToHex(l.Log)
		} else {
			item.TyName = name
			item.Log = msg
		}
		result.Logs = append(result.Logs, item)
	}
	return result
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	"github.com/33cn/tournament/types"
)

//plugin 主要用于处理 execlocal 时候的全局kv
//每个插件都有插件是否开启这个插件的判断，如果不开启，执行的时候会被忽略

type plugin interface {
	CheckEnable(executor *Executor) bool
	ExecLocal(executor *Executor, data *txDetail) ([]*types.KeyValue, error)
}

//txDetail 一个已经执行成功的交易
type txDetail struct {
	tx         *types.Transaction
	receipt    *types.Receipt
	blocktime  int64
	timeindex  string
	actionName string
}

var globalPlugins = make(map[string]plugin)

// RegisterPlugin register plugin
func RegisterPlugin(name string, p plugin) {
	if _, ok := globalPlugins[name]; ok {
		panic("plugin exist " + name)
	}
	globalPlugins[name] = p
}

func pluginNames() []string {
	names := make([]string, 0, len(globalPlugins))
	for name := range globalPlugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

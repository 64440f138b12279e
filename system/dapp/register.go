// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/33cn/tournament/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

var (
	registedExecDriver = make(map[string]DriverCreate)
	registerMu         sync.RWMutex
)

// Register register driver create func in name
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	registerMu.Lock()
	defer registerMu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
}

// LoadDriver load driver
func LoadDriver(name string) (driver Driver, err error) {
	registerMu.RLock()
	c, ok := registedExecDriver[name]
	registerMu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnRegistedDriver
	}
	return c(), nil
}

// LoadDriverAllow 加载驱动，并检查驱动是否允许执行这个交易
func LoadDriverAllow(tx *types.Transaction, index int, cfg *types.Config) (Driver, error) {
	exec, err := LoadDriver(tx.Execer)
	if err != nil {
		return nil, types.ErrExecNameNotAllow
	}
	exec.SetConfig(cfg)
	if err := exec.Allow(tx, index); err != nil {
		return nil, err
	}
	return exec, nil
}

// DriverNames 已经注册的驱动
func DriverNames() []string {
	registerMu.RLock()
	defer registerMu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

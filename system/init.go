// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system 注册系统内置的执行器
package system

import (
	_ "github.com/33cn/tournament/system/dapp/coins/executor"      //register coins
	_ "github.com/33cn/tournament/system/dapp/tournament/executor" //register tournament
)

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	tcmd "github.com/33cn/tournament/system/dapp/tournament/commands"
	"github.com/33cn/tournament/util/cli"
)

func main() {
	cli.Run("tournament", tcmd.TournamentCmd())
}

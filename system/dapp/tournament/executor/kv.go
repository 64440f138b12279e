// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	tty "github.com/33cn/tournament/system/dapp/tournament/types"
	"github.com/33cn/tournament/types"
)

var (
	tournamentPrefix = "mavl-" + tty.TournamentX + "-"
	statusPrefix     = types.LocalPrefix + tty.TournamentX + "-status:"
)

func calcKey(seed, addr string) []byte {
	return []byte(tournamentPrefix + seed + "-" + addr)
}

func calcTournamentKey(addr string) []byte {
	return calcKey(tty.SeedTournament, addr)
}

func calcVaultKey(addr string) []byte {
	return calcKey(tty.SeedVault, addr)
}

func calcWinnerKey(addr string) []byte {
	return calcKey(tty.SeedWinner, addr)
}

//按状态索引比赛：LODB-tournament-status:<status>:<creator>
func calcStatusPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("%s%02d:", statusPrefix, status))
}

func calcStatusKey(status int32, creator string) []byte {
	return append(calcStatusPrefix(status), []byte(creator)...)
}

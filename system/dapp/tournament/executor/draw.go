// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/tournament/common"
	"github.com/33cn/tournament/common/address"
	tty "github.com/33cn/tournament/system/dapp/tournament/types"
)

// drawDigest 开奖种子：开奖人地址的 version + hash160 做 sha256。
// 种子只依赖开奖人地址，结果可以被预先计算，不是安全的随机数。
func drawDigest(caller string) ([]byte, error) {
	addr, err := address.NewAddrFromString(caller)
	if err != nil {
		return nil, tty.ErrInvalidAddress
	}
	return common.Sha256(addr.Bytes()), nil
}

// selectIndex digest 第一个字节对 n 取模，n 必须大于 0
func selectIndex(digest []byte, n int) int {
	return int(digest[0]) % n
}

func selectWinner(caller string, contestants []*tty.Contestant) (*tty.Contestant, error) {
	if len(contestants) == 0 {
		return nil, tty.ErrEmptyContestantList
	}
	digest, err := drawDigest(caller)
	if err != nil {
		return nil, err
	}
	return contestants[selectIndex(digest, len(contestants))], nil
}

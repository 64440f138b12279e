// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 地址的编码校验，以及执行器派生地址
package address

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/33cn/tournament/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
)

var checkAddressCache *lru.Cache

// ErrCheckChecksum 地址校验和错误
var ErrCheckChecksum = errors.New("Address Checksum error")

func init() {
	checkAddressCache, _ = lru.New(10240)
}

//PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = make([]byte, len(in))
	copy(a.Pubkey[:], in[:])
	a.Version = 0
	a.Hash160 = common.Rimp160AfterSha256(in)
	return a
}

//CheckAddress 检查地址
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	_, e = NewAddrFromString(addr)
	checkAddressCache.Add(addr, e)
	return
}

//NewAddrFromString new 地址
func NewAddrFromString(hs string) (a *Address, e error) {
	dec := base58.Decode(hs)
	if len(dec) == 0 {
		e = errors.New("Cannot decode b58 string '" + hs + "'")
		return
	}
	if len(dec) != 25 {
		e = errors.New("Address length error " + hex.EncodeToString(dec))
		return
	}
	sh := common.Sha2Sum(dec[0:21])
	if !bytes.Equal(sh[:4], dec[21:25]) {
		e = ErrCheckChecksum
		return
	}
	a = new(Address)
	a.Version = dec[0]
	copy(a.Hash160[:], dec[1:21])
	a.Checksum = make([]byte, 4)
	copy(a.Checksum, dec[21:25])
	a.Enc58str = hs
	return
}

//Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Pubkey   []byte
	Enc58str string
}

// Bytes version 加 hash160，共21字节
func (a *Address) Bytes() []byte {
	b := make([]byte, 21)
	b[0] = a.Version
	copy(b[1:], a.Hash160[:])
	return b
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}

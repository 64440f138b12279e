// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"errors"
	"strings"

	"github.com/33cn/tournament/common"
	"github.com/btcsuite/btcd/btcec/v2"
	lru "github.com/hashicorp/golang-lru"
)

// 派生地址的种子前缀，和普通公钥地址区分
var deriveSeed = []byte("derived address seed bytes")

const (
	//MaxSeeds 最多的种子个数
	MaxSeeds = 16
	//MaxSeedLength 单个种子的最大长度
	MaxSeedLength = 32
	//MaxExecNameLength 执行器名最大长度
	MaxExecNameLength = 100
)

var (
	// ErrMaxSeeds too many seeds
	ErrMaxSeeds = errors.New("ErrMaxSeeds")
	// ErrSeedLength seed too long
	ErrSeedLength = errors.New("ErrSeedLength")
	// ErrExecName bad exec name
	ErrExecName = errors.New("ErrExecName")
	// ErrNoViableBump every bump lands on the curve
	ErrNoViableBump = errors.New("ErrNoViableBump")
	// ErrProofMismatch proof does not produce its address
	ErrProofMismatch = errors.New("ErrProofMismatch")
)

var deriveCache *lru.Cache

func init() {
	deriveCache, _ = lru.New(10240)
}

// Proof 派生地址以及推导它所需的全部输入。
// 派生地址不在 secp256k1 曲线上，不存在对应的私钥，
// 只有执行器本身可以凭 Proof 代表该地址授权。
type Proof struct {
	Exec  string   `json:"exec"`
	Seeds [][]byte `json:"seeds"`
	Bump  uint8    `json:"bump"`
	Addr  string   `json:"addr"`
}

// Address 派生出的地址
func (p *Proof) Address() string {
	return p.Addr
}

// Verify 重新计算派生地址，和 Addr 比较
func (p *Proof) Verify() error {
	if err := checkSeeds(p.Exec, p.Seeds); err != nil {
		return err
	}
	hash := deriveHash(p.Exec, p.Seeds, p.Bump)
	if onCurve(hash) {
		return ErrProofMismatch
	}
	if PubKeyToAddress(hash).String() != p.Addr {
		return ErrProofMismatch
	}
	return nil
}

// Derive 根据执行器名和种子计算派生地址。
// bump 从 255 开始递减，取第一个不在曲线上的结果，相同输入总是得到相同地址。
func Derive(exec string, seeds ...[]byte) (*Proof, error) {
	if err := checkSeeds(exec, seeds); err != nil {
		return nil, err
	}
	key := cacheKey(exec, seeds)
	if value, ok := deriveCache.Get(key); ok {
		return copyProof(value.(*Proof)), nil
	}
	for bump := 255; bump >= 0; bump-- {
		hash := deriveHash(exec, seeds, uint8(bump))
		if onCurve(hash) {
			continue
		}
		p := &Proof{
			Exec:  exec,
			Seeds: copySeeds(seeds),
			Bump:  uint8(bump),
			Addr:  PubKeyToAddress(hash).String(),
		}
		deriveCache.Add(key, p)
		return copyProof(p), nil
	}
	return nil, ErrNoViableBump
}

// DeriveFor 以 tag 和 owner 地址为种子派生，owner 必须是合法地址
func DeriveFor(exec, tag, owner string) (*Proof, error) {
	addr, err := NewAddrFromString(owner)
	if err != nil {
		return nil, err
	}
	return Derive(exec, []byte(tag), addr.Bytes())
}

func deriveHash(exec string, seeds [][]byte, bump uint8) []byte {
	buf := make([]byte, 0, len(deriveSeed)+len(exec)+MaxSeeds*MaxSeedLength+1)
	buf = append(buf, deriveSeed...)
	buf = append(buf, []byte(exec)...)
	for _, s := range seeds {
		buf = append(buf, byte(len(s)))
		buf = append(buf, s...)
	}
	buf = append(buf, bump)
	return common.Sha256(buf)
}

func onCurve(hash []byte) bool {
	var pub [33]byte
	pub[0] = 0x02
	copy(pub[1:], hash)
	_, err := btcec.ParsePubKey(pub[:])
	return err == nil
}

func checkSeeds(exec string, seeds [][]byte) error {
	if len(exec) == 0 || len(exec) > MaxExecNameLength {
		return ErrExecName
	}
	if len(seeds) > MaxSeeds {
		return ErrMaxSeeds
	}
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return ErrSeedLength
		}
	}
	return nil
}

func cacheKey(exec string, seeds [][]byte) string {
	var b strings.Builder
	b.WriteString(exec)
	for _, s := range seeds {
		b.WriteByte(':')
		b.WriteString(common.Bytes2Hex(s))
	}
	return b.String()
}

func copySeeds(seeds [][]byte) [][]byte {
	out := make([][]byte, len(seeds))
	for i, s := range seeds {
		out[i] = common.CopyBytes(s)
	}
	return out
}

func copyProof(p *Proof) *Proof {
	c := *p
	c.Seeds = copySeeds(p.Seeds)
	return &c
}

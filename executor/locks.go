// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"
	"sync"

	farm "github.com/dgryski/go-farm"
)

// 按地址分段加锁，涉及相同地址的交易串行执行
type stripeLocks struct {
	mus []sync.Mutex
}

func newStripeLocks(n int) *stripeLocks {
	if n <= 0 {
		n = 1
	}
	return &stripeLocks{mus: make([]sync.Mutex, n)}
}

func (s *stripeLocks) index(key string) int {
	return int(farm.Hash32([]byte(key)) % uint32(len(s.mus)))
}

// 按序号从小到大加锁，避免死锁
func (s *stripeLocks) indexes(keys []string) []int {
	seen := make(map[int]bool)
	var idx []int
	for _, key := range keys {
		if key == "" {
			continue
		}
		i := s.index(key)
		if seen[i] {
			continue
		}
		seen[i] = true
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

func (s *stripeLocks) Lock(keys []string) (unlock func()) {
	idx := s.indexes(keys)
	for _, i := range idx {
		s.mus[i].Lock()
	}
	return func() {
		for j := len(idx) - 1; j >= 0; j-- {
			s.mus[idx[j]].Unlock()
		}
	}
}

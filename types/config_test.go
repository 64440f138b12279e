// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := InitCfg("")
	require.Nil(t, err)
	assert.Equal(t, int32(10), cfg.Exec.Tournament.MaxContestants)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, "prize", cfg.Exec.Symbol)
}

func TestInitCfgFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournament.toml")
	err := os.WriteFile(path, []byte(`
title="test"
[store]
driver="memdb"
[exec.tournament]
maxContestants=20
`), 0644)
	require.Nil(t, err)

	cfg, err := InitCfg(path)
	require.Nil(t, err)
	assert.Equal(t, "test", cfg.Title)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, int32(20), cfg.Exec.Tournament.MaxContestants)
	//未配置的项保持默认值
	assert.Equal(t, int32(64), cfg.Exec.LockStripes)
}

func TestInitCfgEnv(t *testing.T) {
	t.Setenv("TOURNAMENT_STORE_DRIVER", "badger")
	t.Setenv("TOURNAMENT_EXEC_TOURNAMENT_MAX_CONTESTANTS", "3")
	cfg, err := InitCfg("")
	require.Nil(t, err)
	assert.Equal(t, "badger", cfg.Store.Driver)
	assert.Equal(t, int32(3), cfg.Exec.Tournament.MaxContestants)
}

func TestInitCfgInvalid(t *testing.T) {
	_, err := InitCfgString(`
[exec.tournament]
maxContestants=0
`)
	assert.NotNil(t, err)

	_, err = InitCfgString(`
[exec]
symbol="a-b"
`)
	assert.Equal(t, ErrSymbolNameNotAllow, errors.Cause(err))

	_, err = InitCfgString("title=")
	assert.NotNil(t, err)

	_, err = InitCfg(filepath.Join(t.TempDir(), "missing.toml"))
	assert.NotNil(t, err)
}

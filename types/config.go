// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strings"

	"github.com/33cn/tournament/common/address"
	tml "github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// EnvPrefix 环境变量前缀，TOURNAMENT_STORE_DBPATH 覆盖 [store] dbPath
const EnvPrefix = "TOURNAMENT"

//Config 配置文件
type Config struct {
	Title   string  `toml:"title"`
	Log     Log     `toml:"log"`
	Store   Store   `toml:"store"`
	Exec    Exec    `toml:"exec"`
	Metrics Metrics `toml:"metrics"`
}

//Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel" envconfig:"LEVEL"`
	LogConsoleLevel string `toml:"logConsoleLevel" envconfig:"CONSOLE_LEVEL"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile" envconfig:"FILE"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize" envconfig:"MAX_FILE_SIZE"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups" envconfig:"MAX_BACKUPS"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge" envconfig:"MAX_AGE"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime" envconfig:"LOCAL_TIME"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress" envconfig:"COMPRESS"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile" envconfig:"CALLER_FILE"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction" envconfig:"CALLER_FUNCTION"`
}

//Store 存储配置
type Store struct {
	Name    string `toml:"name" envconfig:"NAME"`
	Driver  string `toml:"driver" envconfig:"DRIVER"`
	DbPath  string `toml:"dbPath" envconfig:"DBPATH"`
	DbCache int32  `toml:"dbCache" envconfig:"DBCACHE"`
}

//Exec 执行器配置
type Exec struct {
	// 锁分段个数，不同锁段上的交易可以并发执行
	LockStripes int32 `toml:"lockStripes" envconfig:"LOCK_STRIPES"`
	// 是否维护本地索引
	EnableLocalIndex bool `toml:"enableLocalIndex" envconfig:"ENABLE_LOCAL_INDEX"`
	// 代币的符号
	Symbol string `toml:"symbol" envconfig:"SYMBOL"`
	// 允许发行代币的地址，为空时不允许发行
	Minter     string     `toml:"minter" envconfig:"MINTER"`
	Tournament Tournament `toml:"tournament"`
}

//Tournament tournament 执行器配置
type Tournament struct {
	// 每个比赛预留的参赛者容量
	MaxContestants int32 `toml:"maxContestants" envconfig:"MAX_CONTESTANTS"`
}

//Metrics 统计配置
type Metrics struct {
	EnableMetrics bool   `toml:"enableMetrics" envconfig:"ENABLE"`
	Namespace     string `toml:"namespace" envconfig:"NAMESPACE"`
}

//DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Title: "tournament",
		Log: Log{
			Loglevel:        "info",
			LogConsoleLevel: "error",
			LogFile:         "logs/tournament.log",
			MaxFileSize:     300,
			MaxBackups:      100,
			MaxAge:          28,
			LocalTime:       true,
			Compress:        true,
		},
		Store: Store{
			Name:    "tournament",
			Driver:  "leveldb",
			DbPath:  "datadir",
			DbCache: 64,
		},
		Exec: Exec{
			LockStripes:      64,
			EnableLocalIndex: true,
			Symbol:           "prize",
			Tournament: Tournament{
				MaxContestants: 10,
			},
		},
		Metrics: Metrics{
			EnableMetrics: true,
			Namespace:     "tournament",
		},
	}
}

//InitCfg 读取配置文件，再用环境变量覆盖；path 为空时只用默认值和环境变量
func InitCfg(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if _, err := tml.DecodeFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "decode config %s", path)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "process env")
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

//InitCfgString 从字符串读取配置，测试用
func InitCfgString(cfgstring string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := tml.Decode(cfgstring, cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) check() error {
	if cfg.Exec.Tournament.MaxContestants <= 0 {
		return errors.Errorf("exec.tournament.maxContestants must be positive, got %d", cfg.Exec.Tournament.MaxContestants)
	}
	if cfg.Exec.LockStripes <= 0 {
		return errors.Errorf("exec.lockStripes must be positive, got %d", cfg.Exec.LockStripes)
	}
	if cfg.Exec.Symbol == "" || strings.ContainsRune(cfg.Exec.Symbol, '-') {
		return errors.Wrapf(ErrSymbolNameNotAllow, "exec.symbol %q", cfg.Exec.Symbol)
	}
	if cfg.Exec.Minter != "" {
		if err := address.CheckAddress(cfg.Exec.Minter); err != nil {
			return errors.Wrapf(ErrInvalidAddress, "exec.minter %q", cfg.Exec.Minter)
		}
	}
	return nil
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 交易执行的统计
package metrics

import (
	"reflect"
	"sync"
	"time"

	"github.com/33cn/tournament/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

//ResultOK 执行成功的 result 标签
const ResultOK = "ok"

//Collector prometheus 的指标集合
type Collector interface {
	Metrics() []prometheus.Collector
}

//PrometheusCollectorsFromFields 结构体中所有 prometheus.Collector 类型的字段
func PrometheusCollectorsFromFields(i interface{}) (cs []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(i))
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(prometheus.Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}

//ExecMetrics 执行器的统计
type ExecMetrics struct {
	Txs      *prometheus.CounterVec
	ExecTime *prometheus.HistogramVec

	enable   bool
	registry go_metrics.Registry
	mu       sync.Mutex
	timers   map[string]go_metrics.Histogram
}

//NewExecMetrics new
func NewExecMetrics(cfg types.Metrics) *ExecMetrics {
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "tournament"
	}
	return &ExecMetrics{
		Txs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "exec",
			Name:      "txs_total",
			Help:      "Number of executed transactions by execer, action and result.",
		}, []string{"execer", "action", "result"}),
		ExecTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "exec",
			Name:      "duration_seconds",
			Help:      "Transaction execution time.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"execer"}),
		enable:   cfg.EnableMetrics,
		registry: go_metrics.NewRegistry(),
		timers:   make(map[string]go_metrics.Histogram),
	}
}

//Metrics prometheus 指标
func (m *ExecMetrics) Metrics() []prometheus.Collector {
	return PrometheusCollectorsFromFields(m)
}

//Register 注册到 prometheus，没有开启时不注册
func (m *ExecMetrics) Register(reg prometheus.Registerer) error {
	if !m.enable {
		mlog.Info("Metrics data is not enabled to emit")
		return nil
	}
	for _, c := range m.Metrics() {
		if err := reg.Register(c); err != nil {
			return errors.Wrap(err, "register metrics")
		}
	}
	return nil
}

//Observe 记录一次执行
func (m *ExecMetrics) Observe(execer, action string, err error, d time.Duration) {
	result := ResultOK
	if err != nil {
		result = errors.Cause(err).Error()
	}
	m.Txs.WithLabelValues(execer, action, result).Inc()
	m.ExecTime.WithLabelValues(execer).Observe(d.Seconds())
	m.timer(execer + "." + action).Update(int64(d))
}

func (m *ExecMetrics) timer(name string) go_metrics.Histogram {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.timers[name]
	if !ok {
		h = go_metrics.NewHistogram(go_metrics.NewUniformSample(1028))
		m.timers[name] = h
		if err := m.registry.Register(name, h); err != nil {
			mlog.Error("timer register", "name", name, "err", err)
		}
	}
	return h
}

//TimerStat 执行时间统计，单位纳秒
type TimerStat struct {
	Name  string  `json:"name"`
	Count int64   `json:"count"`
	Mean  float64 `json:"mean"`
	Max   int64   `json:"max"`
	P99   float64 `json:"p99"`
}

//Snapshot 所有 action 的执行时间统计
func (m *ExecMetrics) Snapshot() []*TimerStat {
	var stats []*TimerStat
	m.registry.Each(func(name string, i interface{}) {
		h, ok := i.(go_metrics.Histogram)
		if !ok {
			return
		}
		s := h.Snapshot()
		stats = append(stats, &TimerStat{
			Name:  name,
			Count: s.Count(),
			Mean:  s.Mean(),
			Max:   s.Max(),
			P99:   s.Percentile(0.99),
		})
	})
	return stats
}

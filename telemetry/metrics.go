package telemetry

import (
	"cycle/types"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace 指标前缀
const Namespace = "cycle"

// Metrics 分析运行指标。
// 零值或 nil 为空操作实例。
type Metrics struct {
	runs       *prometheus.CounterVec   // 运行次数（按后端组合与结果）
	duration   *prometheus.HistogramVec // 单次运行耗时
	efficiency *prometheus.GaugeVec     // 最近一次成功运行的热效率
	work       *prometheus.GaugeVec     // 最近一次成功运行的比净功
	wasteHeat  prometheus.Gauge         // 最近一次成功运行的余热功率

	registry *prometheus.Registry
}

// NewMetrics 创建指标并注册到独立的 Registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "runs_total",
				Help:      "Total number of cycle analyses",
			},
			[]string{"fluids", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of a cycle analysis in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"fluids"},
		),
		efficiency: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "thermal_efficiency",
				Help:      "Thermal efficiency of the last successful analysis",
			},
			[]string{"cycle"},
		),
		work: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "net_work_kj_per_kg",
				Help:      "Specific net work of the last successful analysis",
			},
			[]string{"cycle"},
		),
		wasteHeat: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "waste_heat_kw",
				Help:      "Waste heat duty of the last successful analysis",
			},
		),
	}
	registry.MustRegister(m.runs, m.duration, m.efficiency, m.work, m.wasteHeat)
	return m
}

// Status 运行结果标签：成功为 ok，否则为错误分类
func Status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case types.KindOf(err) != 0:
		return types.KindOf(err).String()
	}
	return "error"
}

// Observe 记录一次运行
func (m *Metrics) Observe(fluids string, res types.ResultSet, err error, elapsed time.Duration) {
	if m == nil || m.registry == nil {
		return
	}
	m.runs.WithLabelValues(fluids, Status(err)).Inc()
	m.duration.WithLabelValues(fluids).Observe(elapsed.Seconds())
	if err != nil {
		return
	}
	for _, c := range []types.CycleResult{res.Gas(), res.Steam()} {
		m.efficiency.WithLabelValues(c.Kind().String()).Set(c.Efficiency())
		m.work.WithLabelValues(c.Kind().String()).Set(c.Work())
	}
	if duty, ok := res.WasteHeatDuty(); ok {
		m.wasteHeat.Set(duty)
	}
}

// Handler /metrics 处理器
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

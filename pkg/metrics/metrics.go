package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 服务指标集合
// 每个实例持有独立的 Registry，测试中可以并行创建互不干扰
type Metrics struct {
	registry *prometheus.Registry

	ContentRequests  *prometheus.CounterVec
	ContentDuration  *prometheus.HistogramVec
	UpstreamDuration *prometheus.HistogramVec
}

// New 创建并注册所有指标
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		ContentRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_requests_total",
				Help: "Total number of content generation requests",
			},
			[]string{"content_type", "status"},
		),
		ContentDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "content_request_duration_seconds",
				Help:    "Duration of content generation requests in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"content_type"},
		),
		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gemini_upstream_duration_seconds",
				Help:    "Duration of Gemini generateContent calls in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(m.ContentRequests, m.ContentDuration, m.UpstreamDuration)
	return m
}

// ObserveContent 记录一次内容生成请求
func (m *Metrics) ObserveContent(contentType string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ContentRequests.WithLabelValues(contentType, strconv.Itoa(status)).Inc()
	m.ContentDuration.WithLabelValues(contentType).Observe(elapsed.Seconds())
}

// ObserveUpstream 记录一次上游调用，status 为 0 表示网络层失败
func (m *Metrics) ObserveUpstream(status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamDuration.WithLabelValues(strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler 暴露 /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry 返回底层 Registry (测试读取指标用)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

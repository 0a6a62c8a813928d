// Package metrics Prometheus 指标收集与暴露
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder 业务层使用的指标接口
type Recorder interface {
	RecordHTTPRequest(method, route string, status int, latency time.Duration)
	RecordLogin(result string)
	RecordTranslationCache(hit bool)
	RecordTranslationFetchFailure()
	RecordNotification(delivered bool)
}

// Collector Prometheus 实现
type Collector struct {
	httpRequests       *prometheus.CounterVec
	httpLatency        *prometheus.HistogramVec
	logins             *prometheus.CounterVec
	translationCache   *prometheus.CounterVec
	translationFailure prometheus.Counter
	notifications      *prometheus.CounterVec
}

// NewCollector 创建 Collector 并注册到指定 Registerer
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transfer_http_requests_total",
			Help: "HTTP 请求总数",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "transfer_http_request_duration_seconds",
			Help:    "HTTP 请求耗时（秒）",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transfer_auth_login_total",
			Help: "登录尝试次数（按结果）",
		}, []string{"result"}),
		translationCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transfer_translation_cache_total",
			Help: "翻译缓存命中/未命中次数",
		}, []string{"result"}),
		translationFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "transfer_translation_fetch_failures_total",
			Help: "翻译读取失败次数",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transfer_notifications_total",
			Help: "外部通知发送次数（按结果）",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.logins,
		c.translationCache,
		c.translationFailure,
		c.notifications,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, latency time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}

func (c *Collector) RecordLogin(result string) {
	c.logins.WithLabelValues(result).Inc()
}

func (c *Collector) RecordTranslationCache(hit bool) {
	if hit {
		c.translationCache.WithLabelValues("hit").Inc()
		return
	}
	c.translationCache.WithLabelValues("miss").Inc()
}

func (c *Collector) RecordTranslationFetchFailure() {
	c.translationFailure.Inc()
}

func (c *Collector) RecordNotification(delivered bool) {
	if delivered {
		c.notifications.WithLabelValues("delivered").Inc()
		return
	}
	c.notifications.WithLabelValues("failed").Inc()
}

// Handler /metrics 抓取端点
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop 不记录任何指标，测试使用
type Nop struct{}

func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) RecordLogin(string)                                 {}
func (Nop) RecordTranslationCache(bool)                        {}
func (Nop) RecordTranslationFetchFailure()                     {}
func (Nop) RecordNotification(bool)                            {}

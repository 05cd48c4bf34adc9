package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "receipts"

// Metrics метрики приложения. Каждый экземпляр пишет в собственный реестр.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests         *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	ReceiptsCreated      *prometheus.CounterVec
	InsufficientPayments prometheus.Counter
	CacheLookups         *prometheus.CounterVec
	PublicRateLimited    prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of handled HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ReceiptsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "created_total",
			Help:      "Total number of created receipts",
		}, []string{"payment_type"}),
		InsufficientPayments: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insufficient_payment_total",
			Help:      "Total number of receipts rejected because of insufficient payment",
		}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Receipt cache lookups by backend and result",
		}, []string{"backend", "result"}),
		PublicRateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "public_rate_limited_total",
			Help:      "Total number of public requests rejected by the rate limiter",
		}),
	}
}

func (m *Metrics) IncrementReceiptsCreated(method domain.PaymentMethod) {
	m.ReceiptsCreated.WithLabelValues(string(method)).Inc()
}

func (m *Metrics) IncrementInsufficientPayments() {
	m.InsufficientPayments.Inc()
}

func (m *Metrics) IncrementPublicRateLimited() {
	m.PublicRateLimited.Inc()
}

// ObserveHTTPRequest учитывает обработанный запрос. route - шаблон маршрута, а не фактический путь.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveCacheLookup учитывает обращение к кешу чеков.
func (m *Metrics) ObserveCacheLookup(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(backend, result).Inc()
}

// Registry реестр, в котором зарегистрированы метрики.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler отдает метрики в формате prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

package interceptor

import "github.com/prometheus/client_golang/prometheus"

// Исходы обработки запроса
const (
	outcomeNetwork      = "network"
	outcomeCache        = "cache"
	outcomeSentinel     = "sentinel"
	outcomeFallbackPage = "fallback_page"
	outcomeNotFound     = "not_found"
	outcomeError        = "error"
)

// Metrics счетчики перехватчика
type Metrics struct {
	requests *prometheus.CounterVec
}

// NewMetrics регистрирует счетчики в reg. nil reg допустим.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "learnsync",
			Subsystem: "interceptor",
			Name:      "requests_total",
			Help:      "Requests handled by the caching interceptor, by category and outcome.",
		}, []string{"category", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests)
	}
	return m
}

func (m *Metrics) observe(c Category, outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(string(c), outcome).Inc()
}

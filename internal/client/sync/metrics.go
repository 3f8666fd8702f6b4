package sync

import "github.com/prometheus/client_golang/prometheus"

// Исходы обработки действия для метрик и логов
const (
	outcomeProcessed = "processed"
	outcomeFailed    = "failed"
	outcomeDeferred  = "deferred"
	outcomeDropped   = "dropped"
)

// Metrics счетчики синхронизации
type Metrics struct {
	actions *prometheus.CounterVec
}

// NewMetrics регистрирует счетчики в reg. nil reg допустим, тогда счетчики не экспортируются.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "learnsync",
			Subsystem: "sync",
			Name:      "actions_total",
			Help:      "Pending actions handled by the sync reconciler, by type and outcome.",
		}, []string{"type", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.actions)
	}
	return m
}

func (m *Metrics) observe(actionType, outcome string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(actionType, outcome).Inc()
}

// Package network отслеживает доступность сервера.
package network

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/learnsync/internal/client/events"
)

// DefaultProbeTimeout ограничение на одну проверку доступности
const DefaultProbeTimeout = 3 * time.Second

// Prober проверяет доступность сервера
type Prober interface {
	Probe(ctx context.Context) error
}

// ProbeFunc адаптер функции к Prober
type ProbeFunc func(ctx context.Context) error

func (f ProbeFunc) Probe(ctx context.Context) error { return f(ctx) }

// Monitor хранит текущее состояние сети и уведомляет об изменениях
type Monitor struct {
	logger       *slog.Logger
	bus          *events.Bus
	subs         map[uint64]func(bool)
	nextID       uint64
	probeTimeout time.Duration
	mu           sync.RWMutex
	online       bool
}

// NewMonitor создает монитор с начальным состоянием online
func NewMonitor(logger *slog.Logger, bus *events.Bus, online bool) *Monitor {
	return &Monitor{
		logger:       logger,
		bus:          bus,
		subs:         make(map[uint64]func(bool)),
		probeTimeout: DefaultProbeTimeout,
		online:       online,
	}
}

// Online сообщает, доступна ли сеть
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// SetOnline задает состояние. Подписчики уведомляются только при изменении.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	m.logger.Info("connectivity changed", slog.Bool("online", online))

	for _, fn := range subs {
		fn(online)
	}
	m.bus.Publish(events.ConnectivityChanged{Online: online})
}

// Subscribe регистрирует обработчик изменения состояния
func (m *Monitor) Subscribe(fn func(online bool)) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.subs[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// Check выполняет одну проверку и обновляет состояние
func (m *Monitor) Check(ctx context.Context, prober Prober) bool {
	ctx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()

	err := prober.Probe(ctx)
	if err != nil {
		m.logger.Debug("probe failed", slog.Any("error", err))
	}
	m.SetOnline(err == nil)
	return err == nil
}

// Watch проверяет доступность сразу и затем каждые interval, пока ctx не отменен
func (m *Monitor) Watch(ctx context.Context, prober Prober, interval time.Duration) {
	m.Check(ctx, prober)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Check(ctx, prober)
		case <-ctx.Done():
			return
		}
	}
}

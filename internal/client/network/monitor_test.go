package network

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/learnsync/internal/client/events"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMonitor_SetOnlineNotifiesOnChange(t *testing.T) {
	bus := events.NewBus()
	var published []bool
	bus.Subscribe(func(e events.Event) {
		if ev, ok := e.(events.ConnectivityChanged); ok {
			published = append(published, ev.Online)
		}
	})

	m := NewMonitor(testLogger(), bus, false)

	var got []bool
	unsubscribe := m.Subscribe(func(online bool) { got = append(got, online) })

	m.SetOnline(false) // без изменений
	m.SetOnline(true)
	m.SetOnline(true) // без изменений
	m.SetOnline(false)

	assert.Equal(t, []bool{true, false}, got)
	assert.Equal(t, []bool{true, false}, published)
	assert.False(t, m.Online())

	unsubscribe()
	m.SetOnline(true)
	assert.Len(t, got, 2)
}

func TestMonitor_Check(t *testing.T) {
	m := NewMonitor(testLogger(), nil, false)

	ok := m.Check(context.Background(), ProbeFunc(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline, "проверка ограничена по времени")
		return nil
	}))
	assert.True(t, ok)
	assert.True(t, m.Online())

	ok = m.Check(context.Background(), ProbeFunc(func(context.Context) error {
		return errors.New("connection refused")
	}))
	assert.False(t, ok)
	assert.False(t, m.Online())
}

func TestMonitor_WatchStopsOnCancel(t *testing.T) {
	m := NewMonitor(testLogger(), nil, false)

	var probes atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		m.Watch(ctx, ProbeFunc(func(context.Context) error {
			probes.Add(1)
			return nil
		}), 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return probes.Load() >= 2 }, time.Second, 5*time.Millisecond)
	assert.True(t, m.Online())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

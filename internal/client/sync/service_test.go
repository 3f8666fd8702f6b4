package sync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	gosync "sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/learnsync/internal/client/api"
	"github.com/iudanet/learnsync/internal/client/events"
	"github.com/iudanet/learnsync/internal/client/network"
	"github.com/iudanet/learnsync/internal/client/queue"
	"github.com/iudanet/learnsync/internal/client/storage/boltdb"
	"github.com/iudanet/learnsync/internal/models"
	pkgapi "github.com/iudanet/learnsync/pkg/api"
)

var testNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	store   *boltdb.Storage
	queue   *queue.Queue
	monitor *network.Monitor
	bus     *events.Bus
	logger  *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := events.NewBus()
	return &testEnv{
		store:   store,
		queue:   queue.New(store, logger, func() time.Time { return testNow }),
		monitor: network.NewMonitor(logger, bus, true),
		bus:     bus,
		logger:  logger,
	}
}

func (e *testEnv) service(client api.ClientAPI, metrics *Metrics) *Service {
	return NewService(e.queue, e.store, client, e.monitor, e.bus, metrics, Config{
		Now:         func() time.Time { return testNow },
		CallTimeout: time.Second,
	}, e.logger)
}

// addUser создает локального пользователя; serverID пустой для несинхронизированного
func (e *testEnv) addUser(t *testing.T, email, serverID string) *models.User {
	t.Helper()
	u := &models.User{
		Email:        email,
		Username:     email,
		FirstName:    "Test",
		LastName:     "User",
		Role:         models.RoleRefugee,
		ServerID:     serverID,
		ServerSecret: "secret-" + email,
		IsActive:     true,
		SyncStatus:   models.SyncStatusPending,
	}
	_, err := e.store.PutUser(context.Background(), u)
	require.NoError(t, err)
	return u
}

func (e *testEnv) enqueue(t *testing.T, actions ...models.Action) {
	t.Helper()
	for _, a := range actions {
		_, err := e.queue.Enqueue(context.Background(), a)
		require.NoError(t, err)
	}
}

// recordingClient мок сервера, записывающий порядок вызовов
func recordingClient(calls *[]string) *api.ClientAPIMock {
	var mu gosync.Mutex
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		*calls = append(*calls, s)
	}
	return &api.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.UserData, error) {
			record("register " + req.Email)
			return &pkgapi.UserData{User: pkgapi.User{ID: "srv-" + req.Email}}, nil
		},
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginData, error) {
			record("login " + req.Email)
			return &pkgapi.LoginData{Token: "tok-" + req.Email}, nil
		},
		UpdateProfileFunc: func(ctx context.Context, token, userID string, req pkgapi.ProfileUpdateRequest) (*pkgapi.UserData, error) {
			record("profile " + userID)
			return &pkgapi.UserData{}, nil
		},
		ChangePasswordFunc: func(ctx context.Context, token, userID string, req pkgapi.PasswordRequest) error {
			record("password " + userID)
			return nil
		},
		UpdateCourseProgressFunc: func(ctx context.Context, token, courseID string, req pkgapi.ProgressUpdateRequest) (*pkgapi.ProgressData, error) {
			record(fmt.Sprintf("progress %s %s", courseID, req.CompletionKey))
			return &pkgapi.ProgressData{}, nil
		},
	}
}

func TestService_Sync_Offline(t *testing.T) {
	env := newTestEnv(t)
	env.monitor.SetOnline(false)
	client := &api.ClientAPIMock{}
	u := env.addUser(t, "a@b.co", "")
	env.enqueue(t, models.RegisterAction{UserID: u.ID, Email: u.Email})

	res, err := env.service(client, nil).Sync(context.Background())

	assert.ErrorIs(t, err, ErrOffline)
	assert.Nil(t, res)
	n, err := env.queue.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// Действия доставляются в порядке добавления, регистрация открывает путь
// последующим действиям того же пользователя
func TestService_Sync_FIFO(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.addUser(t, "ana@x.io", "")
	bob := env.addUser(t, "bob@x.io", "")
	name := "Ana"

	env.enqueue(t,
		models.RegisterAction{UserID: ana.ID, Email: ana.Email, ServerSecret: ana.ServerSecret},
		models.UpdateProfileAction{UserID: ana.ID, Updates: models.ProfileUpdate{FirstName: &name}},
		models.RegisterAction{UserID: bob.ID, Email: bob.Email, ServerSecret: bob.ServerSecret},
		models.ProgressAction{UserID: ana.ID, CourseID: "c1", ModuleID: "m1", ContentType: "video", ItemIndex: 2},
		models.ChangePasswordAction{UserID: bob.ID},
	)

	var calls []string
	res, err := env.service(recordingClient(&calls), nil).Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"register ana@x.io",
		"login ana@x.io",
		"profile srv-ana@x.io",
		"register bob@x.io",
		"progress c1 m1-video-2",
		"login bob@x.io",
		"password srv-bob@x.io",
	}, calls)
	assert.Equal(t, &Result{Processed: 5}, res)

	stored, _, err := env.store.GetUser(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "srv-ana@x.io", stored.ServerID)
	assert.Equal(t, models.SyncStatusSynced, stored.SyncStatus)

	last, ok, err := env.store.GetLastSync(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, testNow.Equal(last))
}

// Неудачное действие остается в очереди и доставляется следующим проходом
func TestService_Sync_AtLeastOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.addUser(t, "ana@x.io", "srv-ana")
	a1, a2, a3 := "a1", "a2", "a3"
	env.enqueue(t,
		models.UpdateProfileAction{UserID: ana.ID, Updates: models.ProfileUpdate{Bio: &a1}},
		models.UpdateProfileAction{UserID: ana.ID, Updates: models.ProfileUpdate{Bio: &a2}},
		models.UpdateProfileAction{UserID: ana.ID, Updates: models.ProfileUpdate{Bio: &a3}},
	)

	fail := true
	client := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginData, error) {
			return &pkgapi.LoginData{Token: "tok"}, nil
		},
		UpdateProfileFunc: func(ctx context.Context, token, userID string, req pkgapi.ProfileUpdateRequest) (*pkgapi.UserData, error) {
			if fail && *req.Bio == "a2" {
				return nil, &pkgapi.StatusError{Code: 503}
			}
			return &pkgapi.UserData{}, nil
		},
	}
	svc := env.service(client, nil)

	// Сбой A2 не мешает доставке A3, в очереди остается только A2
	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Result{Processed: 2, Failed: 1, Remaining: 1}, res)

	pending, err := env.queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	action, ok := pending[0].Action.(models.UpdateProfileAction)
	require.True(t, ok)
	assert.Equal(t, "a2", *action.Updates.Bio)

	// Повторный проход с работающим сервером очищает очередь
	fail = false
	res, err = svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Result{Processed: 1}, res)

	calls := client.UpdateProfileCalls()
	require.Len(t, calls, 4)
	bios := make([]string, 0, len(calls))
	for _, c := range calls {
		assert.Equal(t, "srv-ana", c.UserID)
		assert.Equal(t, "tok", c.Token)
		bios = append(bios, *c.Req.Bio)
	}
	assert.Equal(t, []string{"a1", "a2", "a3", "a2"}, bios)
}

// Сбой регистрации откладывает остальные действия пользователя, но не чужие
func TestService_Sync_DefersUserAfterFailedRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.addUser(t, "ana@x.io", "")
	bob := env.addUser(t, "bob@x.io", "srv-bob")
	name := "Ana"

	env.enqueue(t,
		models.RegisterAction{UserID: ana.ID, Email: ana.Email, ServerSecret: ana.ServerSecret},
		models.UpdateProfileAction{UserID: ana.ID, Updates: models.ProfileUpdate{FirstName: &name}},
		models.ChangePasswordAction{UserID: bob.ID},
		models.ChangePasswordAction{UserID: ana.ID},
	)

	var calls []string
	client := recordingClient(&calls)
	client.RegisterFunc = func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.UserData, error) {
		calls = append(calls, "register "+req.Email)
		return nil, errors.New("connection reset")
	}

	res, err := env.service(client, nil).Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"register ana@x.io", "login bob@x.io", "password srv-bob"}, calls)
	assert.Equal(t, &Result{Processed: 1, Failed: 1, Deferred: 2, Remaining: 3}, res)

	pending, err := env.queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, models.ActionRegister, pending[0].Action.Type())
	assert.Equal(t, models.ActionUpdateProfile, pending[1].Action.Type())
	assert.Equal(t, models.ActionChangePassword, pending[2].Action.Type())
}

// Действие пользователя без serverId и без регистрации в очереди откладывается
func TestService_Sync_DefersWithoutServerID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.addUser(t, "ana@x.io", "")
	env.enqueue(t, models.ProgressAction{UserID: ana.ID, CourseID: "c1", ModuleID: "m1", ContentType: "quiz"})

	client := &api.ClientAPIMock{}
	res, err := env.service(client, nil).Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, &Result{Deferred: 1, Remaining: 1}, res)
}

func TestService_Sync_DropsActionsOfUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.enqueue(t, models.ChangePasswordAction{UserID: 42})

	res, err := env.service(&api.ClientAPIMock{}, nil).Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, &Result{Dropped: 1}, res)
}

func TestService_Sync_InProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.addUser(t, "ana@x.io", "")
	env.enqueue(t, models.RegisterAction{UserID: ana.ID, Email: ana.Email})

	entered := make(chan struct{})
	release := make(chan struct{})
	client := &api.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.UserData, error) {
			close(entered)
			<-release
			return &pkgapi.UserData{User: pkgapi.User{ID: "srv-ana"}}, nil
		},
	}
	svc := env.service(client, nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Sync(ctx)
		done <- err
	}()

	<-entered
	_, err := svc.Sync(ctx)
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestService_Sync_EventsAndMetrics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.addUser(t, "ana@x.io", "")
	env.enqueue(t,
		models.RegisterAction{UserID: ana.ID, Email: ana.Email},
		models.ChangePasswordAction{UserID: ana.ID},
	)

	var got []events.Event
	env.bus.Subscribe(func(e events.Event) { got = append(got, e) })

	client := &api.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.UserData, error) {
			return nil, errors.New("boom")
		},
	}
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	_, err := env.service(client, metrics).Sync(ctx)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, events.SyncCompleted{Failed: 1, Deferred: 1, Remaining: 2}, got[0])

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.actions.WithLabelValues("register", outcomeFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.actions.WithLabelValues("changePassword", outcomeDeferred)))
}

// Run выполняет проход при появлении сети
func TestService_Run_SyncsWhenOnline(t *testing.T) {
	env := newTestEnv(t)
	env.monitor.SetOnline(false)
	ana := env.addUser(t, "ana@x.io", "")
	env.enqueue(t, models.RegisterAction{UserID: ana.ID, Email: ana.Email})

	synced := make(chan struct{})
	client := &api.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.UserData, error) {
			close(synced)
			return &pkgapi.UserData{User: pkgapi.User{ID: "srv-ana"}}, nil
		},
	}
	svc := env.service(client, nil)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(stopped)
	}()

	// Подписка на монитор происходит в начале Run
	require.Eventually(t, func() bool {
		env.monitor.SetOnline(false)
		env.monitor.SetOnline(true)
		select {
		case <-synced:
			return true
		case <-time.After(20 * time.Millisecond):
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/learnsync/internal/client/api"
	"github.com/iudanet/learnsync/internal/client/apperr"
	"github.com/iudanet/learnsync/internal/client/events"
	"github.com/iudanet/learnsync/internal/client/network"
	"github.com/iudanet/learnsync/internal/client/queue"
	"github.com/iudanet/learnsync/internal/client/storage"
	"github.com/iudanet/learnsync/internal/client/storage/boltdb"
	"github.com/iudanet/learnsync/internal/crypto"
	"github.com/iudanet/learnsync/internal/models"
	pkgapi "github.com/iudanet/learnsync/pkg/api"
)

const testSecret = "device-secret"

// testParams облегченные параметры argon2id для тестов
var testParams = crypto.Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

type fakeClock struct {
	now time.Time
	mu  sync.Mutex
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type testEnv struct {
	store   *boltdb.Storage
	queue   *queue.Queue
	monitor *network.Monitor
	bus     *events.Bus
	clock   *fakeClock
	events  *[]events.Event
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := events.NewBus()

	var mu sync.Mutex
	received := &[]events.Event{}
	bus.Subscribe(func(e events.Event) {
		mu.Lock()
		defer mu.Unlock()
		*received = append(*received, e)
	})

	return &testEnv{
		store:   store,
		queue:   queue.New(store, logger, clock.Now),
		monitor: network.NewMonitor(logger, bus, false),
		bus:     bus,
		clock:   clock,
		events:  received,
	}
}

func (e *testEnv) manager(client api.ClientAPI) *Manager {
	return NewManager(e.store, e.queue, e.monitor, client, e.bus, Config{
		Now:          e.clock.Now,
		DeviceSecret: testSecret,
		HashParams:   testParams,
		SessionTTL:   time.Hour,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func registerAna(t *testing.T, m *Manager) *models.User {
	t.Helper()
	res, err := m.Register(context.Background(), RegisterInput{
		Email:     "Ana@Example.com",
		Password:  "secret1",
		FirstName: "Ana",
		LastName:  "Diaz",
	})
	require.NoError(t, err)
	return res.User
}

func TestManager_Register(t *testing.T) {
	env := newTestEnv(t)
	m := env.manager(nil)
	ctx := context.Background()

	res, err := m.Register(ctx, RegisterInput{
		Email:     "Ana@Example.com",
		Password:  "secret1",
		FirstName: "Ana",
		LastName:  "Diaz",
	})
	require.NoError(t, err)

	assert.Equal(t, MsgRegistered, res.Message)
	assert.Equal(t, "ana@example.com", res.User.Email)
	assert.Equal(t, "ana@example.com", res.User.Username)
	assert.Equal(t, models.RoleRefugee, res.User.Role)
	assert.True(t, res.User.IsActive)
	assert.True(t, res.User.IsOfflineCreated)
	assert.Equal(t, models.SyncStatusPending, res.User.SyncStatus)
	// Секреты наружу не отдаются
	assert.Empty(t, res.User.PasswordHash)
	assert.Empty(t, res.User.ServerSecret)

	stored, found, err := env.store.GetUser(ctx, res.User.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NotEmpty(t, stored.ServerSecret)

	pending, err := env.queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	reg, ok := pending[0].Action.(models.RegisterAction)
	require.True(t, ok)
	assert.Equal(t, res.User.ID, reg.UserID)
	assert.Equal(t, stored.ServerSecret, reg.ServerSecret)

	require.Len(t, *env.events, 1)
	assert.IsType(t, events.UserRegistered{}, (*env.events)[0])
}

func TestManager_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   RegisterInput
		wantMsg string
	}{
		{
			name:    "missing first name",
			input:   RegisterInput{Email: "a@b.co", Password: "secret1", LastName: "D"},
			wantMsg: "first name is required",
		},
		{
			name:    "invalid email",
			input:   RegisterInput{Email: "not-an-email", Password: "secret1", FirstName: "A", LastName: "D"},
			wantMsg: "invalid email format",
		},
		{
			name:    "short password",
			input:   RegisterInput{Email: "a@b.co", Password: "123", FirstName: "A", LastName: "D"},
			wantMsg: "at least 6",
		},
		{
			name:    "unknown role",
			input:   RegisterInput{Email: "a@b.co", Password: "secret1", FirstName: "A", LastName: "D", Role: "student"},
			wantMsg: "invalid role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			m := env.manager(nil)

			_, err := m.Register(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)

			n, err := env.queue.Len(context.Background())
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

// Повторная регистрация того же email, в том числе в другом регистре, отклоняется
func TestManager_Register_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	m := env.manager(nil)
	ctx := context.Background()
	registerAna(t, m)

	_, err := m.Register(ctx, RegisterInput{
		Email:     "ana@EXAMPLE.com",
		Password:  "other-pass",
		FirstName: "Ana",
		LastName:  "Other",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, MsgEmailTaken, err.Error())

	users, err := m.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestManager_Login(t *testing.T) {
	env := newTestEnv(t)
	m := env.manager(nil)
	ctx := context.Background()
	user := registerAna(t, m)

	res, err := m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, user.ID, res.User.ID)
	assert.Regexp(t, `^sess_[a-z0-9]+$`, res.Session.ID)
	assert.Equal(t, env.clock.Now().Add(time.Hour), res.Session.ExpiresAt)
	assert.Empty(t, res.Session.ServerToken)

	// Токен подписан секретом устройства и указывает на сессию
	claims, err := crypto.NewSessionSigner(testSecret, sessionIssuer).Parse(res.Session.Token, env.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, res.Session.ID, claims.SessionID)
	assert.Equal(t, "1", claims.Subject)

	current, ok := m.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
	assert.Empty(t, current.PasswordHash)

	pointer, ok, err := env.store.GetCurrentSession(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, res.Session.ID, pointer)
}

// Неизвестный email, неверный пароль и неактивный пользователь неразличимы
func TestManager_Login_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	m := env.manager(nil)
	ctx := context.Background()
	user := registerAna(t, m)

	inactive, _, err := env.store.GetUser(ctx, user.ID)
	require.NoError(t, err)

	tests := []struct {
		prepare  func()
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "bob@example.com", password: "secret1"},
		{name: "wrong password", email: "ana@example.com", password: "wrong-pass"},
		{
			name:     "inactive user",
			email:    "ana@example.com",
			password: "secret1",
			prepare: func() {
				inactive.IsActive = false
				_, err := env.store.PutUser(ctx, inactive)
				require.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepare != nil {
				tt.prepare()
			}

			res, err := m.Login(ctx, tt.email, tt.password)

			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, apperr.ErrAuth)
			assert.Equal(t, MsgInvalidCredentials, err.Error())
			assert.False(t, m.IsAuthenticated(ctx))
		})
	}
}

// Сессия действует строго до expiresAt и завершается как при Logout
func TestManager_SessionExpiry(t *testing.T) {
	env := newTestEnv(t)
	m := env.manager(nil)
	ctx := context.Background()
	registerAna(t, m)

	res, err := m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	env.clock.Set(res.Session.ExpiresAt.Add(-time.Nanosecond))
	assert.True(t, m.IsAuthenticated(ctx))

	env.clock.Set(res.Session.ExpiresAt)
	assert.False(t, m.IsAuthenticated(ctx))

	_, ok := m.CurrentUser(ctx)
	assert.False(t, ok)

	_, found, err := env.store.GetSession(ctx, res.Session.ID)
	require.NoError(t, err)
	assert.False(t, found)

	_, ok, err = env.store.GetCurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	last := (*env.events)[len(*env.events)-1]
	assert.Equal(t, events.UserLoggedOut{Expired: true}, last)
}

func TestManager_Logout_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	m := env.manager(nil)
	ctx := context.Background()
	registerAna(t, m)

	res, err := m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx))
	require.NoError(t, m.Logout(ctx))

	assert.False(t, m.IsAuthenticated(ctx))
	_, found, err := env.store.GetSession(ctx, res.Session.ID)
	require.NoError(t, err)
	assert.False(t, found)

	var logouts int
	for _, e := range *env.events {
		if _, ok := e.(events.UserLoggedOut); ok {
			logouts++
		}
	}
	assert.Equal(t, 1, logouts)
}

// Новый вход закрывает предыдущую сессию устройства
func TestManager_Login_ReplacesSession(t *testing.T) {
	env := newTestEnv(t)
	m := env.manager(nil)
	ctx := context.Background()
	registerAna(t, m)

	first, err := m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	second, err := m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first.Session.ID, second.Session.ID)
	_, found, err := env.store.GetSession(ctx, first.Session.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestManager_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	m := env.manager(nil)
	ctx := context.Background()
	user := registerAna(t, m)

	t.Run("requires session", func(t *testing.T) {
		err := m.ChangePassword(ctx, "secret1", "newsecret")
		assert.ErrorIs(t, err, apperr.ErrAuth)
	})

	_, err := m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	t.Run("wrong current password leaves hash untouched", func(t *testing.T) {
		before, _, err := env.store.GetUser(ctx, user.ID)
		require.NoError(t, err)

		err = m.ChangePassword(ctx, "wrong-pass", "newsecret")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrAuth)
		assert.Equal(t, MsgWrongPassword, err.Error())

		after, _, err := env.store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, before.PasswordHash, after.PasswordHash)
	})

	t.Run("short new password", func(t *testing.T) {
		err := m.ChangePassword(ctx, "secret1", "123")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, m.ChangePassword(ctx, "secret1", "newsecret"))
		require.NoError(t, m.Logout(ctx))

		_, err := m.Login(ctx, "ana@example.com", "secret1")
		assert.ErrorIs(t, err, apperr.ErrAuth)
		_, err = m.Login(ctx, "ana@example.com", "newsecret")
		require.NoError(t, err)

		pending, err := env.queue.PendingForUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, models.ActionChangePassword, pending[1].Action.Type())
	})
}

func TestManager_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	m := env.manager(nil)
	ctx := context.Background()
	user := registerAna(t, m)
	bio := "Nurse, looking for work"

	_, err := m.UpdateProfile(ctx, models.ProfileUpdate{Bio: &bio})
	assert.ErrorIs(t, err, apperr.ErrAuth)

	_, err = m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	_, err = m.UpdateProfile(ctx, models.ProfileUpdate{})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	env.clock.Set(env.clock.Now().Add(time.Minute))
	updated, err := m.UpdateProfile(ctx, models.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, env.clock.Now(), updated.UpdatedAt)

	current, ok := m.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, bio, current.Bio)

	pending, err := env.queue.PendingForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	upd, ok := pending[1].Action.(models.UpdateProfileAction)
	require.True(t, ok)
	require.NotNil(t, upd.Updates.Bio)
	assert.Equal(t, bio, *upd.Updates.Bio)
	assert.Nil(t, upd.Updates.FirstName)
}

var errDiskFull = errors.New("disk full")

// failAppend подменяет журнал очереди моком поверх bolt, который отказывает в записи, пока *fail
func (e *testEnv) failAppend() *bool {
	fail := new(bool)
	mock := &storage.ActionStoreMock{
		AppendActionFunc: func(ctx context.Context, action *models.PendingAction) (uint64, error) {
			if *fail {
				return 0, errDiskFull
			}
			return e.store.AppendAction(ctx, action)
		},
		ListActionsFunc:       e.store.ListActions,
		ListActionsByUserFunc: e.store.ListActionsByUser,
		DeleteActionFunc:      e.store.DeleteAction,
		CountActionsFunc:      e.store.CountActions,
	}
	e.queue = queue.New(mock, slog.New(slog.NewTextHandler(io.Discard, nil)), e.clock.Now)
	return fail
}

func TestManager_EnqueueFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	bio := "Nurse, looking for work"

	tests := []struct {
		name string
		// prepare готовит пользователя до сбоя очереди
		prepare func(t *testing.T, m *Manager) *models.User
		// mutate операция, которая упирается в сбой очереди
		mutate func(m *Manager) error
		// check проверяет, что локальное состояние осталось прежним
		check func(t *testing.T, env *testEnv, m *Manager, user *models.User)
	}{
		{
			name:    "register",
			prepare: func(t *testing.T, m *Manager) *models.User { return nil },
			mutate: func(m *Manager) error {
				_, err := m.Register(ctx, RegisterInput{
					Email:     "ana@example.com",
					Password:  "secret1",
					FirstName: "Ana",
					LastName:  "Diaz",
				})
				return err
			},
			check: func(t *testing.T, env *testEnv, m *Manager, _ *models.User) {
				// Строка пользователя не осталась без действия register
				users, err := env.store.ListUsers(ctx)
				require.NoError(t, err)
				assert.Empty(t, users)
			},
		},
		{
			name:    "update profile",
			prepare: loggedInAna,
			mutate: func(m *Manager) error {
				_, err := m.UpdateProfile(ctx, models.ProfileUpdate{Bio: &bio})
				return err
			},
			check: func(t *testing.T, env *testEnv, m *Manager, user *models.User) {
				stored, _, err := env.store.GetUser(ctx, user.ID)
				require.NoError(t, err)
				assert.Empty(t, stored.Bio)
				assert.Equal(t, user.UpdatedAt, stored.UpdatedAt)

				current, ok := m.CurrentUser(ctx)
				require.True(t, ok)
				assert.Empty(t, current.Bio)
			},
		},
		{
			name:    "change password",
			prepare: loggedInAna,
			mutate: func(m *Manager) error {
				return m.ChangePassword(ctx, "secret1", "newsecret")
			},
			check: func(t *testing.T, env *testEnv, m *Manager, _ *models.User) {
				// Действует старый пароль
				require.NoError(t, m.Logout(ctx))
				_, err := m.Login(ctx, "ana@example.com", "newsecret")
				assert.ErrorIs(t, err, apperr.ErrAuth)
				_, err = m.Login(ctx, "ana@example.com", "secret1")
				require.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			fail := env.failAppend()
			m := env.manager(nil)
			user := tt.prepare(t, m)
			before, err := env.queue.Len(ctx)
			require.NoError(t, err)

			*fail = true
			err = tt.mutate(m)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrStore)
			assert.ErrorIs(t, err, errDiskFull)

			after, err := env.queue.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, before, after, "очередь не изменилась")
			tt.check(t, env, m, user)

			// После восстановления журнала операция повторяется без конфликтов
			*fail = false
			require.NoError(t, tt.mutate(m))
			after, err = env.queue.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, before+1, after)
		})
	}
}

func loggedInAna(t *testing.T, m *Manager) *models.User {
	t.Helper()
	user := registerAna(t, m)
	_, err := m.Login(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)
	return user
}

// Init поднимает сессию, сохраненную другим экземпляром менеджера
func TestManager_Init_RestoresSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.manager(nil)
	user := registerAna(t, first)
	_, err := first.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	second := env.manager(nil)
	require.NoError(t, second.Init(ctx))
	defer second.Shutdown()

	current, ok := second.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestManager_Init_DropsExpiredSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.manager(nil)
	registerAna(t, first)
	res, err := first.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	env.clock.Set(res.Session.ExpiresAt.Add(time.Second))

	second := env.manager(nil)
	require.NoError(t, second.Init(ctx))
	defer second.Shutdown()

	assert.False(t, second.IsAuthenticated(ctx))
	_, ok, err := env.store.GetCurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_Shutdown_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	m := env.manager(nil)

	require.NoError(t, m.Init(context.Background()))
	m.Shutdown()
	m.Shutdown()
}

// Вход на сервер выполняется только онлайн и только для синхронизированного пользователя
func TestManager_Login_ServerToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginData, error) {
			if req.Password == "" {
				return nil, errors.New("empty secret")
			}
			return &pkgapi.LoginData{Token: "server-token"}, nil
		},
	}
	m := env.manager(client)
	user := registerAna(t, m)

	// Офлайн: сервер не вызывается
	_, err := m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Empty(t, client.LoginCalls())

	// Онлайн, но пользователь еще не синхронизирован
	env.monitor.SetOnline(true)
	_, err = m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Empty(t, client.LoginCalls())
	_, ok := m.ServerToken(ctx)
	assert.False(t, ok)

	stored, _, err := env.store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	stored.ServerID = "srv-1"
	_, err = env.store.PutUser(ctx, stored)
	require.NoError(t, err)

	_, err = m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	require.Len(t, client.LoginCalls(), 1)
	assert.Equal(t, stored.ServerSecret, client.LoginCalls()[0].Req.Password)

	token, ok := m.ServerToken(ctx)
	require.True(t, ok)
	assert.Equal(t, "server-token", token)
}

func TestManager_Login_ServerFailureIgnored(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.monitor.SetOnline(true)

	client := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginData, error) {
			return nil, errors.New("connection refused")
		},
	}
	m := env.manager(client)
	user := registerAna(t, m)

	stored, _, err := env.store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	stored.ServerID = "srv-1"
	_, err = env.store.PutUser(ctx, stored)
	require.NoError(t, err)

	res, err := m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Empty(t, res.Session.ServerToken)
	assert.Len(t, client.LoginCalls(), 1)
}

func TestManager_ClearAllData(t *testing.T) {
	env := newTestEnv(t)
	m := env.manager(nil)
	ctx := context.Background()
	registerAna(t, m)
	_, err := m.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, m.ClearAllData(ctx))

	assert.False(t, m.IsAuthenticated(ctx))
	users, err := m.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	n, err := env.queue.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

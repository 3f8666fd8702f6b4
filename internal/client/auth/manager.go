// Package auth управляет локальными учетными записями и сессиями входа.
// Все операции работают без сети, изменения для сервера ставятся в очередь.
package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/learnsync/internal/client/api"
	"github.com/iudanet/learnsync/internal/client/events"
	"github.com/iudanet/learnsync/internal/client/network"
	"github.com/iudanet/learnsync/internal/client/queue"
	"github.com/iudanet/learnsync/internal/client/storage"
	"github.com/iudanet/learnsync/internal/crypto"
	"github.com/iudanet/learnsync/internal/models"
)

const (
	// DefaultSessionTTL время жизни сессии, не продлевается
	DefaultSessionTTL = 24 * time.Hour
	// DefaultValidateInterval период фоновой проверки срока сессии
	DefaultValidateInterval = time.Minute
	// DefaultServerCallTimeout ограничение на вход на сервер при логине
	DefaultServerCallTimeout = 5 * time.Second

	sessionIssuer = "learnsync-device"
)

// Store репозитории, которые нужны менеджеру
type Store interface {
	storage.UserStore
	storage.SessionStore
	storage.MetaStore
	storage.Wiper
}

// Config параметры менеджера сессий
type Config struct {
	Now               func() time.Time
	DeviceSecret      string
	HashParams        crypto.Params
	SessionTTL        time.Duration
	ValidateInterval  time.Duration
	ServerCallTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.HashParams == (crypto.Params{}) {
		c.HashParams = crypto.DefaultParams
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if c.ValidateInterval <= 0 {
		c.ValidateInterval = DefaultValidateInterval
	}
	if c.ServerCallTimeout <= 0 {
		c.ServerCallTimeout = DefaultServerCallTimeout
	}
	return c
}

// Manager офлайн менеджер сессий. На устройстве одна текущая сессия.
type Manager struct {
	store   Store
	queue   *queue.Queue
	monitor *network.Monitor
	client  api.ClientAPI
	bus     *events.Bus
	hasher  *crypto.Hasher
	signer  *crypto.SessionSigner
	logger  *slog.Logger

	// текущая сессия и пользователь, восстанавливаются в Init
	user    *models.User
	session *models.Session

	stop chan struct{}
	done chan struct{}

	cfg Config
	mu  sync.Mutex
}

var _ api.TokenSource = (*Manager)(nil)

// NewManager создает менеджер. client и monitor могут быть nil,
// тогда вход на сервер не выполняется.
func NewManager(
	store Store,
	q *queue.Queue,
	monitor *network.Monitor,
	client api.ClientAPI,
	bus *events.Bus,
	cfg Config,
	logger *slog.Logger,
) *Manager {
	cfg = cfg.withDefaults()
	return &Manager{
		store:   store,
		queue:   q,
		monitor: monitor,
		client:  client,
		bus:     bus,
		hasher:  crypto.NewHasher(cfg.DeviceSecret, cfg.HashParams),
		signer:  crypto.NewSessionSigner(cfg.DeviceSecret, sessionIssuer),
		logger:  logger,
		cfg:     cfg,
	}
}

// Init восстанавливает текущую сессию из хранилища и запускает фоновую проверку срока
func (m *Manager) Init(ctx context.Context) error {
	if err := m.restore(ctx); err != nil {
		return err
	}

	if _, err := m.store.DeleteExpiredSessions(ctx, m.cfg.Now()); err != nil {
		m.logger.WarnContext(ctx, "failed to delete expired sessions", slog.Any("error", err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stop != nil {
		return nil
	}
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	go m.validateLoop(m.stop, m.done)

	return nil
}

// Shutdown останавливает фоновую проверку. Повторный вызов ничего не делает.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	stop, done := m.stop, m.done
	m.stop, m.done = nil, nil
	m.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (m *Manager) validateLoop(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.cfg.ValidateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.ValidateSession(context.Background())
		case <-stop:
			return
		}
	}
}

// restore поднимает сессию по указателю currentSession
func (m *Manager) restore(ctx context.Context) error {
	sessionID, ok, err := m.store.GetCurrentSession(ctx)
	if err != nil {
		return m.storeErr(ctx, "read current session", err)
	}
	if !ok {
		return nil
	}

	session, found, err := m.store.GetSession(ctx, sessionID)
	if err != nil {
		return m.storeErr(ctx, "read session", err)
	}

	var user *models.User
	if found && session.ValidAt(m.cfg.Now()) {
		user, found, err = m.store.GetUser(ctx, session.UserID)
		if err != nil {
			return m.storeErr(ctx, "read session user", err)
		}
	}

	if !found || user == nil || !user.IsActive {
		// Указатель на истекшую или осиротевшую сессию
		m.logger.InfoContext(ctx, "stale session dropped", slog.String("session_id", sessionID))
		if err := m.store.DeleteSession(ctx, sessionID); err != nil {
			return m.storeErr(ctx, "delete stale session", err)
		}
		if err := m.store.ClearCurrentSession(ctx); err != nil {
			return m.storeErr(ctx, "clear current session", err)
		}
		return nil
	}

	m.mu.Lock()
	m.user, m.session = user, session
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "session restored",
		slog.Uint64("user_id", user.ID),
		slog.Time("expires_at", session.ExpiresAt))
	return nil
}

// CurrentUser возвращает пользователя текущей сессии без секретов
func (m *Manager) CurrentUser(ctx context.Context) (*models.User, bool) {
	if !m.IsAuthenticated(ctx) {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, false
	}
	return m.user.Sanitized(), true
}

// CurrentSession возвращает копию текущей сессии
func (m *Manager) CurrentSession(ctx context.Context) (*models.Session, bool) {
	if !m.IsAuthenticated(ctx) {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, false
	}
	s := *m.session
	return &s, true
}

// IsAuthenticated проверяет срок сессии. Сессия действует, пока now < expiresAt,
// истекшая сессия завершается так же, как при Logout.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	return m.ValidateSession(ctx)
}

// ValidateSession проверяет срок текущей сессии и завершает истекшую
func (m *Manager) ValidateSession(ctx context.Context) bool {
	m.mu.Lock()
	if m.session == nil {
		m.mu.Unlock()
		return false
	}
	if m.session.ValidAt(m.cfg.Now()) {
		m.mu.Unlock()
		return true
	}

	sessionID := m.session.ID
	m.clearLocked()
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "session expired", slog.String("session_id", sessionID))
	m.dropSession(ctx, sessionID)
	m.bus.Publish(events.UserLoggedOut{Expired: true})
	return false
}

// Foreground вызывается при возврате приложения на передний план
func (m *Manager) Foreground(ctx context.Context) bool {
	return m.ValidateSession(ctx)
}

// ServerToken возвращает access token сервера для текущей сессии
func (m *Manager) ServerToken(ctx context.Context) (string, bool) {
	session, ok := m.CurrentSession(ctx)
	if !ok || session.ServerToken == "" {
		return "", false
	}
	return session.ServerToken, true
}

// Users возвращает всех локальных пользователей без секретов
func (m *Manager) Users(ctx context.Context) ([]*models.User, error) {
	users, err := m.store.ListUsers(ctx)
	if err != nil {
		return nil, m.storeErr(ctx, "list users", err)
	}
	result := make([]*models.User, 0, len(users))
	for _, u := range users {
		result = append(result, u.Sanitized())
	}
	return result, nil
}

// ClearAllData удаляет все данные пользователей с устройства
func (m *Manager) ClearAllData(ctx context.Context) error {
	m.mu.Lock()
	hadSession := m.session != nil
	m.clearLocked()
	m.mu.Unlock()

	if err := m.store.Wipe(ctx); err != nil {
		return m.storeErr(ctx, "clear all data", err)
	}

	m.logger.InfoContext(ctx, "all local data cleared")
	if hadSession {
		m.bus.Publish(events.UserLoggedOut{})
	}
	return nil
}

// clearLocked сбрасывает состояние в памяти, вызывается под m.mu
func (m *Manager) clearLocked() {
	m.user = nil
	m.session = nil
}

// dropSession удаляет строку сессии и указатель на нее.
// Ошибки только логируются: состояние в памяти уже сброшено.
func (m *Manager) dropSession(ctx context.Context, sessionID string) {
	if err := m.store.DeleteSession(ctx, sessionID); err != nil {
		m.logger.WarnContext(ctx, "failed to delete session", slog.String("session_id", sessionID), slog.Any("error", err))
	}
	if err := m.store.ClearCurrentSession(ctx); err != nil {
		m.logger.WarnContext(ctx, "failed to clear current session", slog.Any("error", err))
	}
}

func (m *Manager) online() bool {
	return m.client != nil && m.monitor != nil && m.monitor.Online()
}

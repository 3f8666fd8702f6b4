package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/nrednav/cuid2"

	"github.com/iudanet/learnsync/internal/client/apperr"
	"github.com/iudanet/learnsync/internal/client/events"
	"github.com/iudanet/learnsync/internal/client/storage"
	"github.com/iudanet/learnsync/internal/crypto"
	"github.com/iudanet/learnsync/internal/models"
	"github.com/iudanet/learnsync/internal/validation"
	"github.com/iudanet/learnsync/pkg/api"
)

const (
	// MsgRegistered сообщение об успешной офлайн регистрации
	MsgRegistered = "Registration successful. Account will be synced when online."
	// MsgInvalidCredentials одинаково для неизвестного email, неверного пароля и неактивного пользователя
	MsgInvalidCredentials = "Invalid email or password"
	// MsgEmailTaken email уже занят локальным пользователем
	MsgEmailTaken = "User with this email already exists"
	// MsgNotAuthenticated операция требует текущей сессии
	MsgNotAuthenticated = "Not authenticated"

	sessionPrefix    = "sess_"
	serverSecretSize = 32
)

// RegisterInput данные формы регистрации
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      models.Role
}

// RegisterResult результат регистрации
type RegisterResult struct {
	User    *models.User
	Message string
}

// LoginResult результат входа
type LoginResult struct {
	User    *models.User
	Session *models.Session
}

// Register создает пользователя на устройстве и ставит регистрацию в очередь на сервер
func (m *Manager) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.Role == "" {
		in.Role = models.DefaultRole
	}

	if err := validation.ValidateRegistration(in.Email, in.Password, in.FirstName, in.LastName, in.Role); err != nil {
		return nil, apperr.Validation("%v", err)
	}
	email := validation.NormalizeEmail(in.Email)

	_, exists, err := m.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, m.storeErr(ctx, "check email", err)
	}
	if exists {
		return nil, apperr.Conflict(MsgEmailTaken, nil)
	}

	passwordHash, err := m.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperr.Store("hash password", err)
	}
	serverSecret, err := crypto.RandomToken(serverSecretSize)
	if err != nil {
		return nil, apperr.Store("generate server secret", err)
	}

	now := m.cfg.Now()
	user := &models.User{
		Email:            email,
		Username:         email,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Role:             in.Role,
		PasswordHash:     passwordHash,
		ServerSecret:     serverSecret,
		IsActive:         true,
		IsOfflineCreated: true,
		SyncStatus:       models.SyncStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := m.store.PutUser(ctx, user); err != nil {
		// Уникальный индекс страхует от гонки между проверкой и записью
		if errors.Is(err, storage.ErrConstraint) {
			return nil, apperr.Conflict(MsgEmailTaken, err)
		}
		return nil, m.storeErr(ctx, "save user", err)
	}

	_, err = m.queue.Enqueue(ctx, models.RegisterAction{
		UserID:       user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.Role,
		ServerSecret: serverSecret,
		Timestamp:    now,
	})
	if err != nil {
		// Пользователь без действия register никогда не попадет на сервер
		if delErr := m.store.DeleteUser(ctx, user.ID); delErr != nil {
			m.logger.ErrorContext(ctx, "failed to remove user after enqueue error",
				slog.Uint64("user_id", user.ID), slog.Any("error", delErr))
		}
		return nil, err
	}

	m.logger.InfoContext(ctx, "user registered offline",
		slog.Uint64("user_id", user.ID),
		slog.String("role", string(user.Role)))

	sanitized := user.Sanitized()
	m.bus.Publish(events.UserRegistered{User: sanitized})

	return &RegisterResult{User: sanitized, Message: MsgRegistered}, nil
}

// Login проверяет пароль локально и открывает новую сессию.
// Предыдущая сессия устройства закрывается.
func (m *Manager) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	user, found, err := m.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, m.storeErr(ctx, "find user", err)
	}
	if !found || !user.IsActive {
		return nil, apperr.Auth(MsgInvalidCredentials)
	}
	if err := m.hasher.Verify(password, user.PasswordHash); err != nil {
		if !errors.Is(err, crypto.ErrMismatch) {
			m.logger.WarnContext(ctx, "stored password hash is unreadable",
				slog.Uint64("user_id", user.ID), slog.Any("error", err))
		}
		return nil, apperr.Auth(MsgInvalidCredentials)
	}

	now := m.cfg.Now()
	session := &models.Session{
		ID:        sessionPrefix + cuid2.Generate(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.cfg.SessionTTL),
	}
	session.Token, err = m.signer.Sign(session.ID, user.ID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return nil, apperr.Store("sign session token", err)
	}
	session.ServerToken = m.serverLogin(ctx, user)

	if err := m.openSession(ctx, user, session); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "user logged in",
		slog.Uint64("user_id", user.ID),
		slog.String("session_id", session.ID),
		slog.Bool("server_session", session.ServerToken != ""))

	sanitized := user.Sanitized()
	m.bus.Publish(events.UserLoggedIn{User: sanitized})

	result := *session
	return &LoginResult{User: sanitized, Session: &result}, nil
}

// openSession сохраняет сессию и делает ее текущей вместо прежней
func (m *Manager) openSession(ctx context.Context, user *models.User, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil {
		m.dropSession(ctx, m.session.ID)
		m.clearLocked()
	}
	if err := m.store.PutSession(ctx, session); err != nil {
		return m.storeErr(ctx, "save session", err)
	}
	if err := m.store.SetCurrentSession(ctx, session.ID); err != nil {
		return m.storeErr(ctx, "save current session", err)
	}
	m.user, m.session = user, session
	return nil
}

// serverLogin пробует получить access token сервера. Ошибка не мешает входу.
func (m *Manager) serverLogin(ctx context.Context, user *models.User) string {
	if !m.online() || user.ServerID == "" || user.ServerSecret == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, m.cfg.ServerCallTimeout)
	defer cancel()

	resp, err := m.client.Login(ctx, api.LoginRequest{Email: user.Email, Password: user.ServerSecret})
	if err != nil {
		m.logger.WarnContext(ctx, "server login failed, continuing offline",
			slog.Uint64("user_id", user.ID), slog.Any("error", err))
		return ""
	}
	return resp.Token
}

// Logout завершает текущую сессию. Повторный вызов не ошибка.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	session := m.session
	m.clearLocked()
	m.mu.Unlock()

	sessionID, ok, err := m.store.GetCurrentSession(ctx)
	if err != nil {
		return m.storeErr(ctx, "read current session", err)
	}
	if !ok && session != nil {
		sessionID, ok = session.ID, true
	}
	if !ok {
		return nil
	}

	if err := m.store.DeleteSession(ctx, sessionID); err != nil {
		return m.storeErr(ctx, "delete session", err)
	}
	if err := m.store.ClearCurrentSession(ctx); err != nil {
		return m.storeErr(ctx, "clear current session", err)
	}

	m.logger.InfoContext(ctx, "user logged out", slog.String("session_id", sessionID))
	m.bus.Publish(events.UserLoggedOut{})
	return nil
}

// storeErr логирует сбой хранилища и оборачивает его в apperr.ErrStore
func (m *Manager) storeErr(ctx context.Context, op string, err error) error {
	m.logger.ErrorContext(ctx, "local storage failure", slog.String("op", op), slog.Any("error", err))
	return apperr.Store(op, err)
}

package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/iudanet/learnsync/internal/client/apperr"
	"github.com/iudanet/learnsync/internal/client/events"
	"github.com/iudanet/learnsync/internal/crypto"
	"github.com/iudanet/learnsync/internal/models"
	"github.com/iudanet/learnsync/internal/validation"
)

// MsgWrongPassword текущий пароль при смене не совпал
const MsgWrongPassword = "Current password is incorrect"

// UpdateProfile применяет изменения профиля текущего пользователя
func (m *Manager) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	if upd.Empty() {
		return nil, apperr.Validation("no profile fields to update")
	}
	if upd.FirstName != nil && strings.TrimSpace(*upd.FirstName) == "" {
		return nil, apperr.Validation("first name is required")
	}
	if upd.LastName != nil && strings.TrimSpace(*upd.LastName) == "" {
		return nil, apperr.Validation("last name is required")
	}

	user, err := m.sessionUser(ctx)
	if err != nil {
		return nil, err
	}

	now := m.cfg.Now()
	prev := *user
	upd.Apply(user)
	user.UpdatedAt = now

	if _, err := m.store.PutUser(ctx, user); err != nil {
		return nil, m.storeErr(ctx, "save profile", err)
	}

	_, err = m.queue.Enqueue(ctx, models.UpdateProfileAction{
		UserID:    user.ID,
		Updates:   upd,
		Timestamp: now,
	})
	if err != nil {
		m.restoreUser(ctx, &prev)
		return nil, err
	}
	m.setUser(user)

	m.logger.InfoContext(ctx, "profile updated", slog.Uint64("user_id", user.ID))

	sanitized := user.Sanitized()
	m.bus.Publish(events.ProfileUpdated{User: sanitized})
	return sanitized, nil
}

// ChangePassword меняет пароль текущего пользователя после проверки текущего
func (m *Manager) ChangePassword(ctx context.Context, current, next string) error {
	user, err := m.sessionUser(ctx)
	if err != nil {
		return err
	}

	if err := m.hasher.Verify(current, user.PasswordHash); err != nil {
		if !errors.Is(err, crypto.ErrMismatch) {
			m.logger.WarnContext(ctx, "stored password hash is unreadable",
				slog.Uint64("user_id", user.ID), slog.Any("error", err))
		}
		return apperr.Auth(MsgWrongPassword)
	}
	if err := validation.ValidatePassword(next); err != nil {
		return apperr.Validation("%v", err)
	}

	hash, err := m.hasher.Hash(next)
	if err != nil {
		return apperr.Store("hash password", err)
	}

	now := m.cfg.Now()
	prev := *user
	user.PasswordHash = hash
	user.UpdatedAt = now
	if _, err := m.store.PutUser(ctx, user); err != nil {
		return m.storeErr(ctx, "save password", err)
	}

	_, err = m.queue.Enqueue(ctx, models.ChangePasswordAction{UserID: user.ID, Timestamp: now})
	if err != nil {
		m.restoreUser(ctx, &prev)
		return err
	}
	m.setUser(user)

	m.logger.InfoContext(ctx, "password changed", slog.Uint64("user_id", user.ID))
	m.bus.Publish(events.PasswordChanged{UserID: user.ID})
	return nil
}

// sessionUser читает из хранилища свежую запись пользователя текущей сессии
func (m *Manager) sessionUser(ctx context.Context) (*models.User, error) {
	if !m.IsAuthenticated(ctx) {
		return nil, apperr.Auth(MsgNotAuthenticated)
	}

	m.mu.Lock()
	current := m.user
	m.mu.Unlock()
	if current == nil {
		return nil, apperr.Auth(MsgNotAuthenticated)
	}
	userID := current.ID

	user, found, err := m.store.GetUser(ctx, userID)
	if err != nil {
		return nil, m.storeErr(ctx, "read user", err)
	}
	if !found {
		return nil, apperr.Auth(MsgNotAuthenticated)
	}
	return user, nil
}

// restoreUser возвращает запись, изменение которой не удалось поставить в очередь
func (m *Manager) restoreUser(ctx context.Context, prev *models.User) {
	if _, err := m.store.PutUser(ctx, prev); err != nil {
		m.logger.ErrorContext(ctx, "failed to restore user after enqueue error",
			slog.Uint64("user_id", prev.ID), slog.Any("error", err))
	}
}

// setUser обновляет кеш текущего пользователя, если сессия все еще его
func (m *Manager) setUser(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user != nil && m.user.ID == user.ID {
		m.user = user
	}
}

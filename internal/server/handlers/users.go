package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/learnsync/internal/server/storage"
	"github.com/iudanet/learnsync/internal/validation"
	"github.com/iudanet/learnsync/pkg/api"
)

// UsersHandler обрабатывает изменения профиля и пароля
type UsersHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	now         func() time.Time
	cost        int
}

// NewUsersHandler создает handler пользователей
func NewUsersHandler(logger *slog.Logger, userStorage storage.UserStorage) *UsersHandler {
	return &UsersHandler{
		logger:      logger,
		userStorage: userStorage,
		now:         time.Now,
		cost:        BcryptCost,
	}
}

// UpdateProfile обрабатывает PUT /api/users/{id}/profile
func (h *UsersHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req api.ProfileUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}
	names := []struct {
		value *string
		name  string
	}{
		{req.FirstName, "first name"},
		{req.LastName, "last name"},
	}
	for _, f := range names {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			sendError(w, h.logger, f.name+" cannot be empty", http.StatusBadRequest)
			return
		}
	}

	user, err := h.userStorage.UpdateProfile(ctx, userID, storage.ProfileFields{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Bio:       req.Bio,
		Location:  req.Location,
	}, h.now().UTC())
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "profile updated", slog.String("user_id", userID))
	sendData(w, h.logger, api.UserData{User: toAPIUser(user)}, "Profile updated successfully", http.StatusOK)
}

// ChangePassword обрабатывает PUT /api/users/{id}/password.
// Тело api.PasswordChangedSentinel только фиксирует факт смены на устройстве.
func (h *UsersHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req api.PasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}

	now := h.now().UTC()
	if req.Password == api.PasswordChangedSentinel {
		if err := h.userStorage.RecordPasswordChange(ctx, userID, now); err != nil {
			h.storageError(w, r, err)
			return
		}
		h.logger.InfoContext(ctx, "password change recorded", slog.String("user_id", userID))
		sendData(w, h.logger, nil, "Password change recorded", http.StatusOK)
		return
	}

	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.cost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}
	if err := h.userStorage.SetPasswordHash(ctx, userID, string(hash), now); err != nil {
		h.storageError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "password changed", slog.String("user_id", userID))
	sendData(w, h.logger, nil, "Password changed successfully", http.StatusOK)
}

// authorize пользователь может менять только свою запись
func (h *UsersHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	authID, ok := UserIDFromContext(r.Context())
	if !ok {
		sendError(w, h.logger, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	if chi.URLParam(r, "id") != authID {
		h.logger.WarnContext(r.Context(), "attempt to modify another user",
			slog.String("user_id", authID),
			slog.String("target_id", chi.URLParam(r, "id")))
		sendError(w, h.logger, "forbidden", http.StatusForbidden)
		return "", false
	}
	return authID, true
}

func (h *UsersHandler) storageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrUserNotFound) {
		sendError(w, h.logger, "user not found", http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), "user storage failure", slog.Any("error", err))
	sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/learnsync/internal/models"
	"github.com/iudanet/learnsync/internal/server/jwt"
	"github.com/iudanet/learnsync/internal/server/storage"
	"github.com/iudanet/learnsync/internal/validation"
	"github.com/iudanet/learnsync/pkg/api"
)

// BcryptCost стоимость bcrypt для паролей
const BcryptCost = 10

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	jwtService  *jwt.Service
	now         func() time.Time
	cost        int
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		jwtService:  jwtService,
		now:         time.Now,
		cost:        BcryptCost,
	}
}

// Register обрабатывает POST /api/auth/register.
// Повтор с тем же email и паролем возвращает существующего пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}

	email := validation.NormalizeEmail(req.Email)
	role := models.Role(req.Role)
	if err := validation.ValidateRegistration(email, req.Password, req.FirstName, req.LastName, role); err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}
	if role == "" {
		role = models.DefaultRole
	}

	existing, err := h.userStorage.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		h.replayRegister(w, r, existing, req.Password)
		return
	case !errors.Is(err, storage.ErrUserNotFound):
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.cost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	now := h.now().UTC()
	user := &storage.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         string(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("email", email))
			sendError(w, h.logger, "email already registered", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("email", email),
		slog.String("user_id", user.ID))

	sendData(w, h.logger, api.UserData{User: toAPIUser(user)}, "User registered successfully", http.StatusCreated)
}

// replayRegister повторная доставка регистрации с устройства
func (h *AuthHandler) replayRegister(w http.ResponseWriter, r *http.Request, user *storage.User, password string) {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		h.logger.WarnContext(r.Context(), "email already registered", slog.String("email", user.Email))
		sendError(w, h.logger, "email already registered", http.StatusConflict)
		return
	}

	h.logger.InfoContext(r.Context(), "registration replayed", slog.String("user_id", user.ID))
	sendData(w, h.logger, api.UserData{User: toAPIUser(user)}, "User already registered", http.StatusOK)
}

// Login обрабатывает POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}

	email := validation.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		sendError(w, h.logger, "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("email", email))
			sendError(w, h.logger, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("email", email))
		sendError(w, h.logger, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully", slog.String("user_id", user.ID))

	sendData(w, h.logger, api.LoginData{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toAPIUser(user),
	}, "Login successful", http.StatusOK)
}

func toAPIUser(u *storage.User) api.User {
	return api.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Phone:     u.Phone,
		Bio:       u.Bio,
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

package api

import (
	"context"

	"github.com/iudanet/learnsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает вызовы сервера. token передается там, где
// endpoint требует авторизацию, пустой token означает запрос без заголовка.
type ClientAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.UserData, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginData, error)
	UpdateProfile(ctx context.Context, token, userID string, req api.ProfileUpdateRequest) (*api.UserData, error)
	ChangePassword(ctx context.Context, token, userID string, req api.PasswordRequest) error
	GetCourse(ctx context.Context, token, courseID string) (*api.CourseData, error)
	GetCourseProgress(ctx context.Context, token, courseID string) (*api.ProgressData, error)
	UpdateCourseProgress(ctx context.Context, token, courseID string, req api.ProgressUpdateRequest) (*api.ProgressData, error)
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// TokenSource отдает access token сервера для текущей сессии
type TokenSource interface {
	ServerToken(ctx context.Context) (string, bool)
}

var _ ClientAPI = (*Client)(nil)

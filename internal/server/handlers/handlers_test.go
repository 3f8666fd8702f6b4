package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/learnsync/internal/server/jwt"
	"github.com/iudanet/learnsync/internal/server/storage/sqlite"
	"github.com/iudanet/learnsync/pkg/api"
)

var testNow = time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testServer struct {
	store   *sqlite.Storage
	jwt     *jwt.Service
	auth    *AuthHandler
	users   *UsersHandler
	courses *CoursesHandler
	router  chi.Router
}

// withUser подставляет id пользователя, как это делает AuthMiddleware
func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), UserIDKey, userID))
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := setupTestLogger()
	clock := func() time.Time { return testNow }
	s := &testServer{
		store: store,
		jwt:   jwt.NewService("test-secret", time.Hour).WithClock(clock),
	}
	s.auth = NewAuthHandler(logger, store, s.jwt)
	s.auth.now, s.auth.cost = clock, bcrypt.MinCost
	s.users = NewUsersHandler(logger, store)
	s.users.now, s.users.cost = clock, bcrypt.MinCost
	s.courses = NewCoursesHandler(logger, store, store)
	s.courses.now = clock

	r := chi.NewRouter()
	r.Post("/api/auth/register", s.auth.Register)
	r.Post("/api/auth/login", s.auth.Login)
	r.Put("/api/users/{id}/profile", s.users.UpdateProfile)
	r.Put("/api/users/{id}/password", s.users.ChangePassword)
	r.Get("/api/courses", s.courses.List)
	r.Get("/api/courses/{id}", s.courses.Get)
	r.Get("/api/courses/{id}/progress", s.courses.GetProgress)
	r.Put("/api/courses/{id}/progress", s.courses.UpdateProgress)
	s.router = r
	return s
}

// call выполняет запрос и разбирает конверт ответа
func (s *testServer) call(t *testing.T, method, path, userID string, body any) (int, api.RawResponse) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req = withUser(req, userID)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp api.RawResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func decodeData[T any](t *testing.T, resp api.RawResponse) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(resp.Data, &v))
	return v
}

var anaRegister = api.RegisterRequest{
	Email:     "Ana@Example.com",
	Password:  "device-secret-1",
	FirstName: "Ana",
	LastName:  "Diaz",
}

func (s *testServer) register(t *testing.T) api.User {
	t.Helper()
	code, resp := s.call(t, http.MethodPost, "/api/auth/register", "", anaRegister)
	require.Equal(t, http.StatusCreated, code, resp.Message)
	return decodeData[api.UserData](t, resp).User
}

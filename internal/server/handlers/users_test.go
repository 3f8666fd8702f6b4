package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/learnsync/pkg/api"
)

func strPtr(s string) *string { return &s }

func TestUsersHandler_UpdateProfile(t *testing.T) {
	s := newTestServer(t)
	user := s.register(t)
	path := "/api/users/" + user.ID + "/profile"

	code, resp := s.call(t, http.MethodPut, path, user.ID, api.ProfileUpdateRequest{
		Bio:      strPtr("Nurse from Kharkiv"),
		Location: strPtr("Berlin"),
	})
	require.Equal(t, http.StatusOK, code, resp.Message)
	updated := decodeData[api.UserData](t, resp).User
	assert.Equal(t, "Nurse from Kharkiv", updated.Bio)
	assert.Equal(t, "Ana", updated.FirstName)

	// Повтор той же записи идемпотентен
	code, _ = s.call(t, http.MethodPut, path, user.ID, api.ProfileUpdateRequest{Bio: strPtr("Nurse from Kharkiv")})
	assert.Equal(t, http.StatusOK, code)
}

func TestUsersHandler_UpdateProfile_Errors(t *testing.T) {
	s := newTestServer(t)
	user := s.register(t)

	tests := []struct {
		body     any
		name     string
		path     string
		authID   string
		wantCode int
	}{
		{name: "no auth", path: "/api/users/" + user.ID + "/profile", body: api.ProfileUpdateRequest{}, wantCode: http.StatusUnauthorized},
		{name: "other user", path: "/api/users/someone/profile", authID: user.ID, body: api.ProfileUpdateRequest{}, wantCode: http.StatusForbidden},
		{name: "blank name", path: "/api/users/" + user.ID + "/profile", authID: user.ID, body: api.ProfileUpdateRequest{FirstName: strPtr(" ")}, wantCode: http.StatusBadRequest},
		{name: "unknown field", path: "/api/users/" + user.ID + "/profile", authID: user.ID, body: map[string]string{"role": "admin"}, wantCode: http.StatusBadRequest},
		{name: "deleted user", path: "/api/users/ghost/profile", authID: "ghost", body: api.ProfileUpdateRequest{}, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := s.call(t, http.MethodPut, tt.path, tt.authID, tt.body)
			assert.Equal(t, tt.wantCode, code)
			assert.False(t, resp.Success)
		})
	}
}

// Сентинел фиксирует смену пароля, но не меняет хеш
func TestUsersHandler_ChangePassword_Sentinel(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)
	user := s.register(t)
	before, err := s.store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)

	code, resp := s.call(t, http.MethodPut, "/api/users/"+user.ID+"/password", user.ID,
		api.PasswordRequest{Password: api.PasswordChangedSentinel})
	require.Equal(t, http.StatusOK, code, resp.Message)

	after, err := s.store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.True(t, after.PasswordChangedAt.Valid)
}

func TestUsersHandler_ChangePassword_Real(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)
	user := s.register(t)

	code, _ := s.call(t, http.MethodPut, "/api/users/"+user.ID+"/password", user.ID,
		api.PasswordRequest{Password: "brand-new-secret"})
	require.Equal(t, http.StatusOK, code)

	stored, err := s.store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("brand-new-secret")))

	code, _ = s.call(t, http.MethodPut, "/api/users/"+user.ID+"/password", user.ID, api.PasswordRequest{Password: "x"})
	assert.Equal(t, http.StatusBadRequest, code)
}

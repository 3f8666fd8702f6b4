package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/learnsync/internal/client/storage"
	"github.com/iudanet/learnsync/internal/models"
)

func newUser(email string, role models.Role) *models.User {
	return &models.User{
		Email:    email,
		Username: email,
		Role:     role,
		IsActive: true,
	}
}

func TestPutUser_AssignsAutoincrementID(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	first := newUser("a@b.co", models.RoleRefugee)
	id1, err := store.PutUser(ctx, first)
	require.NoError(t, err)

	second := newUser("c@d.co", models.RoleAdmin)
	id2, err := store.PutUser(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2)
	assert.Equal(t, id1, first.ID, "ID проставляется в переданную запись")

	got, found, err := store.GetUser(ctx, id2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "c@d.co", got.Email)
}

func TestPutUser_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.PutUser(ctx, newUser("a@b.co", models.RoleRefugee))
	require.NoError(t, err)

	dup := newUser("a@b.co", models.RoleInstructor)
	_, err = store.PutUser(ctx, dup)
	require.ErrorIs(t, err, storage.ErrConstraint)
	assert.Zero(t, dup.ID, "при ошибке ID не выдается")

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "вторая запись не создана")
}

func TestPutUser_UpdateKeepsIndexesConsistent(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	user := newUser("old@b.co", models.RoleRefugee)
	_, err := store.PutUser(ctx, user)
	require.NoError(t, err)

	// Меняем email и роль
	user.Email = "new@b.co"
	user.Username = "new@b.co"
	user.Role = models.RoleEmployer
	_, err = store.PutUser(ctx, user)
	require.NoError(t, err)

	_, found, err := store.GetUserByEmail(ctx, "old@b.co")
	require.NoError(t, err)
	assert.False(t, found, "старое значение индекса удалено")

	got, found, err := store.GetUserByEmail(ctx, "new@b.co")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, user.ID, got.ID)

	refugees, err := store.ListUsersByRole(ctx, models.RoleRefugee)
	require.NoError(t, err)
	assert.Empty(t, refugees)

	employers, err := store.ListUsersByRole(ctx, models.RoleEmployer)
	require.NoError(t, err)
	assert.Len(t, employers, 1)

	// Старый email можно занять снова
	_, err = store.PutUser(ctx, newUser("old@b.co", models.RoleRefugee))
	assert.NoError(t, err)
}

func TestGetUser_MissIsNotError(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	user, found, err := store.GetUser(ctx, 42)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, user)

	user, found, err = store.GetUserByEmail(ctx, "nobody@b.co")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, user)
}

func TestListUsersByRole(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for _, u := range []*models.User{
		newUser("a@b.co", models.RoleRefugee),
		newUser("b@b.co", models.RoleInstructor),
		newUser("c@b.co", models.RoleRefugee),
	} {
		_, err := store.PutUser(ctx, u)
		require.NoError(t, err)
	}

	refugees, err := store.ListUsersByRole(ctx, models.RoleRefugee)
	require.NoError(t, err)
	require.Len(t, refugees, 2)
	assert.Equal(t, "a@b.co", refugees[0].Email)
	assert.Equal(t, "c@b.co", refugees[1].Email)
}

func TestDeleteUser_FreesEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	u := newUser("a@b.co", models.RoleRefugee)
	_, err := store.PutUser(ctx, u)
	require.NoError(t, err)

	require.NoError(t, store.DeleteUser(ctx, u.ID))
	require.NoError(t, store.DeleteUser(ctx, u.ID), "повторное удаление не ошибка")

	_, found, err := store.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, found)

	// Индекс email очищен, адрес можно занять снова
	_, found, err = store.GetUserByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	assert.False(t, found)
	_, err = store.PutUser(ctx, newUser("a@b.co", models.RoleRefugee))
	require.NoError(t, err)
}

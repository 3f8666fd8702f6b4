package boltdb

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/learnsync/internal/models"
)

func TestCourses(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, found, err := store.GetCourse(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, found)

	course := &models.Course{ID: "c1", Title: "Intro", Raw: json.RawMessage(`{"_id":"c1","title":"Intro"}`)}
	require.NoError(t, store.PutCourse(ctx, course))

	got, found, err := store.GetCourse(ctx, "c1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Intro", got.Title)
	assert.JSONEq(t, `{"_id":"c1","title":"Intro"}`, string(got.Raw))

	assert.Error(t, store.PutCourse(ctx, &models.Course{}))
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	p := models.NewCourseProgress("c1")
	p.Complete("m1", "video-0", time.Now())
	p.Complete("m1", "quiz-1", time.Now())
	require.NoError(t, store.PutProgress(ctx, p))

	got, found, err := store.GetProgress(ctx, "c1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"quiz-1", "video-0"}, got.Module("m1").CompletedItems.Items())

	_, found, err = store.GetProgress(ctx, "c2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMeta(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, found, err := store.GetCurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetCurrentSession(ctx, "sess_1"))
	id, found, err := store.GetCurrentSession(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "sess_1", id)

	require.NoError(t, store.ClearCurrentSession(ctx))
	require.NoError(t, store.ClearCurrentSession(ctx))
	_, found, err = store.GetCurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SetLastSync(ctx, at))
	got, found, err := store.GetLastSync(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, at.Equal(got))
}

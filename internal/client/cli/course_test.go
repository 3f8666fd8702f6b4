package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/learnsync/internal/client/content"
	"github.com/iudanet/learnsync/internal/models"
)

const courseJSON = `{
	"id": "digital-basics",
	"title": "Digital basics",
	"modules": [
		{"id": "m1", "title": "Using email", "content": [
			{"type": "video", "title": "Intro"},
			{"type": "text", "title": "Accounts"},
			{"type": "video", "title": "Attachments"}
		]},
		{"id": "m2", "content": [{"type": "quiz"}]}
	]
}`

func TestCli_runCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("cached course", func(t *testing.T) {
		mockContent := &ContentServiceMock{
			GetCourseDataFunc: func(ctx context.Context, courseID string) (*models.Course, bool, error) {
				return &models.Course{
					ID:       courseID,
					Title:    "Digital basics",
					Raw:      json.RawMessage(courseJSON),
					CachedAt: testNow,
				}, true, nil
			},
		}
		con := &console{}

		require.NoError(t, newTestCli(con, Services{Content: mockContent}).Run(ctx, "course", []string{"digital-basics"}))
		out := con.String()
		assert.Contains(t, out, "=== Digital basics ===")
		assert.Contains(t, out, "Module m1: Using email")
		// Индекс элемента это позиция в списке модуля
		assert.Contains(t, out, "video-0  Intro")
		assert.Contains(t, out, "text-1  Accounts")
		assert.Contains(t, out, "video-2  Attachments")
		assert.Contains(t, out, "Module m2\n  quiz-0")
	})

	t.Run("not available offline", func(t *testing.T) {
		mockContent := &ContentServiceMock{
			GetCourseDataFunc: func(ctx context.Context, courseID string) (*models.Course, bool, error) {
				return nil, false, nil
			},
		}
		con := &console{}

		require.NoError(t, newTestCli(con, Services{Content: mockContent}).Run(ctx, "course", []string{"job-search"}))
		assert.Contains(t, con.String(), "Course job-search is not available offline")
	})

	t.Run("storage error", func(t *testing.T) {
		mockContent := &ContentServiceMock{
			GetCourseDataFunc: func(ctx context.Context, courseID string) (*models.Course, bool, error) {
				return nil, false, errors.New("bolt: database not open")
			},
		}

		err := newTestCli(&console{}, Services{Content: mockContent}).Run(ctx, "course", []string{"c1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database not open")
	})
}

func TestNewCourseView_MalformedBody(t *testing.T) {
	view := newCourseView(&models.Course{ID: "c1", Raw: json.RawMessage(`not json`), CachedAt: testNow})
	assert.Equal(t, "c1", view.ID)
	assert.Empty(t, view.Modules)
}

func TestCli_runProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("completed items", func(t *testing.T) {
		progress := models.NewCourseProgress("c1")
		progress.Complete("m1", "video-0", testNow)
		progress.Complete("m1", "quiz-1", testNow)
		mockContent := &ContentServiceMock{
			GetCourseProgressFunc: func(ctx context.Context, courseID, moduleID string) (*models.ModuleProgress, bool, error) {
				return progress.ModulesProgress[moduleID], true, nil
			},
		}
		con := &console{}

		require.NoError(t, newTestCli(con, Services{Content: mockContent}).Run(ctx, "progress", []string{"c1", "m1"}))
		assert.Contains(t, con.String(), "✓ quiz-1\n✓ video-0")
	})

	t.Run("nothing completed", func(t *testing.T) {
		mockContent := &ContentServiceMock{
			GetCourseProgressFunc: func(ctx context.Context, courseID, moduleID string) (*models.ModuleProgress, bool, error) {
				return nil, false, nil
			},
		}
		con := &console{}

		require.NoError(t, newTestCli(con, Services{Content: mockContent}).Run(ctx, "progress", []string{"c1", "m9"}))
		assert.Contains(t, con.String(), "No completed items in c1/m9 yet.")
	})
}

func TestCli_runComplete(t *testing.T) {
	tests := []struct {
		result  *content.CompletionResult
		err     error
		name    string
		want    string
		wantErr string
	}{
		{
			name:   "synced with server",
			result: &content.CompletionResult{Success: true, ServerSuccess: true},
			want:   "✓ video-2 completed and saved on the server",
		},
		{
			name:   "saved offline",
			result: &content.CompletionResult{Success: true, OfflineSuccess: true},
			want:   "✓ video-2 completed offline, it will sync when online",
		},
		{
			name:    "not saved",
			result:  &content.CompletionResult{},
			wantErr: "item video-2 was not saved",
		},
		{
			name:    "service error",
			err:     errors.New("not logged in"),
			wantErr: "failed to mark item complete: not logged in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockContent := &ContentServiceMock{
				MarkItemCompleteFunc: func(ctx context.Context, courseID, moduleID, contentType string, itemIndex int) (*content.CompletionResult, error) {
					return tt.result, tt.err
				},
			}
			con := &console{}

			err := newTestCli(con, Services{Content: mockContent}).Run(context.Background(), "complete", []string{"c1", "m1", "video", "2"})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, con.String(), tt.want)

			call := mockContent.MarkItemCompleteCalls()[0]
			assert.Equal(t, "c1", call.CourseID)
			assert.Equal(t, "m1", call.ModuleID)
			assert.Equal(t, "video", call.ContentType)
			assert.Equal(t, 2, call.ItemIndex)
		})
	}
}

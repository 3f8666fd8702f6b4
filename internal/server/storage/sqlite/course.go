package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/learnsync/internal/server/storage"
)

// UpsertCourse creates or replaces a course
func (s *Storage) UpsertCourse(ctx context.Context, course *storage.Course) error {
	query := `
		INSERT INTO courses (id, title, body, created_at, updated_at)
		VALUES (:id, :title, :body, :created_at, :updated_at)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title, body = excluded.body, updated_at = excluded.updated_at
	`
	if _, err := s.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("failed to upsert course: %w", err)
	}
	return nil
}

// GetCourse retrieves course by ID
func (s *Storage) GetCourse(ctx context.Context, courseID string) (*storage.Course, error) {
	var course storage.Course
	err := s.db.GetContext(ctx, &course,
		`SELECT id, title, body, created_at, updated_at FROM courses WHERE id = ?`, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &course, nil
}

// ListCourses returns all courses ordered by ID
func (s *Storage) ListCourses(ctx context.Context) ([]storage.Course, error) {
	courses := []storage.Course{}
	err := s.db.SelectContext(ctx, &courses,
		`SELECT id, title, body, created_at, updated_at FROM courses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// AddCompletedItem inserts the item if absent
func (s *Storage) AddCompletedItem(ctx context.Context, item *storage.CompletedItem) (bool, error) {
	query := `
		INSERT INTO course_progress (user_id, course_id, module_id, item_id, completed_at)
		VALUES (:user_id, :course_id, :module_id, :item_id, :completed_at)
		ON CONFLICT DO NOTHING
	`
	result, err := s.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return false, fmt.Errorf("failed to add completed item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return rows == 1, nil
}

// ListCompletedItems returns completed items of the user in the course
func (s *Storage) ListCompletedItems(ctx context.Context, userID, courseID string) ([]storage.CompletedItem, error) {
	items := []storage.CompletedItem{}
	err := s.db.SelectContext(ctx, &items, `
		SELECT user_id, course_id, module_id, item_id, completed_at
		FROM course_progress
		WHERE user_id = ? AND course_id = ?
		ORDER BY module_id, item_id
	`, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return items, nil
}

package storage

import (
	"context"
	"time"
)

// Course курс. Body хранит JSON документ курса целиком.
type Course struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
}

// CompletedItem завершенный пользователем элемент модуля
type CompletedItem struct {
	CompletedAt time.Time `db:"completed_at"`
	UserID      string    `db:"user_id"`
	CourseID    string    `db:"course_id"`
	ModuleID    string    `db:"module_id"`
	ItemID      string    `db:"item_id"`
}

// CourseStorage хранилище курсов
type CourseStorage interface {
	// UpsertCourse creates or replaces a course
	UpsertCourse(ctx context.Context, course *Course) error

	// GetCourse returns ErrCourseNotFound if course doesn't exist
	GetCourse(ctx context.Context, courseID string) (*Course, error)

	ListCourses(ctx context.Context) ([]Course, error)
}

// ProgressStorage хранилище прогресса. Прогресс только растет.
type ProgressStorage interface {
	// AddCompletedItem inserts the item if absent, reports whether it was new
	AddCompletedItem(ctx context.Context, item *CompletedItem) (bool, error)

	// ListCompletedItems returns items of the user in the course ordered by module and item
	ListCompletedItems(ctx context.Context, userID, courseID string) ([]CompletedItem, error)
}

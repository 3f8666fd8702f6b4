package storage

import (
	"context"

	"github.com/iudanet/learnsync/internal/models"
)

// CourseStore кеш данных курсов
type CourseStore interface {
	PutCourse(ctx context.Context, course *models.Course) error
	GetCourse(ctx context.Context, id string) (*models.Course, bool, error)
}

// ProgressStore локальный прогресс по курсам
type ProgressStore interface {
	PutProgress(ctx context.Context, progress *models.CourseProgress) error
	GetProgress(ctx context.Context, courseID string) (*models.CourseProgress, bool, error)
}

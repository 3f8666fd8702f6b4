package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/learnsync/internal/models"
)

type courseRecord struct {
	c *models.Course
}

func (r courseRecord) key() []byte                     { return []byte(r.c.ID) }
func (r courseRecord) setID(uint64)                    {}
func (r courseRecord) value() any                      { return r.c }
func (r courseRecord) indexValues() map[string]string { return nil }

type progressRecord struct {
	p *models.CourseProgress
}

func (r progressRecord) key() []byte                     { return []byte(r.p.CourseID) }
func (r progressRecord) setID(uint64)                    {}
func (r progressRecord) value() any                      { return r.p }
func (r progressRecord) indexValues() map[string]string { return nil }

// PutCourse сохраняет копию курса
func (s *Storage) PutCourse(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		return fmt.Errorf("course id is required")
	}
	err := s.update(func(tx *bbolt.Tx) error {
		_, err := coursesCollection.put(tx, courseRecord{c: course})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}
	return nil
}

// GetCourse возвращает сохраненный курс
func (s *Storage) GetCourse(ctx context.Context, id string) (*models.Course, bool, error) {
	var (
		course *models.Course
		found  bool
	)
	err := s.view(func(tx *bbolt.Tx) error {
		var err error
		course, found, err = get[models.Course](tx, coursesCollection, []byte(id))
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get course: %w", err)
	}
	return course, found, nil
}

// PutProgress сохраняет прогресс по курсу целиком.
// Слияние с предыдущей версией выполняет вызывающий код.
func (s *Storage) PutProgress(ctx context.Context, progress *models.CourseProgress) error {
	if progress.CourseID == "" {
		return fmt.Errorf("course id is required")
	}
	err := s.update(func(tx *bbolt.Tx) error {
		_, err := progressCollection.put(tx, progressRecord{p: progress})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// GetProgress возвращает прогресс по курсу
func (s *Storage) GetProgress(ctx context.Context, courseID string) (*models.CourseProgress, bool, error) {
	var (
		progress *models.CourseProgress
		found    bool
	)
	err := s.view(func(tx *bbolt.Tx) error {
		var err error
		progress, found, err = get[models.CourseProgress](tx, progressCollection, []byte(courseID))
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get progress: %w", err)
	}
	return progress, found, nil
}

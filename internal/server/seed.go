package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/learnsync/internal/server/storage"
)

// seedFile формат файла с курсами.
// Курс хранится и отдается целиком, поэтому читается как произвольное дерево.
type seedFile struct {
	Courses []map[string]any `yaml:"courses"`
}

// LoadSeed загружает курсы из YAML файла в хранилище.
// Существующие курсы с тем же id перезаписываются. Возвращает число загруженных курсов.
func LoadSeed(ctx context.Context, path string, store storage.CourseStorage, now time.Time) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	courses := make([]*storage.Course, 0, len(seed.Courses))
	seen := make(map[string]bool, len(seed.Courses))
	for i, raw := range seed.Courses {
		course, err := seedCourse(raw, now)
		if err != nil {
			return 0, fmt.Errorf("course #%d: %w", i+1, err)
		}
		if seen[course.ID] {
			return 0, fmt.Errorf("course #%d: duplicate id %q", i+1, course.ID)
		}
		seen[course.ID] = true
		courses = append(courses, course)
	}

	// Сначала проверяется весь файл, потом пишется
	for _, course := range courses {
		if err := store.UpsertCourse(ctx, course); err != nil {
			return 0, err
		}
	}
	return len(courses), nil
}

func seedCourse(raw map[string]any, now time.Time) (*storage.Course, error) {
	id, _ := raw["id"].(string)
	title, _ := raw["title"].(string)
	if id == "" || title == "" {
		return nil, fmt.Errorf("id and title are required")
	}

	body, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode course %q: %w", id, err)
	}

	return &storage.Course{
		ID:        id,
		Title:     title,
		Body:      string(body),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

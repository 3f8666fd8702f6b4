package api

import (
	"encoding/json"
	"time"
)

// CourseData содержимое data для GET /api/courses/{id}.
// Курс передается как есть, структура модулей клиенту не важна.
type CourseData struct {
	Course json.RawMessage `json:"course"`
}

// CoursesData содержимое data для GET /api/courses
type CoursesData struct {
	Courses []json.RawMessage `json:"courses"`
}

// CourseHeader поля курса, которые читает клиент
type CourseHeader struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ModuleProgress завершенные элементы модуля
type ModuleProgress struct {
	UpdatedAt      time.Time `json:"updatedAt"`
	CompletedItems []string  `json:"completedItems"` // идентификаторы вида contentType-itemIndex
}

// Progress прогресс пользователя по курсу
type Progress struct {
	UpdatedAt       time.Time                 `json:"updatedAt"`
	ModulesProgress map[string]ModuleProgress `json:"modulesProgress"`
	CourseID        string                    `json:"courseId"`
}

// ProgressData содержимое data для запросов прогресса
type ProgressData struct {
	Progress Progress `json:"progress"`
}

// ProgressUpdateRequest отметка о прохождении элемента курса
type ProgressUpdateRequest struct {
	ModuleID      string `json:"moduleId"`
	ContentType   string `json:"contentType"`
	CompletionKey string `json:"completionKey"` // moduleId-contentType-itemIndex
	ItemIndex     int    `json:"itemIndex"`
	Completed     bool   `json:"completed"`
}

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/learnsync/internal/models"
	"github.com/iudanet/learnsync/internal/server/storage"
	"github.com/iudanet/learnsync/pkg/api"
)

// CoursesHandler обрабатывает курсы и прогресс
type CoursesHandler struct {
	logger          *slog.Logger
	courseStorage   storage.CourseStorage
	progressStorage storage.ProgressStorage
	now             func() time.Time
}

// NewCoursesHandler создает handler курсов
func NewCoursesHandler(logger *slog.Logger, courses storage.CourseStorage, progress storage.ProgressStorage) *CoursesHandler {
	return &CoursesHandler{
		logger:          logger,
		courseStorage:   courses,
		progressStorage: progress,
		now:             time.Now,
	}
}

// List обрабатывает GET /api/courses
func (h *CoursesHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseStorage.ListCourses(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list courses", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	data := api.CoursesData{Courses: make([]json.RawMessage, 0, len(courses))}
	for _, c := range courses {
		data.Courses = append(data.Courses, json.RawMessage(c.Body))
	}
	sendData(w, h.logger, data, "", http.StatusOK)
}

// Get обрабатывает GET /api/courses/{id}
func (h *CoursesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	courseID := chi.URLParam(r, "id")

	course, err := h.courseStorage.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, storage.ErrCourseNotFound) {
			sendError(w, h.logger, "course not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get course", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	sendData(w, h.logger, api.CourseData{Course: json.RawMessage(course.Body)}, "", http.StatusOK)
}

// GetProgress обрабатывает GET /api/courses/{id}/progress
func (h *CoursesHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		sendError(w, h.logger, "unauthorized", http.StatusUnauthorized)
		return
	}
	h.sendProgress(w, r, userID, chi.URLParam(r, "id"), "")
}

// UpdateProgress обрабатывает PUT /api/courses/{id}/progress.
// Отметка добавляется во множество, повтор ничего не меняет.
func (h *CoursesHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(w, h.logger, "unauthorized", http.StatusUnauthorized)
		return
	}
	courseID := chi.URLParam(r, "id")

	var req api.ProgressUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ModuleID) == "" || strings.TrimSpace(req.ContentType) == "" || req.ItemIndex < 0 {
		sendError(w, h.logger, "moduleId, contentType and a non-negative itemIndex are required", http.StatusBadRequest)
		return
	}

	// Прогресс только растет: снятие отметки игнорируется
	if req.Completed {
		item := &storage.CompletedItem{
			UserID:      userID,
			CourseID:    courseID,
			ModuleID:    req.ModuleID,
			ItemID:      models.ItemID(req.ContentType, req.ItemIndex),
			CompletedAt: h.now().UTC(),
		}
		added, err := h.progressStorage.AddCompletedItem(ctx, item)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to store progress", slog.Any("error", err))
			sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
			return
		}
		h.logger.InfoContext(ctx, "progress updated",
			slog.String("user_id", userID),
			slog.String("completion_key", req.CompletionKey),
			slog.Bool("new", added))
	}

	h.sendProgress(w, r, userID, courseID, "Progress updated")
}

func (h *CoursesHandler) sendProgress(w http.ResponseWriter, r *http.Request, userID, courseID, message string) {
	items, err := h.progressStorage.ListCompletedItems(r.Context(), userID, courseID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list progress", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}
	sendData(w, h.logger, api.ProgressData{Progress: buildProgress(courseID, items)}, message, http.StatusOK)
}

// buildProgress группирует завершенные элементы по модулям
func buildProgress(courseID string, items []storage.CompletedItem) api.Progress {
	progress := api.Progress{
		CourseID:        courseID,
		ModulesProgress: make(map[string]api.ModuleProgress),
	}
	for _, item := range items {
		m := progress.ModulesProgress[item.ModuleID]
		m.CompletedItems = append(m.CompletedItems, item.ItemID)
		if item.CompletedAt.After(m.UpdatedAt) {
			m.UpdatedAt = item.CompletedAt
		}
		progress.ModulesProgress[item.ModuleID] = m
		if item.CompletedAt.After(progress.UpdatedAt) {
			progress.UpdatedAt = item.CompletedAt
		}
	}
	return progress
}

// Package content отдает данные курсов и прогресс с учетом офлайн режима.
package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/iudanet/learnsync/internal/client/api"
	"github.com/iudanet/learnsync/internal/client/apperr"
	"github.com/iudanet/learnsync/internal/client/network"
	"github.com/iudanet/learnsync/internal/client/queue"
	"github.com/iudanet/learnsync/internal/client/storage"
	"github.com/iudanet/learnsync/internal/crdt"
	"github.com/iudanet/learnsync/internal/models"
	pkgapi "github.com/iudanet/learnsync/pkg/api"
)

// DefaultCallTimeout ограничение на один запрос к серверу
const DefaultCallTimeout = 10 * time.Second

// Store репозитории курсов и прогресса
type Store interface {
	storage.CourseStore
	storage.ProgressStore
}

// UserSource текущий пользователь, от имени которого ставятся действия
type UserSource interface {
	CurrentUser(ctx context.Context) (*models.User, bool)
}

// CompletionResult итог отметки элемента
type CompletionResult struct {
	Success        bool // ServerSuccess || OfflineSuccess
	ServerSuccess  bool // сервер принял отметку
	OfflineSuccess bool // отметка сохранена локально и поставлена в очередь
}

// Service сервис контента модулей
type Service struct {
	store   Store
	queue   *queue.Queue
	client  api.ClientAPI
	tokens  api.TokenSource
	users   UserSource
	monitor *network.Monitor
	logger  *slog.Logger
	now     func() time.Time
	timeout time.Duration
}

// NewService создает сервис. client и tokens могут быть nil, тогда сервис работает только локально.
func NewService(
	store Store,
	q *queue.Queue,
	client api.ClientAPI,
	tokens api.TokenSource,
	users UserSource,
	monitor *network.Monitor,
	logger *slog.Logger,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:   store,
		queue:   q,
		client:  client,
		tokens:  tokens,
		users:   users,
		monitor: monitor,
		logger:  logger,
		now:     now,
		timeout: DefaultCallTimeout,
	}
}

// token возвращает access token, если сервер доступен
func (s *Service) token(ctx context.Context) (string, bool) {
	if s.client == nil || s.tokens == nil || s.monitor == nil || !s.monitor.Online() {
		return "", false
	}
	return s.tokens.ServerToken(ctx)
}

// GetCourseData возвращает курс с сервера, кешируя его, или сохраненную копию
func (s *Service) GetCourseData(ctx context.Context, courseID string) (*models.Course, bool, error) {
	if token, ok := s.token(ctx); ok {
		course, err := s.fetchCourse(ctx, token, courseID)
		if err == nil {
			return course, true, nil
		}
		if apperr.KindOf(err) == apperr.KindStore {
			return nil, false, err
		}
		s.logger.WarnContext(ctx, "course fetch failed, using local copy",
			slog.String("course_id", courseID), slog.Any("error", err))
	}

	course, found, err := s.store.GetCourse(ctx, courseID)
	if err != nil {
		return nil, false, apperr.Store("read course", err)
	}
	return course, found, nil
}

func (s *Service) fetchCourse(ctx context.Context, token, courseID string) (*models.Course, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.GetCourse(callCtx, token, courseID)
	if err != nil {
		return nil, err
	}

	var header pkgapi.CourseHeader
	if err := json.Unmarshal(resp.Course, &header); err != nil {
		return nil, apperr.Sync("decode course", err)
	}

	course := &models.Course{
		ID:       courseID,
		Title:    header.Title,
		Raw:      resp.Course,
		CachedAt: s.now(),
	}
	if err := s.store.PutCourse(ctx, course); err != nil {
		return nil, apperr.Store("save course", err)
	}
	return course, nil
}

// GetCourseProgress возвращает прогресс модуля. Онлайн прогресс сервера
// объединяется с локальным, завершенные элементы не теряются.
func (s *Service) GetCourseProgress(ctx context.Context, courseID, moduleID string) (*models.ModuleProgress, bool, error) {
	progress, err := s.localProgress(ctx, courseID)
	if err != nil {
		return nil, false, err
	}

	if token, ok := s.token(ctx); ok {
		if remote, err := s.fetchProgress(ctx, token, courseID); err != nil {
			s.logger.WarnContext(ctx, "progress fetch failed, using local copy",
				slog.String("course_id", courseID), slog.Any("error", err))
		} else {
			progress.Merge(remote)
			if err := s.store.PutProgress(ctx, progress); err != nil {
				return nil, false, apperr.Store("save progress", err)
			}
		}
	}

	m, ok := progress.ModulesProgress[moduleID]
	if !ok || m == nil {
		return nil, false, nil
	}
	return m, true, nil
}

func (s *Service) fetchProgress(ctx context.Context, token, courseID string) (*models.CourseProgress, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.GetCourseProgress(callCtx, token, courseID)
	if err != nil {
		return nil, err
	}
	return fromAPIProgress(courseID, resp.Progress), nil
}

// MarkItemComplete отмечает элемент модуля пройденным. Локальная отметка
// выполняется всегда, при недоступности сервера отметка ставится в очередь.
func (s *Service) MarkItemComplete(ctx context.Context, courseID, moduleID, contentType string, itemIndex int) (*CompletionResult, error) {
	if courseID == "" || moduleID == "" || contentType == "" || itemIndex < 0 {
		return nil, apperr.Validation("course, module, content type and a non-negative item index are required")
	}

	user, ok := s.users.CurrentUser(ctx)
	if !ok {
		return nil, apperr.Auth("Not authenticated")
	}

	now := s.now()
	res := &CompletionResult{}

	if token, ok := s.token(ctx); ok {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		_, err := s.client.UpdateCourseProgress(callCtx, token, courseID, pkgapi.ProgressUpdateRequest{
			ModuleID:      moduleID,
			ContentType:   contentType,
			ItemIndex:     itemIndex,
			CompletionKey: models.CompletionKey(moduleID, contentType, itemIndex),
			Completed:     true,
		})
		cancel()
		if err != nil {
			s.logger.WarnContext(ctx, "progress update failed, saving offline",
				slog.String("course_id", courseID), slog.Any("error", err))
		} else {
			res.ServerSuccess = true
		}
	}

	progress, err := s.localProgress(ctx, courseID)
	if err != nil {
		return nil, err
	}
	progress.Complete(moduleID, models.ItemID(contentType, itemIndex), now)
	if err := s.store.PutProgress(ctx, progress); err != nil {
		return nil, apperr.Store("save progress", err)
	}

	if !res.ServerSuccess {
		_, err := s.queue.Enqueue(ctx, models.ProgressAction{
			UserID:      user.ID,
			CourseID:    courseID,
			ModuleID:    moduleID,
			ContentType: contentType,
			ItemIndex:   itemIndex,
			Timestamp:   now,
		})
		if err != nil {
			return nil, err
		}
		res.OfflineSuccess = true
	}

	res.Success = res.ServerSuccess || res.OfflineSuccess
	return res, nil
}

// GetCompletedItems возвращает завершенные элементы модуля по возрастанию
func (s *Service) GetCompletedItems(ctx context.Context, courseID, moduleID string) ([]string, error) {
	progress, err := s.localProgress(ctx, courseID)
	if err != nil {
		return nil, err
	}
	m, ok := progress.ModulesProgress[moduleID]
	if !ok || m == nil {
		return []string{}, nil
	}
	return m.CompletedItems.Items(), nil
}

// IsItemCompleted сообщает, завершен ли элемент модуля
func (s *Service) IsItemCompleted(ctx context.Context, courseID, moduleID, itemID string) (bool, error) {
	progress, err := s.localProgress(ctx, courseID)
	if err != nil {
		return false, err
	}
	m, ok := progress.ModulesProgress[moduleID]
	return ok && m != nil && m.CompletedItems.Contains(itemID), nil
}

// localProgress читает локальный прогресс или возвращает пустой
func (s *Service) localProgress(ctx context.Context, courseID string) (*models.CourseProgress, error) {
	progress, found, err := s.store.GetProgress(ctx, courseID)
	if err != nil {
		return nil, apperr.Store("read progress", err)
	}
	if !found {
		return models.NewCourseProgress(courseID), nil
	}
	return progress, nil
}

func fromAPIProgress(courseID string, p pkgapi.Progress) *models.CourseProgress {
	progress := models.NewCourseProgress(courseID)
	progress.UpdatedAt = p.UpdatedAt
	for moduleID, mp := range p.ModulesProgress {
		progress.ModulesProgress[moduleID] = &models.ModuleProgress{
			UpdatedAt:      mp.UpdatedAt,
			CompletedItems: crdt.NewGSet(mp.CompletedItems...),
		}
	}
	return progress
}

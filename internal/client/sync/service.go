// Package sync доставляет отложенные действия на сервер.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/iudanet/learnsync/internal/client/api"
	"github.com/iudanet/learnsync/internal/client/apperr"
	"github.com/iudanet/learnsync/internal/client/events"
	"github.com/iudanet/learnsync/internal/client/network"
	"github.com/iudanet/learnsync/internal/client/queue"
	"github.com/iudanet/learnsync/internal/client/storage"
	"github.com/iudanet/learnsync/internal/models"
	pkgapi "github.com/iudanet/learnsync/pkg/api"
)

// DefaultCallTimeout ограничение на один вызов сервера
const DefaultCallTimeout = 15 * time.Second

var (
	// ErrOffline синхронизация пропущена, сети нет
	ErrOffline = errors.New("offline: sync skipped")
	// ErrSyncInProgress уже идет другой проход
	ErrSyncInProgress = errors.New("sync already in progress")

	// errDeferred действие пока нельзя отправить
	errDeferred = errors.New("action deferred")
)

// Store репозитории, которые нужны синхронизации
type Store interface {
	storage.UserStore
	storage.MetaStore
}

// Config параметры синхронизации
type Config struct {
	Now         func() time.Time
	CallTimeout time.Duration // на один вызов сервера
	Interval    time.Duration // период фонового прохода в Run, 0 отключает таймер
}

// Result итог одного прохода
type Result struct {
	Processed int // доставлено и удалено из очереди
	Failed    int // ошибка сервера или сети, осталось в очереди
	Deferred  int // отложено до следующего прохода
	Dropped   int // пользователь удален с устройства, действие выброшено
	Remaining int // длина очереди после прохода
}

// Service синхронизирует очередь действий с сервером
type Service struct {
	queue   *queue.Queue
	store   Store
	client  api.ClientAPI
	monitor *network.Monitor
	bus     *events.Bus
	metrics *Metrics
	logger  *slog.Logger
	trigger chan struct{}
	cfg     Config
	running atomic.Bool
}

// NewService создает сервис синхронизации. metrics может быть nil.
func NewService(
	q *queue.Queue,
	store Store,
	client api.ClientAPI,
	monitor *network.Monitor,
	bus *events.Bus,
	metrics *Metrics,
	cfg Config,
	logger *slog.Logger,
) *Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultCallTimeout
	}
	return &Service{
		queue:   q,
		store:   store,
		client:  client,
		monitor: monitor,
		bus:     bus,
		metrics: metrics,
		logger:  logger,
		trigger: make(chan struct{}, 1),
		cfg:     cfg,
	}
}

// Sync выполняет один проход по очереди в порядке добавления.
//
// Ошибка сервера оставляет действие в очереди, проход продолжается.
// Действия пользователя без serverId откладываются, как и все его
// последующие действия в этом проходе, чтобы порядок для пользователя сохранялся.
func (s *Service) Sync(ctx context.Context) (*Result, error) {
	if !s.monitor.Online() {
		return nil, ErrOffline
	}
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.running.Store(false)

	res, err := s.drain(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "sync aborted", slog.Any("error", err))
		s.bus.Publish(events.SyncFailed{Err: err})
		return res, err
	}

	if err := s.store.SetLastSync(ctx, s.cfg.Now()); err != nil {
		s.logger.WarnContext(ctx, "failed to record last sync", slog.Any("error", err))
	}

	s.logger.InfoContext(ctx, "sync completed",
		slog.Int("processed", res.Processed),
		slog.Int("failed", res.Failed),
		slog.Int("deferred", res.Deferred),
		slog.Int("dropped", res.Dropped),
		slog.Int("remaining", res.Remaining))

	s.bus.Publish(events.SyncCompleted{
		Processed: res.Processed,
		Failed:    res.Failed,
		Deferred:  res.Deferred,
		Remaining: res.Remaining,
	})
	return res, nil
}

func (s *Service) drain(ctx context.Context) (*Result, error) {
	actions, err := s.queue.Pending(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	pass := &pass{
		blocked: make(map[uint64]bool),
		tokens:  make(map[uint64]string),
	}

	for _, pa := range actions {
		if ctx.Err() != nil {
			break
		}

		actionType := string(pa.Action.Type())
		userID := pa.Action.TargetUser()
		log := s.logger.With(
			slog.Uint64("action_id", pa.ID),
			slog.String("type", actionType),
			slog.Uint64("user_id", userID))

		if pass.blocked[userID] {
			res.Deferred++
			s.metrics.observe(actionType, outcomeDeferred)
			continue
		}

		user, found, err := s.store.GetUser(ctx, userID)
		if err != nil {
			return res, apperr.Store("read action user", err)
		}
		if !found {
			// Данные устройства очищены, доставлять некому
			log.WarnContext(ctx, "dropping action of unknown user")
			if err := s.queue.Remove(ctx, pa.ID); err != nil {
				return res, err
			}
			res.Dropped++
			s.metrics.observe(actionType, outcomeDropped)
			continue
		}

		err = s.dispatch(ctx, pass, pa.Action, user)
		switch {
		case err == nil:
			if err := s.queue.Remove(ctx, pa.ID); err != nil {
				return res, err
			}
			res.Processed++
			s.metrics.observe(actionType, outcomeProcessed)
			log.DebugContext(ctx, "action synced")
		case errors.Is(err, errDeferred):
			pass.blocked[userID] = true
			res.Deferred++
			s.metrics.observe(actionType, outcomeDeferred)
			log.DebugContext(ctx, "action deferred", slog.Any("reason", err))
		case errors.Is(err, apperr.ErrStore):
			return res, err
		default:
			// Без serverId следующие действия пользователя не доставить, остальные идут по порядку
			if _, ok := pa.Action.(models.RegisterAction); ok || user.ServerID == "" {
				pass.blocked[userID] = true
			}
			res.Failed++
			s.metrics.observe(actionType, outcomeFailed)
			log.WarnContext(ctx, "action sync failed, will retry", slog.Any("error", err))
		}
	}

	remaining, err := s.queue.Len(ctx)
	if err != nil {
		return res, err
	}
	res.Remaining = remaining
	return res, nil
}

// pass состояние одного прохода
type pass struct {
	blocked map[uint64]bool   // пользователи без подтвержденной регистрации, их действия ждут следующего прохода
	tokens  map[uint64]string // access token сервера по локальному ID
}

// dispatch отправляет одно действие. Возвращает errDeferred, ошибку вида
// apperr.ErrStore для прерывания прохода или apperr.ErrSync при сбое сервера.
func (s *Service) dispatch(ctx context.Context, p *pass, action models.Action, user *models.User) error {
	switch a := action.(type) {
	case models.RegisterAction:
		return s.syncRegistration(ctx, a, user)
	case models.UpdateProfileAction:
		return s.withToken(ctx, p, user, func(ctx context.Context, token string) error {
			_, err := s.client.UpdateProfile(ctx, token, user.ServerID, pkgapi.ProfileUpdateRequest{
				FirstName: a.Updates.FirstName,
				LastName:  a.Updates.LastName,
				Phone:     a.Updates.Phone,
				Bio:       a.Updates.Bio,
				Location:  a.Updates.Location,
			})
			return err
		})
	case models.ChangePasswordAction:
		return s.withToken(ctx, p, user, func(ctx context.Context, token string) error {
			return s.client.ChangePassword(ctx, token, user.ServerID, pkgapi.PasswordRequest{
				Password: pkgapi.PasswordChangedSentinel,
			})
		})
	case models.ProgressAction:
		return s.withToken(ctx, p, user, func(ctx context.Context, token string) error {
			_, err := s.client.UpdateCourseProgress(ctx, token, a.CourseID, pkgapi.ProgressUpdateRequest{
				ModuleID:      a.ModuleID,
				ContentType:   a.ContentType,
				ItemIndex:     a.ItemIndex,
				CompletionKey: models.CompletionKey(a.ModuleID, a.ContentType, a.ItemIndex),
				Completed:     true,
			})
			return err
		})
	default:
		return apperr.Sync("dispatch", fmt.Errorf("unsupported action %T", action))
	}
}

func (s *Service) syncRegistration(ctx context.Context, a models.RegisterAction, user *models.User) error {
	// Повторная доставка после сбоя сохранения
	if user.ServerID != "" {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()

	resp, err := s.client.Register(callCtx, pkgapi.RegisterRequest{
		Email:     a.Email,
		Password:  a.ServerSecret,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Role:      string(a.Role),
	})
	if err != nil {
		return apperr.Sync("register", err)
	}
	if resp.User.ID == "" {
		return apperr.Sync("register", errors.New("response has no user id"))
	}

	user.ServerID = resp.User.ID
	user.SyncStatus = models.SyncStatusSynced
	if _, err := s.store.PutUser(ctx, user); err != nil {
		return apperr.Store("save server id", err)
	}

	s.logger.InfoContext(ctx, "user registered on server",
		slog.Uint64("user_id", user.ID),
		slog.String("server_id", user.ServerID))
	return nil
}

// withToken вызывает fn с access token пользователя. Без serverId или
// учетных данных для сервера действие откладывается.
func (s *Service) withToken(ctx context.Context, p *pass, user *models.User, fn func(ctx context.Context, token string) error) error {
	if user.ServerID == "" {
		return fmt.Errorf("%w: user has no server id", errDeferred)
	}

	token, ok := p.tokens[user.ID]
	if !ok {
		if user.ServerSecret == "" {
			return fmt.Errorf("%w: no server credentials", errDeferred)
		}

		callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
		resp, err := s.client.Login(callCtx, pkgapi.LoginRequest{Email: user.Email, Password: user.ServerSecret})
		cancel()
		if err != nil {
			return apperr.Sync("login", err)
		}
		token = resp.Token
		p.tokens[user.ID] = token
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()

	if err := fn(callCtx, token); err != nil {
		return apperr.Sync("deliver", err)
	}
	return nil
}

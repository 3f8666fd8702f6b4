package interceptor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/learnsync/internal/client/storage"
)

const (
	generationPrefix = "learnsync-cache-v2-"

	// DefaultPrecacheConcurrency одновременных запросов при предзагрузке
	DefaultPrecacheConcurrency = 4
)

// Типы управляющих сообщений и ответов
const (
	MsgSkipWaiting    = "SKIP_WAITING"
	MsgCheckAppStatus = "CHECK_APP_STATUS"
	MsgClearCache     = "CLEAR_CACHE"

	ReplyActivated    = "ACTIVATED"
	ReplyAppStatus    = "APP_STATUS"
	ReplyCacheCleared = "CACHE_CLEARED"
)

// DefaultManifest критичные ресурсы оболочки приложения
var DefaultManifest = []string{
	"/",
	"/index.html",
	"/manifest.json",
	"/favicon.ico",
	"/offline.html",
	"/offline-fallback.html",
}

var (
	// ErrNothingWaiting нет установленного поколения для активации
	ErrNothingWaiting = errors.New("no installed cache generation is waiting")

	// ErrUnknownMessage неизвестный тип управляющего сообщения
	ErrUnknownMessage = errors.New("unknown control message")
)

// Message управляющее сообщение от клиента
type Message struct {
	Type string `json:"type"`
}

// Reply ответ на управляющее сообщение
type Reply struct {
	Type       string `json:"type"`
	Generation string `json:"generation,omitempty"`
	Cached     bool   `json:"cached"`
	Online     bool   `json:"online"`
}

// Status состояние кеша
type Status struct {
	Active      string
	Waiting     string
	Generations []string
	Entries     int
	ShellCached bool
}

// WorkerConfig параметры жизненного цикла кеша
type WorkerConfig struct {
	Base        http.RoundTripper
	Monitor     OnlineChecker
	Now         func() time.Time
	Generation  string
	Manifest    []string
	Concurrency int
}

func (c WorkerConfig) withDefaults() WorkerConfig {
	if c.Base == nil {
		c.Base = http.DefaultTransport
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Manifest == nil {
		c.Manifest = DefaultManifest
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultPrecacheConcurrency
	}
	return c
}

// Worker управляет поколениями кеша: установка, активация, очистка
type Worker struct {
	cache     storage.ResponseCache
	transport *Transport
	origin    *url.URL
	logger    *slog.Logger
	cfg       WorkerConfig
	waiting   string
	mu        sync.Mutex
}

// NewWorker создает Worker для сервера origin
func NewWorker(cache storage.ResponseCache, transport *Transport, origin *url.URL, cfg WorkerConfig, logger *slog.Logger) *Worker {
	return &Worker{
		cache:     cache,
		transport: transport,
		origin:    origin,
		logger:    logger,
		cfg:       cfg.withDefaults(),
	}
}

// Restore подключает Transport к активному поколению из хранилища
func (w *Worker) Restore(ctx context.Context) (string, bool, error) {
	gen, ok, err := w.cache.ActiveGeneration(ctx)
	if err != nil {
		return "", false, err
	}
	if ok {
		w.transport.SetGeneration(gen)
		w.logger.Debug("Cache generation restored", "generation", gen)
	}
	return gen, ok, nil
}

// Install создает новое поколение и предзагружает в него манифест.
// Ошибки загрузки отдельных ресурсов не прерывают установку.
func (w *Worker) Install(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	gen := w.cfg.Generation
	if gen == "" {
		gen = fmt.Sprintf("%s%d", generationPrefix, w.cfg.Now().UnixMilli())
	}
	if err := w.cache.CreateGeneration(ctx, gen); err != nil {
		return "", err
	}

	var g errgroup.Group
	g.SetLimit(w.cfg.Concurrency)
	for _, p := range w.cfg.Manifest {
		g.Go(func() error {
			if err := w.precache(ctx, gen, p); err != nil {
				w.logger.Warn("Failed to precache asset", "path", p, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	w.waiting = gen
	w.logger.Info("Cache generation installed", "generation", gen)
	return gen, nil
}

// Activate делает установленное поколение активным и удаляет остальные
func (w *Worker) Activate(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.activateLocked(ctx)
}

func (w *Worker) activateLocked(ctx context.Context) (string, error) {
	gen := w.waiting
	if gen == "" {
		return "", ErrNothingWaiting
	}

	gens, err := w.cache.Generations(ctx)
	if err != nil {
		return "", err
	}
	for _, old := range gens {
		if old == gen {
			continue
		}
		if err := w.cache.DeleteGeneration(ctx, old); err != nil {
			return "", err
		}
		w.logger.Debug("Old cache generation deleted", "generation", old)
	}

	if err := w.cache.SetActiveGeneration(ctx, gen); err != nil {
		return "", err
	}
	w.transport.SetGeneration(gen)
	w.waiting = ""

	w.logger.Info("Cache generation activated", "generation", gen)
	return gen, nil
}

// Refresh устанавливает и сразу активирует новое поколение
func (w *Worker) Refresh(ctx context.Context) (string, error) {
	if _, err := w.Install(ctx); err != nil {
		return "", err
	}
	return w.Activate(ctx)
}

// Control обрабатывает управляющее сообщение
func (w *Worker) Control(ctx context.Context, msg Message) (Reply, error) {
	switch msg.Type {
	case MsgSkipWaiting:
		gen, err := w.Activate(ctx)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Type: ReplyActivated, Generation: gen, Online: w.online()}, nil

	case MsgCheckAppStatus:
		cached, err := w.shellCached(ctx)
		if err != nil {
			return Reply{}, err
		}
		return Reply{
			Type:       ReplyAppStatus,
			Generation: w.transport.Generation(),
			Cached:     cached,
			Online:     w.online(),
		}, nil

	case MsgClearCache:
		if err := w.Clear(ctx); err != nil {
			return Reply{}, err
		}
		return Reply{Type: ReplyCacheCleared, Online: w.online()}, nil
	}
	return Reply{}, fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
}

// Clear удаляет все поколения кеша
func (w *Worker) Clear(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	gens, err := w.cache.Generations(ctx)
	if err != nil {
		return err
	}
	for _, gen := range gens {
		if err := w.cache.DeleteGeneration(ctx, gen); err != nil {
			return err
		}
	}
	w.transport.SetGeneration("")
	w.waiting = ""

	w.logger.Info("Response cache cleared", "generations", len(gens))
	return nil
}

// Status возвращает состояние кеша
func (w *Worker) Status(ctx context.Context) (*Status, error) {
	gens, err := w.cache.Generations(ctx)
	if err != nil {
		return nil, err
	}
	active, _, err := w.cache.ActiveGeneration(ctx)
	if err != nil {
		return nil, err
	}

	st := &Status{Active: active, Generations: gens}
	w.mu.Lock()
	st.Waiting = w.waiting
	w.mu.Unlock()

	if active != "" {
		if st.Entries, err = w.cache.CountResponses(ctx, active); err != nil {
			return nil, err
		}
		if st.ShellCached, err = w.shellCachedIn(ctx, active); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// WatchManifest обновляет кеш при каждой записи в файл манифеста.
// Блокирует до отмены ctx.
func (w *Worker) WatchManifest(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Следим за каталогом: сборка может пересоздать файл
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Info("Manifest changed, refreshing cache", "path", event.Name)
			if _, err := w.Refresh(ctx); err != nil {
				w.logger.Error("Failed to refresh cache", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Manifest watcher error", "error", err)
		}
	}
}

func (w *Worker) precache(ctx context.Context, gen, path string) error {
	ref, err := url.Parse(path)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.origin.ResolveReference(ref).String(), nil)
	if err != nil {
		return err
	}
	resp, err := w.cfg.Base.RoundTrip(req)
	if err != nil {
		return err
	}
	if !isSuccess(resp) {
		drain(resp)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	defer resp.Body.Close()
	return w.transport.put(ctx, gen, req, cacheKey(req.URL, ""), resp)
}

func (w *Worker) shellCached(ctx context.Context) (bool, error) {
	gen := w.transport.Generation()
	if gen == "" {
		return false, nil
	}
	return w.shellCachedIn(ctx, gen)
}

func (w *Worker) shellCachedIn(ctx context.Context, gen string) (bool, error) {
	for _, p := range []string{shellPath, shellIndexPath} {
		_, ok, err := w.cache.GetResponse(ctx, gen, cacheKey(w.origin, p))
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

func (w *Worker) online() bool {
	return w.cfg.Monitor == nil || w.cfg.Monitor.Online()
}

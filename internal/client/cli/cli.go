// Package cli реализует команды клиента learnsync.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/learnsync/internal/client/auth"
	"github.com/iudanet/learnsync/internal/client/content"
	"github.com/iudanet/learnsync/internal/client/interceptor"
	"github.com/iudanet/learnsync/internal/client/iocli"
	"github.com/iudanet/learnsync/internal/client/sync"
	"github.com/iudanet/learnsync/internal/models"
)

//go:generate moq -out services_mock.go . AuthService SyncService ContentService CacheService PendingQueue SyncMeta Connectivity

// AuthService локальные учетные записи и сессия
type AuthService interface {
	Register(ctx context.Context, in auth.RegisterInput) (*auth.RegisterResult, error)
	Login(ctx context.Context, email, password string) (*auth.LoginResult, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, bool)
	CurrentSession(ctx context.Context) (*models.Session, bool)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, current, next string) error
	Users(ctx context.Context) ([]*models.User, error)
	ClearAllData(ctx context.Context) error
}

// SyncService доставка очереди на сервер
type SyncService interface {
	Sync(ctx context.Context) (*sync.Result, error)
}

// ContentService курсы и прогресс
type ContentService interface {
	GetCourseData(ctx context.Context, courseID string) (*models.Course, bool, error)
	GetCourseProgress(ctx context.Context, courseID, moduleID string) (*models.ModuleProgress, bool, error)
	MarkItemComplete(ctx context.Context, courseID, moduleID, contentType string, itemIndex int) (*content.CompletionResult, error)
}

// CacheService поколения кеша ответов
type CacheService interface {
	Status(ctx context.Context) (*interceptor.Status, error)
	Control(ctx context.Context, msg interceptor.Message) (interceptor.Reply, error)
	Refresh(ctx context.Context) (string, error)
}

// PendingQueue очередь действий для сервера
type PendingQueue interface {
	Len(ctx context.Context) (int, error)
}

// SyncMeta время последней синхронизации
type SyncMeta interface {
	GetLastSync(ctx context.Context) (time.Time, bool, error)
}

// Connectivity состояние сети
type Connectivity interface {
	Online() bool
}

// Services зависимости команд
type Services struct {
	Auth    AuthService
	Sync    SyncService
	Content ContentService
	Cache   CacheService
	Queue   PendingQueue
	Meta    SyncMeta
	Network Connectivity
}

// Cli выполняет команды пользователя
type Cli struct {
	io      iocli.IO
	auth    AuthService
	sync    SyncService
	content ContentService
	cache   CacheService
	queue   PendingQueue
	meta    SyncMeta
	network Connectivity
	logger  *slog.Logger
	serve   ServeOptions
}

// New создает Cli
func New(io iocli.IO, s Services, serve ServeOptions, logger *slog.Logger) *Cli {
	return &Cli{
		io:      io,
		auth:    s.Auth,
		sync:    s.Sync,
		content: s.Content,
		cache:   s.Cache,
		queue:   s.Queue,
		meta:    s.Meta,
		network: s.Network,
		logger:  logger,
		serve:   serve,
	}
}

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status", "whoami":
		return c.runStatus(ctx)
	case "profile":
		return c.runProfile(ctx, args)
	case "passwd":
		return c.runPasswd(ctx)
	case "users":
		return c.runUsers(ctx)
	case "sync":
		return c.runSync(ctx)
	case "course":
		return c.runCourse(ctx, args)
	case "progress":
		return c.runProgress(ctx, args)
	case "complete":
		return c.runComplete(ctx, args)
	case "cache":
		return c.runCache(ctx, args)
	case "serve":
		return c.runServe(ctx)
	case "wipe":
		return c.runWipe(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage печатает справку
func PrintUsage(io iocli.IO) {
	io.Println(usage)
}

const usage = `LearnSync Client

Usage:
  learnsync [OPTIONS] COMMAND [ARGS]

Options:
  --config PATH            YAML config file (env LEARNSYNC_CONFIG)
  --server URL             Server URL (default: http://localhost:8080)
  --db PATH                Path to local database (default: learnsync.db)
  --offline                Do not contact the server
  --log-level LEVEL        debug, info, warn, error (default: warn)
  --origin URL             Application origin for serve (default: http://localhost:3000)
  --listen ADDR            Listen address for serve (default: 127.0.0.1:8090)
  --watch-manifest PATH    Build manifest to watch; a change refreshes the cache
  --version                Show version information

Every option can also be set as LEARNSYNC_<NAME>, e.g. LEARNSYNC_DEVICE_SECRET.

Commands:
  register                 Create an account on this device
  login                    Log in (works offline)
  logout                   End the current session
  status, whoami           Show session, network and sync state
  profile [--first NAME] [--last NAME] [--phone P] [--bio B] [--location L]
                           Show or update the profile
  passwd                   Change the password
  users                    List accounts on this device
  sync                     Deliver queued changes to the server
  course <id>              Show a course (cached for offline use)
  progress <course> <module>
                           Show completed items of a module
  complete <course> <module> <type> <index>
                           Mark an item complete, e.g. complete c1 m1 video 0
  cache status|clear|activate
                           Inspect, clear or refresh the response cache
  serve                    Run the offline caching proxy in front of the app
  wipe                     Delete all local data`

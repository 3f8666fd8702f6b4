package config

import (
	"context"
	"flag"
	"net/url"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Cache настройки кеширующего прокси
type Cache struct {
	Origin              string   `yaml:"origin" env:"CACHE_ORIGIN,overwrite"`                             // адрес SPA за прокси
	Listen              string   `yaml:"listen" env:"CACHE_LISTEN,overwrite"`                             // адрес прокси
	Generation          string   `yaml:"version" env:"CACHE_VERSION,overwrite"`                           // фиксированное поколение, пусто значит по времени
	WatchManifest       string   `yaml:"watch_manifest" env:"CACHE_WATCH_MANIFEST,overwrite"`             // файл сборки, изменение которого создает поколение
	Manifest            []string `yaml:"manifest" env:"CACHE_MANIFEST,overwrite"`                         // пути для предзагрузки
	APIPatterns         []string `yaml:"api_patterns" env:"CACHE_API_PATTERNS,overwrite"`                 // регулярные выражения кешируемых API
	PrecacheConcurrency int      `yaml:"precache_concurrency" env:"CACHE_PRECACHE_CONCURRENCY,overwrite"` // параллельных запросов предзагрузки
	InterceptLogin      bool     `yaml:"intercept_login" env:"CACHE_INTERCEPT_LOGIN,overwrite"`
}

// Client настройки CLI клиента
type Client struct {
	ServerURL           string        `yaml:"server_url" env:"SERVER_URL,overwrite"`
	DBPath              string        `yaml:"db_path" env:"DB_PATH,overwrite"`
	DeviceSecret        string        `yaml:"device_secret" env:"DEVICE_SECRET,overwrite"`
	LogLevel            string        `yaml:"log_level" env:"LOG_LEVEL,overwrite"`
	Cache               Cache         `yaml:"cache"`
	SessionTTL          time.Duration `yaml:"session_ttl" env:"SESSION_TTL,overwrite"`
	ValidateInterval    time.Duration `yaml:"validate_interval" env:"VALIDATE_INTERVAL,overwrite"`
	SyncInterval        time.Duration `yaml:"sync_interval" env:"SYNC_INTERVAL,overwrite"`
	SyncCallTimeout     time.Duration `yaml:"sync_call_timeout" env:"SYNC_CALL_TIMEOUT,overwrite"`
	OnlineCheckInterval time.Duration `yaml:"online_check_interval" env:"ONLINE_CHECK_INTERVAL,overwrite"`
	Offline             bool          `yaml:"offline" env:"OFFLINE,overwrite"` // не обращаться к серверу
	ShowVersion         bool          `yaml:"-"`
}

// DefaultClient значения по умолчанию
func DefaultClient() *Client {
	return &Client{
		ServerURL:           "http://localhost:8080",
		DBPath:              "learnsync.db",
		LogLevel:            "warn",
		SessionTTL:          24 * time.Hour,
		ValidateInterval:    time.Minute,
		SyncInterval:        30 * time.Second,
		SyncCallTimeout:     15 * time.Second,
		OnlineCheckInterval: 5 * time.Second,
		Cache: Cache{
			Origin:              "http://localhost:3000",
			Listen:              "127.0.0.1:8090",
			PrecacheConcurrency: 4,
		},
	}
}

// LoadClient загружает настройки клиента. Возвращает оставшиеся аргументы: команду и ее параметры.
func LoadClient(ctx context.Context, args []string, lookuper envconfig.Lookuper) (*Client, []string, error) {
	l := loader[Client]{name: "learnsync", defaults: DefaultClient, bind: bindClientFlags}
	return l.load(ctx, args, lookuper)
}

func bindClientFlags(fs *flag.FlagSet, cfg *Client, configPath *string) {
	fs.StringVar(configPath, "config", *configPath, "Path to YAML config file")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "Show version information")
	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to local database")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.BoolVar(&cfg.Offline, "offline", cfg.Offline, "Work without contacting the server")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Lifetime of a login session")
	fs.DurationVar(&cfg.SyncInterval, "sync-interval", cfg.SyncInterval, "Background sync period for serve")
	fs.DurationVar(&cfg.SyncCallTimeout, "sync-timeout", cfg.SyncCallTimeout, "Timeout of one server call during sync")
	fs.StringVar(&cfg.Cache.Origin, "origin", cfg.Cache.Origin, "Application origin behind the caching proxy")
	fs.StringVar(&cfg.Cache.Listen, "listen", cfg.Cache.Listen, "Caching proxy listen address")
	fs.StringVar(&cfg.Cache.Generation, "cache-version", cfg.Cache.Generation, "Fixed cache generation id")
	fs.StringVar(&cfg.Cache.WatchManifest, "watch-manifest", cfg.Cache.WatchManifest, "Build manifest to watch for new deploys")
	fs.Var(listValue{&cfg.Cache.Manifest}, "precache", "Comma separated paths to precache")
}

// Validate проверяет настройки клиента
func (c *Client) Validate() error {
	var p problems
	u, err := url.Parse(c.ServerURL)
	p.check(err == nil && u.Scheme != "" && u.Host != "", "server url %q must be absolute", c.ServerURL)
	p.check(c.DBPath != "", "db path is required")
	p.check(c.DeviceSecret != "", "device secret is required (set %sDEVICE_SECRET)", EnvPrefix)
	_, err = ParseLevel(c.LogLevel)
	p.check(err == nil, "unknown log level %q", c.LogLevel)

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"session ttl", c.SessionTTL},
		{"validate interval", c.ValidateInterval},
		{"sync interval", c.SyncInterval},
		{"sync call timeout", c.SyncCallTimeout},
		{"online check interval", c.OnlineCheckInterval},
	}
	for _, d := range durations {
		p.check(d.value > 0, "%s must be positive", d.name)
	}

	p.check(c.Cache.PrecacheConcurrency > 0, "precache concurrency must be positive")
	return p.err()
}

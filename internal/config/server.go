package config

import (
	"context"
	"flag"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Server настройки сервера учета
type Server struct {
	Addr            string        `yaml:"addr" env:"ADDR,overwrite"`
	DBPath          string        `yaml:"db_path" env:"SERVER_DB_PATH,overwrite"`
	JWTSecret       string        `yaml:"jwt_secret" env:"JWT_SECRET,overwrite"`
	SeedFile        string        `yaml:"seed" env:"SEED,overwrite"`
	LogLevel        string        `yaml:"log_level" env:"LOG_LEVEL,overwrite"`
	TokenTTL        time.Duration `yaml:"token_ttl" env:"TOKEN_TTL,overwrite"`
	RateWindow      time.Duration `yaml:"rate_window" env:"RATE_WINDOW,overwrite"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT,overwrite"`
	RateLimit       int           `yaml:"rate_limit" env:"RATE_LIMIT,overwrite"` // запросов входа на IP за RateWindow
	ShowVersion     bool          `yaml:"-"`
}

// DefaultServer значения по умолчанию
func DefaultServer() *Server {
	return &Server{
		Addr:            ":8080",
		DBPath:          "learnsync-server.db",
		LogLevel:        "info",
		TokenTTL:        24 * time.Hour,
		RateLimit:       20,
		RateWindow:      time.Minute,
		ShutdownTimeout: 10 * time.Second,
	}
}

// LoadServer загружает настройки сервера
func LoadServer(ctx context.Context, args []string, lookuper envconfig.Lookuper) (*Server, error) {
	l := loader[Server]{name: "learnsync-server", defaults: DefaultServer, bind: bindServerFlags}
	cfg, _, err := l.load(ctx, args, lookuper)
	return cfg, err
}

func bindServerFlags(fs *flag.FlagSet, cfg *Server, configPath *string) {
	fs.StringVar(configPath, "config", *configPath, "Path to YAML config file")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "Show version information")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database")
	fs.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "YAML file with courses to load on start")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "Access token lifetime")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Auth requests per IP per rate window")
	fs.DurationVar(&cfg.RateWindow, "rate-window", cfg.RateWindow, "Rate limit window")
}

// Validate проверяет настройки сервера
func (s *Server) Validate() error {
	var p problems
	p.check(s.Addr != "", "listen address is required")
	p.check(s.DBPath != "", "db path is required")
	p.check(s.JWTSecret != "", "jwt secret is required (set %sJWT_SECRET)", EnvPrefix)
	_, err := ParseLevel(s.LogLevel)
	p.check(err == nil, "unknown log level %q", s.LogLevel)
	p.check(s.TokenTTL > 0, "token ttl must be positive")
	p.check(s.RateWindow > 0, "rate window must be positive")
	p.check(s.ShutdownTimeout > 0, "shutdown timeout must be positive")
	p.check(s.RateLimit > 0, "rate limit must be positive")
	return p.err()
}

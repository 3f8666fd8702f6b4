// Package config загружает настройки клиента и сервера.
//
// Источники по возрастанию приоритета: значения по умолчанию, YAML файл
// (--config или LEARNSYNC_CONFIG), переменные окружения LEARNSYNC_*, флаги.
package config

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "LEARNSYNC_"

// configEnv переменная с путем к YAML файлу, без префикса
const configEnv = "CONFIG"

// ErrInvalidConfig ошибка проверки конфигурации
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvLookuper переменные окружения процесса с префиксом EnvPrefix
func EnvLookuper() envconfig.Lookuper {
	return envconfig.PrefixLookuper(EnvPrefix, envconfig.OsLookuper())
}

// loader общий порядок загрузки для клиента и сервера
type loader[T any] struct {
	defaults func() *T
	bind     func(fs *flag.FlagSet, cfg *T, configPath *string)
	name     string
}

// load применяет источники по порядку и возвращает позиционные аргументы
func (l loader[T]) load(ctx context.Context, args []string, lookuper envconfig.Lookuper) (*T, []string, error) {
	// Первый проход только находит путь к файлу конфигурации
	var configPath string
	probe := flag.NewFlagSet(l.name, flag.ContinueOnError)
	probe.SetOutput(discard{})
	l.bind(probe, l.defaults(), &configPath)
	if err := probe.Parse(args); err != nil {
		return nil, nil, err
	}
	if configPath == "" {
		configPath, _ = lookuper.Lookup(configEnv)
	}

	cfg := l.defaults()
	if configPath != "" {
		if err := loadYAML(configPath, cfg); err != nil {
			return nil, nil, err
		}
	}

	if err := envconfig.ProcessWith(ctx, cfg, lookuper); err != nil {
		return nil, nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Флаги привязаны к уже загруженным значениям: незаданные флаги их не меняют
	fs := flag.NewFlagSet(l.name, flag.ContinueOnError)
	l.bind(fs, cfg, &configPath)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

func loadYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ParseLevel разбирает уровень логирования: debug, info, warn, error
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return level, nil
}

// listValue флаг со списком через запятую
type listValue struct {
	target *[]string
}

func (v listValue) String() string {
	if v.target == nil {
		return ""
	}
	return strings.Join(*v.target, ",")
}

func (v listValue) Set(s string) error {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	*v.target = items
	return nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// problems собирает ошибки проверки в одну
type problems []string

func (p *problems) check(ok bool, format string, a ...any) {
	if !ok {
		*p = append(*p, fmt.Sprintf(format, a...))
	}
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(p, "; "))
}

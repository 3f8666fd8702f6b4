package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/learnsync/internal/client/api"
	"github.com/iudanet/learnsync/internal/client/auth"
	"github.com/iudanet/learnsync/internal/client/cli"
	"github.com/iudanet/learnsync/internal/client/content"
	"github.com/iudanet/learnsync/internal/client/events"
	"github.com/iudanet/learnsync/internal/client/interceptor"
	"github.com/iudanet/learnsync/internal/client/iocli"
	"github.com/iudanet/learnsync/internal/client/network"
	"github.com/iudanet/learnsync/internal/client/queue"
	"github.com/iudanet/learnsync/internal/client/storage/boltdb"
	"github.com/iudanet/learnsync/internal/client/sync"
	"github.com/iudanet/learnsync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stdio := iocli.NewStdio()

	cfg, args, err := config.LoadClient(ctx, os.Args[1:], config.EnvLookuper())
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(stdio)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	if err := run(ctx, cfg, stdio, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Client, stdio iocli.IO, command string, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Открываем BoltDB storage
	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	bus := events.NewBus()
	unsubscribe := bus.Subscribe(logEvent(logger))
	defer unsubscribe()

	apiClient := api.NewClient(cfg.ServerURL)

	// Сеть считается недоступной до первой успешной проверки
	monitor := network.NewMonitor(logger, bus, false)
	if !cfg.Offline {
		monitor.Check(ctx, apiClient)
	}

	reg := prometheus.NewRegistry()
	q := queue.New(store, logger, time.Now)

	authManager := auth.NewManager(store, q, monitor, apiClient, bus, auth.Config{
		DeviceSecret:      cfg.DeviceSecret,
		SessionTTL:        cfg.SessionTTL,
		ValidateInterval:  cfg.ValidateInterval,
		ServerCallTimeout: cfg.SyncCallTimeout,
	}, logger)
	if err := authManager.Init(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	defer authManager.Shutdown()

	syncService := sync.NewService(q, store, apiClient, monitor, bus, sync.NewMetrics(reg), sync.Config{
		CallTimeout: cfg.SyncCallTimeout,
		Interval:    cfg.SyncInterval,
	}, logger)

	contentService := content.NewService(store, q, apiClient, authManager, authManager, monitor, logger, time.Now)

	worker, serve, err := buildProxy(ctx, cfg, store, monitor, reg, logger)
	if err != nil {
		return err
	}
	serve.Background = []func(ctx context.Context) error{
		func(ctx context.Context) error {
			syncService.Run(ctx)
			return nil
		},
		func(ctx context.Context) error {
			if !cfg.Offline {
				monitor.Watch(ctx, apiClient, cfg.OnlineCheckInterval)
			}
			return nil
		},
	}
	if cfg.Cache.WatchManifest != "" {
		serve.Background = append(serve.Background, func(ctx context.Context) error {
			return worker.WatchManifest(ctx, cfg.Cache.WatchManifest)
		})
	}

	c := cli.New(stdio, cli.Services{
		Auth:    authManager,
		Sync:    syncService,
		Content: contentService,
		Cache:   worker,
		Queue:   q,
		Meta:    store,
		Network: monitor,
	}, serve, logger)

	return c.Run(ctx, command, args)
}

// buildProxy собирает перехватчик и кеширующий прокси перед приложением
func buildProxy(
	ctx context.Context,
	cfg *config.Client,
	store *boltdb.Storage,
	monitor *network.Monitor,
	reg *prometheus.Registry,
	logger *slog.Logger,
) (*interceptor.Worker, cli.ServeOptions, error) {
	origin, err := url.Parse(cfg.Cache.Origin)
	if err != nil {
		return nil, cli.ServeOptions{}, fmt.Errorf("invalid origin: %w", err)
	}

	patterns := interceptor.DefaultAPIPatterns()
	if len(cfg.Cache.APIPatterns) > 0 {
		if patterns, err = interceptor.CompilePatterns(cfg.Cache.APIPatterns); err != nil {
			return nil, cli.ServeOptions{}, err
		}
	}

	opts := []interceptor.Option{
		interceptor.WithMonitor(monitor),
		interceptor.WithMetrics(interceptor.NewMetrics(reg)),
		interceptor.WithAPIPatterns(patterns),
	}
	if cfg.Cache.InterceptLogin {
		opts = append(opts, interceptor.WithInterceptLogin())
	}
	transport := interceptor.NewTransport(store, logger, opts...)

	worker := interceptor.NewWorker(store, transport, origin, interceptor.WorkerConfig{
		Monitor:     monitor,
		Generation:  cfg.Cache.Generation,
		Manifest:    cfg.Cache.Manifest,
		Concurrency: cfg.Cache.PrecacheConcurrency,
	}, logger)
	if _, _, err := worker.Restore(ctx); err != nil {
		return nil, cli.ServeOptions{}, fmt.Errorf("failed to restore cache generation: %w", err)
	}

	proxy := interceptor.NewProxy(origin, transport, logger)
	metrics := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})

	return worker, cli.ServeOptions{
		Handler: cli.NewServeHandler(worker, proxy, metrics, logger),
		Listen:  cfg.Cache.Listen,
		Origin:  cfg.Cache.Origin,
	}, nil
}

// logEvent пишет события клиента в журнал
func logEvent(logger *slog.Logger) func(events.Event) {
	return func(e events.Event) {
		switch ev := e.(type) {
		case events.UserLoggedIn:
			logger.Info("User logged in", slog.Uint64("user_id", ev.User.ID))
		case events.UserLoggedOut:
			logger.Info("User logged out", slog.Bool("expired", ev.Expired))
		case events.SyncCompleted:
			logger.Info("Sync completed",
				slog.Int("processed", ev.Processed),
				slog.Int("failed", ev.Failed),
				slog.Int("deferred", ev.Deferred),
				slog.Int("remaining", ev.Remaining))
		case events.SyncFailed:
			logger.Warn("Sync failed", slog.Any("error", ev.Err))
		case events.ConnectivityChanged:
			logger.Info("Connectivity changed", slog.Bool("online", ev.Online))
		}
	}
}

func printVersion() {
	fmt.Printf("LearnSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

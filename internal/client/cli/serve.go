package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/learnsync/internal/client/interceptor"
	"github.com/iudanet/learnsync/pkg/api"
)

// ControlPrefix пути управления прокси, не проксируются в приложение
const ControlPrefix = "/__learnsync"

const shutdownTimeout = 5 * time.Second

// ServeOptions параметры команды serve
type ServeOptions struct {
	Handler    http.Handler
	Listen     string
	Origin     string
	Background []func(ctx context.Context) error
}

// NewServeHandler маршруты прокси: управление кешем, метрики и приложение через перехватчик
func NewServeHandler(cache CacheService, proxy, metrics http.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Route(ControlPrefix, func(r chi.Router) {
		r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			st, err := cache.Status(r.Context())
			if err != nil {
				logger.Error("Cache status failed", slog.Any("error", err))
				writeJSON(w, logger, api.Response{Message: "cache status unavailable"}, http.StatusInternalServerError)
				return
			}
			writeJSON(w, logger, api.Response{Success: true, Data: st}, http.StatusOK)
		})

		r.Post("/control", func(w http.ResponseWriter, r *http.Request) {
			var msg interceptor.Message
			if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&msg); err != nil {
				writeJSON(w, logger, api.Response{Message: "invalid control message"}, http.StatusBadRequest)
				return
			}

			reply, err := cache.Control(r.Context(), msg)
			switch {
			case errors.Is(err, interceptor.ErrUnknownMessage):
				writeJSON(w, logger, api.Response{Message: err.Error()}, http.StatusBadRequest)
			case errors.Is(err, interceptor.ErrNothingWaiting):
				writeJSON(w, logger, api.Response{Message: err.Error()}, http.StatusConflict)
			case err != nil:
				logger.Error("Control message failed", slog.String("type", msg.Type), slog.Any("error", err))
				writeJSON(w, logger, api.Response{Message: "control message failed"}, http.StatusInternalServerError)
			default:
				writeJSON(w, logger, api.Response{Success: true, Data: reply}, http.StatusOK)
			}
		})

		if metrics != nil {
			r.Handle("/metrics", metrics)
		}
	})

	r.Handle("/*", proxy)
	return r
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, body api.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// runServe слушает адрес до отмены ctx, фоновые задачи живут столько же
func (c *Cli) runServe(ctx context.Context) error {
	if c.serve.Handler == nil {
		return fmt.Errorf("serve is not configured")
	}

	srv := &http.Server{
		Addr:              c.serve.Listen,
		Handler:           c.serve.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, task := range c.serve.Background {
		g.Go(func() error {
			return task(gctx)
		})
	}

	g.Go(func() error {
		c.logger.Info("Proxy listening", slog.String("addr", c.serve.Listen), slog.String("origin", c.serve.Origin))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", c.serve.Listen, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	c.io.Printf("Serving %s on http://%s (Ctrl+C to stop)\n", c.serve.Origin, c.serve.Listen)
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	c.io.Println("✓ Proxy stopped")
	return nil
}

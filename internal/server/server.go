// Package server собирает HTTP API сервера учета: маршруты, middleware и метрики.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/learnsync/internal/server/handlers"
	"github.com/iudanet/learnsync/internal/server/jwt"
	"github.com/iudanet/learnsync/internal/server/middleware"
	"github.com/iudanet/learnsync/internal/server/storage"
)

// Store хранилище, которое нужно серверу целиком
type Store interface {
	storage.UserStorage
	storage.CourseStorage
	storage.ProgressStorage
	handlers.Pinger
}

// Options параметры сборки роутера
type Options struct {
	Registry   *prometheus.Registry
	Version    string
	RateWindow time.Duration
	RateLimit  int
}

// Server HTTP API сервера учета
type Server struct {
	router  chi.Router
	limiter *middleware.RateLimiter
}

// New собирает роутер. Registry nil означает новый пустой реестр.
func New(logger *slog.Logger, store Store, jwtService *jwt.Service, opts Options) *Server {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	healthHandler := handlers.NewHealthHandler(logger, store, opts.Version)
	authHandler := handlers.NewAuthHandler(logger, store, jwtService)
	usersHandler := handlers.NewUsersHandler(logger, store)
	coursesHandler := handlers.NewCoursesHandler(logger, store, store)

	s := &Server{
		router:  chi.NewRouter(),
		limiter: middleware.NewRateLimiter(opts.RateLimit, opts.RateWindow, logger),
	}

	r := s.router
	r.Use(chimw.RequestID)
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingWithSkip(logger, []string{"/api/health", "/metrics"}))
	r.Use(middleware.NewHTTPMetrics(reg).Middleware)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Group(func(r chi.Router) {
			r.Use(s.limiter.Middleware)
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
		})

		r.Get("/courses", coursesHandler.List)
		r.Get("/courses/{id}", coursesHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(logger, jwtService))
			r.Put("/users/{id}/profile", usersHandler.UpdateProfile)
			r.Put("/users/{id}/password", usersHandler.ChangePassword)
			r.Get("/courses/{id}/progress", coursesHandler.GetProgress)
			r.Put("/courses/{id}/progress", coursesHandler.UpdateProgress)
		})
	})

	return s
}

// ServeHTTP реализует http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close останавливает фоновую очистку rate limiter
func (s *Server) Close() {
	s.limiter.Stop()
}

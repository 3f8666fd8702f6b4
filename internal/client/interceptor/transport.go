// Package interceptor кеширует HTTP ответы и отдает их без сети.
package interceptor

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/iudanet/learnsync/internal/client/storage"
	"github.com/iudanet/learnsync/pkg/api"
)

// Заголовки ответов, полученных не из сети
const (
	HeaderOfflineFallback = "X-Offline-Fallback"
	HeaderCacheGeneration = "X-Cache-Generation"

	FallbackSentinel = "sentinel"
	FallbackCache    = "cache"
	FallbackPage     = "page"
)

// Сообщения синтезированных ответов
const (
	MsgNetworkUnavailable = "Network unavailable"
	MsgCourseOffline      = "Course data not available offline. Please visit this course while online to cache it."
	MsgFeatureOffline     = "This feature is not available offline"
	MsgAssetOffline       = "Asset not available offline"
	MsgWorkerError        = "Service Worker Error"
)

const (
	shellPath         = "/"
	shellIndexPath    = "/index.html"
	offlinePagePath   = "/offline-fallback.html"
	maxCacheableBytes = 10 << 20
)

var (
	// errOffline сеть отключена, запрос не отправлялся
	errOffline  = errors.New("network is offline")
	errTooLarge = errors.New("response too large to cache")
)

//go:embed fallback.html
var fallbackPage []byte

// OnlineChecker источник состояния сети
type OnlineChecker interface {
	Online() bool
}

// Transport http.RoundTripper с офлайн кешем
type Transport struct {
	base           http.RoundTripper
	cache          storage.ResponseCache
	monitor        OnlineChecker
	metrics        *Metrics
	logger         *slog.Logger
	now            func() time.Time
	apiPatterns    []*regexp.Regexp
	generation     atomic.Pointer[string]
	interceptLogin bool
}

// Option настраивает Transport
type Option func(*Transport)

// WithBase задает транспорт для сетевых запросов
func WithBase(rt http.RoundTripper) Option {
	return func(t *Transport) { t.base = rt }
}

// WithMonitor задает источник состояния сети. Без него сеть считается доступной.
func WithMonitor(m OnlineChecker) Option {
	return func(t *Transport) { t.monitor = m }
}

// WithMetrics задает счетчики запросов
func WithMetrics(m *Metrics) Option {
	return func(t *Transport) { t.metrics = m }
}

// WithInterceptLogin перехватывает POST на login
func WithInterceptLogin() Option {
	return func(t *Transport) { t.interceptLogin = true }
}

// WithAPIPatterns заменяет набор кешируемых API
func WithAPIPatterns(patterns []*regexp.Regexp) Option {
	return func(t *Transport) { t.apiPatterns = patterns }
}

// WithClock задает источник времени
func WithClock(now func() time.Time) Option {
	return func(t *Transport) { t.now = now }
}

// NewTransport создает Transport поверх cache
func NewTransport(cache storage.ResponseCache, logger *slog.Logger, opts ...Option) *Transport {
	t := &Transport{
		base:        http.DefaultTransport,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
		apiPatterns: apiCachePatterns,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Generation возвращает текущее поколение кеша, пустое если не активировано
func (t *Transport) Generation() string {
	if g := t.generation.Load(); g != nil {
		return *g
	}
	return ""
}

// SetGeneration переключает кеш на поколение generation
func (t *Transport) SetGeneration(generation string) {
	t.generation.Store(&generation)
}

// RoundTrip реализует http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	category := Classify(req, t.interceptLogin)

	switch category {
	case CategoryBypass:
		return t.base.RoundTrip(req)
	case CategoryLogin:
		return t.login(req)
	case CategoryAPI:
		return t.apiRequest(req)
	case CategoryNavigation:
		resp, err := t.navigation(req)
		if err != nil {
			t.logger.Error("Navigation request failed", "url", req.URL.String(), "error", err)
			t.metrics.observe(category, outcomeError)
			return textResponse(req, http.StatusInternalServerError, MsgWorkerError), nil
		}
		return resp, nil
	case CategoryScript:
		return t.networkFirst(req, category, true)
	case CategoryStatic:
		return t.cacheFirst(req)
	default:
		return t.networkFirst(req, category, false)
	}
}

func (t *Transport) login(req *http.Request) (*http.Response, error) {
	resp, err := t.fetch(req)
	if err == nil {
		t.metrics.observe(CategoryLogin, outcomeNetwork)
		return resp, nil
	}
	t.logger.Debug("Login request failed, returning offline response", "error", err)
	t.metrics.observe(CategoryLogin, outcomeSentinel)
	return sentinelResponse(req, api.Response{Message: MsgNetworkUnavailable, Offline: true})
}

// apiRequest network-first: кеш только при сбое сети или 5xx
func (t *Transport) apiRequest(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	resp, err := t.fetch(req)
	// Любой не-2xx ответ считается сбоем сети, как и ошибка соединения
	if err == nil && isSuccess(resp) {
		if cacheableAPI(t.apiPatterns, req.URL.Path) {
			t.store(ctx, req, cacheKey(req.URL, ""), resp)
		}
		t.metrics.observe(CategoryAPI, outcomeNetwork)
		return resp, nil
	}
	if err != nil {
		t.logger.Debug("API request failed", "path", req.URL.Path, "error", err)
	} else {
		t.logger.Debug("API response not ok", "path", req.URL.Path, "status", resp.StatusCode)
	}

	cached, ok, lookupErr := t.lookup(ctx, cacheKey(req.URL, ""))
	if lookupErr != nil {
		t.logger.Error("Failed to read response cache", "error", lookupErr)
	}
	if ok {
		drain(resp)
		t.metrics.observe(CategoryAPI, outcomeCache)
		return t.cachedResponse(req, cached, true), nil
	}
	drain(resp)

	t.metrics.observe(CategoryAPI, outcomeSentinel)
	if isCoursePath(req.URL.Path) {
		return sentinelResponse(req, api.Response{
			Message:              MsgCourseOffline,
			Offline:              true,
			RequiresOnlineAccess: true,
		})
	}
	return sentinelResponse(req, api.Response{Message: MsgFeatureOffline, Offline: true})
}

// navigation отдает оболочку приложения для любого маршрута SPA
func (t *Transport) navigation(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	for _, p := range []string{shellPath, shellIndexPath} {
		cached, ok, err := t.lookup(ctx, cacheKey(req.URL, p))
		if err != nil {
			return nil, err
		}
		if ok {
			t.metrics.observe(CategoryNavigation, outcomeCache)
			return t.cachedResponse(req, cached, false), nil
		}
	}

	if t.online() {
		shellReq, err := shellRequest(req)
		if err != nil {
			return nil, err
		}
		resp, err := t.base.RoundTrip(shellReq)
		switch {
		case err != nil:
			t.logger.Debug("App shell fetch failed", "error", err)
		case isSuccess(resp):
			t.store(ctx, shellReq, cacheKey(req.URL, shellPath), resp)
			t.metrics.observe(CategoryNavigation, outcomeNetwork)
			return resp, nil
		default:
			drain(resp)
		}
	}

	cached, ok, err := t.lookup(ctx, cacheKey(req.URL, offlinePagePath))
	if err != nil {
		return nil, err
	}
	t.metrics.observe(CategoryNavigation, outcomeFallbackPage)
	if ok {
		return t.cachedResponse(req, cached, true), nil
	}

	resp := bodyResponse(req, http.StatusOK, "text/html; charset=utf-8", fallbackPage)
	resp.Header.Set(HeaderOfflineFallback, FallbackPage)
	return resp, nil
}

// networkFirst сеть, затем кеш. notFound заменяет ошибку ответом 404.
func (t *Transport) networkFirst(req *http.Request, category Category, notFound bool) (*http.Response, error) {
	ctx := req.Context()
	resp, fetchErr := t.fetch(req)
	if fetchErr == nil {
		if isSuccess(resp) {
			t.store(ctx, req, cacheKey(req.URL, ""), resp)
		}
		t.metrics.observe(category, outcomeNetwork)
		return resp, nil
	}

	cached, ok, err := t.lookup(ctx, cacheKey(req.URL, ""))
	if err != nil {
		t.logger.Error("Failed to read response cache", "error", err)
	}
	if ok {
		t.metrics.observe(category, outcomeCache)
		return t.cachedResponse(req, cached, true), nil
	}

	if notFound {
		t.metrics.observe(category, outcomeNotFound)
		return textResponse(req, http.StatusNotFound, MsgAssetOffline), nil
	}
	t.metrics.observe(category, outcomeError)
	return nil, fetchErr
}

// cacheFirst кеш, затем сеть с сохранением ответа
func (t *Transport) cacheFirst(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	cached, ok, err := t.lookup(ctx, cacheKey(req.URL, ""))
	if err != nil {
		t.logger.Error("Failed to read response cache", "error", err)
	}
	if ok {
		t.metrics.observe(CategoryStatic, outcomeCache)
		return t.cachedResponse(req, cached, false), nil
	}

	resp, err := t.fetch(req)
	if err == nil && isSuccess(resp) {
		t.store(ctx, req, cacheKey(req.URL, ""), resp)
		t.metrics.observe(CategoryStatic, outcomeNetwork)
		return resp, nil
	}
	drain(resp)

	t.metrics.observe(CategoryStatic, outcomeNotFound)
	return textResponse(req, http.StatusNotFound, MsgAssetOffline), nil
}

func (t *Transport) online() bool {
	return t.monitor == nil || t.monitor.Online()
}

// fetch отправляет запрос в сеть, если она доступна
func (t *Transport) fetch(req *http.Request) (*http.Response, error) {
	if !t.online() {
		return nil, errOffline
	}
	return t.base.RoundTrip(req)
}

func (t *Transport) lookup(ctx context.Context, key string) (*storage.CachedResponse, bool, error) {
	gen := t.Generation()
	if gen == "" {
		return nil, false, nil
	}
	return t.cache.GetResponse(ctx, gen, key)
}

// store сохраняет GET ответ в текущее поколение
func (t *Transport) store(ctx context.Context, req *http.Request, key string, resp *http.Response) {
	gen := t.Generation()
	if gen == "" || req.Method != http.MethodGet {
		return
	}
	if err := t.put(ctx, gen, req, key, resp); err != nil {
		t.logger.Warn("Failed to store response", "generation", gen, "key", key, "error", err)
	}
}

// put записывает ответ в поколение gen. Тело ответа подменяется копией.
// Слишком большой или оборванный ответ не кешируется и отдается целиком:
// прочитанная часть, затем остаток исходного тела.
func (t *Transport) put(ctx context.Context, gen string, req *http.Request, key string, resp *http.Response) error {
	orig := resp.Body
	body, err := io.ReadAll(io.LimitReader(orig, maxCacheableBytes+1))
	if err != nil || len(body) > maxCacheableBytes {
		resp.Body = struct {
			io.Reader
			io.Closer
		}{io.MultiReader(bytes.NewReader(body), orig), orig}
		if err != nil {
			return fmt.Errorf("read response body: %w", err)
		}
		return errTooLarge
	}
	_ = orig.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))

	entry := &storage.CachedResponse{
		StoredAt:   t.now(),
		Header:     resp.Header.Clone(),
		Method:     req.Method,
		URL:        req.URL.String(),
		Body:       body,
		StatusCode: resp.StatusCode,
	}
	return t.cache.PutResponse(ctx, gen, key, entry)
}

// cachedResponse собирает http.Response из записи кеша
func (t *Transport) cachedResponse(req *http.Request, cached *storage.CachedResponse, fallback bool) *http.Response {
	resp := bodyResponse(req, cached.StatusCode, "", cached.Body)
	for k, v := range cached.Header {
		resp.Header[k] = append([]string(nil), v...)
	}
	resp.Header.Set(HeaderCacheGeneration, t.Generation())
	if fallback {
		resp.Header.Set(HeaderOfflineFallback, FallbackCache)
	}
	return resp
}

// cacheKey ключ записи: хост и путь с запросом. path подменяет путь запроса.
func cacheKey(u *url.URL, path string) string {
	if path != "" {
		return http.MethodGet + " " + u.Host + path
	}
	return http.MethodGet + " " + u.Host + u.RequestURI()
}

func shellRequest(req *http.Request) (*http.Request, error) {
	u := *req.URL
	u.Path, u.RawPath, u.RawQuery, u.Fragment = shellPath, "", "", ""
	shellReq, err := http.NewRequestWithContext(req.Context(), http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build app shell request: %w", err)
	}
	shellReq.Header = req.Header.Clone()
	return shellReq, nil
}

func sentinelResponse(req *http.Request, body api.Response) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode offline response: %w", err)
	}
	resp := bodyResponse(req, http.StatusOK, "application/json", data)
	resp.Header.Set(HeaderOfflineFallback, FallbackSentinel)
	return resp, nil
}

func textResponse(req *http.Request, status int, msg string) *http.Response {
	return bodyResponse(req, status, "text/plain; charset=utf-8", []byte(msg))
}

func bodyResponse(req *http.Request, status int, contentType string, body []byte) *http.Response {
	header := make(http.Header)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	if req.Method == http.MethodHead {
		body = nil
	}
	header.Set("Content-Length", strconv.Itoa(len(body)))
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}

func isSuccess(resp *http.Response) bool {
	return resp != nil && resp.StatusCode >= 200 && resp.StatusCode < 300
}

// drain закрывает тело ответа, который не будет отдан
func drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

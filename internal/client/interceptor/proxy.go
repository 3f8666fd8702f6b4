package interceptor

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
)

// NewProxy отдает target через Transport, чтобы браузерное SPA работало офлайн
func NewProxy(target *url.URL, transport http.RoundTripper, logger *slog.Logger) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
			// Хост исходного сервера, иначе ключи кеша не совпадут с предзагрузкой
			r.Out.Host = target.Host
		},
		Transport: transport,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Warn("Proxy request failed", "method", r.Method, "url", r.URL.String(), "error", err)
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		},
	}
}

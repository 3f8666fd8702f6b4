package interceptor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		header         map[string]string
		name           string
		method         string
		target         string
		want           Category
		interceptLogin bool
	}{
		{name: "post bypass", method: http.MethodPost, target: "/api/courses", want: CategoryBypass},
		{name: "delete bypass", method: http.MethodDelete, target: "/api/users/1", want: CategoryBypass},
		{name: "upload bypass", method: http.MethodGet, target: "/api/upload/file.png", want: CategoryBypass},
		{name: "cache busting bypass", method: http.MethodGet, target: "/api/courses?t=123", want: CategoryBypass},
		{name: "login post bypass", method: http.MethodPost, target: "/api/auth/login", want: CategoryBypass},
		{name: "login intercepted", method: http.MethodPost, target: "/api/auth/login", want: CategoryLogin, interceptLogin: true},
		{name: "api get", method: http.MethodGet, target: "/api/courses/c1", want: CategoryAPI},
		{name: "api head", method: http.MethodHead, target: "/api/jobs", want: CategoryAPI},
		{
			name:   "navigate mode",
			method: http.MethodGet, target: "/dashboard",
			header: map[string]string{"Sec-Fetch-Mode": "navigate"},
			want:   CategoryNavigation,
		},
		{
			name:   "html accept",
			method: http.MethodGet, target: "/courses/1",
			header: map[string]string{"Accept": "text/html,application/xhtml+xml"},
			want:   CategoryNavigation,
		},
		{name: "script", method: http.MethodGet, target: "/static/js/main.abc.js", want: CategoryScript},
		{name: "any js", method: http.MethodGet, target: "/sw.js", want: CategoryScript},
		{name: "css", method: http.MethodGet, target: "/static/css/main.css", want: CategoryStatic},
		{name: "media", method: http.MethodGet, target: "/static/media/logo.svg", want: CategoryStatic},
		{name: "font", method: http.MethodGet, target: "/fonts/inter.woff2", want: CategoryStatic},
		{name: "default", method: http.MethodGet, target: "/manifest.json", want: CategoryDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://app.local"+tt.target, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, Classify(req, tt.interceptLogin))
		})
	}
}

func TestCacheableAPI(t *testing.T) {
	assert.True(t, cacheableAPI(apiCachePatterns, "/api/courses"))
	assert.True(t, cacheableAPI(apiCachePatterns, "/api/courses/c1/progress"))
	assert.True(t, cacheableAPI(apiCachePatterns, "/api/certificates/7"))
	assert.False(t, cacheableAPI(apiCachePatterns, "/api/health"))
	assert.False(t, cacheableAPI(apiCachePatterns, "/api/auth/login"))
}

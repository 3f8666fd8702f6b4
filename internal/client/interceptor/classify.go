package interceptor

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// Category класс запроса, определяет стратегию кеширования
type Category string

const (
	CategoryBypass     Category = "bypass"
	CategoryLogin      Category = "login"
	CategoryAPI        Category = "api"
	CategoryNavigation Category = "navigation"
	CategoryScript     Category = "script"
	CategoryStatic     Category = "static"
	CategoryDefault    Category = "default"
)

const loginPath = "/api/auth/login"

var (
	// apiCachePatterns ответы этих endpoints сохраняются в кеш
	apiCachePatterns = []*regexp.Regexp{
		regexp.MustCompile(`/api/courses`),
		regexp.MustCompile(`/api/users/profile`),
		regexp.MustCompile(`/api/jobs`),
		regexp.MustCompile(`/api/scholarships`),
		regexp.MustCompile(`/api/categories`),
		regexp.MustCompile(`/api/certificates`),
	}

	scriptPattern = regexp.MustCompile(`\.js$`)

	staticPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/static/css/.+\.css$`),
		regexp.MustCompile(`/static/media/.+\.(png|jpg|jpeg|gif|svg)$`),
		regexp.MustCompile(`\.(css|png|jpg|jpeg|gif|svg|woff|woff2|ttf|eot)$`),
	}
)

// Classify определяет категорию запроса. Проверки идут по порядку,
// побеждает первая подходящая. interceptLogin выводит POST на login
// из-под bypass, чтобы сетевой сбой входа получил офлайн ответ.
func Classify(req *http.Request, interceptLogin bool) Category {
	path := req.URL.Path
	isLogin := strings.EqualFold(path, loginPath)

	if !(interceptLogin && isLogin) && isBypass(req) {
		return CategoryBypass
	}
	if isLogin {
		return CategoryLogin
	}
	if strings.HasPrefix(path, "/api/") {
		return CategoryAPI
	}
	if isNavigation(req) {
		return CategoryNavigation
	}
	if scriptPattern.MatchString(path) {
		return CategoryScript
	}
	for _, p := range staticPatterns {
		if p.MatchString(path) {
			return CategoryStatic
		}
	}
	return CategoryDefault
}

// isBypass мутации, загрузки файлов и запросы с cache-busting параметром t
func isBypass(req *http.Request) bool {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return true
	}
	if strings.Contains(req.URL.Path, "/upload/") {
		return true
	}
	return req.URL.Query().Has("t")
}

func isNavigation(req *http.Request) bool {
	if req.Header.Get("Sec-Fetch-Mode") == "navigate" {
		return true
	}
	return req.Method == http.MethodGet && strings.Contains(req.Header.Get("Accept"), "text/html")
}

// DefaultAPIPatterns шаблоны кешируемых API по умолчанию
func DefaultAPIPatterns() []*regexp.Regexp {
	return append([]*regexp.Regexp(nil), apiCachePatterns...)
}

// CompilePatterns компилирует шаблоны путей из конфигурации
func CompilePatterns(exprs []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		p, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid path pattern %q: %w", expr, err)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// cacheableAPI сообщает, сохраняется ли ответ API в кеш
func cacheableAPI(patterns []*regexp.Regexp, path string) bool {
	for _, p := range patterns {
		if p.MatchString(path) {
			return true
		}
	}
	return false
}

// isCoursePath запрос конкретного ресурса курса
func isCoursePath(path string) bool {
	return strings.Contains(path, "/api/courses/")
}

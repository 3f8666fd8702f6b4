package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/learnsync/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithTransport подменяет транспорт, например на кеширующий перехватчик
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.UserData, error) {
	var resp api.UserData
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginData, error) {
	var resp api.LoginData
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile отправляет изменения профиля пользователя userID
func (c *Client) UpdateProfile(ctx context.Context, token, userID string, req api.ProfileUpdateRequest) (*api.UserData, error) {
	var resp api.UserData
	path := fmt.Sprintf("/api/users/%s/profile", url.PathEscape(userID))
	err := c.doRequest(ctx, http.MethodPut, path, token, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// ChangePassword уведомляет сервер о смене пароля
func (c *Client) ChangePassword(ctx context.Context, token, userID string, req api.PasswordRequest) error {
	path := fmt.Sprintf("/api/users/%s/password", url.PathEscape(userID))
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, nil); err != nil {
		return fmt.Errorf("change password request failed: %w", err)
	}
	return nil
}

// GetCourse получает курс
func (c *Client) GetCourse(ctx context.Context, token, courseID string) (*api.CourseData, error) {
	var resp api.CourseData
	path := fmt.Sprintf("/api/courses/%s", url.PathEscape(courseID))
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get course request failed: %w", err)
	}
	return &resp, nil
}

// GetCourseProgress получает прогресс текущего пользователя по курсу
func (c *Client) GetCourseProgress(ctx context.Context, token, courseID string) (*api.ProgressData, error) {
	var resp api.ProgressData
	path := fmt.Sprintf("/api/courses/%s/progress", url.PathEscape(courseID))
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get progress request failed: %w", err)
	}
	return &resp, nil
}

// UpdateCourseProgress отмечает элемент курса пройденным
func (c *Client) UpdateCourseProgress(ctx context.Context, token, courseID string, req api.ProgressUpdateRequest) (*api.ProgressData, error) {
	var resp api.ProgressData
	path := fmt.Sprintf("/api/courses/%s/progress", url.PathEscape(courseID))
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("update progress request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Синтезированный перехватчиком ответ не считается признаком сети
	if resp.StatusCode != http.StatusOK || resp.Header.Get("X-Offline-Fallback") != "" {
		return nil, &api.StatusError{Code: resp.StatusCode, Message: "health check failed"}
	}

	var health api.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &health, nil
}

// Probe реализует network.Prober
func (c *Client) Probe(ctx context.Context) error {
	_, err := c.Health(ctx)
	return err
}

// doRequest выполняет HTTP запрос и разбирает конверт {success, message, data}
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var envelope api.RawResponse
	decodeErr := json.Unmarshal(respBody, &envelope)

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil {
			return &api.StatusError{Code: resp.StatusCode, Message: envelope.Message}
		}
		return &api.StatusError{Code: resp.StatusCode}
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	// 200 с success=false приходит от перехватчика без сети
	if !envelope.Success {
		return &api.StatusError{
			Code:    resp.StatusCode,
			Message: envelope.Message,
			Offline: envelope.Offline,
		}
	}

	// Декодируем успешный ответ
	if result != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, result); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// StatusCode возвращает HTTP статус из ошибки запроса, 0 для сетевых ошибок
func StatusCode(err error) int {
	var se *api.StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// IsOffline сообщает, что ответ синтезирован без сети
func IsOffline(err error) bool {
	var se *api.StatusError
	return errors.As(err, &se) && se.Offline
}

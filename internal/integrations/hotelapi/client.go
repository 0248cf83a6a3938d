package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxErrorBody ограничение на чтение тела ошибки
const maxErrorBody = 64 << 10

// Client клиент удалённого REST бэкенда отелей
// Bearer токен берётся из контекста запроса (WithToken)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает новый экземпляр клиента бэкенда
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type tokenKey struct{}

// WithToken кладёт bearer токен пользователя в контекст
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext возвращает токен, положенный WithToken
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// newRequest собирает запрос с JSON телом (если body != nil) и Authorization заголовком
func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// send выполняет запрос и возвращает ответ только для 2xx
// Для остальных статусов тело закрывается, возвращается *APIError
func (c *Client) send(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, req.Method, req.URL.Path, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	return nil, c.statusError(req, resp)
}

// Обработка статус-кодов
func (c *Client) statusError(req *http.Request, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := NewAPIError(resp.StatusCode, errorMessage(body))
	switch apiErr.kind {
	case ErrUnavailable:
		c.log.Error("Backend %s %s failed: status=%d body=%s", req.Method, req.URL.Path, resp.StatusCode, string(body))
	case ErrInvalidResponse:
		c.log.Warn("Backend %s %s unexpected status=%d", req.Method, req.URL.Path, resp.StatusCode)
	}
	return apiErr
}

// doJSON выполняет запрос и декодирует JSON ответ в out (если out != nil)
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: failed to decode response: %v", ErrInvalidResponse, method, path, err)
	}
	return nil
}

// errorMessage достаёт текст ошибки из {"error": ...} или {"message": ...}
func errorMessage(body []byte) string {
	var e ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return ""
}

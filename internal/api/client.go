// Package api реализует HTTP-клиент бэкенда оценочного сервиса.
//
// Все запросы приложения проходят через Client: он подставляет bearer-токен
// из TokenSource, нормализует ошибки по статусу ответа и публикует ровно одно
// пользовательское уведомление на каждый неуспешный запрос. Клиент никогда не
// повторяет запрос и никогда не гасит ошибку — каждая ветка возвращает её
// вызывающему после своих побочных эффектов.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/proval-lk/valuer-client/internal/lib/sl"
	"github.com/proval-lk/valuer-client/internal/notify"
)

// Тексты уведомлений совпадают с пользовательскими сообщениями
// оригинального клиента.
const (
	msgNetwork    = "Network error. Please check your connection."
	msgRateLimit  = "Too many requests. Please try again later."
	msgServer     = "Server error. Please try again later."
	msgUnexpected = "An unexpected error occurred."
)

// TokenSource выдаёт действующий bearer-токен, если он есть.
// Клиент читает источник на каждом запросе: нет изменяемого
// "заголовка по умолчанию", токеном владеет хранилище сессии.
type TokenSource interface {
	Token() (string, bool)
}

// Client HTTP-клиент с фиксированным базовым адресом и таймаутом 30 секунд.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	notifier   notify.Notifier
	log        *slog.Logger

	mu             sync.Mutex
	onUnauthorized func()
}

// New создаёт клиент. В окружении prod базовый адрес обязан быть HTTPS —
// это транспортный аналог флага secure у куки с токеном.
func New(baseURL string, timeout time.Duration, env string, ts TokenSource, n notify.Notifier, log *slog.Logger) (*Client, error) {
	const op = "api.New"

	if env == "prod" && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("%s: base URL must use https in prod: %s", op, baseURL)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     ts,
		notifier:   n,
		log:        log,
	}, nil
}

// OnUnauthorized регистрирует обработчик глобального сброса сессии.
// Вызывается на каждый ответ 401 с любого эндпоинта; подписывается
// хранилище сессии, транспортный слой сам состоянием не владеет.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// Get выполняет GET-запрос и декодирует успешный ответ в out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post выполняет POST-запрос с JSON-телом body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put выполняет PUT-запрос с JSON-телом body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete выполняет DELETE-запрос.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	const op = "api.do"

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("transport failure", slog.String("method", method), slog.String("path", path), sl.Err(err))
		c.notifier.Notify(msgNetwork)
		return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.notifier.Notify(msgNetwork)
		return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
		return nil
	}

	var env envelope
	_ = json.Unmarshal(data, &env) // тело может быть пустым или не-JSON

	apiErr := &Error{Status: resp.StatusCode, Message: env.Message, Details: env.Details}
	c.log.Error("request failed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)
	c.handleFailure(apiErr)
	return apiErr
}

// handleFailure выполняет единые для всех вызовов побочные эффекты по статусу.
// Уведомление публикуется не более одного раза на запрос (на 422 — по одному
// на каждую деталь), сама ошибка всегда возвращается вызывающему.
func (c *Client) handleFailure(e *Error) {
	switch {
	case e.Status == http.StatusUnauthorized:
		// жёсткий сброс сессии, без уведомления
		c.mu.Lock()
		fn := c.onUnauthorized
		c.mu.Unlock()
		if fn != nil {
			fn()
		}

	case e.Status == http.StatusForbidden || e.Status == http.StatusNotFound:
		if e.Message != "" {
			c.notifier.Notify(e.Message)
		}

	case e.Status == http.StatusUnprocessableEntity:
		if len(e.Details) > 0 {
			for _, detail := range e.Details {
				c.notifier.Notify(detail)
			}
		} else if e.Message != "" {
			c.notifier.Notify(e.Message)
		}

	case e.Status == http.StatusTooManyRequests:
		c.notifier.Notify(msgRateLimit)

	case e.Status >= 500:
		c.notifier.Notify(msgServer)

	default:
		if e.Message != "" {
			c.notifier.Notify(e.Message)
		} else {
			c.notifier.Notify(msgUnexpected)
		}
	}
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"

	"github.com/letsssgooo/botapi/internal/botapi"
	"github.com/letsssgooo/botapi/internal/tracing"
	"github.com/letsssgooo/botapi/internal/wire"
)

// HTTPClient реализует Client через HTTP API Telegram.
// Повторяет временные ошибки и ограничивает частоту запросов.
type HTTPClient struct {
	token      string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	retries    int
	newBackOff func() backoff.BackOff
	metrics    *metrics
	log        *slog.Logger
}

// New создаёт клиента Bot API для бота с токеном token.
func New(token string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		log:        slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.metrics == nil {
		c.metrics = newMetrics(nil)
	}
	c.log = c.log.With("component", "client")

	return c
}

// GetMe возвращает информацию о боте.
func (c *HTTPClient) GetMe(ctx context.Context) (*botapi.User, error) {
	var user botapi.User
	if _, err := c.do(ctx, "getMe", struct{}{}, 0, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUpdates получает обновления.
// Если новых обновлений нет, сервер ждёт до params.Timeout.
// Для продолжения обработки нужно передать Offset = lastUpdateID + 1.
func (c *HTTPClient) GetUpdates(ctx context.Context, params GetUpdatesParams) ([]botapi.Update, error) {
	body := struct {
		GetUpdatesParams
		Timeout int64 `json:"timeout,omitempty"`
	}{
		GetUpdatesParams: params,
		Timeout:          int64(params.Timeout / time.Second),
	}

	var updates []botapi.Update
	if _, err := c.do(ctx, "getUpdates", body, params.Timeout, &updates); err != nil {
		return nil, err
	}

	return updates, nil
}

// SendMessage отправляет текстовое сообщение.
// Возвращает отправленное сообщение в случае успеха.
func (c *HTTPClient) SendMessage(ctx context.Context, params SendMessageParams) (*botapi.Message, error) {
	var message botapi.Message
	if _, err := c.do(ctx, "sendMessage", params, 0, &message); err != nil {
		return nil, err
	}

	return &message, nil
}

// Call выполняет произвольный метод Bot API и возвращает сырое поле result.
// Тело body кодируется в JSON.
func (c *HTTPClient) Call(ctx context.Context, method string, body any) (json.RawMessage, error) {
	return c.do(ctx, method, body, 0, nil)
}

// do выполняет метод с повторами и, если result не nil, декодирует в него ответ.
// Ошибки декодирования не повторяются: тот же ответ даст ту же ошибку.
// extra продлевает таймаут попытки на время long polling.
func (c *HTTPClient) do(ctx context.Context, method string, body any, extra time.Duration, result any) (json.RawMessage, error) {
	requestID := uuid.NewString()
	log := c.log.With("operation", "call", "method", method, "request_id", requestID)

	ctx, span := tracing.StartSpan(ctx, "botapi."+method,
		attribute.String("botapi.method", method),
		attribute.String("botapi.request_id", requestID),
	)
	defer span.End()

	started := time.Now()
	raw, attempts, err := c.retry(ctx, log, method, body, extra)
	if err == nil && result != nil {
		if decodeErr := wire.Unmarshal(raw, result); decodeErr != nil {
			err = fmt.Errorf("%s: decode result: %w", method, decodeErr)
		}
	}

	c.metrics.duration.WithLabelValues(method).Observe(time.Since(started).Seconds())
	c.metrics.requests.WithLabelValues(method, outcomeOf(err)).Inc()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("Bot API call failed", "attempts", attempts, "error", err)
		return nil, err
	}

	log.Debug("Bot API call done", "attempts", attempts, "elapsed", time.Since(started))

	return raw, nil
}

func (c *HTTPClient) retry(
	ctx context.Context,
	log *slog.Logger,
	method string,
	body any,
	extra time.Duration,
) (json.RawMessage, int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: marshal: %w", method, err)
	}

	attempts := 0

	raw, err := backoff.Retry(ctx, func() (json.RawMessage, error) {
		attempts++
		if attempts > 1 {
			c.metrics.retries.WithLabelValues(method).Inc()
		}

		raw, err := c.attempt(ctx, method, payload, extra)
		if err == nil {
			return raw, nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if !apiErr.Temporary() {
				return nil, backoff.Permanent(err)
			}
			if wait := apiErr.RetryAfter(); wait > 0 {
				return nil, fmt.Errorf("%w: %w", err, backoff.RetryAfter(int(wait/time.Second)))
			}
		}

		return nil, err
	},
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(c.retries)+1),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn("retrying Bot API call", "attempt", attempts, "next", next, "error", err)
		}),
	)

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}

	// подсказка retry_after нужна только backoff.Retry, наружу уходит сама ошибка API
	var (
		apiErr *APIError
		hinted *backoff.RetryAfterError
	)
	if errors.As(err, &hinted) && errors.As(err, &apiErr) {
		err = apiErr
	}

	return raw, attempts, err
}

// attempt выполняет одну попытку запроса к Telegram API.
// Возвращает поле result в случае успеха.
func (c *HTTPClient) attempt(ctx context.Context, method string, payload []byte, extra time.Duration) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, backoff.Permanent(fmt.Errorf("%s: rate limit: %w", method, err))
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout+extra)
		defer cancel()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), bytes.NewReader(payload))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%s: new request: %w", method, c.redact(err)))
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, c.redact(err))
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", method, err)
	}

	var result struct {
		OK          bool                       `json:"ok"`
		Result      json.RawMessage            `json:"result"`
		Description string                     `json:"description"`
		ErrorCode   int                        `json:"error_code"`
		Parameters  *botapi.ResponseParameters `json:"parameters"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		statusErr := fmt.Errorf("%s: %w %d", method, ErrUnexpectedStatus, resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}

	if !result.OK {
		code := result.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		return nil, &APIError{
			Method:      method,
			Code:        code,
			Description: result.Description,
			Parameters:  result.Parameters,
		}
	}

	return result.Result, nil
}

func (c *HTTPClient) methodURL(method string) string {
	return strings.TrimSuffix(c.baseURL, "/") + "/bot" + c.token + "/" + method
}

// redact убирает токен из ошибок net/http, которые содержат полный URL запроса.
func (c *HTTPClient) redact(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) || c.token == "" {
		return err
	}

	return &url.Error{
		Op:  urlErr.Op,
		URL: strings.ReplaceAll(urlErr.URL, c.token, "<token>"),
		Err: urlErr.Err,
	}
}

func outcomeOf(err error) string {
	var (
		apiErr    *APIError
		decodeErr *wire.DecodeError
	)

	switch {
	case err == nil:
		return outcomeOK
	case errors.As(err, &apiErr):
		return outcomeAPIError
	case errors.As(err, &decodeErr):
		return outcomeDecode
	default:
		return outcomeTransport
	}
}

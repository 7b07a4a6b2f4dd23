package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/botapi/internal/botapi"
	"github.com/letsssgooo/botapi/internal/wire"
)

const testToken = "123456:secret-token"

type recorded struct {
	path string
	body map[string]any
}

// newTestServer отвечает заранее заданными ответами по порядку и записывает запросы.
func newTestServer(t *testing.T, responses ...func(w http.ResponseWriter)) (*httptest.Server, *[]recorded) {
	t.Helper()

	var (
		calls    []recorded
		position atomic.Int32
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(data, &body)
		calls = append(calls, recorded{path: r.URL.Path, body: body})

		i := int(position.Add(1)) - 1
		if i >= len(responses) {
			i = len(responses) - 1
		}
		responses[i](w)
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func reply(status int, body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func newTestClient(srv *httptest.Server, opts ...Option) *HTTPClient {
	base := []Option{
		WithBaseURL(srv.URL),
		WithBackOff(func() backoff.BackOff { return backoff.NewConstantBackOff(time.Millisecond) }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}

	return New(testToken, append(base, opts...)...)
}

func TestHTTPClient_GetMe(t *testing.T) {
	srv, calls := newTestServer(t, reply(http.StatusOK,
		`{"ok": true, "result": {"id": 42, "is_bot": true, "first_name": "Quiz", "username": "quiz_bot", "can_join_groups": true}}`))

	c := newTestClient(srv)
	me, err := c.GetMe(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &botapi.User{ID: 42, IsBot: true, FirstName: "Quiz", Username: "quiz_bot", CanJoinGroups: true}, me)
	require.Len(t, *calls, 1)
	assert.Equal(t, "/bot"+testToken+"/getMe", (*calls)[0].path)
}

func TestHTTPClient_GetUpdates(t *testing.T) {
	srv, calls := newTestServer(t, reply(http.StatusOK, `{"ok": true, "result": [
		{"update_id": 10, "message": {"message_id": 1, "date": 1700000000, "chat": {"id": 5, "type": "private"}, "text": "hi"}},
		{"update_id": 11, "callback_query": {"id": "q", "from": {"id": 5, "is_bot": false, "first_name": "A"}, "chat_instance": "c",
			"message": {"message_id": 1, "date": 0, "chat": {"id": 5, "type": "private"}}, "data": "next"}}
	]}`))

	c := newTestClient(srv)
	updates, err := c.GetUpdates(context.Background(), GetUpdatesParams{
		Offset:         10,
		Timeout:        30 * time.Second,
		AllowedUpdates: []string{"message", "callback_query"},
	})
	require.NoError(t, err)
	require.Len(t, updates, 2)

	assert.Equal(t, "hi", updates[0].Message.Text)
	require.NotNil(t, updates[1].CallbackQuery.Message)
	assert.False(t, updates[1].CallbackQuery.Message.IsAccessible())

	require.Len(t, *calls, 1)
	body := (*calls)[0].body
	assert.Equal(t, float64(10), body["offset"])
	assert.Equal(t, float64(30), body["timeout"])
	assert.Equal(t, []any{"message", "callback_query"}, body["allowed_updates"])
}

func TestHTTPClient_SendMessage(t *testing.T) {
	srv, calls := newTestServer(t, reply(http.StatusOK,
		`{"ok": true, "result": {"message_id": 77, "date": 1700000000, "chat": {"id": -100, "type": "channel", "title": "News"}, "text": "<b>hi</b>"}}`))

	c := newTestClient(srv)
	msg, err := c.SendMessage(context.Background(), SendMessageParams{
		ChatID:      botapi.ChatIDFromUsername("news"),
		Text:        "<b>hi</b>",
		ParseMode:   ParseModeHTML,
		ReplyMarkup: botapi.NewInlineKeyboard([]botapi.InlineKeyboardButton{botapi.NewCallbackButton("Ok", "ok")}),
	})
	require.NoError(t, err)
	assert.Equal(t, botapi.MessageID(77), msg.MessageID)
	assert.Equal(t, "News", msg.Chat.Title)

	body := (*calls)[0].body
	assert.Equal(t, "@news", body["chat_id"])
	assert.Equal(t, "HTML", body["parse_mode"])
	assert.NotContains(t, body, "entities")
	assert.Contains(t, body, "reply_markup")
}

func TestHTTPClient_APIErrorIsPermanent(t *testing.T) {
	srv, calls := newTestServer(t, reply(http.StatusBadRequest,
		`{"ok": false, "error_code": 400, "description": "Bad Request: chat not found"}`))

	reg := prometheus.NewRegistry()
	c := newTestClient(srv, WithRetries(3), WithRegisterer(reg))

	_, err := c.SendMessage(context.Background(), SendMessageParams{ChatID: botapi.ChatIDFromInt(1), Text: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)
	assert.Equal(t, "Bad Request: chat not found", apiErr.Description)
	assert.Equal(t, "sendMessage", apiErr.Method)
	assert.False(t, apiErr.Temporary())

	assert.Len(t, *calls, 1)
	assert.InDelta(t, 1, testutil.ToFloat64(c.metrics.requests.WithLabelValues("sendMessage", outcomeAPIError)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(c.metrics.retries.WithLabelValues("sendMessage")), 0)
}

func TestHTTPClient_RetriesTooManyRequests(t *testing.T) {
	srv, calls := newTestServer(t,
		reply(http.StatusTooManyRequests, `{"ok": false, "error_code": 429, "description": "Too Many Requests: retry after 1", "parameters": {"retry_after": 1}}`),
		reply(http.StatusBadGateway, `<html>bad gateway</html>`),
		reply(http.StatusOK, `{"ok": true, "result": {"id": 42, "is_bot": true, "first_name": "Quiz"}}`),
	)

	reg := prometheus.NewRegistry()
	var waits []time.Duration
	c := newTestClient(srv, WithRetries(3), WithRegisterer(reg), WithBackOff(func() backoff.BackOff {
		return &recordingBackOff{waits: &waits}
	}))

	started := time.Now()
	me, err := c.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Quiz", me.FirstName)

	// первая пауза взята из retry_after, а не из backoff в 1ms
	assert.GreaterOrEqual(t, time.Since(started), time.Second)
	assert.Len(t, *calls, 3)
	assert.Len(t, waits, 2)
	assert.InDelta(t, 2, testutil.ToFloat64(c.metrics.retries.WithLabelValues("getMe")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.metrics.requests.WithLabelValues("getMe", outcomeOK)), 0)
}

func TestHTTPClient_TooManyRequestsExhausted(t *testing.T) {
	srv, calls := newTestServer(t, reply(http.StatusTooManyRequests,
		`{"ok": false, "error_code": 429, "description": "Too Many Requests: retry after 1", "parameters": {"retry_after": 1}}`))

	c := newTestClient(srv, WithRetries(0))

	_, err := c.GetMe(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, time.Second, apiErr.RetryAfter())
	assert.Equal(t, "client api error: getMe: 429 Too Many Requests: retry after 1", err.Error())
	assert.Len(t, *calls, 1)
}

func TestHTTPClient_RetriesExhausted(t *testing.T) {
	srv, calls := newTestServer(t, reply(http.StatusInternalServerError,
		`{"ok": false, "error_code": 500, "description": "Internal Server Error"}`))

	c := newTestClient(srv, WithRetries(2))

	_, err := c.GetMe(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Code)
	assert.Len(t, *calls, 3)
}

func TestHTTPClient_DecodeErrorNotRetried(t *testing.T) {
	srv, calls := newTestServer(t, reply(http.StatusOK, `{"ok": true, "result": {"id": 42, "first_name": "Quiz"}}`))

	c := newTestClient(srv, WithRetries(3))

	_, err := c.GetMe(context.Background())
	require.ErrorIs(t, err, wire.ErrMissingField)

	var decodeErr *wire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "is_bot", decodeErr.Field)
	assert.Len(t, *calls, 1)
	assert.InDelta(t, 1, testutil.ToFloat64(c.metrics.requests.WithLabelValues("getMe", outcomeDecode)), 0)
}

func TestHTTPClient_UnexpectedStatusPermanent(t *testing.T) {
	srv, calls := newTestServer(t, reply(http.StatusNotFound, `404 page not found`))

	c := newTestClient(srv, WithRetries(3))

	_, err := c.Call(context.Background(), "getMe", nil)
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Len(t, *calls, 1)
}

func TestHTTPClient_TokenNotLeaked(t *testing.T) {
	var logs strings.Builder
	c := New(testToken,
		WithBaseURL("http://127.0.0.1:1"),
		WithRetries(0),
		WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	)

	_, err := c.GetMe(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token")
	assert.NotContains(t, logs.String(), "secret-token")
	assert.Contains(t, logs.String(), "request_id=")
}

func TestHTTPClient_ContextCancelled(t *testing.T) {
	srv, _ := newTestServer(t, reply(http.StatusServiceUnavailable, `{"ok": false, "error_code": 503, "description": "busy"}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(srv, WithRetries(5))
	_, err := c.GetMe(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestHTTPClient_RateLimit(t *testing.T) {
	srv, calls := newTestServer(t, reply(http.StatusOK, `{"ok": true, "result": true}`))

	c := newTestClient(srv, WithRateLimit(1000, 1))
	for range 3 {
		raw, err := c.Call(context.Background(), "deleteMessage", map[string]any{"chat_id": 1, "message_id": 2})
		require.NoError(t, err)
		assert.JSONEq(t, `true`, string(raw))
	}

	assert.Len(t, *calls, 3)
	assert.NotNil(t, c.limiter)
	assert.Nil(t, newTestClient(srv, WithRateLimit(0, 10)).limiter)
}

func TestNewMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := newMetrics(reg)
	second := newMetrics(reg)
	assert.Same(t, first.requests, second.requests)
}

func TestAPIError_Parameters(t *testing.T) {
	retryAfter, err := wire.FromSeconds(5)
	require.NoError(t, err)

	apiErr := &APIError{
		Method:      "sendMessage",
		Code:        429,
		Description: "Too Many Requests: retry after 5",
		Parameters:  &botapi.ResponseParameters{RetryAfter: &retryAfter, MigrateToChatID: -1001},
	}

	assert.Equal(t, 5*time.Second, apiErr.RetryAfter())
	assert.True(t, apiErr.Temporary())

	id, ok := apiErr.MigrateToChatID()
	assert.True(t, ok)
	assert.Equal(t, int64(-1001), id)
	assert.Equal(t, "client api error: sendMessage: 429 Too Many Requests: retry after 5", apiErr.Error())

	assert.Zero(t, (&APIError{Code: 400}).RetryAfter())
}

// recordingBackOff запоминает каждый запрошенный интервал.
type recordingBackOff struct {
	waits *[]time.Duration
}

func (b *recordingBackOff) NextBackOff() time.Duration {
	*b.waits = append(*b.waits, time.Millisecond)
	return time.Millisecond
}

func (b *recordingBackOff) Reset() {}

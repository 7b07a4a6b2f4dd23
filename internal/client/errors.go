package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/letsssgooo/botapi/internal/botapi"
)

// ErrUnexpectedStatus возвращается, когда сервер ответил не JSON-конвертом Bot API.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// APIError — ответ Bot API с ok=false. Description передаётся без изменений.
type APIError struct {
	Method      string
	Code        int
	Description string
	Parameters  *botapi.ResponseParameters
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client api error: %s: %d %s", e.Method, e.Code, e.Description)
}

// RetryAfter возвращает рекомендованную сервером паузу перед повтором или 0.
func (e *APIError) RetryAfter() time.Duration {
	if e.Parameters == nil || e.Parameters.RetryAfter == nil {
		return 0
	}

	return e.Parameters.RetryAfter.Duration()
}

// MigrateToChatID возвращает новый идентификатор чата, если группа стала супергруппой.
func (e *APIError) MigrateToChatID() (int64, bool) {
	if e.Parameters == nil || e.Parameters.MigrateToChatID == 0 {
		return 0, false
	}

	return e.Parameters.MigrateToChatID, true
}

// Temporary сообщает, имеет ли смысл повторить запрос.
func (e *APIError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}

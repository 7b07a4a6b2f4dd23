package fetcher

import (
	"context"
	"time"

	"github.com/letsssgooo/botapi/internal/botapi"
)

// Fetcher определяет основной интерфейс для получения обновлений.
type Fetcher interface {
	// GetUpdates получает слайс Update, ожидая не дольше timeout.
	GetUpdates(ctx context.Context, timeout time.Duration) ([]botapi.Update, error)
}

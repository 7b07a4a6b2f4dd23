package fetcher

import (
	"context"
	"time"

	"github.com/letsssgooo/botapi/internal/botapi"
	"github.com/letsssgooo/botapi/internal/client"
)

// TelegramFetcher реализует Fetcher через Telegram Bot API.
// Подтверждает полученные обновления, сдвигая offset за последнее из них.
type TelegramFetcher struct {
	client         client.Client
	offset         int64
	allowedUpdates []string
}

func NewTelegramFetcher(client client.Client, allowedUpdates ...string) *TelegramFetcher {
	return &TelegramFetcher{
		client:         client,
		offset:         0,
		allowedUpdates: allowedUpdates,
	}
}

// GetUpdates получает слайс Update, учитывая timeout
func (f *TelegramFetcher) GetUpdates(ctx context.Context, timeout time.Duration) ([]botapi.Update, error) {
	updates, err := f.client.GetUpdates(ctx, client.GetUpdatesParams{
		Offset:         f.offset,
		Timeout:        timeout,
		AllowedUpdates: f.allowedUpdates,
	})
	if err != nil {
		return nil, err
	}

	if len(updates) != 0 {
		f.offset = updates[len(updates)-1].UpdateID + 1
	}

	return updates, nil
}

// Offset возвращает идентификатор следующего ожидаемого обновления.
func (f *TelegramFetcher) Offset() int64 {
	return f.offset
}

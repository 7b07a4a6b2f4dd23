package sender

import (
	"context"

	"github.com/letsssgooo/botapi/internal/botapi"
)

// Options содержит необязательные параметры отправки сообщения.
type Options struct {
	ParseMode           string
	DisableNotification bool
	ReplyTo             botapi.MessageID
	ReplyMarkup         *botapi.InlineKeyboardMarkup
	DisablePreview      bool
}

// Sender определяет основной интерфейс для отправки сообщений.
type Sender interface {
	// Message отправляет текстовое сообщение.
	Message(ctx context.Context, chatID botapi.ChatID, text string, opts *Options) (*botapi.Message, error)
}

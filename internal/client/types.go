package client

import (
	"context"
	"time"

	"github.com/letsssgooo/botapi/internal/botapi"
)

// Режимы разметки текста.
const (
	ParseModeHTML       = "HTML"
	ParseModeMarkdownV2 = "MarkdownV2"
	ParseModeMarkdown   = "Markdown"
)

// GetUpdatesParams — параметры метода getUpdates.
type GetUpdatesParams struct {
	Offset int64 `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`

	// Timeout — время long polling. На проводе передаётся целым числом секунд.
	Timeout        time.Duration `json:"-"`
	AllowedUpdates []string      `json:"allowed_updates,omitempty"`
}

// SendMessageParams — параметры метода sendMessage.
type SendMessageParams struct {
	BusinessConnectionID string                       `json:"business_connection_id,omitempty"`
	ChatID               botapi.ChatID                `json:"chat_id"`
	MessageThreadID      int64                        `json:"message_thread_id,omitempty"`
	Text                 string                       `json:"text"`
	ParseMode            string                       `json:"parse_mode,omitempty"`
	Entities             []botapi.MessageEntity       `json:"entities,omitempty"`
	LinkPreviewOptions   *botapi.LinkPreviewOptions   `json:"link_preview_options,omitempty"`
	DisableNotification  bool                         `json:"disable_notification,omitempty"`
	ProtectContent       bool                         `json:"protect_content,omitempty"`
	MessageEffectID      string                       `json:"message_effect_id,omitempty"`
	ReplyParameters      *botapi.ReplyParameters      `json:"reply_parameters,omitempty"`
	ReplyMarkup          *botapi.InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// Client определяет интерфейс клиента Bot API.
type Client interface {
	// GetMe возвращает информацию о боте.
	GetMe(ctx context.Context) (*botapi.User, error)

	// GetUpdates получает обновления (long polling).
	GetUpdates(ctx context.Context, params GetUpdatesParams) ([]botapi.Update, error)

	// SendMessage отправляет текстовое сообщение.
	SendMessage(ctx context.Context, params SendMessageParams) (*botapi.Message, error)
}

// Таймауты
const (
	defaultTimeout = 10 * time.Second
	defaultBaseURL = "https://api.telegram.org"
)

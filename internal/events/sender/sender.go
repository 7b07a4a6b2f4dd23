package sender

import (
	"context"
	"errors"

	"github.com/letsssgooo/botapi/internal/botapi"
	"github.com/letsssgooo/botapi/internal/client"
)

// ErrEmptyText возвращается при попытке отправить пустое сообщение.
var ErrEmptyText = errors.New("message text is empty")

// TelegramSender реализует отправку сообщений через Telegram Bot API.
type TelegramSender struct {
	client client.Client
}

// NewSender создает новый объект структуры TelegramSender.
func NewSender(client client.Client) *TelegramSender {
	return &TelegramSender{client: client}
}

// Message отправляет текстовое сообщение.
func (s *TelegramSender) Message(
	ctx context.Context,
	chatID botapi.ChatID,
	text string,
	opts *Options,
) (*botapi.Message, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	params := client.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}

	if opts != nil {
		params.ParseMode = opts.ParseMode
		params.DisableNotification = opts.DisableNotification
		params.ReplyMarkup = opts.ReplyMarkup

		if opts.ReplyTo != 0 {
			params.ReplyParameters = &botapi.ReplyParameters{MessageID: opts.ReplyTo}
		}

		if opts.DisablePreview {
			params.LinkPreviewOptions = &botapi.LinkPreviewOptions{IsDisabled: true}
		}
	}

	return s.client.SendMessage(ctx, params)
}

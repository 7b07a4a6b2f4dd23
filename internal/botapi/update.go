package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// Update — входящее обновление. Задано не более одного необязательного поля.
// See https://core.telegram.org/bots/api#update
type Update struct {
	UpdateID              int64                        `json:"update_id"`
	Message               *Message                     `json:"message,omitempty"`
	EditedMessage         *Message                     `json:"edited_message,omitempty"`
	ChannelPost           *Message                     `json:"channel_post,omitempty"`
	EditedChannelPost     *Message                     `json:"edited_channel_post,omitempty"`
	BusinessMessage       *Message                     `json:"business_message,omitempty"`
	EditedBusinessMessage *Message                     `json:"edited_business_message,omitempty"`
	MessageReaction       *MessageReactionUpdated      `json:"message_reaction,omitempty"`
	MessageReactionCount  *MessageReactionCountUpdated `json:"message_reaction_count,omitempty"`
	CallbackQuery         *CallbackQuery               `json:"callback_query,omitempty"`
	ShippingQuery         *ShippingQuery               `json:"shipping_query,omitempty"`
	PreCheckoutQuery      *PreCheckoutQuery            `json:"pre_checkout_query,omitempty"`
	Poll                  *Poll                        `json:"poll,omitempty"`
	PollAnswer            *PollAnswer                  `json:"poll_answer,omitempty"`
	MyChatMember          *ChatMemberUpdated           `json:"my_chat_member,omitempty"`
	ChatMember            *ChatMemberUpdated           `json:"chat_member,omitempty"`
	ChatBoost             *ChatBoostUpdated            `json:"chat_boost,omitempty"`
	RemovedChatBoost      *ChatBoostRemoved            `json:"removed_chat_boost,omitempty"`
}

// Kind возвращает имя заполненного поля обновления, например "message" или "callback_query".
// Для обновления неизвестного вида возвращается пустая строка.
func (u *Update) Kind() string {
	switch {
	case u.Message != nil:
		return "message"
	case u.EditedMessage != nil:
		return "edited_message"
	case u.ChannelPost != nil:
		return "channel_post"
	case u.EditedChannelPost != nil:
		return "edited_channel_post"
	case u.BusinessMessage != nil:
		return "business_message"
	case u.EditedBusinessMessage != nil:
		return "edited_business_message"
	case u.MessageReaction != nil:
		return "message_reaction"
	case u.MessageReactionCount != nil:
		return "message_reaction_count"
	case u.CallbackQuery != nil:
		return "callback_query"
	case u.ShippingQuery != nil:
		return "shipping_query"
	case u.PreCheckoutQuery != nil:
		return "pre_checkout_query"
	case u.Poll != nil:
		return "poll"
	case u.PollAnswer != nil:
		return "poll_answer"
	case u.MyChatMember != nil:
		return "my_chat_member"
	case u.ChatMember != nil:
		return "chat_member"
	case u.ChatBoost != nil:
		return "chat_boost"
	case u.RemovedChatBoost != nil:
		return "removed_chat_boost"
	default:
		return ""
	}
}

// SentFrom возвращает автора обновления, если он известен.
func (u *Update) SentFrom() *User {
	switch {
	case u.Message != nil:
		return u.Message.From
	case u.EditedMessage != nil:
		return u.EditedMessage.From
	case u.CallbackQuery != nil:
		return &u.CallbackQuery.From
	case u.ShippingQuery != nil:
		return &u.ShippingQuery.From
	case u.PreCheckoutQuery != nil:
		return &u.PreCheckoutQuery.From
	case u.PollAnswer != nil:
		return u.PollAnswer.User
	case u.MyChatMember != nil:
		return &u.MyChatMember.From
	case u.ChatMember != nil:
		return &u.ChatMember.From
	case u.MessageReaction != nil:
		return u.MessageReaction.User
	default:
		return nil
	}
}

// ResponseParameters поясняет, почему запрос не выполнен.
type ResponseParameters struct {
	MigrateToChatID int64         `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      *wire.Seconds `json:"retry_after,omitempty"`
}

// WebhookInfo — текущее состояние вебхука.
type WebhookInfo struct {
	URL                          string          `json:"url"`
	HasCustomCertificate         bool            `json:"has_custom_certificate"`
	PendingUpdateCount           int             `json:"pending_update_count"`
	IPAddress                    string          `json:"ip_address,omitempty"`
	LastErrorDate                *wire.Timestamp `json:"last_error_date,omitempty"`
	LastErrorMessage             string          `json:"last_error_message,omitempty"`
	LastSynchronizationErrorDate *wire.Timestamp `json:"last_synchronization_error_date,omitempty"`
	MaxConnections               int             `json:"max_connections,omitempty"`
	AllowedUpdates               []string        `json:"allowed_updates,omitempty"`
}

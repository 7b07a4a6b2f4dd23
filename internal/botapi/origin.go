package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// MessageOrigin описывает источник пересланного сообщения.
// See https://core.telegram.org/bots/api#messageorigin
type MessageOrigin struct {
	Value MessageOriginVariant
}

type MessageOriginVariant interface {
	isMessageOrigin()
}

// MessageOriginUser — сообщение изначально отправлено известным пользователем.
type MessageOriginUser struct {
	Date       wire.Timestamp `json:"date"`
	SenderUser User           `json:"sender_user"`
}

// MessageOriginHiddenUser — пользователь скрыл свой аккаунт при пересылке.
type MessageOriginHiddenUser struct {
	Date           wire.Timestamp `json:"date"`
	SenderUserName string         `json:"sender_user_name"`
}

// MessageOriginChat — сообщение отправлено от имени чата.
type MessageOriginChat struct {
	Date            wire.Timestamp `json:"date"`
	SenderChat      Chat           `json:"sender_chat"`
	AuthorSignature string         `json:"author_signature,omitempty"`
}

// MessageOriginChannel — сообщение из канала.
type MessageOriginChannel struct {
	Date            wire.Timestamp `json:"date"`
	Chat            Chat           `json:"chat"`
	MessageID       MessageID      `json:"message_id"`
	AuthorSignature string         `json:"author_signature,omitempty"`
}

func (*MessageOriginUser) isMessageOrigin()       {}
func (*MessageOriginHiddenUser) isMessageOrigin() {}
func (*MessageOriginChat) isMessageOrigin()       {}
func (*MessageOriginChannel) isMessageOrigin()    {}

var messageOrigins = wire.NewSet[MessageOriginVariant]("message origin", "type").
	Register("user", func() MessageOriginVariant { return &MessageOriginUser{} }).
	Register("hidden_user", func() MessageOriginVariant { return &MessageOriginHiddenUser{} }).
	Register("chat", func() MessageOriginVariant { return &MessageOriginChat{} }).
	Register("channel", func() MessageOriginVariant { return &MessageOriginChannel{} })

// Date возвращает время исходного сообщения, общее для всех вариантов.
func (o MessageOrigin) Date() wire.Timestamp {
	switch v := o.Value.(type) {
	case *MessageOriginUser:
		return v.Date
	case *MessageOriginHiddenUser:
		return v.Date
	case *MessageOriginChat:
		return v.Date
	case *MessageOriginChannel:
		return v.Date
	default:
		return wire.Timestamp{}
	}
}

func (o MessageOrigin) Type() string {
	tag, _ := messageOrigins.Tag(o.Value)
	return tag
}

func (o MessageOrigin) MarshalJSON() ([]byte, error) {
	return messageOrigins.Encode(o.Value)
}

func (o *MessageOrigin) UnmarshalJSON(data []byte) error {
	v, err := messageOrigins.Decode(data)
	if err != nil {
		return err
	}
	o.Value = v

	return nil
}

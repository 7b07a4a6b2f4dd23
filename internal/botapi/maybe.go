package botapi

import (
	"errors"

	"github.com/letsssgooo/botapi/internal/wire"
)

// InaccessibleMessage — сообщение, которое было удалено или иначе недоступно боту.
// На проводе отличается от Message значением date, равным 0.
type InaccessibleMessage struct {
	Chat      Chat      `json:"chat"`
	MessageID MessageID `json:"message_id"`
}

// MaybeInaccessibleMessage содержит ровно одно из: доступное сообщение Message
// или заглушку Inaccessible.
// See https://core.telegram.org/bots/api#maybeinaccessiblemessage
type MaybeInaccessibleMessage struct {
	Message      *Message
	Inaccessible *InaccessibleMessage
}

var maybeInaccessible = wire.SentinelPair[Message, InaccessibleMessage]{Field: "date"}

// NewAccessible оборачивает доступное сообщение.
func NewAccessible(m *Message) MaybeInaccessibleMessage {
	return MaybeInaccessibleMessage{Message: m}
}

// NewInaccessible оборачивает заглушку недоступного сообщения.
func NewInaccessible(chat Chat, id MessageID) MaybeInaccessibleMessage {
	return MaybeInaccessibleMessage{Inaccessible: &InaccessibleMessage{Chat: chat, MessageID: id}}
}

// IsAccessible сообщает, что значение содержит полное сообщение.
func (m MaybeInaccessibleMessage) IsAccessible() bool {
	return m.Message != nil
}

// Chat возвращает чат сообщения независимо от варианта.
func (m MaybeInaccessibleMessage) Chat() Chat {
	switch {
	case m.Message != nil:
		return m.Message.Chat
	case m.Inaccessible != nil:
		return m.Inaccessible.Chat
	default:
		return Chat{}
	}
}

// ID возвращает идентификатор сообщения независимо от варианта.
func (m MaybeInaccessibleMessage) ID() MessageID {
	switch {
	case m.Message != nil:
		return m.Message.MessageID
	case m.Inaccessible != nil:
		return m.Inaccessible.MessageID
	default:
		return 0
	}
}

func (m MaybeInaccessibleMessage) MarshalJSON() ([]byte, error) {
	return maybeInaccessible.Encode(m.Message, m.Inaccessible)
}

func (m *MaybeInaccessibleMessage) UnmarshalJSON(data []byte) error {
	full, stub, err := maybeInaccessible.Decode(data)
	if err != nil {
		return err
	}
	m.Message, m.Inaccessible = full, stub

	return nil
}

// ErrInaccessible возвращается, когда требуется полное сообщение, а получена заглушка.
var ErrInaccessible = errors.New("message is inaccessible")

// Accessible возвращает полное сообщение или ErrInaccessible.
func (m MaybeInaccessibleMessage) Accessible() (*Message, error) {
	if m.Message == nil {
		return nil, ErrInaccessible
	}

	return m.Message, nil
}

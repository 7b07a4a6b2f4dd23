package botapi

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/letsssgooo/botapi/internal/wire"
)

// ErrUnknownKind возвращается Decode для неизвестного имени сущности.
var ErrUnknownKind = errors.New("unknown entity kind")

var kinds = map[string]func() any{
	"update":                     func() any { return &Update{} },
	"updates":                    func() any { return &[]Update{} },
	"message":                    func() any { return &Message{} },
	"maybe_inaccessible_message": func() any { return &MaybeInaccessibleMessage{} },
	"user":                       func() any { return &User{} },
	"chat":                       func() any { return &Chat{} },
	"chat_full_info":             func() any { return &ChatFullInfo{} },
	"chat_member":                func() any { return &ChatMember{} },
	"chat_member_updated":        func() any { return &ChatMemberUpdated{} },
	"chat_boost":                 func() any { return &ChatBoost{} },
	"callback_query":             func() any { return &CallbackQuery{} },
	"reaction_type":              func() any { return &ReactionType{} },
	"message_origin":             func() any { return &MessageOrigin{} },
	"background_type":            func() any { return &BackgroundType{} },
	"paid_media":                 func() any { return &PaidMedia{} },
	"passport_element_error":     func() any { return &PassportElementError{} },
	"bot_command_scope":          func() any { return &BotCommandScope{} },
	"gifts":                      func() any { return &Gifts{} },
	"unique_gift":                func() any { return &UniqueGift{} },
	"webhook_info":               func() any { return &WebhookInfo{} },
	"file":                       func() any { return &File{} },
}

// Kinds возвращает отсортированные имена сущностей, которые понимает Decode.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Decode декодирует payload как сущность с именем kind и возвращает указатель на неё.
func Decode(kind string, data []byte) (any, error) {
	newEntity, ok := kinds[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}

	v := newEntity()
	if err := wire.Unmarshal(data, v); err != nil {
		return nil, err
	}

	return v, nil
}

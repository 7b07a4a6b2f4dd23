package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// BotCommand — команда бота, отображаемая в меню.
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// BotCommandScope задаёт, для каких пользователей действует список команд.
// See https://core.telegram.org/bots/api#botcommandscope
type BotCommandScope struct {
	Value BotCommandScopeVariant
}

type BotCommandScopeVariant interface {
	isBotCommandScope()
}

type BotCommandScopeDefault struct{}

type BotCommandScopeAllPrivateChats struct{}

type BotCommandScopeAllGroupChats struct{}

type BotCommandScopeAllChatAdministrators struct{}

type BotCommandScopeChat struct {
	ChatID ChatID `json:"chat_id"`
}

type BotCommandScopeChatAdministrators struct {
	ChatID ChatID `json:"chat_id"`
}

type BotCommandScopeChatMember struct {
	ChatID ChatID `json:"chat_id"`
	UserID UserID `json:"user_id"`
}

func (*BotCommandScopeDefault) isBotCommandScope()               {}
func (*BotCommandScopeAllPrivateChats) isBotCommandScope()       {}
func (*BotCommandScopeAllGroupChats) isBotCommandScope()         {}
func (*BotCommandScopeAllChatAdministrators) isBotCommandScope() {}
func (*BotCommandScopeChat) isBotCommandScope()                  {}
func (*BotCommandScopeChatAdministrators) isBotCommandScope()    {}
func (*BotCommandScopeChatMember) isBotCommandScope()            {}

var botCommandScopes = wire.NewSet[BotCommandScopeVariant]("bot command scope", "type").
	Register("default", func() BotCommandScopeVariant { return &BotCommandScopeDefault{} }).
	Register("all_private_chats", func() BotCommandScopeVariant { return &BotCommandScopeAllPrivateChats{} }).
	Register("all_group_chats", func() BotCommandScopeVariant { return &BotCommandScopeAllGroupChats{} }).
	Register("all_chat_administrators", func() BotCommandScopeVariant { return &BotCommandScopeAllChatAdministrators{} }).
	Register("chat", func() BotCommandScopeVariant { return &BotCommandScopeChat{} }).
	Register("chat_administrators", func() BotCommandScopeVariant { return &BotCommandScopeChatAdministrators{} }).
	Register("chat_member", func() BotCommandScopeVariant { return &BotCommandScopeChatMember{} })

func ScopeDefault() BotCommandScope {
	return BotCommandScope{Value: &BotCommandScopeDefault{}}
}

func ScopeAllPrivateChats() BotCommandScope {
	return BotCommandScope{Value: &BotCommandScopeAllPrivateChats{}}
}

func ScopeAllGroupChats() BotCommandScope {
	return BotCommandScope{Value: &BotCommandScopeAllGroupChats{}}
}

func ScopeAllChatAdministrators() BotCommandScope {
	return BotCommandScope{Value: &BotCommandScopeAllChatAdministrators{}}
}

func ScopeChat(chatID ChatID) BotCommandScope {
	return BotCommandScope{Value: &BotCommandScopeChat{ChatID: chatID}}
}

func ScopeChatAdministrators(chatID ChatID) BotCommandScope {
	return BotCommandScope{Value: &BotCommandScopeChatAdministrators{ChatID: chatID}}
}

func ScopeChatMember(chatID ChatID, userID UserID) BotCommandScope {
	return BotCommandScope{Value: &BotCommandScopeChatMember{ChatID: chatID, UserID: userID}}
}

func (s BotCommandScope) Type() string {
	tag, _ := botCommandScopes.Tag(s.Value)
	return tag
}

func (s BotCommandScope) MarshalJSON() ([]byte, error) {
	return botCommandScopes.Encode(s.Value)
}

func (s *BotCommandScope) UnmarshalJSON(data []byte) error {
	v, err := botCommandScopes.Decode(data)
	if err != nil {
		return err
	}
	s.Value = v

	return nil
}

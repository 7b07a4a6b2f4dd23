package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// ChatMember — информация об участнике чата. Дискриминатор — поле status.
// See https://core.telegram.org/bots/api#chatmember
type ChatMember struct {
	Value ChatMemberVariant
}

type ChatMemberVariant interface {
	isChatMember()
	member() User
}

// ChatMemberOwner — владелец чата.
type ChatMemberOwner struct {
	User        User   `json:"user"`
	IsAnonymous bool   `json:"is_anonymous"`
	CustomTitle string `json:"custom_title,omitempty"`
}

// ChatMemberAdministrator — администратор чата.
type ChatMemberAdministrator struct {
	User                User   `json:"user"`
	CanBeEdited         bool   `json:"can_be_edited"`
	IsAnonymous         bool   `json:"is_anonymous"`
	CanManageChat       bool   `json:"can_manage_chat"`
	CanDeleteMessages   bool   `json:"can_delete_messages"`
	CanManageVideoChats bool   `json:"can_manage_video_chats"`
	CanRestrictMembers  bool   `json:"can_restrict_members"`
	CanPromoteMembers   bool   `json:"can_promote_members"`
	CanChangeInfo       bool   `json:"can_change_info"`
	CanInviteUsers      bool   `json:"can_invite_users"`
	CanPostStories      bool   `json:"can_post_stories"`
	CanEditStories      bool   `json:"can_edit_stories"`
	CanDeleteStories    bool   `json:"can_delete_stories"`
	CanPostMessages     bool   `json:"can_post_messages,omitempty"`
	CanEditMessages     bool   `json:"can_edit_messages,omitempty"`
	CanPinMessages      bool   `json:"can_pin_messages,omitempty"`
	CanManageTopics     bool   `json:"can_manage_topics,omitempty"`
	CustomTitle         string `json:"custom_title,omitempty"`
}

// ChatMemberMember — обычный участник. UntilDate задан для платной подписки.
type ChatMemberMember struct {
	User      User            `json:"user"`
	UntilDate *wire.Timestamp `json:"until_date,omitempty"`
}

// ChatMemberRestricted — участник с ограничениями.
type ChatMemberRestricted struct {
	User     User `json:"user"`
	IsMember bool `json:"is_member"`
	ChatPermissions
	UntilDate wire.Timestamp `json:"until_date"`
}

// ChatMemberLeft — пользователь покинул чат.
type ChatMemberLeft struct {
	User User `json:"user"`
}

// ChatMemberBanned — пользователь заблокирован в чате.
type ChatMemberBanned struct {
	User      User           `json:"user"`
	UntilDate wire.Timestamp `json:"until_date"`
}

func (*ChatMemberOwner) isChatMember()         {}
func (*ChatMemberAdministrator) isChatMember() {}
func (*ChatMemberMember) isChatMember()        {}
func (*ChatMemberRestricted) isChatMember()    {}
func (*ChatMemberLeft) isChatMember()          {}
func (*ChatMemberBanned) isChatMember()        {}

func (m *ChatMemberOwner) member() User         { return m.User }
func (m *ChatMemberAdministrator) member() User { return m.User }
func (m *ChatMemberMember) member() User        { return m.User }
func (m *ChatMemberRestricted) member() User    { return m.User }
func (m *ChatMemberLeft) member() User          { return m.User }
func (m *ChatMemberBanned) member() User        { return m.User }

var chatMembers = wire.NewSet[ChatMemberVariant]("chat member", "status").
	Register("creator", func() ChatMemberVariant { return &ChatMemberOwner{} }).
	Register("administrator", func() ChatMemberVariant { return &ChatMemberAdministrator{} }).
	Register("member", func() ChatMemberVariant { return &ChatMemberMember{} }).
	Register("restricted", func() ChatMemberVariant { return &ChatMemberRestricted{} }).
	Register("left", func() ChatMemberVariant { return &ChatMemberLeft{} }).
	Register("kicked", func() ChatMemberVariant { return &ChatMemberBanned{} })

// Status возвращает значение дискриминатора status.
func (m ChatMember) Status() string {
	tag, _ := chatMembers.Tag(m.Value)
	return tag
}

// User возвращает пользователя, общего для всех вариантов.
func (m ChatMember) User() User {
	if m.Value == nil {
		return User{}
	}

	return m.Value.member()
}

func (m ChatMember) MarshalJSON() ([]byte, error) {
	return chatMembers.Encode(m.Value)
}

func (m *ChatMember) UnmarshalJSON(data []byte) error {
	v, err := chatMembers.Decode(data)
	if err != nil {
		return err
	}
	m.Value = v

	return nil
}

// ChatMemberUpdated — изменение статуса участника чата.
type ChatMemberUpdated struct {
	Chat                    Chat            `json:"chat"`
	From                    User            `json:"from"`
	Date                    wire.Timestamp  `json:"date"`
	OldChatMember           ChatMember      `json:"old_chat_member"`
	NewChatMember           ChatMember      `json:"new_chat_member"`
	InviteLink              *ChatInviteLink `json:"invite_link,omitempty"`
	ViaJoinRequest          bool            `json:"via_join_request,omitempty"`
	ViaChatFolderInviteLink bool            `json:"via_chat_folder_invite_link,omitempty"`
}

// ChatInviteLink — пригласительная ссылка чата.
type ChatInviteLink struct {
	InviteLink              string          `json:"invite_link"`
	Creator                 User            `json:"creator"`
	CreatesJoinRequest      bool            `json:"creates_join_request"`
	IsPrimary               bool            `json:"is_primary"`
	IsRevoked               bool            `json:"is_revoked"`
	Name                    string          `json:"name,omitempty"`
	ExpireDate              *wire.Timestamp `json:"expire_date,omitempty"`
	MemberLimit             int             `json:"member_limit,omitempty"`
	PendingJoinRequestCount int             `json:"pending_join_request_count,omitempty"`
	SubscriptionPeriod      *wire.Seconds   `json:"subscription_period,omitempty"`
	SubscriptionPrice       int             `json:"subscription_price,omitempty"`
}

package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// Типы чатов.
const (
	ChatTypePrivate    = "private"
	ChatTypeGroup      = "group"
	ChatTypeSupergroup = "supergroup"
	ChatTypeChannel    = "channel"
)

// Chat представляет чат.
// See https://core.telegram.org/bots/api#chat
type Chat struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	IsForum   bool   `json:"is_forum,omitempty"`
}

// ChatFullInfo содержит полную информацию о чате, возвращается методом getChat.
// Вложенный PinnedMessage — снимок сообщения на момент запроса.
type ChatFullInfo struct {
	ID                                 int64              `json:"id"`
	Type                               string             `json:"type"`
	Title                              string             `json:"title,omitempty"`
	Username                           string             `json:"username,omitempty"`
	FirstName                          string             `json:"first_name,omitempty"`
	LastName                           string             `json:"last_name,omitempty"`
	IsForum                            bool               `json:"is_forum,omitempty"`
	AccentColorID                      int                `json:"accent_color_id"`
	MaxReactionCount                   int                `json:"max_reaction_count"`
	Photo                              *ChatPhoto         `json:"photo,omitempty"`
	ActiveUsernames                    []string           `json:"active_usernames,omitempty"`
	Birthdate                          *Birthdate         `json:"birthdate,omitempty"`
	PersonalChat                       *Chat              `json:"personal_chat,omitempty"`
	AvailableReactions                 []ReactionType     `json:"available_reactions,omitempty"`
	EmojiStatusCustomEmojiID           CustomEmojiID      `json:"emoji_status_custom_emoji_id,omitempty"`
	EmojiStatusExpirationDate          *wire.Timestamp    `json:"emoji_status_expiration_date,omitempty"`
	Bio                                string             `json:"bio,omitempty"`
	HasPrivateForwards                 bool               `json:"has_private_forwards,omitempty"`
	HasRestrictedVoiceAndVideoMessages bool               `json:"has_restricted_voice_and_video_messages,omitempty"`
	JoinToSendMessages                 bool               `json:"join_to_send_messages,omitempty"`
	JoinByRequest                      bool               `json:"join_by_request,omitempty"`
	Description                        string             `json:"description,omitempty"`
	InviteLink                         string             `json:"invite_link,omitempty"`
	PinnedMessage                      *Message           `json:"pinned_message,omitempty"`
	Permissions                        *ChatPermissions   `json:"permissions,omitempty"`
	CanSendPaidMedia                   bool               `json:"can_send_paid_media,omitempty"`
	SlowModeDelay                      *wire.Seconds      `json:"slow_mode_delay,omitempty"`
	UnrestrictBoostCount               int                `json:"unrestrict_boost_count,omitempty"`
	MessageAutoDeleteTime              *wire.Seconds      `json:"message_auto_delete_time,omitempty"`
	HasProtectedContent                bool               `json:"has_protected_content,omitempty"`
	HasVisibleHistory                  bool               `json:"has_visible_history,omitempty"`
	StickerSetName                     string             `json:"sticker_set_name,omitempty"`
	CanSetStickerSet                   bool               `json:"can_set_sticker_set,omitempty"`
	LinkedChatID                       int64              `json:"linked_chat_id,omitempty"`
	Location                           *ChatLocation      `json:"location,omitempty"`
	Background                         *ChatBackground    `json:"background,omitempty"`
	AcceptedGiftTypes                  *AcceptedGiftTypes `json:"accepted_gift_types,omitempty"`
}

// ChatPhoto — фотография чата.
type ChatPhoto struct {
	SmallFileID       FileID       `json:"small_file_id"`
	SmallFileUniqueID FileUniqueID `json:"small_file_unique_id"`
	BigFileID         FileID       `json:"big_file_id"`
	BigFileUniqueID   FileUniqueID `json:"big_file_unique_id"`
}

// Birthdate — дата рождения пользователя. Год может быть скрыт.
type Birthdate struct {
	Day   int  `json:"day"`
	Month int  `json:"month"`
	Year  *int `json:"year,omitempty"`
}

// ChatLocation — место, к которому привязан чат.
type ChatLocation struct {
	Location Location `json:"location"`
	Address  string   `json:"address"`
}

// ChatPermissions описывает, что разрешено делать участникам чата.
type ChatPermissions struct {
	CanSendMessages       bool `json:"can_send_messages,omitempty"`
	CanSendAudios         bool `json:"can_send_audios,omitempty"`
	CanSendDocuments      bool `json:"can_send_documents,omitempty"`
	CanSendPhotos         bool `json:"can_send_photos,omitempty"`
	CanSendVideos         bool `json:"can_send_videos,omitempty"`
	CanSendVideoNotes     bool `json:"can_send_video_notes,omitempty"`
	CanSendVoiceNotes     bool `json:"can_send_voice_notes,omitempty"`
	CanSendPolls          bool `json:"can_send_polls,omitempty"`
	CanSendOtherMessages  bool `json:"can_send_other_messages,omitempty"`
	CanAddWebPagePreviews bool `json:"can_add_web_page_previews,omitempty"`
	CanChangeInfo         bool `json:"can_change_info,omitempty"`
	CanInviteUsers        bool `json:"can_invite_users,omitempty"`
	CanPinMessages        bool `json:"can_pin_messages,omitempty"`
	CanManageTopics       bool `json:"can_manage_topics,omitempty"`
}

// AcceptedGiftTypes — какие подарки принимает пользователь или чат.
type AcceptedGiftTypes struct {
	UnlimitedGifts      bool `json:"unlimited_gifts"`
	LimitedGifts        bool `json:"limited_gifts"`
	UniqueGifts         bool `json:"unique_gifts"`
	PremiumSubscription bool `json:"premium_subscription"`
}

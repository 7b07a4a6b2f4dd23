package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// Message представляет сообщение.
//
// Chat — снимок чата на момент отправки, а не ссылка на общий экземпляр:
// каждое декодирование создаёт новые значения.
// See https://core.telegram.org/bots/api#message
type Message struct {
	MessageID            MessageID          `json:"message_id"`
	MessageThreadID      int64              `json:"message_thread_id,omitempty"`
	From                 *User              `json:"from,omitempty"`
	SenderChat           *Chat              `json:"sender_chat,omitempty"`
	SenderBoostCount     int                `json:"sender_boost_count,omitempty"`
	SenderBusinessBot    *User              `json:"sender_business_bot,omitempty"`
	Date                 wire.Timestamp     `json:"date"`
	BusinessConnectionID string             `json:"business_connection_id,omitempty"`
	Chat                 Chat               `json:"chat"`
	ForwardOrigin        *MessageOrigin     `json:"forward_origin,omitempty"`
	IsTopicMessage       bool               `json:"is_topic_message,omitempty"`
	IsAutomaticForward   bool               `json:"is_automatic_forward,omitempty"`
	ReplyToMessage       *Message           `json:"reply_to_message,omitempty"`
	ExternalReply        *ExternalReplyInfo `json:"external_reply,omitempty"`
	Quote                *TextQuote         `json:"quote,omitempty"`
	ReplyToStory         *Story             `json:"reply_to_story,omitempty"`
	ViaBot               *User              `json:"via_bot,omitempty"`
	EditDate             *wire.Timestamp    `json:"edit_date,omitempty"`
	HasProtectedContent  bool               `json:"has_protected_content,omitempty"`
	IsFromOffline        bool               `json:"is_from_offline,omitempty"`
	MediaGroupID         string             `json:"media_group_id,omitempty"`
	AuthorSignature      string             `json:"author_signature,omitempty"`
	PaidStarCount        int                `json:"paid_star_count,omitempty"`

	Text               string              `json:"text,omitempty"`
	Entities           []MessageEntity     `json:"entities,omitempty"`
	LinkPreviewOptions *LinkPreviewOptions `json:"link_preview_options,omitempty"`
	EffectID           string              `json:"effect_id,omitempty"`

	Animation             *Animation      `json:"animation,omitempty"`
	Audio                 *Audio          `json:"audio,omitempty"`
	Document              *Document       `json:"document,omitempty"`
	PaidMedia             *PaidMediaInfo  `json:"paid_media,omitempty"`
	Photo                 []PhotoSize     `json:"photo,omitempty"`
	Sticker               *Sticker        `json:"sticker,omitempty"`
	Story                 *Story          `json:"story,omitempty"`
	Video                 *Video          `json:"video,omitempty"`
	VideoNote             *VideoNote      `json:"video_note,omitempty"`
	Voice                 *Voice          `json:"voice,omitempty"`
	Caption               string          `json:"caption,omitempty"`
	CaptionEntities       []MessageEntity `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia bool            `json:"show_caption_above_media,omitempty"`
	HasMediaSpoiler       bool            `json:"has_media_spoiler,omitempty"`
	Contact               *Contact        `json:"contact,omitempty"`
	Dice                  *Dice           `json:"dice,omitempty"`
	Poll                  *Poll           `json:"poll,omitempty"`
	Venue                 *Venue          `json:"venue,omitempty"`
	Location              *Location       `json:"location,omitempty"`

	NewChatMembers                []User                         `json:"new_chat_members,omitempty"`
	LeftChatMember                *User                          `json:"left_chat_member,omitempty"`
	NewChatTitle                  string                         `json:"new_chat_title,omitempty"`
	NewChatPhoto                  []PhotoSize                    `json:"new_chat_photo,omitempty"`
	DeleteChatPhoto               bool                           `json:"delete_chat_photo,omitempty"`
	GroupChatCreated              bool                           `json:"group_chat_created,omitempty"`
	SupergroupChatCreated         bool                           `json:"supergroup_chat_created,omitempty"`
	ChannelChatCreated            bool                           `json:"channel_chat_created,omitempty"`
	MessageAutoDeleteTimerChanged *MessageAutoDeleteTimerChanged `json:"message_auto_delete_timer_changed,omitempty"`
	MigrateToChatID               int64                          `json:"migrate_to_chat_id,omitempty"`
	MigrateFromChatID             int64                          `json:"migrate_from_chat_id,omitempty"`
	PinnedMessage                 *MaybeInaccessibleMessage      `json:"pinned_message,omitempty"`
	Invoice                       *Invoice                       `json:"invoice,omitempty"`
	SuccessfulPayment             *SuccessfulPayment             `json:"successful_payment,omitempty"`
	RefundedPayment               *RefundedPayment               `json:"refunded_payment,omitempty"`
	Gift                          *GiftInfo                      `json:"gift,omitempty"`
	UniqueGift                    *UniqueGiftInfo                `json:"unique_gift,omitempty"`
	ConnectedWebsite              string                         `json:"connected_website,omitempty"`
	PassportData                  *PassportData                  `json:"passport_data,omitempty"`
	BoostAdded                    *ChatBoostAdded                `json:"boost_added,omitempty"`
	ChatBackgroundSet             *ChatBackground                `json:"chat_background_set,omitempty"`
	ForumTopicCreated             *ForumTopicCreated             `json:"forum_topic_created,omitempty"`
	ForumTopicEdited              *ForumTopicEdited              `json:"forum_topic_edited,omitempty"`
	ForumTopicClosed              *ForumTopicClosed              `json:"forum_topic_closed,omitempty"`
	ForumTopicReopened            *ForumTopicReopened            `json:"forum_topic_reopened,omitempty"`
	GeneralForumTopicHidden       *GeneralForumTopicHidden       `json:"general_forum_topic_hidden,omitempty"`
	GeneralForumTopicUnhidden     *GeneralForumTopicUnhidden     `json:"general_forum_topic_unhidden,omitempty"`
	ReplyMarkup                   *InlineKeyboardMarkup          `json:"reply_markup,omitempty"`
}

// IsCommand сообщает, начинается ли текст сообщения с команды бота.
func (m *Message) IsCommand() bool {
	if len(m.Entities) == 0 {
		return false
	}

	e := m.Entities[0]

	return e.Offset == 0 && e.Type == EntityBotCommand
}

// Типы сущностей в тексте сообщения.
const (
	EntityMention       = "mention"
	EntityHashtag       = "hashtag"
	EntityCashtag       = "cashtag"
	EntityBotCommand    = "bot_command"
	EntityURL           = "url"
	EntityEmail         = "email"
	EntityPhoneNumber   = "phone_number"
	EntityBold          = "bold"
	EntityItalic        = "italic"
	EntityUnderline     = "underline"
	EntityStrikethrough = "strikethrough"
	EntitySpoiler       = "spoiler"
	EntityBlockquote    = "blockquote"
	EntityCode          = "code"
	EntityPre           = "pre"
	EntityTextLink      = "text_link"
	EntityTextMention   = "text_mention"
	EntityCustomEmoji   = "custom_emoji"
)

// MessageEntity — особый фрагмент текста. Offset и Length считаются в UTF-16.
type MessageEntity struct {
	Type          string        `json:"type"`
	Offset        int           `json:"offset"`
	Length        int           `json:"length"`
	URL           string        `json:"url,omitempty"`
	User          *User         `json:"user,omitempty"`
	Language      string        `json:"language,omitempty"`
	CustomEmojiID CustomEmojiID `json:"custom_emoji_id,omitempty"`
}

// TextQuote — цитата из сообщения, на которое отвечают.
type TextQuote struct {
	Text     string          `json:"text"`
	Entities []MessageEntity `json:"entities,omitempty"`
	Position int             `json:"position"`
	IsManual bool            `json:"is_manual,omitempty"`
}

// ExternalReplyInfo — сообщение, на которое отвечают, из другого чата или топика.
type ExternalReplyInfo struct {
	Origin             MessageOrigin       `json:"origin"`
	Chat               *Chat               `json:"chat,omitempty"`
	MessageID          MessageID           `json:"message_id,omitempty"`
	LinkPreviewOptions *LinkPreviewOptions `json:"link_preview_options,omitempty"`
	Animation          *Animation          `json:"animation,omitempty"`
	Audio              *Audio              `json:"audio,omitempty"`
	Document           *Document           `json:"document,omitempty"`
	PaidMedia          *PaidMediaInfo      `json:"paid_media,omitempty"`
	Photo              []PhotoSize         `json:"photo,omitempty"`
	Sticker            *Sticker            `json:"sticker,omitempty"`
	Story              *Story              `json:"story,omitempty"`
	Video              *Video              `json:"video,omitempty"`
	VideoNote          *VideoNote          `json:"video_note,omitempty"`
	Voice              *Voice              `json:"voice,omitempty"`
	HasMediaSpoiler    bool                `json:"has_media_spoiler,omitempty"`
	Contact            *Contact            `json:"contact,omitempty"`
	Dice               *Dice               `json:"dice,omitempty"`
	Invoice            *Invoice            `json:"invoice,omitempty"`
	Location           *Location           `json:"location,omitempty"`
	Poll               *Poll               `json:"poll,omitempty"`
	Venue              *Venue              `json:"venue,omitempty"`
}

// ReplyParameters описывает, на какое сообщение отвечает отправляемое.
type ReplyParameters struct {
	MessageID                MessageID       `json:"message_id"`
	ChatID                   *ChatID         `json:"chat_id,omitempty"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	Quote                    string          `json:"quote,omitempty"`
	QuoteParseMode           string          `json:"quote_parse_mode,omitempty"`
	QuoteEntities            []MessageEntity `json:"quote_entities,omitempty"`
	QuotePosition            int             `json:"quote_position,omitempty"`
}

// LinkPreviewOptions управляет предпросмотром ссылок.
type LinkPreviewOptions struct {
	IsDisabled       bool   `json:"is_disabled,omitempty"`
	URL              string `json:"url,omitempty"`
	PreferSmallMedia bool   `json:"prefer_small_media,omitempty"`
	PreferLargeMedia bool   `json:"prefer_large_media,omitempty"`
	ShowAboveText    bool   `json:"show_above_text,omitempty"`
}

// MessageAutoDeleteTimerChanged — изменение таймера автоудаления в чате.
type MessageAutoDeleteTimerChanged struct {
	MessageAutoDeleteTime wire.Seconds `json:"message_auto_delete_time"`
}

package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// ReactionType — тип реакции на сообщение.
// See https://core.telegram.org/bots/api#reactiontype
type ReactionType struct {
	Value ReactionTypeVariant
}

// ReactionTypeVariant реализуют *ReactionTypeEmoji, *ReactionTypeCustomEmoji и *ReactionTypePaid.
type ReactionTypeVariant interface {
	isReactionType()
}

// ReactionTypeEmoji — реакция обычным эмодзи.
type ReactionTypeEmoji struct {
	Emoji string `json:"emoji"`
}

// ReactionTypeCustomEmoji — реакция пользовательским эмодзи.
type ReactionTypeCustomEmoji struct {
	CustomEmojiID CustomEmojiID `json:"custom_emoji_id"`
}

// ReactionTypePaid — платная реакция.
type ReactionTypePaid struct{}

func (*ReactionTypeEmoji) isReactionType()       {}
func (*ReactionTypeCustomEmoji) isReactionType() {}
func (*ReactionTypePaid) isReactionType()        {}

var reactionTypes = wire.NewSet[ReactionTypeVariant]("reaction type", "type").
	Register("emoji", func() ReactionTypeVariant { return &ReactionTypeEmoji{} }).
	Register("custom_emoji", func() ReactionTypeVariant { return &ReactionTypeCustomEmoji{} }).
	Register("paid", func() ReactionTypeVariant { return &ReactionTypePaid{} })

// NewEmojiReaction возвращает реакцию эмодзи.
func NewEmojiReaction(emoji string) ReactionType {
	return ReactionType{Value: &ReactionTypeEmoji{Emoji: emoji}}
}

// NewCustomEmojiReaction возвращает реакцию пользовательским эмодзи.
func NewCustomEmojiReaction(id CustomEmojiID) ReactionType {
	return ReactionType{Value: &ReactionTypeCustomEmoji{CustomEmojiID: id}}
}

// NewPaidReaction возвращает платную реакцию.
func NewPaidReaction() ReactionType {
	return ReactionType{Value: &ReactionTypePaid{}}
}

// Type возвращает значение дискриминатора.
func (r ReactionType) Type() string {
	tag, _ := reactionTypes.Tag(r.Value)
	return tag
}

func (r ReactionType) MarshalJSON() ([]byte, error) {
	return reactionTypes.Encode(r.Value)
}

func (r *ReactionType) UnmarshalJSON(data []byte) error {
	v, err := reactionTypes.Decode(data)
	if err != nil {
		return err
	}
	r.Value = v

	return nil
}

// ReactionCount — реакция и число пользователей, поставивших её.
type ReactionCount struct {
	Type       ReactionType `json:"type"`
	TotalCount int          `json:"total_count"`
}

// MessageReactionUpdated — изменение реакции пользователя на сообщение.
type MessageReactionUpdated struct {
	Chat        Chat           `json:"chat"`
	MessageID   MessageID      `json:"message_id"`
	User        *User          `json:"user,omitempty"`
	ActorChat   *Chat          `json:"actor_chat,omitempty"`
	Date        wire.Timestamp `json:"date"`
	OldReaction []ReactionType `json:"old_reaction"`
	NewReaction []ReactionType `json:"new_reaction"`
}

// MessageReactionCountUpdated — изменение анонимных реакций на сообщение.
type MessageReactionCountUpdated struct {
	Chat      Chat            `json:"chat"`
	MessageID MessageID       `json:"message_id"`
	Date      wire.Timestamp  `json:"date"`
	Reactions []ReactionCount `json:"reactions"`
}

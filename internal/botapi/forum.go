package botapi

// ForumTopic — топик форума.
type ForumTopic struct {
	MessageThreadID   int64         `json:"message_thread_id"`
	Name              string        `json:"name"`
	IconColor         int           `json:"icon_color"`
	IconCustomEmojiID CustomEmojiID `json:"icon_custom_emoji_id,omitempty"`
}

// ForumTopicCreated — служебное сообщение о создании топика.
type ForumTopicCreated struct {
	Name              string        `json:"name"`
	IconColor         int           `json:"icon_color"`
	IconCustomEmojiID CustomEmojiID `json:"icon_custom_emoji_id,omitempty"`
}

// ForumTopicEdited — служебное сообщение об изменении топика.
// Пустая строка в IconCustomEmojiID означает, что иконку убрали, nil — что не меняли.
type ForumTopicEdited struct {
	Name              string         `json:"name,omitempty"`
	IconCustomEmojiID *CustomEmojiID `json:"icon_custom_emoji_id,omitempty"`
}

type ForumTopicClosed struct{}

type ForumTopicReopened struct{}

type GeneralForumTopicHidden struct{}

type GeneralForumTopicUnhidden struct{}

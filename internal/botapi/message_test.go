package botapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/botapi/internal/wire"
)

const replyPayload = `{
	"message_id": 101,
	"message_thread_id": 5,
	"from": {"id": 1, "is_bot": false, "first_name": "Ann", "last_name": "Lee", "language_code": "en"},
	"date": 1700000000,
	"edit_date": 1700000060,
	"chat": {"id": -1001, "type": "supergroup", "title": "Gophers", "is_forum": true},
	"is_topic_message": true,
	"reply_to_message": {
		"message_id": 100,
		"from": {"id": 2, "is_bot": true, "first_name": "Bot", "username": "gopher_bot"},
		"date": 1699999990,
		"chat": {"id": -1001, "type": "supergroup", "title": "Gophers", "is_forum": true},
		"text": "/start",
		"entities": [{"type": "bot_command", "offset": 0, "length": 6}]
	},
	"external_reply": {
		"origin": {"type": "channel", "date": 1699990000, "chat": {"id": -1002, "type": "channel", "title": "News"}, "message_id": 9},
		"chat": {"id": -1002, "type": "channel", "title": "News"},
		"message_id": 9
	},
	"quote": {"text": "quoted", "position": 3},
	"text": "reply with photo",
	"photo": [
		{"file_id": "p1", "file_unique_id": "u1", "width": 90, "height": 90},
		{"file_id": "p2", "file_unique_id": "u2", "width": 320, "height": 320, "file_size": 12000}
	],
	"video": {"file_id": "v1", "file_unique_id": "vu1", "width": 640, "height": 480, "duration": 15},
	"reply_markup": {"inline_keyboard": [[{"text": "Open", "url": "https://go.dev"}]]},
	"some_future_field": {"nested": [1, 2, 3]}
}`

func TestMessage_Decode(t *testing.T) {
	var msg Message
	require.NoError(t, wire.Unmarshal([]byte(replyPayload), &msg))

	assert.Equal(t, MessageID(101), msg.MessageID)
	assert.Equal(t, int64(1700000000), msg.Date.EpochSeconds())
	require.NotNil(t, msg.EditDate)
	assert.Equal(t, int64(1700000060), msg.EditDate.EpochSeconds())
	assert.Equal(t, "Gophers", msg.Chat.Title)
	assert.True(t, msg.Chat.IsForum)

	require.NotNil(t, msg.From)
	assert.Equal(t, "Ann Lee", msg.From.FullName())
	assert.Equal(t, LanguageCode("en"), msg.From.LanguageCode)

	require.NotNil(t, msg.ReplyToMessage)
	assert.True(t, msg.ReplyToMessage.IsCommand())
	assert.Nil(t, msg.ReplyToMessage.ReplyToMessage)
	assert.False(t, msg.IsCommand())

	require.NotNil(t, msg.ExternalReply)
	origin, ok := msg.ExternalReply.Origin.Value.(*MessageOriginChannel)
	require.True(t, ok)
	assert.Equal(t, "News", origin.Chat.Title)

	require.Len(t, msg.Photo, 2)
	assert.Equal(t, int64(12000), msg.Photo[1].FileSize)
	require.NotNil(t, msg.Video)
	assert.Equal(t, "15s", msg.Video.Duration.String())

	require.NotNil(t, msg.ReplyMarkup)
	assert.Equal(t, "https://go.dev", msg.ReplyMarkup.InlineKeyboard[0][0].URL)
}

func TestMessage_AbsentOptionalFields(t *testing.T) {
	var msg Message
	require.NoError(t, wire.Unmarshal([]byte(`{"message_id": 1, "date": 1, "chat": {"id": 1, "type": "private"}}`), &msg))

	assert.Nil(t, msg.From)
	assert.Nil(t, msg.ReplyToMessage)
	assert.Nil(t, msg.ForwardOrigin)
	assert.Nil(t, msg.PinnedMessage)
	assert.Nil(t, msg.EditDate)
	assert.Nil(t, msg.Entities)
	assert.Nil(t, msg.Photo)
	assert.Nil(t, msg.ForumTopicClosed)
	assert.False(t, msg.HasProtectedContent)
	assert.Empty(t, msg.Text)
}

func TestMessage_RoundTrip(t *testing.T) {
	var msg Message
	require.NoError(t, wire.Unmarshal([]byte(replyPayload), &msg))

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "some_future_field")

	var decoded Message
	require.NoError(t, wire.Unmarshal(data, &decoded))
	assert.Equal(t, msg, decoded)
}

func TestMessage_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{
			name:  "message id",
			data:  `{"date": 1, "chat": {"id": 1, "type": "private"}}`,
			field: "message_id",
		},
		{
			name:  "chat type",
			data:  `{"message_id": 1, "date": 1, "chat": {"id": 1}}`,
			field: "chat.type",
		},
		{
			name:  "reply chat",
			data:  `{"message_id": 2, "date": 1, "chat": {"id": 1, "type": "private"}, "reply_to_message": {"message_id": 1, "date": 1}}`,
			field: "reply_to_message.chat",
		},
		{
			name:  "external reply origin",
			data:  `{"message_id": 2, "date": 1, "chat": {"id": 1, "type": "private"}, "external_reply": {"message_id": 1}}`,
			field: "external_reply.origin",
		},
		{
			name:  "photo size",
			data:  `{"message_id": 2, "date": 1, "chat": {"id": 1, "type": "private"}, "photo": [{"file_id": "a", "file_unique_id": "b", "width": 1}]}`,
			field: "photo[0].height",
		},
		{
			name:  "origin user",
			data:  `{"message_id": 2, "date": 1, "chat": {"id": 1, "type": "private"}, "forward_origin": {"type": "user", "date": 1}}`,
			field: "forward_origin.sender_user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg Message
			err := wire.Unmarshal([]byte(tt.data), &msg)
			require.ErrorIs(t, err, wire.ErrMissingField)

			var decodeErr *wire.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.field, decodeErr.Field)
		})
	}
}

func TestMessage_TypeMismatch(t *testing.T) {
	var msg Message
	err := wire.Unmarshal([]byte(`{"message_id": 1, "date": "yesterday", "chat": {"id": 1, "type": "private"}}`), &msg)
	require.ErrorIs(t, err, wire.ErrTypeMismatch)

	var decodeErr *wire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "date", decodeErr.Field)
}

func TestForumTopicEdited_IconRemoved(t *testing.T) {
	var edited ForumTopicEdited
	require.NoError(t, wire.Unmarshal([]byte(`{"icon_custom_emoji_id": ""}`), &edited))
	require.NotNil(t, edited.IconCustomEmojiID)
	assert.Empty(t, *edited.IconCustomEmojiID)

	var untouched ForumTopicEdited
	require.NoError(t, wire.Unmarshal([]byte(`{"name": "Renamed"}`), &untouched))
	assert.Nil(t, untouched.IconCustomEmojiID)
	assert.Equal(t, "Renamed", untouched.Name)
}

func TestUpdate_Kind(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind string
	}{
		{
			name: "message",
			data: `{"update_id": 1, "message": {"message_id": 1, "date": 1, "chat": {"id": 1, "type": "private"}, "from": {"id": 5, "is_bot": false, "first_name": "A"}}}`,
			kind: "message",
		},
		{
			name: "callback query",
			data: `{"update_id": 2, "callback_query": {"id": "q", "from": {"id": 5, "is_bot": false, "first_name": "A"}, "chat_instance": "c"}}`,
			kind: "callback_query",
		},
		{
			name: "unknown",
			data: `{"update_id": 3, "business_connection": {"id": "x"}}`,
			kind: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u Update
			require.NoError(t, wire.Unmarshal([]byte(tt.data), &u))
			assert.Equal(t, tt.kind, u.Kind())

			if tt.kind == "" {
				assert.Nil(t, u.SentFrom())
				return
			}
			require.NotNil(t, u.SentFrom())
			assert.Equal(t, UserID(5), u.SentFrom().ID)
		})
	}
}

func TestResponseParameters_RetryAfter(t *testing.T) {
	var params ResponseParameters
	require.NoError(t, wire.Unmarshal([]byte(`{"retry_after": 30}`), &params))
	require.NotNil(t, params.RetryAfter)
	assert.Equal(t, int64(30), params.RetryAfter.Int64())
	assert.Zero(t, params.MigrateToChatID)
}

func TestDecode_Kinds(t *testing.T) {
	v, err := Decode("user", []byte(`{"id": 1, "is_bot": true, "first_name": "Bot"}`))
	require.NoError(t, err)
	assert.Equal(t, &User{ID: 1, IsBot: true, FirstName: "Bot"}, v)

	v, err = Decode("updates", []byte(`[{"update_id": 1}, {"update_id": 2}]`))
	require.NoError(t, err)
	updates, ok := v.(*[]Update)
	require.True(t, ok)
	assert.Len(t, *updates, 2)

	_, err = Decode("sticker_set", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownKind)

	assert.Contains(t, Kinds(), "maybe_inaccessible_message")
	assert.IsIncreasing(t, Kinds())
}

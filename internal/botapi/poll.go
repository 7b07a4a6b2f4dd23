package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// Типы опросов.
const (
	PollTypeRegular = "regular"
	PollTypeQuiz    = "quiz"
)

// PollOption — вариант ответа с числом голосов.
type PollOption struct {
	Text         string          `json:"text"`
	TextEntities []MessageEntity `json:"text_entities,omitempty"`
	VoterCount   int             `json:"voter_count"`
}

// Poll — опрос или викторина.
type Poll struct {
	ID                    string          `json:"id"`
	Question              string          `json:"question"`
	QuestionEntities      []MessageEntity `json:"question_entities,omitempty"`
	Options               []PollOption    `json:"options"`
	TotalVoterCount       int             `json:"total_voter_count"`
	IsClosed              bool            `json:"is_closed"`
	IsAnonymous           bool            `json:"is_anonymous"`
	Type                  string          `json:"type"`
	AllowsMultipleAnswers bool            `json:"allows_multiple_answers"`
	CorrectOptionID       *int            `json:"correct_option_id,omitempty"`
	Explanation           string          `json:"explanation,omitempty"`
	ExplanationEntities   []MessageEntity `json:"explanation_entities,omitempty"`
	OpenPeriod            *wire.Seconds   `json:"open_period,omitempty"`
	CloseDate             *wire.Timestamp `json:"close_date,omitempty"`
}

// PollAnswer — ответ пользователя в неанонимном опросе. Пустой OptionIDs означает
// отзыв голоса.
type PollAnswer struct {
	PollID    string `json:"poll_id"`
	VoterChat *Chat  `json:"voter_chat,omitempty"`
	User      *User  `json:"user,omitempty"`
	OptionIDs []int  `json:"option_ids"`
}

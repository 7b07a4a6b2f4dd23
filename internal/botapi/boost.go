package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// ChatBoostSource — источник буста чата. Дискриминатор — поле source.
// See https://core.telegram.org/bots/api#chatboostsource
type ChatBoostSource struct {
	Value ChatBoostSourceVariant
}

type ChatBoostSourceVariant interface {
	isChatBoostSource()
}

// ChatBoostSourcePremium — буст от подписчика Telegram Premium.
type ChatBoostSourcePremium struct {
	User User `json:"user"`
}

// ChatBoostSourceGiftCode — буст из подарочного кода Premium.
type ChatBoostSourceGiftCode struct {
	User User `json:"user"`
}

// ChatBoostSourceGiveaway — буст из розыгрыша.
type ChatBoostSourceGiveaway struct {
	GiveawayMessageID MessageID `json:"giveaway_message_id"`
	User              *User     `json:"user,omitempty"`
	PrizeStarCount    int       `json:"prize_star_count,omitempty"`
	IsUnclaimed       bool      `json:"is_unclaimed,omitempty"`
}

func (*ChatBoostSourcePremium) isChatBoostSource()  {}
func (*ChatBoostSourceGiftCode) isChatBoostSource() {}
func (*ChatBoostSourceGiveaway) isChatBoostSource() {}

var chatBoostSources = wire.NewSet[ChatBoostSourceVariant]("chat boost source", "source").
	Register("premium", func() ChatBoostSourceVariant { return &ChatBoostSourcePremium{} }).
	Register("gift_code", func() ChatBoostSourceVariant { return &ChatBoostSourceGiftCode{} }).
	Register("giveaway", func() ChatBoostSourceVariant { return &ChatBoostSourceGiveaway{} })

func (s ChatBoostSource) Source() string {
	tag, _ := chatBoostSources.Tag(s.Value)
	return tag
}

func (s ChatBoostSource) MarshalJSON() ([]byte, error) {
	return chatBoostSources.Encode(s.Value)
}

func (s *ChatBoostSource) UnmarshalJSON(data []byte) error {
	v, err := chatBoostSources.Decode(data)
	if err != nil {
		return err
	}
	s.Value = v

	return nil
}

// ChatBoost — буст, добавленный чату.
type ChatBoost struct {
	BoostID        string          `json:"boost_id"`
	AddDate        wire.Timestamp  `json:"add_date"`
	ExpirationDate wire.Timestamp  `json:"expiration_date"`
	Source         ChatBoostSource `json:"source"`
}

// ChatBoostUpdated — буст добавлен или изменён.
type ChatBoostUpdated struct {
	Chat  Chat      `json:"chat"`
	Boost ChatBoost `json:"boost"`
}

// ChatBoostRemoved — буст отозван.
type ChatBoostRemoved struct {
	Chat       Chat            `json:"chat"`
	BoostID    string          `json:"boost_id"`
	RemoveDate wire.Timestamp  `json:"remove_date"`
	Source     ChatBoostSource `json:"source"`
}

// ChatBoostAdded — служебное сообщение о бустах от пользователя.
type ChatBoostAdded struct {
	BoostCount int `json:"boost_count"`
}

package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// PaidMedia — платный медиафайл.
// See https://core.telegram.org/bots/api#paidmedia
type PaidMedia struct {
	Value PaidMediaVariant
}

type PaidMediaVariant interface {
	isPaidMedia()
}

// PaidMediaPreview — файл ещё не оплачен, доступно только превью.
type PaidMediaPreview struct {
	Width    int           `json:"width,omitempty"`
	Height   int           `json:"height,omitempty"`
	Duration *wire.Seconds `json:"duration,omitempty"`
}

// PaidMediaPhoto — оплаченная фотография.
type PaidMediaPhoto struct {
	Photo []PhotoSize `json:"photo"`
}

// PaidMediaVideo — оплаченное видео.
type PaidMediaVideo struct {
	Video Video `json:"video"`
}

func (*PaidMediaPreview) isPaidMedia() {}
func (*PaidMediaPhoto) isPaidMedia()   {}
func (*PaidMediaVideo) isPaidMedia()   {}

var paidMedia = wire.NewSet[PaidMediaVariant]("paid media", "type").
	Register("preview", func() PaidMediaVariant { return &PaidMediaPreview{} }).
	Register("photo", func() PaidMediaVariant { return &PaidMediaPhoto{} }).
	Register("video", func() PaidMediaVariant { return &PaidMediaVideo{} })

func (m PaidMedia) MarshalJSON() ([]byte, error) {
	return paidMedia.Encode(m.Value)
}

func (m *PaidMedia) UnmarshalJSON(data []byte) error {
	v, err := paidMedia.Decode(data)
	if err != nil {
		return err
	}
	m.Value = v

	return nil
}

// PaidMediaInfo — набор платных медиафайлов и их цена в Stars.
type PaidMediaInfo struct {
	StarCount int         `json:"star_count"`
	PaidMedia []PaidMedia `json:"paid_media"`
}

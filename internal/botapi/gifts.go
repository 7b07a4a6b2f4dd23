package botapi

// Gift — обычный подарок за Telegram Stars.
type Gift struct {
	ID               string  `json:"id"`
	Sticker          Sticker `json:"sticker"`
	StarCount        int     `json:"star_count"`
	UpgradeStarCount int     `json:"upgrade_star_count,omitempty"`
	TotalCount       int     `json:"total_count,omitempty"`
	RemainingCount   int     `json:"remaining_count,omitempty"`
	PublisherChat    *Chat   `json:"publisher_chat,omitempty"`
}

// Gifts — список подарков, доступных для отправки.
type Gifts struct {
	Gifts []Gift `json:"gifts"`
}

// UniqueGiftModel — модель уникального подарка.
type UniqueGiftModel struct {
	Name           string         `json:"name"`
	Sticker        Sticker        `json:"sticker"`
	RarityPerMille RarityPerMille `json:"rarity_per_mille"`
}

// UniqueGiftSymbol — символ уникального подарка.
type UniqueGiftSymbol struct {
	Name           string         `json:"name"`
	Sticker        Sticker        `json:"sticker"`
	RarityPerMille RarityPerMille `json:"rarity_per_mille"`
}

// UniqueGiftBackdropColors — цвета фона в формате RGB24.
type UniqueGiftBackdropColors struct {
	CenterColor int `json:"center_color"`
	EdgeColor   int `json:"edge_color"`
	SymbolColor int `json:"symbol_color"`
	TextColor   int `json:"text_color"`
}

// UniqueGiftBackdrop — фон уникального подарка.
type UniqueGiftBackdrop struct {
	Name           string                   `json:"name"`
	Colors         UniqueGiftBackdropColors `json:"colors"`
	RarityPerMille RarityPerMille           `json:"rarity_per_mille"`
}

// UniqueGift — уникальный подарок, полученный улучшением обычного.
type UniqueGift struct {
	BaseName      string             `json:"base_name"`
	Name          string             `json:"name"`
	Number        int                `json:"number"`
	Model         UniqueGiftModel    `json:"model"`
	Symbol        UniqueGiftSymbol   `json:"symbol"`
	Backdrop      UniqueGiftBackdrop `json:"backdrop"`
	PublisherChat *Chat              `json:"publisher_chat,omitempty"`
}

// GiftInfo — служебное сообщение об отправленном или полученном подарке.
type GiftInfo struct {
	Gift                    Gift            `json:"gift"`
	OwnedGiftID             string          `json:"owned_gift_id,omitempty"`
	ConvertStarCount        int             `json:"convert_star_count,omitempty"`
	PrepaidUpgradeStarCount int             `json:"prepaid_upgrade_star_count,omitempty"`
	CanBeUpgraded           bool            `json:"can_be_upgraded,omitempty"`
	Text                    string          `json:"text,omitempty"`
	Entities                []MessageEntity `json:"entities,omitempty"`
	IsPrivate               bool            `json:"is_private,omitempty"`
}

// Происхождение уникального подарка.
const (
	UniqueGiftOriginUpgrade  = "upgrade"
	UniqueGiftOriginTransfer = "transfer"
	UniqueGiftOriginResale   = "resale"
)

// UniqueGiftInfo — служебное сообщение об уникальном подарке.
type UniqueGiftInfo struct {
	Gift              UniqueGift `json:"gift"`
	Origin            string     `json:"origin"`
	OwnedGiftID       string     `json:"owned_gift_id,omitempty"`
	TransferStarCount int        `json:"transfer_star_count,omitempty"`
}

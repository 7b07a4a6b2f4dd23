package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// PhotoSize — один размер фотографии или превью.
type PhotoSize struct {
	FileID       FileID       `json:"file_id"`
	FileUniqueID FileUniqueID `json:"file_unique_id"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	FileSize     int64        `json:"file_size,omitempty"`
}

type Animation struct {
	FileID       FileID       `json:"file_id"`
	FileUniqueID FileUniqueID `json:"file_unique_id"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	Duration     wire.Seconds `json:"duration"`
	Thumbnail    *PhotoSize   `json:"thumbnail,omitempty"`
	FileName     string       `json:"file_name,omitempty"`
	MimeType     string       `json:"mime_type,omitempty"`
	FileSize     int64        `json:"file_size,omitempty"`
}

type Audio struct {
	FileID       FileID       `json:"file_id"`
	FileUniqueID FileUniqueID `json:"file_unique_id"`
	Duration     wire.Seconds `json:"duration"`
	Performer    string       `json:"performer,omitempty"`
	Title        string       `json:"title,omitempty"`
	FileName     string       `json:"file_name,omitempty"`
	MimeType     string       `json:"mime_type,omitempty"`
	FileSize     int64        `json:"file_size,omitempty"`
	Thumbnail    *PhotoSize   `json:"thumbnail,omitempty"`
}

type Document struct {
	FileID       FileID       `json:"file_id"`
	FileUniqueID FileUniqueID `json:"file_unique_id"`
	Thumbnail    *PhotoSize   `json:"thumbnail,omitempty"`
	FileName     string       `json:"file_name,omitempty"`
	MimeType     string       `json:"mime_type,omitempty"`
	FileSize     int64        `json:"file_size,omitempty"`
}

type Video struct {
	FileID         FileID        `json:"file_id"`
	FileUniqueID   FileUniqueID  `json:"file_unique_id"`
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Duration       wire.Seconds  `json:"duration"`
	Thumbnail      *PhotoSize    `json:"thumbnail,omitempty"`
	Cover          []PhotoSize   `json:"cover,omitempty"`
	StartTimestamp *wire.Seconds `json:"start_timestamp,omitempty"`
	FileName       string        `json:"file_name,omitempty"`
	MimeType       string        `json:"mime_type,omitempty"`
	FileSize       int64         `json:"file_size,omitempty"`
}

type VideoNote struct {
	FileID       FileID       `json:"file_id"`
	FileUniqueID FileUniqueID `json:"file_unique_id"`
	Length       int          `json:"length"`
	Duration     wire.Seconds `json:"duration"`
	Thumbnail    *PhotoSize   `json:"thumbnail,omitempty"`
	FileSize     int64        `json:"file_size,omitempty"`
}

type Voice struct {
	FileID       FileID       `json:"file_id"`
	FileUniqueID FileUniqueID `json:"file_unique_id"`
	Duration     wire.Seconds `json:"duration"`
	MimeType     string       `json:"mime_type,omitempty"`
	FileSize     int64        `json:"file_size,omitempty"`
}

// Типы стикеров.
const (
	StickerTypeRegular     = "regular"
	StickerTypeMask        = "mask"
	StickerTypeCustomEmoji = "custom_emoji"
)

// Sticker — стикер. Поле type здесь обычная строка, а не дискриминатор:
// набор полей от него не зависит.
type Sticker struct {
	FileID           FileID        `json:"file_id"`
	FileUniqueID     FileUniqueID  `json:"file_unique_id"`
	Type             string        `json:"type"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	IsAnimated       bool          `json:"is_animated"`
	IsVideo          bool          `json:"is_video"`
	Thumbnail        *PhotoSize    `json:"thumbnail,omitempty"`
	Emoji            string        `json:"emoji,omitempty"`
	SetName          string        `json:"set_name,omitempty"`
	PremiumAnimation *File         `json:"premium_animation,omitempty"`
	MaskPosition     *MaskPosition `json:"mask_position,omitempty"`
	CustomEmojiID    CustomEmojiID `json:"custom_emoji_id,omitempty"`
	NeedsRepainting  bool          `json:"needs_repainting,omitempty"`
	FileSize         int64         `json:"file_size,omitempty"`
}

// MaskPosition — положение маски на лице.
type MaskPosition struct {
	Point  string  `json:"point"`
	XShift float64 `json:"x_shift"`
	YShift float64 `json:"y_shift"`
	Scale  float64 `json:"scale"`
}

type Contact struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	UserID      UserID `json:"user_id,omitempty"`
	VCard       string `json:"vcard,omitempty"`
}

// Dice — анимированный эмодзи со случайным значением.
type Dice struct {
	Emoji string `json:"emoji"`
	Value int    `json:"value"`
}

type Location struct {
	Latitude             float64       `json:"latitude"`
	Longitude            float64       `json:"longitude"`
	HorizontalAccuracy   float64       `json:"horizontal_accuracy,omitempty"`
	LivePeriod           *wire.Seconds `json:"live_period,omitempty"`
	Heading              int           `json:"heading,omitempty"`
	ProximityAlertRadius int           `json:"proximity_alert_radius,omitempty"`
}

type Venue struct {
	Location        Location `json:"location"`
	Title           string   `json:"title"`
	Address         string   `json:"address"`
	FoursquareID    string   `json:"foursquare_id,omitempty"`
	FoursquareType  string   `json:"foursquare_type,omitempty"`
	GooglePlaceID   string   `json:"google_place_id,omitempty"`
	GooglePlaceType string   `json:"google_place_type,omitempty"`
}

// File — файл, готовый к скачиванию. Ссылка строится из FilePath и живёт не меньше часа.
type File struct {
	FileID       FileID       `json:"file_id"`
	FileUniqueID FileUniqueID `json:"file_unique_id"`
	FileSize     int64        `json:"file_size,omitempty"`
	FilePath     string       `json:"file_path,omitempty"`
}

// Story — пересланная история.
type Story struct {
	Chat Chat  `json:"chat"`
	ID   int64 `json:"id"`
}

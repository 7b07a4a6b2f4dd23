package botapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/letsssgooo/botapi/internal/wire"
)

// UserID — идентификатор пользователя или бота.
type UserID int64

// MessageID — идентификатор сообщения внутри чата.
type MessageID int64

// FileID — идентификатор файла для скачивания или повторной отправки.
type FileID string

// FileUniqueID — постоянный идентификатор файла, одинаковый для всех ботов.
// Не подходит для скачивания.
type FileUniqueID string

// CustomEmojiID — идентификатор пользовательского эмодзи.
type CustomEmojiID string

// ErrInvalidValue возвращается методами Validate обёрток над примитивами.
var ErrInvalidValue = errors.New("invalid value")

// LanguageCode — языковой тег IETF, например "en" или "pt-BR".
type LanguageCode string

// Tag разбирает код как языковой тег.
func (c LanguageCode) Tag() (language.Tag, error) {
	tag, err := language.Parse(string(c))
	if err != nil {
		return language.Und, fmt.Errorf("language code %q: %w", string(c), ErrInvalidValue)
	}

	return tag, nil
}

// Validate проверяет, что код является корректным языковым тегом.
func (c LanguageCode) Validate() error {
	_, err := c.Tag()
	return err
}

// CountryCode — двухбуквенный код страны ISO 3166-1 alpha-2.
type CountryCode string

// Region разбирает код как регион.
func (c CountryCode) Region() (language.Region, error) {
	if len(c) != 2 {
		return language.Region{}, fmt.Errorf("country code %q: %w", string(c), ErrInvalidValue)
	}

	region, err := language.ParseRegion(string(c))
	if err != nil {
		return language.Region{}, fmt.Errorf("country code %q: %w", string(c), ErrInvalidValue)
	}

	return region, nil
}

// Validate проверяет код страны.
func (c CountryCode) Validate() error {
	_, err := c.Region()
	return err
}

// CurrencyCode — трёхбуквенный код валюты ISO 4217 или XTR для Telegram Stars.
type CurrencyCode string

// CurrencyStars — внутренняя валюта Telegram, отсутствует в ISO 4217.
const CurrencyStars CurrencyCode = "XTR"

// Unit разбирает код как валюту ISO 4217. Для XTR возвращает ошибку,
// так как такой валюты в стандарте нет.
func (c CurrencyCode) Unit() (currency.Unit, error) {
	unit, err := currency.ParseISO(string(c))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency code %q: %w", string(c), ErrInvalidValue)
	}

	return unit, nil
}

// Validate проверяет код валюты.
func (c CurrencyCode) Validate() error {
	if c == CurrencyStars {
		return nil
	}

	_, err := c.Unit()
	return err
}

// RarityPerMille — сколько уникальных подарков из 1000 получают данный атрибут.
type RarityPerMille int

// Validate проверяет, что значение лежит в диапазоне 0..1000.
func (r RarityPerMille) Validate() error {
	if r < 0 || r > 1000 {
		return fmt.Errorf("rarity %d per mille: %w", int(r), ErrInvalidValue)
	}

	return nil
}

// Percent возвращает редкость в процентах.
func (r RarityPerMille) Percent() float64 {
	return float64(r) / 10
}

// ChatID адресует чат в запросах: числовым идентификатором или @username
// публичного канала или супергруппы.
type ChatID struct {
	ID       int64
	Username string
}

// ChatIDFromInt создаёт ChatID по числовому идентификатору.
func ChatIDFromInt(id int64) ChatID {
	return ChatID{ID: id}
}

// ChatIDFromUsername создаёт ChatID по имени канала, с "@" или без.
func ChatIDFromUsername(username string) ChatID {
	return ChatID{Username: "@" + strings.TrimPrefix(username, "@")}
}

// ParseChatID разбирает строку из командной строки или конфигурации.
func ParseChatID(s string) (ChatID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ChatID{}, fmt.Errorf("chat id: %w", ErrInvalidValue)
	}

	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ChatIDFromInt(id), nil
	}

	if !strings.HasPrefix(s, "@") {
		return ChatID{}, fmt.Errorf("chat id %q: %w", s, ErrInvalidValue)
	}

	return ChatIDFromUsername(s), nil
}

func (c ChatID) String() string {
	if c.Username != "" {
		return c.Username
	}

	return strconv.FormatInt(c.ID, 10)
}

func (c ChatID) MarshalJSON() ([]byte, error) {
	if c.Username != "" {
		return json.Marshal(c.Username)
	}

	return strconv.AppendInt(nil, c.ID, 10), nil
}

func (c *ChatID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var username string
		if err := json.Unmarshal(data, &username); err != nil {
			return wire.TypeMismatch("integer or string", data)
		}
		*c = ChatIDFromUsername(username)
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return wire.TypeMismatch("integer or string", data)
	}
	*c = ChatIDFromInt(id)

	return nil
}

package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// PassportData — данные Telegram Passport, переданные боту пользователем.
type PassportData struct {
	Data        []EncryptedPassportElement `json:"data"`
	Credentials EncryptedCredentials       `json:"credentials"`
}

// PassportFile — файл, загруженный в Telegram Passport.
type PassportFile struct {
	FileID       FileID         `json:"file_id"`
	FileUniqueID FileUniqueID   `json:"file_unique_id"`
	FileSize     int64          `json:"file_size"`
	FileDate     wire.Timestamp `json:"file_date"`
}

// EncryptedPassportElement — зашифрованный документ или поле паспорта.
type EncryptedPassportElement struct {
	Type        string         `json:"type"`
	Data        string         `json:"data,omitempty"`
	PhoneNumber string         `json:"phone_number,omitempty"`
	Email       string         `json:"email,omitempty"`
	Files       []PassportFile `json:"files,omitempty"`
	FrontSide   *PassportFile  `json:"front_side,omitempty"`
	ReverseSide *PassportFile  `json:"reverse_side,omitempty"`
	Selfie      *PassportFile  `json:"selfie,omitempty"`
	Translation []PassportFile `json:"translation,omitempty"`
	Hash        string         `json:"hash"`
}

// EncryptedCredentials — ключи для расшифровки данных паспорта.
type EncryptedCredentials struct {
	Data   string `json:"data"`
	Hash   string `json:"hash"`
	Secret string `json:"secret"`
}

// PassportElementError — ошибка в данных паспорта, которую бот сообщает пользователю.
// Дискриминатор — поле source.
// See https://core.telegram.org/bots/api#passportelementerror
type PassportElementError struct {
	Value PassportElementErrorVariant
}

type PassportElementErrorVariant interface {
	isPassportElementError()
}

type PassportElementErrorDataField struct {
	Type      string `json:"type"`
	FieldName string `json:"field_name"`
	DataHash  string `json:"data_hash"`
	Message   string `json:"message"`
}

type PassportElementErrorFrontSide struct {
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

type PassportElementErrorReverseSide struct {
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

type PassportElementErrorSelfie struct {
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

type PassportElementErrorFile struct {
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

type PassportElementErrorFiles struct {
	Type       string   `json:"type"`
	FileHashes []string `json:"file_hashes"`
	Message    string   `json:"message"`
}

type PassportElementErrorTranslationFile struct {
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

type PassportElementErrorTranslationFiles struct {
	Type       string   `json:"type"`
	FileHashes []string `json:"file_hashes"`
	Message    string   `json:"message"`
}

// PassportElementErrorUnspecified — ошибка без указания конкретного места.
type PassportElementErrorUnspecified struct {
	Type        string `json:"type"`
	ElementHash string `json:"element_hash"`
	Message     string `json:"message"`
}

func (*PassportElementErrorDataField) isPassportElementError()        {}
func (*PassportElementErrorFrontSide) isPassportElementError()        {}
func (*PassportElementErrorReverseSide) isPassportElementError()      {}
func (*PassportElementErrorSelfie) isPassportElementError()           {}
func (*PassportElementErrorFile) isPassportElementError()             {}
func (*PassportElementErrorFiles) isPassportElementError()            {}
func (*PassportElementErrorTranslationFile) isPassportElementError()  {}
func (*PassportElementErrorTranslationFiles) isPassportElementError() {}
func (*PassportElementErrorUnspecified) isPassportElementError()      {}

var passportElementErrors = wire.NewSet[PassportElementErrorVariant]("passport element error", "source").
	Register("data", func() PassportElementErrorVariant { return &PassportElementErrorDataField{} }).
	Register("front_side", func() PassportElementErrorVariant { return &PassportElementErrorFrontSide{} }).
	Register("reverse_side", func() PassportElementErrorVariant { return &PassportElementErrorReverseSide{} }).
	Register("selfie", func() PassportElementErrorVariant { return &PassportElementErrorSelfie{} }).
	Register("file", func() PassportElementErrorVariant { return &PassportElementErrorFile{} }).
	Register("files", func() PassportElementErrorVariant { return &PassportElementErrorFiles{} }).
	Register("translation_file", func() PassportElementErrorVariant { return &PassportElementErrorTranslationFile{} }).
	Register("translation_files", func() PassportElementErrorVariant { return &PassportElementErrorTranslationFiles{} }).
	Register("unspecified", func() PassportElementErrorVariant { return &PassportElementErrorUnspecified{} })

// Source возвращает значение дискриминатора source.
func (e PassportElementError) Source() string {
	tag, _ := passportElementErrors.Tag(e.Value)
	return tag
}

func (e PassportElementError) MarshalJSON() ([]byte, error) {
	return passportElementErrors.Encode(e.Value)
}

func (e *PassportElementError) UnmarshalJSON(data []byte) error {
	v, err := passportElementErrors.Decode(data)
	if err != nil {
		return err
	}
	e.Value = v

	return nil
}

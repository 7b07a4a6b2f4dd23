package wire

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind — категория ошибки декодирования.
type ErrorKind int

const (
	KindMissingField ErrorKind = iota + 1
	KindUnknownVariant
	KindTypeMismatch
	KindMissingDiscriminator
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingField:
		return "missing field"
	case KindUnknownVariant:
		return "unknown variant"
	case KindTypeMismatch:
		return "type mismatch"
	case KindMissingDiscriminator:
		return "missing discriminator"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DecodeError описывает ошибку декодирования одной сущности.
// Ошибка терминальна: повторное декодирование того же payload даст тот же результат.
type DecodeError struct {
	Kind ErrorKind

	// Field — путь до поля от корня декодирования, например "message.chat.id"
	// или "new_reaction[1]".
	Field string

	// Discriminator и Value заполняются для KindUnknownVariant и KindMissingDiscriminator.
	Discriminator string
	Value         string

	// Expected и Actual заполняются для KindTypeMismatch.
	Expected string
	Actual   string
}

// Ошибки-категории для сравнения через errors.Is.
var (
	ErrMissingField         = &DecodeError{Kind: KindMissingField}
	ErrUnknownVariant       = &DecodeError{Kind: KindUnknownVariant}
	ErrTypeMismatch         = &DecodeError{Kind: KindTypeMismatch}
	ErrMissingDiscriminator = &DecodeError{Kind: KindMissingDiscriminator}
)

// ErrUnrepresentable возвращается при кодировании значения, которое нельзя
// передать по проводу без потери точности.
var ErrUnrepresentable = errors.New("value is not representable on the wire")

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("decode: ")
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}

	switch e.Kind {
	case KindMissingField:
		b.WriteString("missing required field")
	case KindUnknownVariant:
		fmt.Fprintf(&b, "unknown variant %s=%q", e.Discriminator, e.Value)
	case KindTypeMismatch:
		fmt.Fprintf(&b, "expected %s, got %s", e.Expected, e.Actual)
	case KindMissingDiscriminator:
		fmt.Fprintf(&b, "missing discriminator %q", e.Discriminator)
	default:
		b.WriteString(e.Kind.String())
	}

	return b.String()
}

// Is сравнивает ошибки по категории.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

func missingField(name string) *DecodeError {
	return &DecodeError{Kind: KindMissingField, Field: name}
}

func typeMismatch(expected string, raw []byte) *DecodeError {
	return &DecodeError{Kind: KindTypeMismatch, Expected: expected, Actual: jsonKind(raw)}
}

// TypeMismatch создаёт ошибку несовпадения типа для сырого значения raw.
// Предназначена для собственных реализаций UnmarshalJSON.
func TypeMismatch(expected string, raw []byte) *DecodeError {
	return typeMismatch(expected, raw)
}

// reroot переносит ошибку вложенного значения под путь родительского поля.
func reroot(err error, segment string) error {
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		return fmt.Errorf("%s: %w", segment, err)
	}

	rerooted := *decodeErr
	rerooted.Field = joinPath(segment, decodeErr.Field)

	return &rerooted
}

func joinPath(parent, child string) string {
	switch {
	case child == "":
		return parent
	case parent == "":
		return child
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// SentinelPair описывает объединение ровно из двух вариантов без явного дискриминатора:
// полного F и заглушки S. Вариант определяется по сырому значению общего поля Field:
// целочисленный литерал, равный нулю (0 или -0), означает заглушку, любое другое
// значение — полный вариант.
//
// Предполагается, что 0 никогда не встречается в поле Field полного варианта.
// Это свойство внешней системы, проверить его здесь нельзя.
type SentinelPair[F, S any] struct {
	Field string
}

// IsSentinel сообщает, содержит ли поле field объекта data целочисленный ноль.
// Значение разбирается только как целый литерал, не как время.
func IsSentinel(data []byte, field string) (bool, error) {
	obj, err := parseObject(bytes.TrimSpace(data))
	if err != nil {
		return false, err
	}

	return sentinelIn(obj, field)
}

func sentinelIn(obj map[string]json.RawMessage, field string) (bool, error) {
	raw, ok := obj[field]
	if !ok || isNull(raw) {
		return false, missingField(field)
	}

	n, err := strconv.ParseInt(string(bytes.TrimSpace(raw)), 10, 64)

	return err == nil && n == 0, nil
}

// Decode выбирает вариант по значению поля Field и декодирует в него объект.
// Ровно одно из возвращаемых значений не nil при отсутствии ошибки.
func (p SentinelPair[F, S]) Decode(data []byte) (*F, *S, error) {
	obj, err := parseObject(bytes.TrimSpace(data))
	if err != nil {
		return nil, nil, err
	}

	stub, err := sentinelIn(obj, p.Field)
	if err != nil {
		return nil, nil, err
	}

	if stub {
		s := new(S)
		if err := decodeObject(obj, data, s); err != nil {
			return nil, nil, err
		}
		return nil, s, nil
	}

	f := new(F)
	if err := decodeObject(obj, data, f); err != nil {
		return nil, nil, err
	}

	return f, nil, nil
}

// Encode кодирует полный вариант как есть, а заглушку дополняет полем Field со значением 0.
func (p SentinelPair[F, S]) Encode(full *F, stub *S) ([]byte, error) {
	switch {
	case full != nil && stub != nil:
		return nil, fmt.Errorf("wire: both variants of %q pair are set", p.Field)
	case full != nil:
		return encode(full)
	case stub != nil:
		body, err := encode(stub)
		if err != nil {
			return nil, err
		}
		return withTrailingField(body, p.Field, 0)
	default:
		return nil, fmt.Errorf("wire: empty %q pair", p.Field)
	}
}

// decodeObject декодирует уже разобранный объект, если целевой тип — обычная структура,
// и передаёт сырые данные в UnmarshalJSON, если тип декодирует себя сам.
func decodeObject(obj map[string]json.RawMessage, data []byte, target any) error {
	rv := reflect.ValueOf(target).Elem()
	if rv.Kind() == reflect.Struct && !rv.Addr().Type().Implements(unmarshalerType) {
		return decodeFields(obj, rv)
	}

	return decodeValue(bytes.TrimSpace(data), rv)
}

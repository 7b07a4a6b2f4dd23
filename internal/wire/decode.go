package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// Unmarshal декодирует payload в v по правилам полей сущностей:
//   - имя поля на проводе берётся из тега json;
//   - поле без omitempty обязательно, его отсутствие (или null) даёт KindMissingField;
//   - отсутствующее необязательное поле остаётся нулевым: nil для указателей и слайсов,
//     false для флагов;
//   - пустой массив декодируется в nil-слайс;
//   - неизвестные поля игнорируются;
//   - значения, реализующие json.Unmarshaler (объединения, время), декодируют себя сами.
//
// v должен быть ненулевым указателем.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("wire: unmarshal target must be a non-nil pointer, got %T", v)
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("wire: %w", err)
	}

	return decodeValue(bytes.TrimSpace(raw), rv.Elem())
}

// Marshal кодирует v в JSON. Обязательный слайс, равный nil, записывается как [].
// Ошибка возможна только для непредставимых значений (см. ErrUnrepresentable)
// или незарегистрированных вариантов объединений.
func Marshal(v any) ([]byte, error) {
	data, err := encode(v)
	if err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}

	return data, nil
}

func decodeValue(raw []byte, v reflect.Value) error {
	if v.CanAddr() && v.Addr().Type().Implements(unmarshalerType) {
		return v.Addr().Interface().(json.Unmarshaler).UnmarshalJSON(raw)
	}

	switch v.Kind() {
	case reflect.Pointer:
		if isNull(raw) {
			v.SetZero()
			return nil
		}
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decodeValue(raw, v.Elem())
	case reflect.Struct:
		obj, err := parseObject(raw)
		if err != nil {
			return err
		}
		return decodeFields(obj, v)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return decodeScalar(raw, v)
		}
		return decodeSlice(raw, v)
	default:
		return decodeScalar(raw, v)
	}
}

func decodeFields(obj map[string]json.RawMessage, v reflect.Value) error {
	for _, f := range fieldsOf(v.Type()) {
		raw, ok := obj[f.name]
		if !ok || isNull(raw) {
			if f.required {
				return missingField(f.name)
			}
			continue
		}

		fv := v.FieldByIndex(f.index)
		if err := decodeValue(raw, fv); err != nil {
			return reroot(err, f.name)
		}

		// пустой массив приводится к nil: Marshal пишет его как [] у обязательных полей
		// и опускает у необязательных, так что decode(encode(v)) == v
		if isList(fv.Type()) && fv.Len() == 0 {
			fv.SetZero()
		}
	}

	return nil
}

func decodeSlice(raw []byte, v reflect.Value) error {
	if jsonKind(raw) != "array" {
		return typeMismatch("array", raw)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return typeMismatch("array", raw)
	}

	s := reflect.MakeSlice(v.Type(), len(items), len(items))
	for i, item := range items {
		if err := decodeValue(bytes.TrimSpace(item), s.Index(i)); err != nil {
			return reroot(err, fmt.Sprintf("[%d]", i))
		}
	}
	v.Set(s)

	return nil
}

func decodeScalar(raw []byte, v reflect.Value) error {
	if err := json.Unmarshal(raw, v.Addr().Interface()); err != nil {
		return typeMismatch(v.Kind().String(), raw)
	}

	return nil
}

func parseObject(raw []byte) (map[string]json.RawMessage, error) {
	if jsonKind(raw) != "object" {
		return nil, typeMismatch("object", raw)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, typeMismatch("object", raw)
	}

	return obj, nil
}

type field struct {
	name     string
	index    []int
	required bool
}

var fieldCache sync.Map // reflect.Type -> []field

func fieldsOf(t reflect.Type) []field {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]field)
	}

	cached, _ := fieldCache.LoadOrStore(t, collectFields(t, nil))

	return cached.([]field)
}

func collectFields(t reflect.Type, parent []int) []field {
	var fields []field

	for i := range t.NumField() {
		sf := t.Field(i)

		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		index := append(append([]int(nil), parent...), i)

		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			fields = append(fields, collectFields(sf.Type, index)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}

		fields = append(fields, field{
			name:     name,
			index:    index,
			required: !hasOption(opts, "omitempty") && !hasOption(opts, "omitzero"),
		})
	}

	return fields
}

func hasOption(opts, option string) bool {
	for opts != "" {
		var current string
		current, opts, _ = strings.Cut(opts, ",")
		if current == option {
			return true
		}
	}

	return false
}

func isNull(raw []byte) bool {
	return bytes.Equal(raw, []byte("null"))
}

// jsonKind возвращает вид JSON-значения по первому значащему байту.
func jsonKind(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "nothing"
	}

	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

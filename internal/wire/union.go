package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Set — закрытое множество вариантов объединения, которые различаются
// значением строкового поля-дискриминатора.
//
// Set заполняется один раз при инициализации пакета и после этого только читается,
// поэтому Decode и Encode можно вызывать из нескольких горутин.
type Set[V any] struct {
	name          string
	discriminator string
	constructors  map[string]func() V
	tags          map[reflect.Type]string
}

// NewSet создаёт пустое множество вариантов. name используется в сообщениях об ошибках,
// discriminator — имя поля на проводе (обычно "type").
func NewSet[V any](name, discriminator string) *Set[V] {
	return &Set[V]{
		name:          name,
		discriminator: discriminator,
		constructors:  make(map[string]func() V),
		tags:          make(map[reflect.Type]string),
	}
}

// Register добавляет вариант с тегом tag. newVariant должен возвращать новый
// указатель на структуру варианта. Повторная регистрация тега или типа — ошибка
// программиста, поэтому Register паникует.
func (s *Set[V]) Register(tag string, newVariant func() V) *Set[V] {
	if _, ok := s.constructors[tag]; ok {
		panic(fmt.Sprintf("wire: %s: tag %q registered twice", s.name, tag))
	}

	typ := reflect.TypeOf(newVariant())
	if typ == nil || typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("wire: %s: variant %q must be a pointer to struct, got %v", s.name, tag, typ))
	}
	if other, ok := s.tags[typ]; ok {
		panic(fmt.Sprintf("wire: %s: type %v already registered as %q", s.name, typ, other))
	}

	s.constructors[tag] = newVariant
	s.tags[typ] = tag

	return s
}

// Discriminator возвращает имя поля-дискриминатора.
func (s *Set[V]) Discriminator() string {
	return s.discriminator
}

// Tags возвращает отсортированный список зарегистрированных тегов.
func (s *Set[V]) Tags() []string {
	tags := make([]string, 0, len(s.constructors))
	for tag := range s.constructors {
		tags = append(tags, tag)
	}
	slices.Sort(tags)

	return tags
}

// Tag возвращает тег, под которым зарегистрирован тип варианта v.
func (s *Set[V]) Tag(v V) (string, bool) {
	typ := reflect.TypeOf(any(v))
	if typ == nil {
		return "", false
	}
	tag, ok := s.tags[typ]

	return tag, ok
}

// Decode читает дискриминатор и декодирует объект в соответствующий вариант.
// Неизвестный тег никогда не подменяется вариантом по умолчанию.
func (s *Set[V]) Decode(data []byte) (V, error) {
	var zero V

	obj, err := parseObject(bytes.TrimSpace(data))
	if err != nil {
		return zero, err
	}

	raw, ok := obj[s.discriminator]
	if !ok || isNull(raw) {
		return zero, &DecodeError{Kind: KindMissingDiscriminator, Discriminator: s.discriminator}
	}

	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		mismatch := typeMismatch("string", raw)
		mismatch.Field = s.discriminator
		return zero, mismatch
	}

	newVariant, ok := s.constructors[tag]
	if !ok {
		return zero, &DecodeError{Kind: KindUnknownVariant, Discriminator: s.discriminator, Value: tag}
	}

	v := newVariant()
	if err := decodeFields(obj, reflect.ValueOf(v).Elem()); err != nil {
		return zero, err
	}

	return v, nil
}

// Encode кодирует вариант: сначала поле-дискриминатор с зарегистрированным тегом,
// затем поля варианта.
func (s *Set[V]) Encode(v V) ([]byte, error) {
	if any(v) == nil {
		return nil, fmt.Errorf("wire: %s: empty union value", s.name)
	}

	tag, ok := s.Tag(v)
	if !ok {
		return nil, fmt.Errorf("wire: %s: variant %T is not registered", s.name, v)
	}
	if reflect.ValueOf(v).IsNil() {
		return nil, fmt.Errorf("wire: %s: nil %s variant", s.name, tag)
	}

	body, err := encode(v)
	if err != nil {
		return nil, err
	}

	return withLeadingField(body, s.discriminator, tag)
}

var errNotObject = errors.New("encoded value is not a JSON object")

// withLeadingField вставляет поле name первым полем JSON-объекта body.
func withLeadingField(body []byte, name string, value any) ([]byte, error) {
	inner, err := objectBody(body)
	if err != nil {
		return nil, err
	}

	head, err := encodeMember(name, value)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(head) + len(inner) + 3)
	buf.WriteByte('{')
	buf.Write(head)
	if len(inner) > 0 {
		buf.WriteByte(',')
		buf.Write(inner)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// withTrailingField добавляет поле name последним полем JSON-объекта body.
func withTrailingField(body []byte, name string, value any) ([]byte, error) {
	inner, err := objectBody(body)
	if err != nil {
		return nil, err
	}

	tail, err := encodeMember(name, value)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(tail) + len(inner) + 3)
	buf.WriteByte('{')
	if len(inner) > 0 {
		buf.Write(inner)
		buf.WriteByte(',')
	}
	buf.Write(tail)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func objectBody(body []byte) ([]byte, error) {
	body = bytes.TrimSpace(body)
	if len(body) < 2 || body[0] != '{' || body[len(body)-1] != '}' {
		return nil, fmt.Errorf("wire: %w: %s", errNotObject, strings.TrimSpace(string(body)))
	}

	return bytes.TrimSpace(body[1 : len(body)-1]), nil
}

func encodeMember(name string, value any) ([]byte, error) {
	key, err := json.Marshal(name)
	if err != nil {
		return nil, err
	}

	val, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	member := make([]byte, 0, len(key)+len(val)+1)
	member = append(member, key...)
	member = append(member, ':')

	return append(member, val...), nil
}

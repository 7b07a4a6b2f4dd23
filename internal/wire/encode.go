package wire

import (
	"encoding/json"
	"reflect"
)

var marshalerType = reflect.TypeFor[json.Marshaler]()

// encode кодирует v, записывая nil в обязательных слайсах как пустой массив:
// обязательное поле не может уйти на провод как null, иначе Unmarshal его не примет.
func encode(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return json.Marshal(v)
	}

	return json.Marshal(fillRequired(rv).Interface())
}

// fillRequired возвращает копию v, в которой обязательные nil-слайсы заменены пустыми.
// Исходное значение не меняется. Типы с собственным MarshalJSON не трогаются.
func fillRequired(v reflect.Value) reflect.Value {
	t := v.Type()
	if encodesItself(t) {
		return v
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(fillRequired(v.Elem()))
		return p
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(t).Elem()
		out.Set(fillRequired(v.Elem()))
		return out
	case reflect.Struct:
		out := reflect.New(t).Elem()
		out.Set(v)
		for _, f := range fieldsOf(t) {
			fv := out.FieldByIndex(f.index)
			if !fv.CanSet() {
				continue
			}
			if f.required && isList(fv.Type()) && fv.IsNil() {
				fv.Set(reflect.MakeSlice(fv.Type(), 0, 0))
				continue
			}
			fv.Set(fillRequired(fv))
		}
		return out
	case reflect.Slice:
		if v.IsNil() || !isList(t) {
			return v
		}
		out := reflect.MakeSlice(t, v.Len(), v.Len())
		for i := range v.Len() {
			out.Index(i).Set(fillRequired(v.Index(i)))
		}
		return out
	default:
		return v
	}
}

func encodesItself(t reflect.Type) bool {
	return t.Implements(marshalerType) ||
		(t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(marshalerType))
}

// isList сообщает, кодируется ли слайс как JSON-массив ([]byte кодируется строкой).
func isList(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8
}
